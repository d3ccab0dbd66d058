package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stickynotes/notes/broker"
	"stickynotes/notes/config"
	"stickynotes/notes/database"
	"stickynotes/notes/middleware"
	"stickynotes/notes/repository"
	"stickynotes/notes/routes"
	"stickynotes/notes/services"

	"github.com/gin-gonic/gin"
)

// setupRepository opens the store selected by DB_DRIVER. The returned func
// releases it.
func setupRepository(cfg config.Config) (repository.NoteRepository, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		store, err := database.SetupMongo(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMongoNoteRepository(store.Collection), store.Close, nil

	case config.DriverPostgres, config.DriverSQLite:
		db, err := database.Setup(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewGormNoteRepository(db), db.Close, nil

	case config.DriverMemory:
		log.Println("Warning: using the in-memory store, notes are lost on restart")
		return repository.NewMemoryNoteRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// setupBroker connects to NATS when configured and falls back to the
// in-process broker otherwise.
func setupBroker(cfg config.Config) broker.Broker {
	if cfg.NATSURL == "" {
		return broker.NewLocalBroker()
	}

	natsBroker, err := broker.NewNATSBroker(cfg.NATSURL)
	if err != nil {
		log.Printf("Warning: %v", err)
		log.Println("Live updates will only reach clients of this instance")
		return broker.NewLocalBroker()
	}
	return natsBroker
}

func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	noteRepository, closeStore, err := setupRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer closeStore()

	eventBroker := setupBroker(cfg)
	defer eventBroker.Close()

	noteService := services.NewNoteService(noteRepository, eventBroker)

	webSocketService := services.NewWebSocketService(eventBroker, cfg.Origins())
	if err := webSocketService.Start(); err != nil {
		log.Printf("Warning: live updates disabled: %v", err)
	}
	defer webSocketService.Stop()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.Origins()))

	routes.RegisterNoteRoutes(router, noteService)
	routes.RegisterWebSocketRoutes(router, webSocketService)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Printf("API server is running on port %s (store: %s)", cfg.AppPort, cfg.DBDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
	}
}
