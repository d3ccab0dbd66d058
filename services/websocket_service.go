package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"stickynotes/notes/broker"
	"stickynotes/notes/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256
)

// WebSocketServiceInterface defines the operations provided by the WebSocket service
type WebSocketServiceInterface interface {
	Start() error
	Stop()
	HandleConnection(c *gin.Context)
	BroadcastMessage(message []byte)
	ClientCount() int
}

// Client represents a connected WebSocket client
type Client struct {
	ID   string
	Hub  *WebSocketService
	Conn *websocket.Conn
	Send chan []byte
}

// ClientMessage represents a message from the client
type ClientMessage struct {
	Type string `json:"type"`
}

// WebSocketService relays note events from the broker to every connected client.
type WebSocketService struct {
	// Client management
	clients      map[string]*Client
	register     chan *Client
	unregister   chan *Client
	broadcast    chan []byte
	clientsMutex sync.RWMutex

	// Configuration
	upgrader   websocket.Upgrader
	subscriber broker.Subscriber
	subject    string

	// Control
	stateMutex sync.Mutex
	isRunning  bool
	stopChan   chan struct{}
	consumer   broker.Consumer
}

// NewWebSocketService creates a new WebSocket service. allowedOrigins follows
// the CORS setting; "*" accepts any origin.
func NewWebSocketService(subscriber broker.Subscriber, allowedOrigins []string) *WebSocketService {
	return &WebSocketService{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, sendBufferSize),

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		subscriber: subscriber,
		subject:    broker.NoteEventsSubject,

		stopChan: make(chan struct{}),
	}
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// Non-browser clients do not send an Origin header.
		if origin == "" || allowed["*"] {
			return true
		}
		return allowed[origin]
	}
}

// Start subscribes to note events and starts the hub.
func (ws *WebSocketService) Start() error {
	ws.stateMutex.Lock()
	defer ws.stateMutex.Unlock()

	if ws.isRunning {
		return nil
	}

	consumer, err := ws.subscriber.Subscribe(ws.subject)
	if err != nil {
		return err
	}
	ws.consumer = consumer
	ws.isRunning = true

	go ws.run()
	go ws.forwardBrokerMessages(consumer.GetMessageChannel())

	log.Printf("WebSocket service started, relaying %s", ws.subject)
	return nil
}

// Stop gracefully shuts down the WebSocket service
func (ws *WebSocketService) Stop() {
	ws.stateMutex.Lock()
	defer ws.stateMutex.Unlock()

	if !ws.isRunning {
		return
	}
	ws.isRunning = false
	close(ws.stopChan)
	ws.consumer.Close()

	ws.clientsMutex.Lock()
	for id, client := range ws.clients {
		if client != nil && client.Conn != nil {
			client.Conn.Close()
		}
		delete(ws.clients, id)
	}
	ws.clientsMutex.Unlock()

	log.Println("WebSocket service stopped")
}

func (ws *WebSocketService) running() bool {
	ws.stateMutex.Lock()
	defer ws.stateMutex.Unlock()
	return ws.isRunning
}

// BroadcastMessage sends a message to all connected clients
func (ws *WebSocketService) BroadcastMessage(message []byte) {
	select {
	case ws.broadcast <- message:
	case <-ws.stopChan:
	}
}

func (ws *WebSocketService) ClientCount() int {
	ws.clientsMutex.RLock()
	defer ws.clientsMutex.RUnlock()
	return len(ws.clients)
}

// HandleConnection upgrades the request to a websocket and registers the client.
func (ws *WebSocketService) HandleConnection(c *gin.Context) {
	if !ws.running() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Live updates are not available"})
		return
	}

	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	client := &Client{
		ID:   uuid.New().String(),
		Hub:  ws,
		Conn: conn,
		Send: make(chan []byte, sendBufferSize),
	}

	select {
	case ws.register <- client:
	case <-ws.stopChan:
		conn.Close()
		return
	}

	go client.readPump()
	go client.writePump()
}

// run handles the main client message hub
func (ws *WebSocketService) run() {
	for {
		select {
		case <-ws.stopChan:
			return

		case client := <-ws.register:
			ws.clientsMutex.Lock()
			ws.clients[client.ID] = client
			ws.clientsMutex.Unlock()
			log.Printf("Client connected: %s", client.ID)

		case client := <-ws.unregister:
			ws.clientsMutex.Lock()
			if _, ok := ws.clients[client.ID]; ok {
				delete(ws.clients, client.ID)
				close(client.Send)
				log.Printf("Client disconnected: %s", client.ID)
			}
			ws.clientsMutex.Unlock()

		case message := <-ws.broadcast:
			ws.clientsMutex.Lock()
			for id, client := range ws.clients {
				select {
				case client.Send <- message:
				default:
					log.Printf("Client %s send buffer full, removing client", id)
					close(client.Send)
					delete(ws.clients, id)
				}
			}
			ws.clientsMutex.Unlock()
		}
	}
}

// forwardBrokerMessages wraps each note event in a StandardMessage and
// broadcasts it. Returns when the subscription is closed.
func (ws *WebSocketService) forwardBrokerMessages(messages <-chan broker.Message) {
	for msg := range messages {
		var event models.NoteEvent
		if err := event.FromJSON(msg.Data); err != nil {
			log.Printf("Error parsing event on %s: %v", msg.Subject, err)
			continue
		}

		data, err := json.Marshal(models.NewStandardMessage(models.EventMessage, event.Type, msg.Data))
		if err != nil {
			log.Printf("Error serializing websocket message: %v", err)
			continue
		}
		ws.BroadcastMessage(data)
	}
}

// readPump handles incoming messages from the WebSocket client
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.stopChan:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error reading from WebSocket: %v", err)
			}
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Error parsing client message: %v", err)
			continue
		}
		if clientMsg.Type != "ping" {
			log.Printf("Unknown message type: %s", clientMsg.Type)
		}
	}
}

// writePump pumps messages from the hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One event per frame so clients can decode each message on its own.
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.Hub.stopChan:
			return
		}
	}
}
