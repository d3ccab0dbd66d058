package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"stickynotes/notes/models"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream note changes as they happen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runWatch(ctx, websocketURL(serverURL), os.Stdout); err != nil {
			fatal("Error watching notes", err)
		}
	},
}

// websocketURL maps the API base URL onto its /ws endpoint.
func websocketURL(base string) string {
	base = strings.TrimRight(base, "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + "/ws"
}

// runWatch prints one line per event until ctx is cancelled or the server
// closes the stream.
func runWatch(ctx context.Context, url string, w io.Writer) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	slog.Debug("watching note events", "url", url)

	go func() {
		<-ctx.Done()
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		var msg models.StandardMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("skipping malformed message", "error", err)
			continue
		}
		var event models.NoteEvent
		if err := event.FromJSON(msg.Payload); err != nil {
			slog.Warn("skipping malformed event", "event", msg.Event, "error", err)
			continue
		}

		line := fmt.Sprintf("%s  %-13s %s", event.Timestamp.Local().Format("15:04:05"), event.Type, event.NoteID)
		if event.Note != nil {
			line += "  " + event.Note.Title
		}
		fmt.Fprintln(w, line)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
