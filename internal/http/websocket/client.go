package websocket

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type socketClient struct {
	id     uuid.UUID
	socket *websocket.Conn
}

func (client *socketClient) SendMessage(message *SocketMessage, timeout time.Duration) error {
	if err := client.socket.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}

	return client.socket.WriteJSON(message)
}

// Read runs the read-loop for the clients connection. The feed is push only, so
// anything the client sends is discarded; the loop exists to notice the
// connection closing, at which point the error is returned.
func (client *socketClient) Read() error {
	for {
		if _, _, err := client.socket.NextReader(); err != nil {
			return err
		}
	}
}

// Close will close this clients socket
func (client *socketClient) Close() {
	client.socket.Close()
}
