package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hbomb79/Booru/pkg/logger"
)

const writeTimeout = 10 * time.Second

var socketLogger = logger.Get("WebSocket")

// SocketHub is the struct responsible for managing
// the websocket upgrading, connecting and pushing
// of messages to clients. All writes to client sockets
// happen on the hub's own goroutine.
type SocketHub struct {
	*sync.RWMutex
	upgrader           *websocket.Upgrader
	clients            map[uuid.UUID]*socketClient
	registerCh         chan *socketClient
	deregisterCh       chan *socketClient
	sendCh             chan *SocketMessage
	doneCh             chan struct{}
	connectionCallback func() map[string]any
	running            bool
}

// Returns a new SocketHub with the channels and
// maps initialised to sane starting values
func New() *SocketHub {
	return &SocketHub{
		RWMutex: &sync.RWMutex{},
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:      make(map[uuid.UUID]*socketClient),
		registerCh:   make(chan *socketClient),
		deregisterCh: make(chan *socketClient),
		sendCh:       make(chan *SocketMessage),
		doneCh:       make(chan struct{}),
	}
}

// WithConnectionCallback sets a callback that will be executed each time a new client
// connects to this hub. The payload returned is sent to the client as part of its
// welcome message.
func (hub *SocketHub) WithConnectionCallback(callback func() map[string]any) {
	hub.connectionCallback = callback
}

// Start runs the hub, blocking until the context provided is cancelled. A hub
// cannot be restarted once it has been closed.
func (hub *SocketHub) Start(ctx context.Context) {
	hub.Lock()
	if hub.running {
		hub.Unlock()
		socketLogger.Emit(logger.WARNING, "Attempting to start socketHub when already running! Ignoring request.\n")
		return
	}
	hub.running = true
	hub.Unlock()

	socketLogger.Emit(logger.INFO, "Opening SocketHub!\n")
	defer hub.close()
	for {
		select {
		case message := <-hub.sendCh:
			if message.Target != nil {
				if client, ok := hub.clients[*message.Target]; ok {
					hub.write(client, message)
				} else {
					socketLogger.Emit(logger.WARNING, "Attempted to send message to target {%v}, but no matching client was found.\n", *message.Target)
				}

				continue
			}

			for _, client := range hub.clients {
				hub.write(client, message)
			}
		case client := <-hub.registerCh:
			hub.Lock()
			hub.clients[client.id] = client
			hub.Unlock()

			socketLogger.Emit(logger.NEW, "Registered new client {%v}\n", client.id)
			hub.write(client, hub.welcomeMessage(client))
		case client := <-hub.deregisterCh:
			hub.Lock()
			_, ok := hub.clients[client.id]
			delete(hub.clients, client.id)
			hub.Unlock()

			if ok {
				client.Close()
				socketLogger.Emit(logger.REMOVE, "Deregistered client {%v}\n", client.id)
			}
		case <-ctx.Done():
			socketLogger.Emit(logger.REMOVE, "Shutting down socket hub! Closing all clients.\n")
			return
		}
	}
}

// Send queues the message for delivery. Messages with a Target are only
// delivered to the client with the matching ID; all others are broadcast.
// Messages sent while the hub is not running are dropped.
func (hub *SocketHub) Send(message *SocketMessage) {
	hub.RLock()
	running := hub.running
	hub.RUnlock()
	if !running {
		socketLogger.Emit(logger.DEBUG, "Socket hub offline, dropping message %s\n", message.Title)
		return
	}

	select {
	case hub.sendCh <- message:
	case <-hub.doneCh:
	}
}

// UpgradeToSocket upgrades a given HTTP request to a websocket and registers the new client with
// the hub. This method blocks until the client disconnects or the hub is closed.
func (hub *SocketHub) UpgradeToSocket(w http.ResponseWriter, r *http.Request) {
	hub.RLock()
	running := hub.running
	hub.RUnlock()
	if !running {
		socketLogger.Emit(logger.ERROR, "Failed to upgrade incoming HTTP request to a websocket: SocketHub has not been started!\n")
		http.Error(w, "activity feed unavailable", http.StatusServiceUnavailable)
		return
	}

	sock, err := hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		socketLogger.Emit(logger.ERROR, "Failed to upgrade incoming HTTP request to a websocket: %v\n", err.Error())
		return
	}

	client := &socketClient{id: uuid.New(), socket: sock}
	select {
	case hub.registerCh <- client:
	case <-hub.doneCh:
		client.Close()
		return
	}

	if err := client.Read(); err != nil {
		socketLogger.Emit(logger.DEBUG, "Client {%v} closed: %v\n", client.id, err)
	}

	select {
	case hub.deregisterCh <- client:
	case <-hub.doneCh:
	}
}

// ClientCount returns the number of connected clients.
func (hub *SocketHub) ClientCount() int {
	hub.RLock()
	defer hub.RUnlock()
	return len(hub.clients)
}

func (hub *SocketHub) welcomeMessage(client *socketClient) *SocketMessage {
	body := make(map[string]any)
	if hub.connectionCallback != nil {
		for k, v := range hub.connectionCallback() {
			body[k] = v
		}
	}
	body["client"] = client.id

	return &SocketMessage{Title: "CONNECTION_ESTABLISHED", Body: body, Type: Welcome}
}

func (hub *SocketHub) write(client *socketClient, message *SocketMessage) {
	if err := client.SendMessage(message, writeTimeout); err != nil {
		socketLogger.Emit(logger.WARNING, "Failed to send message to client {%v}: %v\n", client.id, err)
	}
}

// close closes every connected client and marks the hub as stopped.
func (hub *SocketHub) close() {
	hub.Lock()
	defer hub.Unlock()

	close(hub.doneCh)
	for _, client := range hub.clients {
		client.Close()
	}

	hub.clients = make(map[uuid.UUID]*socketClient)
	hub.running = false
	socketLogger.Emit(logger.STOP, "Socket hub is now closed!\n")
}
