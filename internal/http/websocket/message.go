package websocket

import (
	"github.com/google/uuid"
)

type socketMessageType int

const (
	Update socketMessageType = iota
	Welcome
)

// SocketMessage is a message pushed from the server to connected
// clients. Target, if set, restricts delivery to a single client.
type SocketMessage struct {
	Title  string            `json:"title"`
	Body   map[string]any    `json:"arguments"`
	Type   socketMessageType `json:"type"`
	Target *uuid.UUID        `json:"-"`
}
