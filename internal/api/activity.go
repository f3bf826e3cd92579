package api

import (
	"github.com/hbomb79/Booru/internal/http/websocket"
)

const (
	TITLE_POST_CREATED   = "POST_CREATED"
	TITLE_POST_PROCESSED = "POST_PROCESSED"
	TITLE_POST_REMOVED   = "POST_REMOVED"
)

type broadcaster struct {
	socketHub *websocket.SocketHub
}

func newBroadcaster(socketHub *websocket.SocketHub) *broadcaster {
	return &broadcaster{socketHub}
}

func (hub *broadcaster) BroadcastPostCreated(postID int) error {
	hub.broadcast(TITLE_POST_CREATED, postID)
	return nil
}

func (hub *broadcaster) BroadcastPostProcessed(postID int) error {
	hub.broadcast(TITLE_POST_PROCESSED, postID)
	return nil
}

func (hub *broadcaster) BroadcastPostRemoved(postID int) error {
	hub.broadcast(TITLE_POST_REMOVED, postID)
	return nil
}

func (hub *broadcaster) broadcast(title string, postID int) {
	hub.socketHub.Send(&websocket.SocketMessage{
		Title: title,
		Body:  map[string]any{"post_id": postID},
		Type:  websocket.Update,
	})
}
