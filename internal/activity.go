package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbomb79/Booru/internal/event"
	"github.com/hbomb79/Booru/pkg/logger"
)

const activityBacklogSize = 100

type (
	broadcaster interface {
		BroadcastPostCreated(postID int) error
		BroadcastPostProcessed(postID int) error
		BroadcastPostRemoved(postID int) error
	}

	// activityService listens for post lifecycle events on the event bus
	// and forwards them to the broadcaster (typically the websocket hub
	// owned by the REST gateway).
	activityService struct {
		broadcaster broadcaster
		eventBus    event.EventHandler
	}
)

func newActivityService(broadcaster broadcaster, eventBus event.EventHandler) *activityService {
	return &activityService{broadcaster: broadcaster, eventBus: eventBus}
}

// Run forwards events until the context is cancelled. Events are handed over
// without blocking the dispatcher; if the backlog is full, or the service has
// stopped draining it, the event is dropped.
func (service *activityService) Run(ctx context.Context) error {
	backlog := make(chan event.HandlerEvent, activityBacklogSize)
	enqueue := func(ev event.Event, payload event.Payload) {
		select {
		case backlog <- event.HandlerEvent{Event: ev, Payload: payload}:
		default:
			log.Emit(logger.WARNING, "Activity backlog full, dropping %s event for %v\n", ev, payload)
		}
	}
	for _, ev := range []event.Event{event.POST_CREATED, event.POST_PROCESSED, event.POST_REMOVED} {
		service.eventBus.RegisterHandlerFunction(ev, enqueue)
	}

	log.Emit(logger.NEW, "Activity service started\n")
	for {
		select {
		case ev := <-backlog:
			if err := service.handleEvent(ev); err != nil {
				log.Emit(logger.ERROR, "Handling of event %v failed: %v\n", ev, err)
			}
		case <-ctx.Done():
			log.Emit(logger.STOP, "Activity service closed\n")
			return nil
		}
	}
}

func (service *activityService) handleEvent(ev event.HandlerEvent) error {
	postID, ok := ev.Payload.(int)
	if !ok {
		return errors.New("illegal payload (expected int post ID)")
	}

	switch ev.Event {
	case event.POST_CREATED:
		return service.broadcaster.BroadcastPostCreated(postID)
	case event.POST_PROCESSED:
		return service.broadcaster.BroadcastPostProcessed(postID)
	case event.POST_REMOVED:
		return service.broadcaster.BroadcastPostRemoved(postID)
	default:
		return fmt.Errorf("unknown event type %s", ev.Event)
	}
}
