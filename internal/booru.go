package internal

import (
	"context"
	"fmt"
	"sync"

	"github.com/hbomb79/Booru/internal/api"
	"github.com/hbomb79/Booru/internal/content"
	"github.com/hbomb79/Booru/internal/conversion"
	"github.com/hbomb79/Booru/internal/database"
	"github.com/hbomb79/Booru/internal/event"
	"github.com/hbomb79/Booru/internal/ffmpeg"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/tag"
	"github.com/hbomb79/Booru/internal/upload"
	"github.com/hbomb79/Booru/pkg/logger"
)

var log = logger.Get("Core")

type RunnableService interface {
	Run(context.Context) error
}

// Booru represents the top-level object for the server, and is responsible
// for connecting to the database and content store, and for constructing
// and running the services which make up the ingestion pipeline.
type booruImpl struct {
	config   BooruConfig
	eventBus event.EventCoordinator
}

func New(config BooruConfig) *booruImpl {
	log.Emit(logger.DEBUG, "Bootstrapping Booru services using config: %#v\n", config)
	return &booruImpl{config: config, eventBus: event.New()}
}

// Run will start all of Booru by connecting to the database and content store,
// and then bringing up the conversion, activity and API services.
//
// This function will not return until Booru is stopped.
// To stop Booru, the provided context must be cancelled. Errors from which Booru cannot recover
// will also cause Booru to stop, and the first such error is returned.
func (booru *booruImpl) Run(parent context.Context) error {
	ctx, cancel := context.WithCancelCause(parent)
	defer cancel(nil)

	crashHandler := func(label string, err error) {
		log.Emit(logger.FATAL, "Service crash (%s)! %s\n", label, err.Error())
		cancel(fmt.Errorf("service %s crashed: %w", label, err))
	}

	log.Emit(logger.NEW, "Connecting to database...\n")
	db := database.New()
	if err := db.Connect(booru.config.Database); err != nil {
		return err
	}
	defer db.Close()

	log.Emit(logger.NEW, "Opening %s content store...\n", booru.config.Content.Backend)
	contentStore, err := content.New(ctx, booru.config.Content)
	if err != nil {
		return fmt.Errorf("failed to open content store: %w", err)
	}

	store := newDataOrchestrator(db)
	runner := ffmpeg.NewRunner(booru.config.FFmpeg)
	converter := conversion.New(contentStore, runner, store, booru.eventBus)
	dispatcher := upload.New(booru.config.Upload, store, converter, runner, booru.eventBus)
	gateway := api.NewRestGateway(&booru.config.API, dispatcher, listing.New(store), tag.New(store), contentStore, store)
	activity := newActivityService(gateway, booru.eventBus)

	wg := &sync.WaitGroup{}
	booru.spawnAsyncService(ctx, wg, converter, "conversion-service", crashHandler)
	booru.spawnAsyncService(ctx, wg, activity, "activity-service", crashHandler)
	booru.spawnAsyncService(ctx, wg, gateway, "rest-gateway", crashHandler)
	log.Emit(logger.SUCCESS, "Booru services spawned!\n")

	wg.Wait()
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}

// spawnAsyncService will run the provided function/service as it's own
// go-routine, ensuring that the Booru service waitgroup is updated correctly
func (booru *booruImpl) spawnAsyncService(ctx context.Context, wg *sync.WaitGroup, service RunnableService, serviceLabel string, crashHandler func(string, error)) {
	log.Emit(logger.NEW, "Spawning %s\n", serviceLabel)
	wg.Add(1)

	go func(wg *sync.WaitGroup, label string, crash func(string, error)) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				crash(label, fmt.Errorf("panic %v", r))
			}
		}()

		if err := service.Run(ctx); err != nil {
			crash(label, err)
		}
	}(wg, serviceLabel, crashHandler)
}
