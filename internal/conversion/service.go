package conversion

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hbomb79/Booru/internal/content"
	"github.com/hbomb79/Booru/internal/event"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/pkg/logger"
	typedsync "github.com/hbomb79/Booru/pkg/sync"
)

var (
	ErrServiceClosed = errors.New("conversion service is shutting down")

	log = logger.Get("Conversion")
)

type (
	DataStore interface {
		FinalizePost(ctx context.Context, id int, fileSizeBytes int64) error
		DeletePost(ctx context.Context, id int) (bool, error)
	}

	VideoTranscoder interface {
		TranscodeWebm(ctx context.Context, payload []byte, dst io.Writer) error
	}

	// conversionService performs the slow encode/transcode work for newly
	// uploaded posts in the background. Each job runs in its own goroutine
	// and uses its own repository transactions. Failed jobs are not
	// retried; the post is removed instead.
	conversionService struct {
		*sync.Mutex
		closed     bool
		jobWg      *sync.WaitGroup
		jobs       *typedsync.TypedSyncMap[uuid.UUID, *Job]
		ctx        context.Context
		cancel     context.CancelFunc
		content    content.Store
		transcoder VideoTranscoder
		dataStore  DataStore
		eventBus   event.EventDispatcher
	}
)

func New(contentStore content.Store, transcoder VideoTranscoder, dataStore DataStore, eventBus event.EventDispatcher) *conversionService {
	ctx, cancel := context.WithCancel(context.Background())
	return &conversionService{
		Mutex:      &sync.Mutex{},
		jobWg:      &sync.WaitGroup{},
		jobs:       new(typedsync.TypedSyncMap[uuid.UUID, *Job]),
		ctx:        ctx,
		cancel:     cancel,
		content:    contentStore,
		transcoder: transcoder,
		dataStore:  dataStore,
		eventBus:   eventBus,
	}
}

// Run blocks until the provided context is cancelled, at which point any
// live jobs are cancelled (killing running ffmpeg processes) and waited on.
// Jobs enqueued after this point are rejected.
func (service *conversionService) Run(ctx context.Context) error {
	log.Emit(logger.NEW, "Conversion service started\n")
	<-ctx.Done()

	service.Lock()
	service.closed = true
	service.Unlock()

	log.Emit(logger.STOP, "Shutting down (context cancelled). Waiting for %d conversion jobs to conclude.\n", len(service.Jobs()))
	service.cancel()
	service.jobWg.Wait()
	return nil
}

// EnqueueImage launches a detached job which encodes the decoded image as PNG.
func (service *conversionService) EnqueueImage(img image.Image, postID int) uuid.UUID {
	job := newJob(postID, post.Image)
	job.image = img
	return service.launch(job)
}

// EnqueueVideo launches a detached job which transcodes the raw payload to WebM.
func (service *conversionService) EnqueueVideo(payload []byte, postID int) uuid.UUID {
	job := newJob(postID, post.Video)
	job.payload = payload
	return service.launch(job)
}

// Job returns the live job with the matching ID, or nil if no such job
// exists (or the job has already concluded).
func (service *conversionService) Job(id uuid.UUID) *Job {
	job, _ := service.jobs.Load(id)
	return job
}

// Jobs returns all live jobs.
func (service *conversionService) Jobs() []*Job {
	return service.jobs.Values()
}

func (service *conversionService) launch(job *Job) uuid.UUID {
	service.Lock()
	if service.closed {
		service.Unlock()
		service.fail(job, ErrServiceClosed)
		job.release()
		return job.id
	}

	service.jobs.Store(job.id, job)
	service.jobWg.Add(1)
	service.Unlock()

	go func(job *Job, wg *sync.WaitGroup) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				service.fail(job, fmt.Errorf("panic: %v", r))
			}
			service.conclude(job)
		}()

		service.run(job)
	}(job, service.jobWg)

	log.Emit(logger.NEW, "Queued %s\n", job)
	return job.id
}

func (service *conversionService) run(job *Job) {
	ctx := service.ctx
	job.setState(Encoding)
	log.Emit(logger.DEBUG, "Starting %s\n", job)

	size, err := service.encode(ctx, job)
	if err != nil {
		service.fail(job, err)
		return
	}

	// Finalization must happen even if the service is shutting down, as
	// the encoded blob is already complete.
	if err := service.dataStore.FinalizePost(context.WithoutCancel(ctx), job.postID, size); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			log.Emit(logger.WARNING, "%s finished but post no longer exists. Nothing to finalize.\n", job)
			job.setState(Removed)
			return
		}

		service.fail(job, fmt.Errorf("failed to finalize post: %w", err))
		return
	}

	job.setState(Processed)
	log.Emit(logger.SUCCESS, "%s processed in %s (%s)\n", job, time.Since(job.createdAt).Round(time.Millisecond), humanize.Bytes(uint64(size)))
	service.eventBus.Dispatch(event.POST_PROCESSED, job.postID)
}

// encode writes the converted media for the job in to the content store,
// returning the number of bytes written.
func (service *conversionService) encode(ctx context.Context, job *Job) (int64, error) {
	writer, err := service.content.OpenWrite(ctx, content.Key(job.postID, job.mediaType))
	if err != nil {
		return 0, fmt.Errorf("failed to open content writer: %w", err)
	}

	counter := &countingWriter{writer: writer}
	var encodeErr error
	switch job.mediaType {
	case post.Image:
		encodeErr = imaging.Encode(counter, job.image, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case post.Video:
		encodeErr = service.transcoder.TranscodeWebm(ctx, job.payload, counter)
	default:
		encodeErr = fmt.Errorf("no conversion available for %s media", job.mediaType)
	}

	closeErr := writer.Close()
	if encodeErr != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", job.mediaType, encodeErr)
	} else if closeErr != nil {
		return 0, fmt.Errorf("failed to commit content: %w", closeErr)
	}

	return counter.written, nil
}

// fail compensates for a failed job by removing the post it was created
// for. Any partially written blob is left in place.
func (service *conversionService) fail(job *Job, cause error) {
	elapsed := time.Since(job.createdAt).Round(time.Millisecond)
	log.Emit(logger.ERROR, "%s failed after %s: %v\n", job, elapsed, cause)

	if _, err := service.dataStore.DeletePost(context.WithoutCancel(service.ctx), job.postID); err != nil {
		log.Emit(logger.ERROR, "Failed to remove post %d after failed conversion: %v\n", job.postID, err)
	}

	job.setState(Removed)
	service.eventBus.Dispatch(event.POST_REMOVED, job.postID)
}

func (service *conversionService) conclude(job *Job) {
	job.release()
	service.jobs.Delete(job.id)
}

type countingWriter struct {
	writer  io.Writer
	written int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.writer.Write(p)
	w.written += int64(n)
	return n, err
}
