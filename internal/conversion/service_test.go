package conversion_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/hbomb79/Booru/internal/content"
	"github.com/hbomb79/Booru/internal/conversion"
	mocks "github.com/hbomb79/Booru/internal/conversion/mocks"
	"github.com/hbomb79/Booru/internal/event"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errExpected = errors.New("test: expected error")

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

type Service interface {
	Run(context.Context) error
	EnqueueImage(image.Image, int) uuid.UUID
	EnqueueVideo([]byte, int) uuid.UUID
	Job(uuid.UUID) *conversion.Job
	Jobs() []*conversion.Job
}

type harness struct {
	root       string
	service    Service
	store      *mocks.MockDataStore
	transcoder *mocks.MockVideoTranscoder
	events     event.HandlerChannel
	shutdown   func()
}

// startService creates and runs a conversion service backed by a temporary
// filesystem content store. The service is shut down when the test concludes.
func startService(t *testing.T) *harness {
	root := t.TempDir()
	contentStore, err := content.NewFilesystemStore(root)
	require.NoError(t, err)

	bus := event.New()
	events := make(event.HandlerChannel, 10)
	bus.RegisterHandlerChannel(events, event.POST_PROCESSED, event.POST_REMOVED)

	h := &harness{
		root:       root,
		store:      mocks.NewMockDataStore(t),
		transcoder: mocks.NewMockVideoTranscoder(t),
		events:     events,
	}
	h.service = conversion.New(contentStore, h.transcoder, h.store, bus)

	wg := sync.WaitGroup{}
	wg.Add(1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer wg.Done()
		assert.Nil(t, h.service.Run(ctx))
	}()

	once := sync.Once{}
	h.shutdown = func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
	t.Cleanup(h.shutdown)

	return h
}

func (h *harness) awaitEvent(t *testing.T) event.HandlerEvent {
	select {
	case ev := <-h.events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return event.HandlerEvent{}
	}
}

func TestImage_EncodedAndFinalized(t *testing.T) {
	h := startService(t)

	var finalizedSize int64
	h.store.EXPECT().FinalizePost(mock.Anything, 5, mock.AnythingOfType("int64")).
		Run(func(_ context.Context, _ int, size int64) { finalizedSize = size }).
		Return(nil).Once()

	h.service.EnqueueImage(imaging.New(16, 8, color.NRGBA{R: 255, A: 255}), 5)

	assert.Equal(t, event.HandlerEvent{Event: event.POST_PROCESSED, Payload: 5}, h.awaitEvent(t))

	info, err := os.Stat(filepath.Join(h.root, "5.png"))
	require.NoError(t, err)
	assert.Equal(t, info.Size(), finalizedSize, "finalized size must match the bytes written")

	decoded, err := imaging.Open(filepath.Join(h.root, "5.png"))
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())

	assert.Eventually(t, func() bool { return len(h.service.Jobs()) == 0 }, time.Second, 10*time.Millisecond)
}

func TestVideo_TranscodedAndFinalized(t *testing.T) {
	h := startService(t)

	payload := []byte("raw mp4 bytes")
	h.transcoder.EXPECT().TranscodeWebm(mock.Anything, payload, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []byte, dst io.Writer) error {
			_, err := dst.Write([]byte("webm bytes"))
			return err
		}).Once()
	h.store.EXPECT().FinalizePost(mock.Anything, 9, int64(len("webm bytes"))).Return(nil).Once()

	h.service.EnqueueVideo(payload, 9)

	assert.Equal(t, event.HandlerEvent{Event: event.POST_PROCESSED, Payload: 9}, h.awaitEvent(t))
	written, err := os.ReadFile(filepath.Join(h.root, "9.webm"))
	require.NoError(t, err)
	assert.Equal(t, "webm bytes", string(written))
}

func TestVideo_FailureRemovesPost(t *testing.T) {
	h := startService(t)

	h.transcoder.EXPECT().TranscodeWebm(mock.Anything, mock.Anything, mock.Anything).Return(errExpected).Once()
	h.store.EXPECT().DeletePost(mock.Anything, 3).Return(true, nil).Once()

	h.service.EnqueueVideo([]byte("corrupt"), 3)

	assert.Equal(t, event.HandlerEvent{Event: event.POST_REMOVED, Payload: 3}, h.awaitEvent(t))
	h.store.AssertNotCalled(t, "FinalizePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_FailureRemovesPost(t *testing.T) {
	h := startService(t)

	h.store.EXPECT().FinalizePost(mock.Anything, 4, mock.Anything).Return(errExpected).Once()
	h.store.EXPECT().DeletePost(mock.Anything, 4).Return(true, nil).Once()

	h.service.EnqueueImage(imaging.New(2, 2, color.White), 4)

	assert.Equal(t, event.HandlerEvent{Event: event.POST_REMOVED, Payload: 4}, h.awaitEvent(t))
}

func TestFinalize_PostAlreadyGoneEndsQuietly(t *testing.T) {
	h := startService(t)

	h.store.EXPECT().FinalizePost(mock.Anything, 6, mock.Anything).Return(post.ErrPostNotFound).Once()

	h.service.EnqueueImage(imaging.New(2, 2, color.White), 6)

	assert.Eventually(t, func() bool { return len(h.service.Jobs()) == 0 }, 5*time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool { return len(h.events) > 0 }, 200*time.Millisecond, 20*time.Millisecond)
	h.store.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
}

func TestJobs_ObservableWhileEncodingAndIndependent(t *testing.T) {
	h := startService(t)

	release := make(chan struct{})
	h.transcoder.EXPECT().TranscodeWebm(mock.Anything, []byte("slow"), mock.Anything).
		RunAndReturn(func(context.Context, []byte, io.Writer) error {
			<-release
			return errExpected
		}).Once()
	h.store.EXPECT().DeletePost(mock.Anything, 1).Return(true, nil).Once()
	h.store.EXPECT().FinalizePost(mock.Anything, 2, mock.Anything).Return(nil).Once()

	slowID := h.service.EnqueueVideo([]byte("slow"), 1)
	h.service.EnqueueImage(imaging.New(2, 2, color.Black), 2)

	// The image job completes while the video job is still encoding
	assert.Equal(t, event.HandlerEvent{Event: event.POST_PROCESSED, Payload: 2}, h.awaitEvent(t))

	job := h.service.Job(slowID)
	require.NotNil(t, job)
	assert.Equal(t, conversion.Encoding, job.State())
	assert.Equal(t, 1, job.PostID())
	assert.Equal(t, post.Video, job.Type())

	close(release)
	assert.Equal(t, event.HandlerEvent{Event: event.POST_REMOVED, Payload: 1}, h.awaitEvent(t))
	assert.Eventually(t, func() bool { return h.service.Job(slowID) == nil }, time.Second, 10*time.Millisecond)
}

func TestRun_ShutdownCancelsAndWaitsForJobs(t *testing.T) {
	h := startService(t)

	started := make(chan struct{})
	h.transcoder.EXPECT().TranscodeWebm(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []byte, _ io.Writer) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}).Once()
	h.store.EXPECT().DeletePost(mock.Anything, 8).Return(true, nil).Once()

	h.service.EnqueueVideo([]byte("forever"), 8)
	<-started

	h.shutdown()
	assert.Empty(t, h.service.Jobs(), "shutdown must wait for live jobs to conclude")
	assert.Equal(t, event.HandlerEvent{Event: event.POST_REMOVED, Payload: 8}, h.awaitEvent(t))
}

func TestEnqueue_AfterShutdownRemovesPost(t *testing.T) {
	h := startService(t)
	h.shutdown()

	h.store.EXPECT().DeletePost(mock.Anything, 12).Return(true, nil).Once()

	id := h.service.EnqueueImage(imaging.New(2, 2, color.White), 12)

	assert.Equal(t, event.HandlerEvent{Event: event.POST_REMOVED, Payload: 12}, h.awaitEvent(t))
	assert.Nil(t, h.service.Job(id))
	assert.Empty(t, h.service.Jobs())
	h.store.AssertNotCalled(t, "FinalizePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CREATED", conversion.Created.String())
	assert.Equal(t, "ENCODING", conversion.Encoding.String())
	assert.Equal(t, "PROCESSED", conversion.Processed.String())
	assert.Equal(t, "REMOVED", conversion.Removed.String())
}
