package upload_test

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/hbomb79/Booru/internal/event"
	"github.com/hbomb79/Booru/internal/ffmpeg"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/upload"
	mocks "github.com/hbomb79/Booru/internal/upload/mocks"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errExpected = errors.New("test: expected error")

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

type harness struct {
	dispatcher *upload.Dispatcher
	store      *mocks.MockDataStore
	converter  *mocks.MockConverter
	prober     *mocks.MockVideoProber
	events     event.HandlerChannel
}

func newHarness(t *testing.T) *harness {
	bus := event.New()
	events := make(event.HandlerChannel, 10)
	bus.RegisterHandlerChannel(events, event.POST_CREATED)

	h := &harness{
		store:     mocks.NewMockDataStore(t),
		converter: mocks.NewMockConverter(t),
		prober:    mocks.NewMockVideoProber(t),
		events:    events,
	}
	h.dispatcher = upload.New(upload.Config{}, h.store, h.converter, h.prober, bus)

	return h
}

func pngPayload(t *testing.T, width, height int) []byte {
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(width, height, color.NRGBA{G: 255, A: 255}), imaging.PNG))
	return buf.Bytes()
}

func assertRejected(t *testing.T, err error, sentinel error, reason upload.Reason) {
	assert.ErrorIs(t, err, sentinel)

	var validationErr *upload.ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, reason, validationErr.Reason)
	}
}

func TestDispatch_PayloadOverCeilingRejected(t *testing.T) {
	h := newHarness(t)

	body := make([]byte, 51*1024*1024)
	receipt, err := h.dispatcher.Dispatch(context.Background(), body, "image/png", 1)

	assert.Nil(t, receipt)
	assertRejected(t, err, upload.ErrPayloadTooLarge, upload.ReasonPayloadTooLarge)
	h.store.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestDispatch_PayloadAtCeilingPassesSizeCheck(t *testing.T) {
	h := newHarness(t)

	// Exactly 50MiB of zeroes: not rejected for size, but not a valid image either
	body := make([]byte, upload.DefaultMaxUploadBytes)
	_, err := h.dispatcher.Dispatch(context.Background(), body, "image/png", 1)

	assertRejected(t, err, upload.ErrInvalidContent, upload.ReasonInvalidContent)
	assert.NotErrorIs(t, err, upload.ErrPayloadTooLarge)
}

func TestDispatch_UnsupportedMediaType(t *testing.T) {
	h := newHarness(t)

	for _, mimeType := range []string{"text/plain", "application/pdf", "audio/ogg", "image/tiff"} {
		t.Run(mimeType, func(t *testing.T) {
			_, err := h.dispatcher.Dispatch(context.Background(), []byte("hello"), mimeType, 1)
			assertRejected(t, err, upload.ErrUnsupportedMediaType, upload.ReasonUnsupportedMediaType)
		})
	}

	h.store.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestDispatch_CorruptImageCreatesNoPost(t *testing.T) {
	h := newHarness(t)

	_, err := h.dispatcher.Dispatch(context.Background(), []byte("\x89PNG garbage"), "image/png", 1)

	assertRejected(t, err, upload.ErrInvalidContent, upload.ReasonInvalidContent)
	h.store.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	h.converter.AssertNotCalled(t, "EnqueueImage", mock.Anything, mock.Anything)
	assert.Len(t, h.events, 0)
}

func TestDispatch_ImageCreatesProvisionalPost(t *testing.T) {
	h := newHarness(t)

	h.store.EXPECT().CreatePost(mock.Anything, post.NewPost{UploaderID: 7, Type: post.Image, Width: 12, Height: 9}).
		Return(&post.Post{ID: 42, UploaderID: 7, Type: post.Image, Width: 12, Height: 9, Processed: false}, nil).Once()
	h.converter.EXPECT().EnqueueImage(mock.Anything, 42).Return(uuid.New()).Once()

	receipt, err := h.dispatcher.Dispatch(context.Background(), pngPayload(t, 12, 9), "IMAGE/PNG; charset=binary", 7)
	require.NoError(t, err)

	assert.Equal(t, &upload.Receipt{PostID: 42, Type: post.Image, Width: 12, Height: 9, Processing: true}, receipt)
	assert.Equal(t, event.HandlerEvent{Event: event.POST_CREATED, Payload: 42}, <-h.events)
}

func TestDispatch_UndeclaredTypeIsSniffed(t *testing.T) {
	for _, declared := range []string{"", "application/octet-stream"} {
		t.Run(declared, func(t *testing.T) {
			h := newHarness(t)
			h.store.EXPECT().CreatePost(mock.Anything, mock.MatchedBy(func(p post.NewPost) bool { return p.Type == post.Image })).
				Return(&post.Post{ID: 1, Type: post.Image, Width: 4, Height: 4}, nil).Once()
			h.converter.EXPECT().EnqueueImage(mock.Anything, 1).Return(uuid.New()).Once()

			_, err := h.dispatcher.Dispatch(context.Background(), pngPayload(t, 4, 4), declared, 1)
			assert.NoError(t, err)
		})
	}
}

func TestDispatch_VideoProbedAndEnqueued(t *testing.T) {
	h := newHarness(t)
	body := []byte("pretend mp4")

	h.prober.EXPECT().ProbeVideo(body).Return(&ffmpeg.VideoInfo{Width: 1280, Height: 720}, nil).Once()
	h.store.EXPECT().CreatePost(mock.Anything, post.NewPost{UploaderID: 2, Type: post.Video, Width: 1280, Height: 720}).
		Return(&post.Post{ID: 5, UploaderID: 2, Type: post.Video, Width: 1280, Height: 720}, nil).Once()
	h.converter.EXPECT().EnqueueVideo(body, 5).Return(uuid.New()).Once()

	receipt, err := h.dispatcher.Dispatch(context.Background(), body, "video/mp4", 2)
	require.NoError(t, err)
	assert.True(t, receipt.Processing)
	assert.Equal(t, post.Video, receipt.Type)
}

func TestDispatch_UnprobableVideoCreatesNoPost(t *testing.T) {
	h := newHarness(t)

	h.prober.EXPECT().ProbeVideo(mock.Anything).Return(nil, ffmpeg.ErrNoVideoStream).Once()

	_, err := h.dispatcher.Dispatch(context.Background(), []byte("audio only"), "video/webm", 1)
	assertRejected(t, err, upload.ErrInvalidContent, upload.ReasonInvalidContent)
	assert.ErrorIs(t, err, ffmpeg.ErrNoVideoStream)
	h.store.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestDispatch_StoreFailureIsNotValidationError(t *testing.T) {
	h := newHarness(t)

	h.store.EXPECT().CreatePost(mock.Anything, mock.Anything).Return(nil, errExpected).Once()

	_, err := h.dispatcher.Dispatch(context.Background(), pngPayload(t, 2, 2), "image/png", 1)
	assert.ErrorIs(t, err, errExpected)

	var validationErr *upload.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
