// Package upload classifies inbound media, validates it eagerly and creates the
// provisional post before handing the slow conversion work to the background.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/hbomb79/Booru/internal/event"
	"github.com/hbomb79/Booru/internal/ffmpeg"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/pkg/logger"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const DefaultMaxUploadBytes = 50 * 1024 * 1024

var log = logger.Get("Upload")

var (
	imageTypes = map[string]bool{
		"image/png":  true,
		"image/apng": true,
		"image/jpeg": true,
		"image/gif":  true,
		"image/bmp":  true,
		"image/webp": true,
	}

	videoTypes = map[string]bool{
		"video/webm":  true,
		"video/mp4":   true,
		"video/mpeg":  true,
		"video/x-flv": true,
	}

	// Names the sniffer reports which differ from the declared names we accept
	sniffedAliases = map[string]string{
		"image/vnd.mozilla.apng": "image/apng",
		"image/x-ms-bmp":         "image/bmp",
	}
)

type (
	Config struct {
		MaxUploadBytes int64 `yaml:"max_bytes" env:"UPLOAD_MAX_BYTES" env-default:"52428800"`
	}

	DataStore interface {
		CreatePost(ctx context.Context, newPost post.NewPost) (*post.Post, error)
	}

	Converter interface {
		EnqueueImage(img image.Image, postID int) uuid.UUID
		EnqueueVideo(payload []byte, postID int) uuid.UUID
	}

	VideoProber interface {
		ProbeVideo(payload []byte) (*ffmpeg.VideoInfo, error)
	}

	// Receipt is returned to the uploader once the provisional post exists. The
	// post will not be visible to others until its conversion completes.
	Receipt struct {
		PostID     int
		Type       post.Type
		Width      int
		Height     int
		Processing bool
	}

	Dispatcher struct {
		config    Config
		store     DataStore
		converter Converter
		prober    VideoProber
		eventBus  event.EventDispatcher
	}
)

func New(config Config, store DataStore, converter Converter, prober VideoProber, eventBus event.EventDispatcher) *Dispatcher {
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = DefaultMaxUploadBytes
	}

	return &Dispatcher{config, store, converter, prober, eventBus}
}

// MaxUploadBytes is the largest payload accepted by Dispatch.
func (dispatcher *Dispatcher) MaxUploadBytes() int64 {
	return dispatcher.config.MaxUploadBytes
}

// Dispatch validates the payload and creates an unprocessed post for it,
// launching the conversion in the background. The call does not wait for
// the conversion. Rejected uploads return a *ValidationError and never
// create a post.
func (dispatcher *Dispatcher) Dispatch(ctx context.Context, body []byte, declaredMimeType string, uploaderID int) (*Receipt, error) {
	if int64(len(body)) > dispatcher.config.MaxUploadBytes {
		return nil, payloadTooLarge(fmt.Sprintf("upload of %s exceeds limit of %s",
			humanize.IBytes(uint64(len(body))), humanize.IBytes(uint64(dispatcher.config.MaxUploadBytes))))
	}

	mimeType := resolveMimeType(declaredMimeType, body)
	switch {
	case imageTypes[mimeType]:
		return dispatcher.dispatchImage(ctx, body, uploaderID)
	case videoTypes[mimeType]:
		return dispatcher.dispatchVideo(ctx, body, uploaderID)
	default:
		return nil, unsupportedMediaType(fmt.Sprintf("media type %q is not supported", mimeType))
	}
}

func (dispatcher *Dispatcher) dispatchImage(ctx context.Context, body []byte, uploaderID int) (*Receipt, error) {
	img, err := imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
	if err != nil {
		return nil, invalidContent("image could not be decoded", err)
	}

	bounds := img.Bounds()
	created, err := dispatcher.store.CreatePost(ctx, post.NewPost{
		UploaderID: uploaderID,
		Type:       post.Image,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	dispatcher.converter.EnqueueImage(img, created.ID)
	return dispatcher.accepted(created), nil
}

func (dispatcher *Dispatcher) dispatchVideo(ctx context.Context, body []byte, uploaderID int) (*Receipt, error) {
	info, err := dispatcher.prober.ProbeVideo(body)
	if err != nil {
		return nil, invalidContent("video could not be probed", err)
	}

	created, err := dispatcher.store.CreatePost(ctx, post.NewPost{
		UploaderID: uploaderID,
		Type:       post.Video,
		Width:      info.Width,
		Height:     info.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	dispatcher.converter.EnqueueVideo(body, created.ID)
	return dispatcher.accepted(created), nil
}

func (dispatcher *Dispatcher) accepted(created *post.Post) *Receipt {
	log.Emit(logger.NEW, "Accepted upload %s (%dx%d) from user %d\n", created, created.Width, created.Height, created.UploaderID)
	dispatcher.eventBus.Dispatch(event.POST_CREATED, created.ID)

	return &Receipt{
		PostID:     created.ID,
		Type:       created.Type,
		Width:      created.Width,
		Height:     created.Height,
		Processing: true,
	}
}

// resolveMimeType strips any parameters from the declared type and lower-cases
// it. Payloads declared as generic binary (or not declared at all) are sniffed.
func resolveMimeType(declared string, body []byte) string {
	mimeType := parseMimeType(declared)
	if mimeType != "" && mimeType != "application/octet-stream" {
		return mimeType
	}

	sniffed := parseMimeType(mimetype.Detect(body).String())
	if alias, ok := sniffedAliases[sniffed]; ok {
		sniffed = alias
	}

	log.Emit(logger.DEBUG, "Sniffed media type %q for upload declared as %q\n", sniffed, declared)
	return sniffed
}

func parseMimeType(raw string) string {
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		// Fall back to a manual strip of the parameters
		mediaType, _, _ = strings.Cut(raw, ";")
	}

	return strings.ToLower(strings.TrimSpace(mediaType))
}
