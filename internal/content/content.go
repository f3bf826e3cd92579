// Package content is the key-addressed blob store for post media. Keys are
// flat ("{postID}.{ext}") and the extension determines the media type.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/pkg/logger"
)

var (
	ErrBlobNotFound              = errors.New("blob does not exist")
	ErrUnsupportedMediaExtension = errors.New("unsupported media extension")
	ErrUnsupportedContentBackend = errors.New("unsupported content backend")

	log = logger.Get("Content")
)

type (
	// Store is the contract every blob backend satisfies. Writers must be
	// closed for the blob to be committed; readers must be closed by the caller.
	Store interface {
		Exists(ctx context.Context, key string) (bool, error)
		OpenWrite(ctx context.Context, key string) (io.WriteCloser, error)
		OpenRead(ctx context.Context, key string) (io.ReadCloser, error)
	}

	Config struct {
		Backend  string      `yaml:"backend" env:"CONTENT_BACKEND" env-default:"filesystem"`
		RootPath string      `yaml:"root_path" env:"CONTENT_ROOT_PATH" env-default:"~/.booru/content"`
		Minio    MinioConfig `yaml:"minio"`
	}
)

const (
	BackendFilesystem = "filesystem"
	BackendMinio      = "minio"
)

var extensions = map[post.Type]string{
	post.Image: "png",
	post.Video: "webm",
	post.Audio: "ogg",
}

// New constructs the backend selected by the configuration.
func New(ctx context.Context, config Config) (Store, error) {
	switch config.Backend {
	case BackendFilesystem, "":
		return NewFilesystemStore(config.RootPath)
	case BackendMinio:
		return NewMinioStore(ctx, config.Minio)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentBackend, config.Backend)
	}
}

// Key returns the blob key for the converted media of a post.
func Key(postID int, mediaType post.Type) string {
	return fmt.Sprintf("%d.%s", postID, Extension(mediaType))
}

func Extension(mediaType post.Type) string {
	return extensions[mediaType]
}

// ParseKey splits a key in to the post ID and the media type implied by its
// extension. Extensions other than png, webm and ogg are rejected with
// ErrUnsupportedMediaExtension. A name which is not a positive post ID can
// never have a blob, so it is reported as ErrBlobNotFound.
func ParseKey(key string) (int, post.Type, error) {
	sep := strings.LastIndexByte(key, '.')
	if sep == -1 {
		return 0, 0, fmt.Errorf("%w: key %q has no extension", ErrUnsupportedMediaExtension, key)
	}
	name, ext := key[:sep], key[sep+1:]

	var mediaType post.Type
	switch strings.ToLower(ext) {
	case "png":
		mediaType = post.Image
	case "webm":
		mediaType = post.Video
	case "ogg":
		mediaType = post.Audio
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnsupportedMediaExtension, ext)
	}

	postID, err := strconv.Atoi(name)
	if err != nil || postID <= 0 {
		return 0, 0, fmt.Errorf("%w: key %q does not reference a valid post ID", ErrBlobNotFound, key)
	}

	return postID, mediaType, nil
}

// ContentType returns the MIME type media of the given type is served with.
func ContentType(mediaType post.Type) string {
	switch mediaType {
	case post.Image:
		return "image/png"
	case post.Video:
		return "video/webm"
	case post.Audio:
		return "audio/ogg"
	default:
		return "application/octet-stream"
	}
}
