// Package media serves the converted blob for a post from the content store.
package media

import (
	"context"
	"io"
	"net/http"

	"github.com/hbomb79/Booru/internal/content"
	"github.com/labstack/echo/v4"
)

type (
	// ContentStore is the read half of content.Store.
	ContentStore interface {
		Exists(ctx context.Context, key string) (bool, error)
		OpenRead(ctx context.Context, key string) (io.ReadCloser, error)
	}

	Controller struct {
		store ContentStore
	}
)

func New(store ContentStore) *Controller {
	return &Controller{store: store}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.GET("/:path", controller.get)
}

// get streams the blob for the key provided ({postID}.{ext}). The post table
// is not consulted: only finalized posts have a blob, so a missing blob is
// reported as not found regardless of whether the post exists.
func (controller *Controller) get(ec echo.Context) error {
	key := ec.Param("path")
	_, mediaType, err := content.ParseKey(key)
	if err != nil {
		return err
	}

	ctx := ec.Request().Context()
	if exists, err := controller.store.Exists(ctx, key); err != nil {
		return err
	} else if !exists {
		return content.ErrBlobNotFound
	}

	reader, err := controller.store.OpenRead(ctx, key)
	if err != nil {
		return err
	}
	defer reader.Close()

	return ec.Stream(http.StatusOK, content.ContentType(mediaType), reader)
}
