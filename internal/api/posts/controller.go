package posts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Booru/internal/api/apierror"
	"github.com/hbomb79/Booru/internal/api/identity"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/upload"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/labstack/echo/v4"
)

var log = logger.Get("PostsController")

type (
	Dispatcher interface {
		Dispatch(ctx context.Context, body []byte, declaredMimeType string, uploaderID int) (*upload.Receipt, error)
		MaxUploadBytes() int64
	}

	Lister interface {
		List(ctx context.Context, query listing.Query) (*listing.Page, error)
	}

	Tagger interface {
		Tag(ctx context.Context, postID int, rawTag string) (bool, error)
		Tags(ctx context.Context, postID int) ([]string, error)
	}

	Store interface {
		GetPost(ctx context.Context, id int) (*post.Post, error)
	}

	Controller struct {
		validate    *validator.Validate
		dispatcher  Dispatcher
		lister      Lister
		tagger      Tagger
		store       Store
		requireUser echo.MiddlewareFunc
	}
)

func New(validate *validator.Validate, requireUser echo.MiddlewareFunc, dispatcher Dispatcher, lister Lister, tagger Tagger, store Store) *Controller {
	return &Controller{validate, dispatcher, lister, tagger, store, requireUser}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.GET("/", controller.list)
	eg.POST("/", controller.upload, controller.requireUser)
	eg.GET("/:id/", controller.get)
	eg.POST("/:id/tags/", controller.tag)
}

// upload accepts the raw media as the request body, using the Content-Type
// header to decide how it is processed. The post is created immediately, but
// will not be visible to others until the background conversion completes.
func (controller *Controller) upload(ec echo.Context) error {
	uploader, _ := identity.UserFromContext(ec)

	// Read one byte past the limit so oversized payloads are detected by the
	// dispatcher without buffering the remainder.
	limit := controller.dispatcher.MaxUploadBytes()
	body, err := io.ReadAll(io.LimitReader(ec.Request().Body, limit+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Failed to read upload body: %v", err))
	}

	receipt, err := controller.dispatcher.Dispatch(ec.Request().Context(), body, ec.Request().Header.Get(echo.HeaderContentType), uploader.ID)
	if err != nil {
		var validationErr *upload.ValidationError
		if errors.As(err, &validationErr) {
			log.Emit(logger.DEBUG, "Rejected upload from user %d: %v\n", uploader.ID, err)
			return err
		}

		return apierror.APIError{Status: http.StatusInternalServerError, InternalMessage: err.Error()}
	}

	return ec.JSON(http.StatusCreated, newReceiptDto(receipt))
}

// list returns a page of processed posts, newest first. The page is selected
// using the 'page' query param (zero-indexed), and can be narrowed using the
// 'filter' (by_tag|by_user) and 'query' params.
func (controller *Controller) list(ec echo.Context) error {
	page, err := parsePage(ec.QueryParam("page"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filter, err := parseFilter(ec.QueryParam("filter"), ec.QueryParam("query"))
	if err != nil {
		return err
	}

	results, err := controller.lister.List(ec.Request().Context(), listing.Query{
		Skip:   page * listing.DefaultPageSize,
		Take:   listing.DefaultPageSize,
		Filter: filter,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPageDto(results))
}

// get returns the post with its tags. A post which is still being processed is
// only acknowledged to its uploader (with a 202); for everyone else it does
// not exist yet.
func (controller *Controller) get(ec echo.Context) error {
	id, err := strconv.Atoi(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Post ID is not a valid integer")
	}

	model, err := controller.store.GetPost(ec.Request().Context(), id)
	if err != nil {
		return err
	}

	if !model.Processed {
		if isUploader(ec, model) {
			return ec.JSON(http.StatusAccepted, ProcessingDto{PostID: model.ID, Processing: true})
		}

		return post.ErrPostNotFound
	}

	tags, err := controller.tagger.Tags(ec.Request().Context(), model.ID)
	if err != nil {
		return err
	}

	dto := NewPostDto(model)
	dto.Tags = tags
	return ec.JSON(http.StatusOK, dto)
}

func (controller *Controller) tag(ec echo.Context) error {
	id, err := strconv.Atoi(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Post ID is not a valid integer")
	}

	var request TagRequest
	if err := ec.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("JSON body invalid: %s", err))
	}
	if err := controller.validate.Struct(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Tag request invalid: %s", err))
	}

	// Unprocessed posts are hidden from everyone but the uploader
	model, err := controller.store.GetPost(ec.Request().Context(), id)
	if err != nil {
		return err
	} else if !model.Processed && !isUploader(ec, model) {
		return post.ErrPostNotFound
	}

	added, err := controller.tagger.Tag(ec.Request().Context(), id, request.Tag)
	if err != nil {
		return err
	} else if !added {
		return apierror.ErrTagRejected
	}

	return ec.NoContent(http.StatusCreated)
}

func isUploader(ec echo.Context, model *post.Post) bool {
	requester, ok := identity.UserFromContext(ec)
	return ok && requester.ID == model.UploaderID
}

func parsePage(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}

	page, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("page %q is not a valid page number", raw)
	}

	return page, nil
}

func parseFilter(name string, query string) (listing.Filter, error) {
	kind, err := listing.ParseFilterKind(name)
	if err != nil {
		return listing.Filter{}, err
	}

	switch kind {
	case listing.ByTag:
		if query == "" {
			return listing.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "by_tag filter requires a query")
		}

		return listing.TagFilter(query), nil
	case listing.ByUser:
		userID, err := strconv.Atoi(query)
		if err != nil {
			return listing.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "by_user filter requires a numeric user ID query")
		}

		return listing.UserFilter(userID), nil
	default:
		return listing.Filter{}, nil
	}
}
