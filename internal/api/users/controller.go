package users

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hbomb79/Booru/internal/api/posts"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/labstack/echo/v4"
)

type (
	Store interface {
		GetUser(ctx context.Context, id int) (*user.User, error)
		CountPostsByUser(ctx context.Context, userID int) (int, error)
	}

	Lister interface {
		List(ctx context.Context, query listing.Query) (*listing.Page, error)
	}

	UserDto struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Bio       string `json:"bio"`
		PostCount int    `json:"post_count"`
	}

	controller struct {
		store  Store
		lister Lister
	}
)

func NewController(store Store, lister Lister) *controller { return &controller{store, lister} }

func (controller *controller) SetRoutes(eg *echo.Group) {
	eg.GET("/:id/", controller.get)
	eg.GET("/:id/posts/", controller.listPosts)
}

func (controller *controller) get(ec echo.Context) error {
	id, err := strconv.Atoi(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID is not a valid integer")
	}

	u, err := controller.store.GetUser(ec.Request().Context(), id)
	if err != nil {
		return err
	}

	count, err := controller.store.CountPostsByUser(ec.Request().Context(), u.ID)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, UserDto{ID: u.ID, Name: u.Name, Bio: u.Bio, PostCount: count})
}

// listPosts returns a page of the processed posts uploaded by the user.
func (controller *controller) listPosts(ec echo.Context) error {
	id, err := strconv.Atoi(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID is not a valid integer")
	}

	page := uint64(0)
	if raw := ec.QueryParam("page"); raw != "" {
		if page, err = strconv.ParseUint(raw, 10, 32); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Page is not a valid page number")
		}
	}

	// Resolve the user first so an unknown user is a 404 rather than an empty page
	if _, err := controller.store.GetUser(ec.Request().Context(), id); err != nil {
		return err
	}

	results, err := controller.lister.List(ec.Request().Context(), listing.Query{
		Skip:   page * listing.DefaultPageSize,
		Take:   listing.DefaultPageSize,
		Filter: listing.UserFilter(id),
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, posts.NewPageDto(results))
}
