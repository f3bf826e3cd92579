// Package settings lets the requesting user change their own profile.
package settings

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Booru/internal/api/identity"
	"github.com/labstack/echo/v4"
)

type (
	Store interface {
		UpdateUserName(ctx context.Context, id int, name string) error
		UpdateUserBio(ctx context.Context, id int, bio string) error
	}

	UpdateNameRequest struct {
		Name string `json:"name" validate:"required,max=64"`
	}

	UpdateBioRequest struct {
		Bio string `json:"bio" validate:"required,max=4096"`
	}

	Controller struct {
		validate    *validator.Validate
		store       Store
		requireUser echo.MiddlewareFunc
	}
)

func New(validate *validator.Validate, requireUser echo.MiddlewareFunc, store Store) *Controller {
	return &Controller{validate, store, requireUser}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.Use(controller.requireUser)
	eg.PUT("/name/", controller.updateName)
	eg.PUT("/bio/", controller.updateBio)
}

func (controller *Controller) updateName(ec echo.Context) error {
	var request UpdateNameRequest
	if err := controller.bind(ec, &request); err != nil {
		return err
	}

	u, _ := identity.UserFromContext(ec)
	if err := controller.store.UpdateUserName(ec.Request().Context(), u.ID, request.Name); err != nil {
		return err
	}

	return ec.NoContent(http.StatusOK)
}

func (controller *Controller) updateBio(ec echo.Context) error {
	var request UpdateBioRequest
	if err := controller.bind(ec, &request); err != nil {
		return err
	}

	u, _ := identity.UserFromContext(ec)
	if err := controller.store.UpdateUserBio(ec.Request().Context(), u.ID, request.Bio); err != nil {
		return err
	}

	return ec.NoContent(http.StatusOK)
}

func (controller *Controller) bind(ec echo.Context, request any) error {
	if err := ec.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("JSON body invalid: %s", err))
	}
	if err := controller.validate.Struct(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Request invalid: %s", err))
	}

	return nil
}
