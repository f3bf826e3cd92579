// Package apierror converts errors returned by controllers into JSON responses.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hbomb79/Booru/internal/content"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/upload"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/labstack/echo/v4"
)

type APIError struct {
	// Human readable error display message
	Message string `json:"message"`

	// A machine readable and stable identifier for the error case being represented
	Reason string `json:"reason"`

	// Used to alter the HTTP response status in accordance with the error
	Status int `json:"-"`

	// Additional message for internal logging only. Will not be included in the message
	// sent to the user.
	InternalMessage string `json:"-"`
}

// Error satisifies the Go error interface and simply exposes the
// message contained by this APIError.
func (err APIError) Error() string {
	return fmt.Sprintf("api error: %s", err.Message)
}

var (
	ErrUnauthorized = APIError{Status: http.StatusUnauthorized, Reason: "Unauthorized", Message: "A client certificate is required"}
	ErrTagRejected  = APIError{Status: http.StatusBadRequest, Reason: "TagRejected", Message: "Tag is empty, too long, or already present on the post"}
)

var uploadStatuses = map[upload.Reason]int{
	upload.ReasonPayloadTooLarge:      http.StatusRequestEntityTooLarge,
	upload.ReasonUnsupportedMediaType: http.StatusUnsupportedMediaType,
	upload.ReasonInvalidContent:       http.StatusUnprocessableEntity,
}

// FromDomainError maps the errors exposed by the domain packages to an APIError. False
// is returned if the error is not one which the API knows how to present.
func FromDomainError(err error) (APIError, bool) {
	var validationErr *upload.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return APIError{Status: uploadStatuses[validationErr.Reason], Reason: string(validationErr.Reason), Message: validationErr.Message}, true
	case errors.Is(err, post.ErrPostNotFound):
		return APIError{Status: http.StatusNotFound, Reason: "PostNotFound", Message: "Post does not exist"}, true
	case errors.Is(err, user.ErrUserNotFound):
		return APIError{Status: http.StatusNotFound, Reason: "UserNotFound", Message: "User does not exist"}, true
	case errors.Is(err, content.ErrBlobNotFound):
		return APIError{Status: http.StatusNotFound, Reason: "NotFound", Message: "Media does not exist"}, true
	case errors.Is(err, content.ErrUnsupportedMediaExtension):
		return APIError{Status: http.StatusBadRequest, Reason: "UnsupportedMediaExtension", Message: err.Error()}, true
	case errors.Is(err, listing.ErrUnknownFilter):
		return APIError{Status: http.StatusNotFound, Reason: "UnknownFilter", Message: err.Error()}, true
	case errors.Is(err, user.ErrInvalidName), errors.Is(err, user.ErrInvalidBio):
		return APIError{Status: http.StatusBadRequest, Reason: "InvalidUserSetting", Message: err.Error()}, true
	}

	return APIError{}, false
}

// GetHTTPErrorHandler returns an echo HTTP error handler
// which understands how to interpret APIError, and the domain
// errors known to FromDomainError. If an error is
// provided which is not recognized, it will be passed off to the
// fallback HTTP handler provided.
func GetHTTPErrorHandler(fallbackHandler echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	logger := logger.Get("API")
	return func(err error, ctx echo.Context) {
		var apiErr APIError
		ok := errors.As(err, &apiErr)
		if !ok {
			apiErr, ok = FromDomainError(err)
		}

		if ok {
			if apiErr.Status == 0 {
				apiErr.Status = 500
			}
			if len(apiErr.Message) == 0 {
				apiErr.Message = http.StatusText(apiErr.Status)
			}
			if len(apiErr.Reason) == 0 {
				apiErr.Reason = http.StatusText(apiErr.Status)
			}
			if len(apiErr.InternalMessage) > 0 {
				logger.Errorf("Request failure, internal error: %s\n", apiErr.InternalMessage)
			}

			if err := ctx.JSON(apiErr.Status, apiErr); err == nil {
				return
			}
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			logger.Errorf("%s request to %s failed: %v\n", ctx.Request().Method, ctx.Request().RequestURI, err)
		}

		fallbackHandler(err, ctx)
	}
}
