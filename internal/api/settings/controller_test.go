package settings_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Booru/internal/api/apierror"
	"github.com/hbomb79/Booru/internal/api/identity"
	identityMocks "github.com/hbomb79/Booru/internal/api/identity/mocks"
	"github.com/hbomb79/Booru/internal/api/settings"
	"github.com/hbomb79/Booru/internal/api/settings/mocks"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serve(t *testing.T, store *mocks.MockStore, path string, body string, authenticated bool) *httptest.ResponseRecorder {
	identityStore := identityMocks.NewMockStore(t)
	identityStore.EXPECT().GetOrCreateUser(mock.Anything, "cafe").Return(&user.User{ID: 8}, nil).Maybe()

	validate := validator.New()
	provider := identity.New(identityStore, validate, true)

	ec := echo.New()
	ec.HTTPErrorHandler = apierror.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)
	ec.Use(provider.Middleware())
	settings.New(validate, provider.RequireUser(), store).SetRoutes(ec.Group("/user-settings"))

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authenticated {
		req.Header.Set(identity.HeaderCertificateHash, "cafe")
	}

	rec := httptest.NewRecorder()
	ec.ServeHTTP(rec, req)
	return rec
}

func TestUpdateName(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().UpdateUserName(mock.Anything, 8, "Booru Fan").Return(nil)

	rec := serve(t, store, "/user-settings/name/", `{"name":"Booru Fan"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateBio(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().UpdateUserBio(mock.Anything, 8, "Hello").Return(nil)

	rec := serve(t, store, "/user-settings/bio/", `{"bio":"Hello"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_RequiresIdentity(t *testing.T) {
	rec := serve(t, mocks.NewMockStore(t), "/user-settings/name/", `{"name":"Booru Fan"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdate_RejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"EmptyName":   `{"name":""}`,
		"LongName":    `{"name":"` + strings.Repeat("a", 65) + `"}`,
		"MalformedJS": `{"name":`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, mocks.NewMockStore(t), "/user-settings/name/", body, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdate_StoreValidationIsBadRequest(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().UpdateUserName(mock.Anything, 8, "   ").Return(user.ErrInvalidName)

	rec := serve(t, store, "/user-settings/name/", `{"name":"   "}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
