package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hbomb79/Booru/internal/api/apierror"
	postMocks "github.com/hbomb79/Booru/internal/api/posts/mocks"
	"github.com/hbomb79/Booru/internal/api/users"
	"github.com/hbomb79/Booru/internal/api/users/mocks"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(store *mocks.MockStore, lister *postMocks.MockLister, target string) *httptest.ResponseRecorder {
	ec := echo.New()
	ec.HTTPErrorHandler = apierror.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)
	users.NewController(store, lister).SetRoutes(ec.Group("/users"))

	rec := httptest.NewRecorder()
	ec.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGet_IncludesPostCount(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().GetUser(mock.Anything, 3).Return(&user.User{ID: 3, Name: "Unnamed User 3", Bio: user.DefaultBio, CertificateHash: "secret"}, nil)
	store.EXPECT().CountPostsByUser(mock.Anything, 3).Return(12, nil)

	rec := serve(store, postMocks.NewMockLister(t), "/users/3/")
	require.Equal(t, http.StatusOK, rec.Code)

	var body users.UserDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, users.UserDto{ID: 3, Name: "Unnamed User 3", Bio: user.DefaultBio, PostCount: 12}, body)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestGet_UnknownUser(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().GetUser(mock.Anything, 3).Return(nil, user.ErrUserNotFound)

	assert.Equal(t, http.StatusNotFound, serve(store, postMocks.NewMockLister(t), "/users/3/").Code)
}

func TestListPosts_FiltersByUser(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().GetUser(mock.Anything, 3).Return(&user.User{ID: 3}, nil)
	lister := postMocks.NewMockLister(t)
	lister.EXPECT().List(mock.Anything, listing.Query{Skip: 40, Take: 20, Filter: listing.UserFilter(3)}).
		Return(&listing.Page{Items: []*post.Post{}, Total: 40, Index: 40, NextIndex: 40}, nil)

	rec := serve(store, lister, "/users/3/posts/?page=2")
	assert.Equal(t, http.StatusOK, rec.Code)
}
