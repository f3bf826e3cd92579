package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hbomb79/Booru/internal/api"
	identityMocks "github.com/hbomb79/Booru/internal/api/identity/mocks"
	mediaMocks "github.com/hbomb79/Booru/internal/api/media/mocks"
	postMocks "github.com/hbomb79/Booru/internal/api/posts/mocks"
	settingsMocks "github.com/hbomb79/Booru/internal/api/settings/mocks"
	userMocks "github.com/hbomb79/Booru/internal/api/users/mocks"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type (
	identityStore struct{ *identityMocks.MockStore }
	postStore     struct{ *postMocks.MockStore }
	userStore     struct{ *userMocks.MockStore }
	settingsStore struct{ *settingsMocks.MockStore }

	// compositeStore satisfies the gateways store union using one mock per controller
	compositeStore struct {
		identityStore
		postStore
		userStore
		settingsStore
	}
)

type harness struct {
	gateway *api.RestGateway
	server  *httptest.Server
	content *mediaMocks.MockContentStore
	lister  *postMocks.MockLister
}

func newHarness(t *testing.T) *harness {
	content := mediaMocks.NewMockContentStore(t)
	lister := postMocks.NewMockLister(t)
	store := compositeStore{
		identityStore{identityMocks.NewMockStore(t)},
		postStore{postMocks.NewMockStore(t)},
		userStore{userMocks.NewMockStore(t)},
		settingsStore{settingsMocks.NewMockStore(t)},
	}

	gateway := api.NewRestGateway(
		&api.RestConfig{TrustIdentityHeader: true},
		postMocks.NewMockDispatcher(t),
		lister,
		postMocks.NewMockTagger(t),
		content,
		store,
	)

	server := httptest.NewServer(gateway.Handler())
	t.Cleanup(server.Close)

	return &harness{gateway, server, content, lister}
}

func TestGateway_RoutesUnderPrefix(t *testing.T) {
	h := newHarness(t)
	h.lister.EXPECT().List(mock.Anything, mock.Anything).Return(&listing.Page{Items: []*post.Post{}}, nil)

	// Trailing slash is added by the router
	resp, err := http.Get(h.server.URL + "/api/booru/v1/posts")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateway_MediaPathIsNotRewritten(t *testing.T) {
	h := newHarness(t)
	h.content.EXPECT().Exists(mock.Anything, "9.webm").Return(true, nil)
	h.content.EXPECT().OpenRead(mock.Anything, "9.webm").Return(io.NopCloser(strings.NewReader("webm")), nil)

	resp, err := http.Get(h.server.URL + "/api/booru/v1/media/9.webm")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "video/webm", resp.Header.Get("Content-Type"))
}

func TestGateway_BroadcastsPostEvents(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.gateway.Socket().Start(ctx)

	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + "/api/booru/v1/activity/ws/"
	var conn *websocket.Conn
	require.Eventually(t, func() bool {
		c, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			return false
		}

		conn = c
		return true
	}, time.Second, 10*time.Millisecond)
	defer conn.Close()

	var welcome map[string]any
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, "CONNECTION_ESTABLISHED", welcome["title"])

	require.NoError(t, h.gateway.BroadcastPostProcessed(12))

	var update map[string]any
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, api.TITLE_POST_PROCESSED, update["title"])
	assert.EqualValues(t, 12, update["arguments"].(map[string]any)["post_id"])
}
