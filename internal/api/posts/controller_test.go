package posts_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Booru/internal/api/apierror"
	"github.com/hbomb79/Booru/internal/api/identity"
	identityMocks "github.com/hbomb79/Booru/internal/api/identity/mocks"
	"github.com/hbomb79/Booru/internal/api/posts"
	"github.com/hbomb79/Booru/internal/api/posts/mocks"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/upload"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const uploaderHash = "ab12"

type harness struct {
	ec         *echo.Echo
	dispatcher *mocks.MockDispatcher
	lister     *mocks.MockLister
	tagger     *mocks.MockTagger
	store      *mocks.MockStore
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		ec:         echo.New(),
		dispatcher: mocks.NewMockDispatcher(t),
		lister:     mocks.NewMockLister(t),
		tagger:     mocks.NewMockTagger(t),
		store:      mocks.NewMockStore(t),
	}

	identityStore := identityMocks.NewMockStore(t)
	identityStore.EXPECT().GetOrCreateUser(mock.Anything, uploaderHash).Return(&user.User{ID: 7}, nil).Maybe()
	identityStore.EXPECT().GetOrCreateUser(mock.Anything, mock.Anything).Return(&user.User{ID: 99}, nil).Maybe()

	validate := validator.New()
	provider := identity.New(identityStore, validate, true)

	h.ec.HTTPErrorHandler = apierror.GetHTTPErrorHandler(h.ec.DefaultHTTPErrorHandler)
	h.ec.Use(provider.Middleware())
	posts.New(validate, provider.RequireUser(), h.dispatcher, h.lister, h.tagger, h.store).SetRoutes(h.ec.Group("/posts"))

	return h
}

func (h *harness) do(method string, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ec.ServeHTTP(rec, req)
	return rec
}

func asUploader(extra map[string]string) map[string]string {
	headers := map[string]string{identity.HeaderCertificateHash: uploaderHash}
	for k, v := range extra {
		headers[k] = v
	}

	return headers
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestUpload_RequiresIdentity(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodPost, "/posts/", []byte("data"), map[string]string{echo.HeaderContentType: "image/png"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	h.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_ReturnsReceipt(t *testing.T) {
	h := newHarness(t)
	h.dispatcher.EXPECT().MaxUploadBytes().Return(1024)
	h.dispatcher.EXPECT().Dispatch(mock.Anything, []byte("data"), "image/png", 7).
		Return(&upload.Receipt{PostID: 3, Type: post.Image, Width: 10, Height: 20, Processing: true}, nil)

	rec := h.do(http.MethodPost, "/posts/", []byte("data"), asUploader(map[string]string{echo.HeaderContentType: "image/png"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 3, body["post_id"])
	assert.Equal(t, "image", body["type"])
	assert.EqualValues(t, 10, body["width"])
	assert.EqualValues(t, 20, body["height"])
	assert.Equal(t, true, body["processing"])
}

func TestUpload_ReadsOneByteBeyondLimit(t *testing.T) {
	h := newHarness(t)
	h.dispatcher.EXPECT().MaxUploadBytes().Return(4)
	h.dispatcher.EXPECT().Dispatch(mock.Anything, []byte("01234"), "video/webm", 7).
		Return(nil, &upload.ValidationError{Reason: upload.ReasonPayloadTooLarge, Message: "too large"})

	rec := h.do(http.MethodPost, "/posts/", []byte("0123456789"), asUploader(map[string]string{echo.HeaderContentType: "video/webm"}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PayloadTooLarge", decode(t, rec)["reason"])
}

func TestUpload_MapsValidationReasons(t *testing.T) {
	tests := []struct {
		reason upload.Reason
		status int
	}{
		{upload.ReasonUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{upload.ReasonInvalidContent, http.StatusUnprocessableEntity},
	}

	for _, test := range tests {
		t.Run(string(test.reason), func(t *testing.T) {
			h := newHarness(t)
			h.dispatcher.EXPECT().MaxUploadBytes().Return(1024)
			h.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything, 7).
				Return(nil, &upload.ValidationError{Reason: test.reason, Message: "rejected"})

			rec := h.do(http.MethodPost, "/posts/", []byte("data"), asUploader(nil))
			assert.Equal(t, test.status, rec.Code)
			assert.Equal(t, string(test.reason), decode(t, rec)["reason"])
		})
	}
}

func TestUpload_StoreFailureIsInternal(t *testing.T) {
	h := newHarness(t)
	h.dispatcher.EXPECT().MaxUploadBytes().Return(1024)
	h.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything, 7).Return(nil, fmt.Errorf("db down"))

	rec := h.do(http.MethodPost, "/posts/", []byte("data"), asUploader(nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestList_TranslatesPageAndFilter(t *testing.T) {
	h := newHarness(t)
	h.lister.EXPECT().List(mock.Anything, listing.Query{Skip: 20, Take: 20, Filter: listing.TagFilter("Cat Ear")}).
		Return(&listing.Page{Items: []*post.Post{{ID: 5, Processed: true}}, Total: 21, Index: 20, Count: 1, NextIndex: 21}, nil)

	rec := h.do(http.MethodGet, "/posts/?page=1&filter=by_tag&query=Cat+Ear", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 21, body["total"])
	assert.EqualValues(t, 21, body["next_index"])
	items := body["posts"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "/media/5.png", items[0].(map[string]any)["media_path"])
}

func TestList_RejectsBadRequests(t *testing.T) {
	tests := []struct {
		target string
		status int
	}{
		{"/posts/?filter=by_rating&query=safe", http.StatusNotFound},
		{"/posts/?page=-1", http.StatusBadRequest},
		{"/posts/?page=abc", http.StatusBadRequest},
		{"/posts/?filter=by_user&query=bob", http.StatusBadRequest},
		{"/posts/?filter=by_tag", http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.target, func(t *testing.T) {
			h := newHarness(t)
			rec := h.do(http.MethodGet, test.target, nil, nil)
			assert.Equal(t, test.status, rec.Code)
		})
	}
}

func TestGet_ProcessedPostIncludesTags(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().GetPost(mock.Anything, 5).Return(&post.Post{ID: 5, Type: post.Video, Processed: true, UploadDate: time.Now()}, nil)
	h.tagger.EXPECT().Tags(mock.Anything, 5).Return([]string{"cat_ear", "scenery"}, nil)

	rec := h.do(http.MethodGet, "/posts/5/", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "/media/5.webm", body["media_path"])
	assert.Equal(t, []any{"cat_ear", "scenery"}, body["tags"])
}

func TestGet_UnprocessedPostOnlyVisibleToUploader(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().GetPost(mock.Anything, 5).Return(&post.Post{ID: 5, UploaderID: 7, Processed: false}, nil)

	owner := h.do(http.MethodGet, "/posts/5/", nil, asUploader(nil))
	assert.Equal(t, http.StatusAccepted, owner.Code)
	assert.Equal(t, true, decode(t, owner)["processing"])

	other := h.do(http.MethodGet, "/posts/5/", nil, map[string]string{identity.HeaderCertificateHash: "ffff"})
	assert.Equal(t, http.StatusNotFound, other.Code)

	anonymous := h.do(http.MethodGet, "/posts/5/", nil, nil)
	assert.Equal(t, http.StatusNotFound, anonymous.Code)
}

func TestGet_UnknownPost(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().GetPost(mock.Anything, 5).Return(nil, post.ErrPostNotFound)

	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/posts/5/", nil, nil).Code)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/posts/five/", nil, nil).Code)
}

func TestTag(t *testing.T) {
	jsonHeader := map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON}
	processed := &post.Post{ID: 5, UploaderID: 7, Processed: true}

	t.Run("Added", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().GetPost(mock.Anything, 5).Return(processed, nil)
		h.tagger.EXPECT().Tag(mock.Anything, 5, "Cat Ear").Return(true, nil)
		rec := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":"Cat Ear"}`), jsonHeader)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Rejected", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().GetPost(mock.Anything, 5).Return(processed, nil)
		h.tagger.EXPECT().Tag(mock.Anything, 5, "cat_ear").Return(false, nil)
		rec := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":"cat_ear"}`), jsonHeader)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "TagRejected", decode(t, rec)["reason"])
	})

	t.Run("UnknownPost", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().GetPost(mock.Anything, 5).Return(nil, post.ErrPostNotFound)
		rec := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":"cat"}`), jsonHeader)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("PostRemovedWhileTagging", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().GetPost(mock.Anything, 5).Return(processed, nil)
		h.tagger.EXPECT().Tag(mock.Anything, 5, "cat").Return(false, fmt.Errorf("failed to tag post 5: %w", post.ErrPostNotFound))
		rec := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":"cat"}`), jsonHeader)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UnprocessedPostHiddenFromOthers", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().GetPost(mock.Anything, 5).Return(&post.Post{ID: 5, UploaderID: 7, Processed: false}, nil)

		anonymous := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":"cat"}`), jsonHeader)
		assert.Equal(t, http.StatusNotFound, anonymous.Code)

		other := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":"cat"}`),
			map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON, identity.HeaderCertificateHash: "ffff"})
		assert.Equal(t, http.StatusNotFound, other.Code)

		h.tagger.AssertNotCalled(t, "Tag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnprocessedPostTaggableByUploader", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().GetPost(mock.Anything, 5).Return(&post.Post{ID: 5, UploaderID: 7, Processed: false}, nil)
		h.tagger.EXPECT().Tag(mock.Anything, 5, "cat").Return(true, nil)

		rec := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":"cat"}`), asUploader(jsonHeader))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("EmptyTag", func(t *testing.T) {
		h := newHarness(t)
		rec := h.do(http.MethodPost, "/posts/5/tags/", []byte(`{"tag":""}`), jsonHeader)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
