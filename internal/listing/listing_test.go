package listing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/hbomb79/Booru/internal/listing"
	mocks "github.com/hbomb79/Booru/internal/listing/mocks"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makePosts(n int) []*post.Post {
	posts := make([]*post.Post, n)
	for i := range posts {
		posts[i] = &post.Post{ID: i + 1, Processed: true}
	}

	return posts
}

func TestParseFilterKind(t *testing.T) {
	kind, err := listing.ParseFilterKind("by_tag")
	assert.NoError(t, err)
	assert.Equal(t, listing.ByTag, kind)

	kind, err = listing.ParseFilterKind("by_user")
	assert.NoError(t, err)
	assert.Equal(t, listing.ByUser, kind)

	kind, err = listing.ParseFilterKind("")
	assert.NoError(t, err)
	assert.Equal(t, listing.None, kind)

	_, err = listing.ParseFilterKind("by_colour")
	assert.ErrorIs(t, err, listing.ErrUnknownFilter)
}

func TestList_PageMetadata(t *testing.T) {
	store := mocks.NewMockDataStore(t)
	store.EXPECT().ListPosts(mock.Anything, nil, uint64(20), uint64(20)).Return(makePosts(5), nil).Once()
	store.EXPECT().CountPosts(mock.Anything, nil).Return(25, nil).Once()

	page, err := listing.New(store).List(context.Background(), listing.Query{Skip: 20})
	require.NoError(t, err)

	assert.Equal(t, 25, page.Total)
	assert.EqualValues(t, 20, page.Index)
	assert.Equal(t, 5, page.Count)
	assert.EqualValues(t, 25, page.NextIndex)
	assert.Len(t, page.Items, 5)
}

func TestList_TagFilterIsNormalized(t *testing.T) {
	store := mocks.NewMockDataStore(t)
	matchesTag := mock.MatchedBy(func(predicate squirrel.Sqlizer) bool {
		_, args, err := predicate.ToSql()
		return err == nil && len(args) == 1 && args[0] == "cat_ear"
	})
	store.EXPECT().ListPosts(mock.Anything, matchesTag, uint64(0), uint64(10)).Return(makePosts(1), nil).Once()
	store.EXPECT().CountPosts(mock.Anything, matchesTag).Return(1, nil).Once()

	page, err := listing.New(store).List(context.Background(), listing.Query{Take: 10, Filter: listing.TagFilter("Cat Ear")})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestList_UserFilter(t *testing.T) {
	store := mocks.NewMockDataStore(t)
	store.EXPECT().ListPosts(mock.Anything, squirrel.Eq{"posts.uploader_id": 3}, uint64(0), uint64(20)).Return(makePosts(2), nil).Once()
	store.EXPECT().CountPosts(mock.Anything, squirrel.Eq{"posts.uploader_id": 3}).Return(2, nil).Once()

	page, err := listing.New(store).List(context.Background(), listing.Query{Filter: listing.UserFilter(3)})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
}

func TestList_UnknownFilterKind(t *testing.T) {
	store := mocks.NewMockDataStore(t)

	_, err := listing.New(store).List(context.Background(), listing.Query{Filter: listing.Filter{Kind: listing.FilterKind(42)}})
	assert.ErrorIs(t, err, listing.ErrUnknownFilter)
}

func TestList_StoreError(t *testing.T) {
	store := mocks.NewMockDataStore(t)
	store.EXPECT().ListPosts(mock.Anything, nil, uint64(0), uint64(20)).Return(nil, errors.New("boom")).Once()

	_, err := listing.New(store).List(context.Background(), listing.Query{})
	assert.Error(t, err)
}
