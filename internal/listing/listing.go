// Package listing provides paginated, filterable read access to posts. Only
// processed posts are ever returned.
package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/tag"
)

const DefaultPageSize = 20

var ErrUnknownFilter = errors.New("unknown filter")

type (
	FilterKind int

	// Filter narrows a listing. The zero value matches every processed post.
	Filter struct {
		Kind   FilterKind
		Tag    string
		UserID int
	}

	Query struct {
		Skip   uint64
		Take   uint64
		Filter Filter
	}

	Page struct {
		Items     []*post.Post
		Total     int
		Index     uint64
		Count     int
		NextIndex uint64
	}

	DataStore interface {
		ListPosts(ctx context.Context, predicate squirrel.Sqlizer, offset uint64, limit uint64) ([]*post.Post, error)
		CountPosts(ctx context.Context, predicate squirrel.Sqlizer) (int, error)
	}

	Engine struct {
		store DataStore
	}
)

const (
	None FilterKind = iota
	ByTag
	ByUser
)

func (kind FilterKind) String() string {
	switch kind {
	case None:
		return "none"
	case ByTag:
		return "by_tag"
	case ByUser:
		return "by_user"
	default:
		return fmt.Sprintf("unknown(%d)", int(kind))
	}
}

// ParseFilterKind converts the name of a filter (as supplied by clients)
// to the FilterKind. Unknown names return ErrUnknownFilter.
func ParseFilterKind(name string) (FilterKind, error) {
	switch name {
	case "", "none":
		return None, nil
	case "by_tag":
		return ByTag, nil
	case "by_user":
		return ByUser, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

func TagFilter(rawTag string) Filter { return Filter{Kind: ByTag, Tag: rawTag} }
func UserFilter(userID int) Filter   { return Filter{Kind: ByUser, UserID: userID} }

func New(store DataStore) *Engine {
	return &Engine{store: store}
}

// List returns the page of processed posts matching the query, newest first.
// Total is the number of posts matching the filter, ignoring the window.
func (engine *Engine) List(ctx context.Context, query Query) (*Page, error) {
	predicate, err := query.Filter.predicate()
	if err != nil {
		return nil, err
	}

	take := query.Take
	if take == 0 {
		take = DefaultPageSize
	}

	items, err := engine.store.ListPosts(ctx, predicate, query.Skip, take)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	total, err := engine.store.CountPosts(ctx, predicate)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	return &Page{
		Items:     items,
		Total:     total,
		Index:     query.Skip,
		Count:     len(items),
		NextIndex: query.Skip + uint64(len(items)),
	}, nil
}

func (filter Filter) predicate() (squirrel.Sqlizer, error) {
	switch filter.Kind {
	case None:
		return nil, nil
	case ByTag:
		return post.TaggedWith(tag.Normalize(filter.Tag)), nil
	case ByUser:
		return post.UploadedBy(filter.UserID), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, filter.Kind)
	}
}
