// Package tag normalizes user supplied tags and attaches them to posts.
package tag

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/pkg/logger"
)

var log = logger.Get("Tags")

type (
	DataStore interface {
		InsertTag(ctx context.Context, postID int, tag string) (bool, error)
		GetPostTags(ctx context.Context, postID int) ([]string, error)
	}

	Index struct {
		store DataStore
	}
)

func New(store DataStore) *Index {
	return &Index{store: store}
}

// Normalize lower-cases the tag and replaces hyphens and spaces with underscores,
// after trimming any surrounding whitespace. "Cat Ear", "cat-ear" and "CAT_EAR"
// all normalize to "cat_ear".
func Normalize(raw string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(raw)))
}

// Valid reports whether the normalized tag may be stored.
func Valid(normalized string) bool {
	return normalized != "" && utf8.RuneCountInString(normalized) <= post.MaxTagLength
}

// Tag normalizes the raw tag and attaches it to the post. False is returned,
// without mutating anything, if the tag is empty, too long, or already present
// on the post. post.ErrPostNotFound is returned for unknown posts.
func (index *Index) Tag(ctx context.Context, postID int, rawTag string) (bool, error) {
	normalized := Normalize(rawTag)
	if !Valid(normalized) {
		log.Emit(logger.DEBUG, "Rejecting tag %q for post %d: invalid after normalization\n", rawTag, postID)
		return false, nil
	}

	inserted, err := index.store.InsertTag(ctx, postID, normalized)
	if err != nil {
		return false, fmt.Errorf("failed to tag post %d: %w", postID, err)
	}

	if inserted {
		log.Emit(logger.NEW, "Tagged post %d with %q\n", postID, normalized)
	}

	return inserted, nil
}

// Tags returns the tags attached to the post in alphabetical order.
func (index *Index) Tags(ctx context.Context, postID int) ([]string, error) {
	return index.store.GetPostTags(ctx, postID)
}
