package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hbomb79/Booru/internal/database"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var (
	ErrPostNotFound = errors.New("post does not exist")

	log = logger.Get("PostStore")
)

// Store is a stateless store for posts and their tag relations. All methods
// accept the Queryable they should run against, which allows the caller to
// decide on the transaction boundaries.
type Store struct{}

// Create inserts a provisional (unprocessed) post. The returned post has
// its generated ID and upload date populated.
func (store *Store) Create(ctx context.Context, db database.Queryable, newPost NewPost) (*Post, error) {
	if newPost.Source != nil && len(*newPost.Source) > MaxSourceLength {
		return nil, fmt.Errorf("post source exceeds %d characters", MaxSourceLength)
	}

	var created Post
	if err := db.GetContext(ctx, &created, `
		INSERT INTO posts(width, height, file_size_bytes, source, uploader_id, upload_date, post_type, processed)
		VALUES ($1, $2, 0, $3, $4, current_timestamp, $5, FALSE)
		RETURNING *
	`, newPost.Width, newPost.Height, newPost.Source, newPost.UploaderID, newPost.Type); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &created, nil
}

func (store *Store) Get(ctx context.Context, db database.Queryable, id int) (*Post, error) {
	return store.get(ctx, db, `SELECT * FROM posts WHERE id=$1`, id)
}

// GetForUpdate fetches the post and locks the row until the surrounding
// transaction concludes. Must be called inside a transaction.
func (store *Store) GetForUpdate(ctx context.Context, db database.Queryable, id int) (*Post, error) {
	return store.get(ctx, db, `SELECT * FROM posts WHERE id=$1 FOR UPDATE`, id)
}

func (store *Store) get(ctx context.Context, db database.Queryable, query string, id int) (*Post, error) {
	var result Post
	if err := db.GetContext(ctx, &result, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}

		return nil, fmt.Errorf("failed to fetch post %d: %w", id, err)
	}

	return &result, nil
}

// MarkProcessed records the final size of the posts blob and flips the
// processed flag. ErrPostNotFound is returned if no row was updated.
func (store *Store) MarkProcessed(ctx context.Context, db database.Queryable, id int, fileSizeBytes int64) error {
	res, err := db.ExecContext(ctx, `UPDATE posts SET file_size_bytes=$2, processed=TRUE WHERE id=$1`, id, fileSizeBytes)
	if err != nil {
		return fmt.Errorf("failed to mark post %d as processed: %w", id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPostNotFound
	}

	return nil
}

// Delete removes the post with the given ID. Tag relations are removed
// by the cascading foreign key. The returned bool indicates whether
// a row was deleted.
func (store *Store) Delete(ctx context.Context, db database.Queryable, id int) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// InsertTag attaches an (already normalized) tag to the post. False is
// returned when the post already carries the tag, including when a
// concurrent insert wins the race on the unique index.
func (store *Store) InsertTag(ctx context.Context, db database.Queryable, postID int, tag string) (bool, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO tag_relations(post_id, tag)
		VALUES ($1, $2)
	`, postID, tag)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				log.Debugf("Tag %q for post %d rejected by unique index\n", tag, postID)
				return false, nil
			case pqForeignKeyViolation:
				return false, ErrPostNotFound
			}
		}

		return false, fmt.Errorf("failed to insert tag %q for post %d: %w", tag, postID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// ListTags returns the tags of the post in alphabetical order.
func (store *Store) ListTags(ctx context.Context, db database.Queryable, postID int) ([]string, error) {
	tags := make([]string, 0)
	if err := db.SelectContext(ctx, &tags, `SELECT tag FROM tag_relations WHERE post_id=$1 ORDER BY tag ASC`, postID); err != nil {
		return nil, fmt.Errorf("failed to list tags for post %d: %w", postID, err)
	}

	return tags, nil
}

// List selects the processed posts matching the predicate, newest first,
// windowed by the offset and limit provided.
func (store *Store) List(ctx context.Context, db database.Queryable, predicate squirrel.Sqlizer, offset uint64, limit uint64) ([]*Post, error) {
	query, args, err := selectProcessedBuilder("posts.*", predicate).
		OrderBy("posts.upload_date DESC", "posts.id DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct list posts query: %w", err)
	}

	results := make([]*Post, 0)
	if err := db.SelectContext(ctx, &results, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return results, nil
}

// Count returns the number of processed posts matching the predicate.
func (store *Store) Count(ctx context.Context, db database.Queryable, predicate squirrel.Sqlizer) (int, error) {
	query, args, err := selectProcessedBuilder("COUNT(*)", predicate).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to construct count posts query: %w", err)
	}

	var count int
	if err := db.GetContext(ctx, &count, db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// UploadedBy is a predicate matching posts uploaded by the user.
func UploadedBy(userID int) squirrel.Sqlizer {
	return squirrel.Eq{"posts.uploader_id": userID}
}

// TaggedWith is a predicate matching posts which carry the tag.
func TaggedWith(tag string) squirrel.Sqlizer {
	return squirrel.Expr("EXISTS (SELECT 1 FROM tag_relations WHERE tag_relations.post_id = posts.id AND tag_relations.tag = ?)", tag)
}

func selectProcessedBuilder(column string, predicate squirrel.Sqlizer) squirrel.SelectBuilder {
	builder := squirrel.Select(column).From("posts").Where(squirrel.Eq{"posts.processed": true})
	if predicate != nil {
		builder = builder.Where(predicate)
	}

	return builder
}
