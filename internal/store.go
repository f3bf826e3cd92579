package internal

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/hbomb79/Booru/internal/database"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/jmoiron/sqlx"
)

type (
	// dataOrchestrator is responsible for managing all of Booru's persisted
	// resources. The stores below this layer are 'dumb' and stateless; this
	// layer binds them to the database and decides the transaction boundaries.
	//
	// Every method acquires its own connection (or transaction) from the pool,
	// so concurrent callers, such as background conversion jobs, never share a
	// session with each other or with the request that spawned them.
	dataOrchestrator struct {
		db        database.Manager
		postStore *post.Store
		userStore *user.Store
	}
)

func newDataOrchestrator(db database.Manager) *dataOrchestrator {
	return &dataOrchestrator{
		db:        db,
		postStore: &post.Store{},
		userStore: &user.Store{},
	}
}

// Posts

func (orchestrator *dataOrchestrator) CreatePost(ctx context.Context, newPost post.NewPost) (*post.Post, error) {
	return orchestrator.postStore.Create(ctx, orchestrator.db.GetSqlxDb(), newPost)
}

func (orchestrator *dataOrchestrator) GetPost(ctx context.Context, id int) (*post.Post, error) {
	return orchestrator.postStore.Get(ctx, orchestrator.db.GetSqlxDb(), id)
}

// FinalizePost re-reads the post inside of a fresh transaction, locking the row,
// before recording the size of the converted blob and marking it as processed.
// post.ErrPostNotFound is returned if the post was removed in the meantime.
func (orchestrator *dataOrchestrator) FinalizePost(ctx context.Context, id int, fileSizeBytes int64) error {
	return orchestrator.db.WrapTx(ctx, func(tx *sqlx.Tx) error {
		existing, err := orchestrator.postStore.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if existing.Processed {
			log.Emit(logger.WARNING, "Post %d has already been finalized, ignoring repeated finalization\n", id)
			return nil
		}

		return orchestrator.postStore.MarkProcessed(ctx, tx, id, fileSizeBytes)
	})
}

// DeletePost removes the post, and (by cascade) its tag relations, in a fresh
// transaction.
func (orchestrator *dataOrchestrator) DeletePost(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := orchestrator.db.WrapTx(ctx, func(tx *sqlx.Tx) error {
		d, err := orchestrator.postStore.Delete(ctx, tx, id)
		deleted = d
		return err
	})

	return deleted, err
}

func (orchestrator *dataOrchestrator) ListPosts(ctx context.Context, predicate squirrel.Sqlizer, offset uint64, limit uint64) ([]*post.Post, error) {
	return orchestrator.postStore.List(ctx, orchestrator.db.GetSqlxDb(), predicate, offset, limit)
}

func (orchestrator *dataOrchestrator) CountPosts(ctx context.Context, predicate squirrel.Sqlizer) (int, error) {
	return orchestrator.postStore.Count(ctx, orchestrator.db.GetSqlxDb(), predicate)
}

func (orchestrator *dataOrchestrator) CountPostsByUser(ctx context.Context, userID int) (int, error) {
	return orchestrator.postStore.Count(ctx, orchestrator.db.GetSqlxDb(), post.UploadedBy(userID))
}

// Tags

func (orchestrator *dataOrchestrator) InsertTag(ctx context.Context, postID int, tag string) (bool, error) {
	return orchestrator.postStore.InsertTag(ctx, orchestrator.db.GetSqlxDb(), postID, tag)
}

func (orchestrator *dataOrchestrator) GetPostTags(ctx context.Context, postID int) ([]string, error) {
	return orchestrator.postStore.ListTags(ctx, orchestrator.db.GetSqlxDb(), postID)
}

// Users

func (orchestrator *dataOrchestrator) GetOrCreateUser(ctx context.Context, certificateHash string) (*user.User, error) {
	return orchestrator.userStore.GetOrCreate(ctx, orchestrator.db.GetSqlxDb(), certificateHash)
}

func (orchestrator *dataOrchestrator) GetUser(ctx context.Context, id int) (*user.User, error) {
	return orchestrator.userStore.Get(ctx, orchestrator.db.GetSqlxDb(), id)
}

func (orchestrator *dataOrchestrator) UpdateUserName(ctx context.Context, id int, name string) error {
	return orchestrator.userStore.UpdateName(ctx, orchestrator.db.GetSqlxDb(), id, name)
}

func (orchestrator *dataOrchestrator) UpdateUserBio(ctx context.Context, id int, bio string) error {
	return orchestrator.userStore.UpdateBio(ctx, orchestrator.db.GetSqlxDb(), id, bio)
}
