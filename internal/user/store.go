package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/hbomb79/Booru/internal/database"
	"github.com/hbomb79/Booru/pkg/logger"
)

const (
	MaxNameLength            = 64
	MaxBioLength             = 4096
	MaxCertificateHashLength = 64

	DefaultBio        = "This user hasn't introduced themselves."
	defaultNamePrefix = "Unnamed User "
)

var (
	ErrUserNotFound = errors.New("user does not exist")
	ErrInvalidName  = errors.New("user name is invalid")
	ErrInvalidBio   = errors.New("user bio is invalid")

	log = logger.Get("UserStore")
)

type (
	// User is identified by the hash of the client certificate they
	// present. The hash is never exposed over the API.
	User struct {
		ID              int    `db:"id"`
		CertificateHash string `db:"certificate_hash" json:"-"`
		Name            string `db:"name"`
		Bio             string `db:"bio"`
	}

	Store struct{}
)

// GetOrCreate finds the user bound to the certificate hash provided, creating
// one with the default name and bio if this is the first time the hash
// has been seen.
func (store *Store) GetOrCreate(ctx context.Context, db database.Queryable, certificateHash string) (*User, error) {
	if certificateHash == "" || len(certificateHash) > MaxCertificateHashLength {
		return nil, fmt.Errorf("certificate hash %q is not valid", certificateHash)
	}

	if existing, err := store.GetByCertificateHash(ctx, db, certificateHash); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	// The ID must be known up-front as it forms part of the default name. A
	// concurrent first contact for the same hash is absorbed by the unique
	// constraint, and the subsequent select returns the winning row.
	if _, err := db.ExecContext(ctx, `
		WITH next AS (SELECT nextval(pg_get_serial_sequence('users', 'id')) AS id)
		INSERT INTO users(id, certificate_hash, name, bio)
		SELECT next.id, $1::text, $2::text || next.id, $3::text FROM next
		ON CONFLICT (certificate_hash) DO NOTHING
	`, certificateHash, defaultNamePrefix, DefaultBio); err != nil {
		return nil, fmt.Errorf("failed to insert new user: %w", err)
	}

	user, err := store.GetByCertificateHash(ctx, db, certificateHash)
	if err != nil {
		return nil, err
	}

	log.Emit(logger.NEW, "Created user %d for first contact\n", user.ID)
	return user, nil
}

func (store *Store) Get(ctx context.Context, db database.Queryable, id int) (*User, error) {
	return store.getWhere(ctx, db, squirrel.Eq{"users.id": id})
}

func (store *Store) GetByCertificateHash(ctx context.Context, db database.Queryable, certificateHash string) (*User, error) {
	return store.getWhere(ctx, db, squirrel.Eq{"users.certificate_hash": certificateHash})
}

// UpdateName trims and stores the new name for the user.
func (store *Store) UpdateName(ctx context.Context, db database.Queryable, id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return ErrInvalidName
	}

	return store.updateColumn(ctx, db, id, "name", name)
}

// UpdateBio trims and stores the new bio for the user.
func (store *Store) UpdateBio(ctx context.Context, db database.Queryable, id int, bio string) error {
	bio = strings.TrimSpace(bio)
	if bio == "" || len(bio) > MaxBioLength {
		return ErrInvalidBio
	}

	return store.updateColumn(ctx, db, id, "bio", bio)
}

func (store *Store) updateColumn(ctx context.Context, db database.Queryable, id int, column string, value string) error {
	query, args, err := squirrel.Update("users").Set(column, value).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to construct update user query: %w", err)
	}

	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to update %s of user %d: %w", column, id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (store *Store) getWhere(ctx context.Context, db database.Queryable, predicate squirrel.Sqlizer) (*User, error) {
	query, args, err := squirrel.Select("users.*").From("users").Where(predicate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct select user query: %w", err)
	}

	var user User
	if err := db.GetContext(ctx, &user, db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}
