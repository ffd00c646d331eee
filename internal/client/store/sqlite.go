package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/migrations"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded schema. Safe to call repeatedly.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// SQLite serialises writers anyway; one connection also keeps
	// ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// SQLiteStore keeps the session in the metadata table.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

var _ CredentialStore = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log.With("component", "credential_store")}
}

func (s *SQLiteStore) Save(ctx context.Context, token string, user models.User) {
	encoded, err := json.Marshal(user)
	if err != nil {
		s.log.Error(ctx, "encode user record", "error", err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, encoded)
	})
	if err != nil {
		s.log.Error(ctx, "save credentials", "error", err)
	}
}

func (s *SQLiteStore) Load(ctx context.Context) (*Credentials, bool) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, KeyToken)
	if err != nil {
		s.log.Warn(ctx, "read stored token, treating store as empty", "error", err)
		return nil, false
	}
	rawUser, err := repo.Get(ctx, KeyUser)
	if err != nil {
		s.log.Warn(ctx, "read stored user, treating store as empty", "error", err)
		return nil, false
	}

	if len(token) == 0 && rawUser == nil {
		return nil, false
	}
	if len(token) == 0 || rawUser == nil {
		s.log.Warn(ctx, "incomplete stored session, treating store as empty",
			"has_token", len(token) > 0, "has_user", rawUser != nil)
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.log.Warn(ctx, "corrupt stored user, treating store as empty", "error", err)
		return nil, false
	}

	return &Credentials{Token: string(token), User: user}, true
}

func (s *SQLiteStore) Clear(ctx context.Context) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, KeyToken, KeyUser)
	})
	if err != nil {
		s.log.Error(ctx, "clear credentials", "error", err)
	}
}
