package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// userColumns is the read projection shared by every user query except the
// credentials lookup. The credential digest is deliberately absent.
const userColumns = "id, name, about, avatar, email, created_at, updated_at"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. The connection is initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	return &PostgresUserStore{db: db}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx}
}

// Create implements store.UserStore.Create.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, about, avatar, email, hashed_password, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Name, user.About, user.Avatar, user.Email, user.HashedPassword,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, "users_email_key") {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		return store.NewStoreError("user", "create", MapError(err))
	}
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", MapError(err))
	}
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail. This is the only query
// that selects the credential digest.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, about, avatar, email, hashed_password, created_at, updated_at
		 FROM users WHERE email = $1`, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.About, &user.Avatar, &user.Email,
		&user.HashedPassword, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get_by_email", MapError(err))
	}
	return &user, nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, store.NewStoreError("user", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, store.NewStoreError("user", "list", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("user", "list", err)
	}
	return users, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile. The update is a
// single statement; COALESCE keeps fields the caller did not supply.
func (s *PostgresUserStore) UpdateProfile(ctx context.Context, id domain.ID, name, about *string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name), about = COALESCE($3, about), updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns, id, name, about)

	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "update_profile", MapError(err))
	}
	return user, nil
}

// UpdateAvatar implements store.UserStore.UpdateAvatar.
func (s *PostgresUserStore) UpdateAvatar(ctx context.Context, id domain.ID, avatar string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE users SET avatar = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns, id, avatar)

	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "update_avatar", MapError(err))
	}
	return user, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.About, &user.Avatar, &user.Email,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
