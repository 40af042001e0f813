package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	sqlDB  *sql.DB // nil when running inside a caller-managed transaction
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. If logger is nil, a default logger will be used.
func NewPostgresCardStore(db *sql.DB, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCardStore{
		db:     db,
		sqlDB:  db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// WithTx implements store.CardStore.WithTx.
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{db: tx, logger: s.logger}
}

// Create implements store.CardStore.Create.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cards (id, name, link, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		card.ID, card.Name, card.Link, card.OwnerID, card.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err, "cards_owner_id_fkey") {
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		return store.NewStoreError("card", "create", MapError(err))
	}
	return nil
}

// GetByID implements store.CardStore.GetByID. The card row and its likes
// are read in one transaction so the returned snapshot is consistent.
func (s *PostgresCardStore) GetByID(ctx context.Context, id domain.ID) (*domain.Card, error) {
	if s.sqlDB == nil {
		return s.getByID(ctx, s.db, id)
	}

	var card *domain.Card
	err := store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
		c, err := s.getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		card = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *PostgresCardStore) getByID(ctx context.Context, q store.DBTX, id domain.ID) (*domain.Card, error) {
	var card domain.Card
	err := q.QueryRowContext(ctx,
		`SELECT id, name, link, owner_id, created_at FROM cards WHERE id = $1`, id).
		Scan(&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrCardNotFound
		}
		return nil, store.NewStoreError("card", "get", MapError(err))
	}

	likes, err := s.queryLikes(ctx, q, id)
	if err != nil {
		return nil, store.NewStoreError("card", "get", err)
	}
	card.Likes = likes
	return &card, nil
}

// List implements store.CardStore.List, newest first.
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	run := func(q store.DBTX) ([]*domain.Card, error) { return s.list(ctx, q) }
	if s.sqlDB == nil {
		return run(s.db)
	}

	var cards []*domain.Card
	err := store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
		cs, err := run(tx)
		if err != nil {
			return err
		}
		cards = cs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *PostgresCardStore) list(ctx context.Context, q store.DBTX) ([]*domain.Card, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, name, link, owner_id, created_at FROM cards ORDER BY created_at DESC`)
	if err != nil {
		return nil, store.NewStoreError("card", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	cards := []*domain.Card{}
	byID := map[domain.ID]*domain.Card{}
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.CreatedAt); err != nil {
			return nil, store.NewStoreError("card", "list", err)
		}
		card.Likes = []domain.ID{}
		cards = append(cards, &card)
		byID[card.ID] = &card
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("card", "list", err)
	}

	likeRows, err := q.QueryContext(ctx,
		`SELECT card_id, user_id FROM card_likes ORDER BY user_id`)
	if err != nil {
		return nil, store.NewStoreError("card", "list", MapError(err))
	}
	defer func() { _ = likeRows.Close() }()

	for likeRows.Next() {
		var cardID, userID domain.ID
		if err := likeRows.Scan(&cardID, &userID); err != nil {
			return nil, store.NewStoreError("card", "list", err)
		}
		if card, ok := byID[cardID]; ok {
			card.Likes = append(card.Likes, userID)
		}
	}
	if err := likeRows.Err(); err != nil {
		return nil, store.NewStoreError("card", "list", err)
	}

	return cards, nil
}

// Delete implements store.CardStore.Delete. Likes are removed by the
// ON DELETE CASCADE constraint on card_likes.
func (s *PostgresCardStore) Delete(ctx context.Context, id domain.ID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("card", "delete", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrCardNotFound)
}

// AddLike implements store.CardStore.AddLike. The set-add is a single
// statement: ON CONFLICT DO NOTHING gives idempotency without a
// read-modify-write cycle, so concurrent likes cannot race.
func (s *PostgresCardStore) AddLike(ctx context.Context, cardID, userID domain.ID) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO card_likes (card_id, user_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		cardID, userID,
	)
	if err != nil {
		if IsForeignKeyViolation(err, "card_likes_card_id_fkey") {
			return fmt.Errorf("%w: %v", store.ErrCardNotFound, err)
		}
		if IsForeignKeyViolation(err, "card_likes_user_id_fkey") {
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		return store.NewStoreError("card", "add_like", MapError(err))
	}
	return nil
}

// RemoveLike implements store.CardStore.RemoveLike. A delete of zero rows
// is the no-op case, not an error.
func (s *PostgresCardStore) RemoveLike(ctx context.Context, cardID, userID domain.ID) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`,
		cardID, userID,
	)
	if err != nil {
		return store.NewStoreError("card", "remove_like", MapError(err))
	}
	return nil
}

func (s *PostgresCardStore) queryLikes(ctx context.Context, q store.DBTX, cardID domain.ID) ([]domain.ID, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT user_id FROM card_likes WHERE card_id = $1 ORDER BY user_id`, cardID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	likes := []domain.ID{}
	for rows.Next() {
		var userID domain.ID
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		likes = append(likes, userID)
	}
	return likes, rows.Err()
}
