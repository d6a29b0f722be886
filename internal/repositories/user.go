package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
)

const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the given username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT username, password, email
		FROM users
		WHERE username = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)

	logger.Log.Infow("user lookup",
		"query", oneLine(query),
		"args", []any{username},
		"result", user.Username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user. It reports false when the username is already taken,
// which the unique constraint decides atomically.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (bool, error) {
	const query = `
		INSERT INTO users (username, password, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`
	// The hash is never logged.
	logArgs := []any{username, email}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, username, passwordHash, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user insert",
		"query", oneLine(query),
		"args", logArgs,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return false, nil
		}
		return false, err
	}

	return rowsAffected > 0, nil
}
