package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
)

// LoanWriteRepository appends rows to the loanlist table.
type LoanWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLoanWriteRepository(db *sqlx.DB, txGetter TxGetter) *LoanWriteRepository {
	return &LoanWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a loan request and returns the identifier assigned by the store.
func (r *LoanWriteRepository) Save(ctx context.Context, userID int64, amount, weeks float64, state models.LoanState) (int64, error) {
	const query = `
		INSERT INTO loanlist (user_id, amount, weeks, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{userID, amount, weeks, string(state)}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logger.Log.Infow("loan insert",
		"query", oneLine(query),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}
