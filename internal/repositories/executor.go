package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// TxGetter returns the transaction bound to the context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when one is present.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// oneLine collapses a query so it fits a single log field.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
