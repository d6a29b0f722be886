package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLoanWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewLoanWriteRepository(db, nil)
	ctx := context.Background()

	first, err := repo.Save(ctx, 1, 500, 8, models.LoanStatePending)
	assert.NoError(t, err)
	second, err := repo.Save(ctx, 1, 100, 4, models.LoanStatePending)
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Greater(t, second, first)

	var loan models.LoanDB
	err = db.Get(&loan, "SELECT id, user_id, amount, weeks, state FROM loanlist WHERE id=$1", second)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), loan.UserID)
	assert.Equal(t, 100.0, loan.Amount)
	assert.Equal(t, 4.0, loan.Weeks)
	assert.Equal(t, models.LoanStatePending, loan.State)
}

func TestLoanWriteRepository_Save_Mock(t *testing.T) {
	t.Run("returns id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("INSERT INTO loanlist").
			WithArgs(int64(1), 500.0, 8.0, "PENDING").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		id, err := NewLoanWriteRepository(db, nil).Save(context.Background(), 1, 500, 8, models.LoanStatePending)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("INSERT INTO loanlist").
			WithArgs(int64(1), 500.0, 8.0, "PENDING").
			WillReturnError(errors.New("relation \"loanlist\" does not exist"))

		id, err := NewLoanWriteRepository(db, nil).Save(context.Background(), 1, 500, 8, models.LoanStatePending)
		assert.EqualError(t, err, "relation \"loanlist\" does not exist")
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
