package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-loan-service/internal/coerce"
	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
)

// LoanCreator defines the interface that the loan service must implement.
type LoanCreator interface {
	CreateLoan(ctx context.Context, amount, weeks float64) (int64, error)
}

// NewCreateLoanHandler returns an HTTP handler that creates a PENDING loan request.
// @Summary Create a loan request
// @Description Stores a loan request for the placeholder user. amount and weeks accept numbers or numeric strings.
// @Tags loans
// @Accept json
// @Produce json
// @Param loanRequest body models.LoanCreateRequest true "Loan request"
// @Success 201 {object} models.LoanCreateResponse "Loan request created successfully"
// @Failure 400 {object} models.MessageResponse "Missing required fields / Invalid data types provided"
// @Failure 500 {object} models.LoanErrorResponse "Error creating loan request"
// @Router /loans [post]
func NewCreateLoanHandler(svc LoanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		if err := decodeBody(r, &body); err != nil {
			logger.Log.Warnw("failed to decode loan request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.LoanInvalidBodyMessage})
			return
		}

		rawAmount, hasAmount := body["amount"]
		rawWeeks, hasWeeks := body["weeks"]
		if !hasAmount || !hasWeeks {
			logger.Log.Warnw("loan request missing fields", "has_amount", hasAmount, "has_weeks", hasWeeks)
			writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.LoanMissingFieldsMessage})
			return
		}

		amount, amountErr := coerce.Number(rawAmount)
		weeks, weeksErr := coerce.Number(rawWeeks)
		if err := errors.Join(amountErr, weeksErr); err != nil {
			logger.Log.Warnw("invalid loan request data types",
				"amount", string(rawAmount),
				"weeks", string(rawWeeks),
				"error", err,
			)
			writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.LoanInvalidTypeMessage})
			return
		}

		id, err := svc.CreateLoan(r.Context(), amount, weeks)
		if err != nil {
			logger.Log.Errorw("error inserting loan request", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.LoanErrorResponse{
				Message: models.LoanCreateErrorMessage,
				Error:   err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusCreated, models.LoanCreateResponse{
			Message: models.LoanCreatedMessage,
			LoanID:  id,
		})
	}
}
