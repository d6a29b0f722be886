package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
	"github.com/sbilibin2017/gw-loan-service/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) error
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a user with a unique username. The password is stored as a bcrypt hash. Responses are plain text.
// @Tags auth
// @Accept json
// @Produce plain
// @Param signupRequest body models.SignupRequest true "Signup request"
// @Success 201 {string} string "User added successfully"
// @Failure 400 {string} string "User already exists"
// @Failure 500 {string} string "Internal Server Error"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest

		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("failed to decode signup request", "err", err)
			writeText(w, http.StatusBadRequest, models.SignupInvalidBodyText)
			return
		}

		// A missing field cannot be hashed or stored.
		if req.Username == nil || req.Email == nil || req.Password == nil {
			logger.Log.Errorw("incomplete signup request",
				"has_username", req.Username != nil,
				"has_email", req.Email != nil,
				"has_password", req.Password != nil,
			)
			writeText(w, http.StatusInternalServerError, models.SignupInternalErrorText)
			return
		}

		err := svc.Signup(r.Context(), *req.Username, *req.Email, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeText(w, http.StatusBadRequest, models.SignupUserExistsText)
			default:
				logger.Log.Errorw("error during signup", "err", err)
				writeText(w, http.StatusInternalServerError, models.SignupInternalErrorText)
			}
			return
		}

		writeText(w, http.StatusCreated, models.SignupCreatedText)
	}
}
