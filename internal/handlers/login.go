package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
	"github.com/sbilibin2017/gw-loan-service/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) error
}

// NewLoginHandler returns an HTTP handler for user login.
// No token is issued; every request re-authenticates.
// @Summary User login
// @Description Checks a username and password against the stored bcrypt hash
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login request"
// @Success 200 {object} models.MessageResponse "Login Successful!"
// @Failure 400 {object} models.MessageResponse "Invalid User! / Invalid Password!"
// @Failure 500 {object} models.MessageResponse "Internal Server Error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("failed to decode login request", "err", err)
			writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.LoginInvalidBodyMessage})
			return
		}

		if req.Username == nil || req.Password == nil {
			logger.Log.Errorw("incomplete login request",
				"has_username", req.Username != nil,
				"has_password", req.Password != nil,
			)
			writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: models.LoginInternalErrorMessage})
			return
		}

		err := svc.Login(r.Context(), *req.Username, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.LoginInvalidUserMessage})
			case errors.Is(err, services.ErrInvalidPassword):
				writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.LoginInvalidPasswordMessage})
			default:
				logger.Log.Errorw("error during login", "err", err)
				writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: models.LoginInternalErrorMessage})
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: models.LoginSuccessMessage})
	}
}
