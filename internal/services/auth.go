package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for stored passwords.
const PasswordHashCost = 10

// Error variables
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserDoesNotExist  = errors.New("user does not exist")
	ErrInvalidPassword   = errors.New("invalid password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email string) (bool, error)
}

// UserCache caches user rows in front of the store.
type UserCache interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Signup registers a new user.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	created, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}
	if !created {
		logger.Log.Warnw("user created concurrently", "username", username)
		return ErrUserAlreadyExists
	}

	return nil
}

// Login checks the password of an existing user.
func (svc *AuthService) Login(ctx context.Context, username, password string) error {
	user, err := svc.findUser(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Log.Warnw("invalid password", "username", username)
			return ErrInvalidPassword
		}
		logger.Log.Errorw("failed to compare password hash", "username", username, "err", err)
		return err
	}

	return nil
}

// findUser reads through the cache. Cache failures fall back to the store.
func (svc *AuthService) findUser(ctx context.Context, username string) (*models.UserDB, error) {
	if svc.cache != nil {
		user, err := svc.cache.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Warnw("user cache read failed", "username", username, "err", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return user, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to cache user", "username", username, "err", err)
		}
	}

	return user, nil
}
