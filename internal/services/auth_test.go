package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
	"github.com/sbilibin2017/gw-loan-service/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name         string
		existingUser *models.UserDB
		readerErr    error
		created      bool
		writerErr    error
		wantErr      error
	}{
		{
			name:    "successful signup",
			created: true,
		},
		{
			name:         "user already exists",
			existingUser: &models.UserDB{Username: "alice"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:    "lost insert race",
			created: false,
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, nil)

			mockReader.EXPECT().
				GetByUsername(gomock.Any(), "alice").
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), "alice", gomock.Any(), "a@x.com").
					DoAndReturn(func(_ context.Context, _, hash, _ string) (bool, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1")))
						cost, err := bcrypt.Cost([]byte(hash))
						assert.NoError(t, err)
						assert.Equal(t, services.PasswordHashCost, cost)
						return tt.created, tt.writerErr
					})
			}

			err := svc.Signup(context.Background(), "alice", "a@x.com", "pw1")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("pw1"), services.PasswordHashCost)
	assert.NoError(t, err)
	alice := &models.UserDB{Username: "alice", Password: string(hashed), Email: "a@x.com"}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "pw1",
			user:     alice,
		},
		{
			name:     "user does not exist",
			username: "bob",
			password: "x",
			wantErr:  services.ErrUserDoesNotExist,
		},
		{
			name:     "invalid password",
			username: "alice",
			password: "wrong",
			user:     alice,
			wantErr:  services.ErrInvalidPassword,
		},
		{
			name:     "corrupt stored hash",
			username: "alice",
			password: "pw1",
			user:     &models.UserDB{Username: "alice", Password: "plain"},
			wantErr:  bcrypt.ErrHashTooShort,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  "pw1",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, nil)

			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login_Cache(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("pw1"), services.PasswordHashCost)
	assert.NoError(t, err)
	alice := &models.UserDB{Username: "alice", Password: string(hashed)}

	t.Run("cache hit skips store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockCache := services.NewMockUserCache(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockCache)

		mockCache.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)

		assert.NoError(t, svc.Login(context.Background(), "alice", "pw1"))
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockCache := services.NewMockUserCache(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockCache)

		gomock.InOrder(
			mockCache.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil),
			mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil),
			mockCache.EXPECT().Set(gomock.Any(), alice).Return(nil),
		)

		assert.NoError(t, svc.Login(context.Background(), "alice", "pw1"))
	})

	t.Run("unknown user is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockCache := services.NewMockUserCache(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockCache)

		mockCache.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)

		err := svc.Login(context.Background(), "bob", "x")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})

	t.Run("cache errors fall back to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockCache := services.NewMockUserCache(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockCache)

		mockCache.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("redis down"))
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
		mockCache.EXPECT().Set(gomock.Any(), alice).Return(errors.New("redis down"))

		assert.NoError(t, svc.Login(context.Background(), "alice", "pw1"))
	})
}

func TestPasswordHash_RoundTrip(t *testing.T) {
	passwords := []string{"pw1", "", "correct horse battery staple", "пароль"}

	for _, p := range passwords {
		hashed, err := bcrypt.GenerateFromPassword([]byte(p), services.PasswordHashCost)
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword(hashed, []byte(p)))
		assert.ErrorIs(t, bcrypt.CompareHashAndPassword(hashed, []byte(p+"x")), bcrypt.ErrMismatchedHashAndPassword)
	}
}
