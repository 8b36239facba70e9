package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/careerpath-ai/internal/config"
	"github.com/careerpath/careerpath-ai/internal/db"
	"github.com/careerpath/careerpath-ai/internal/types"
)

// fakeUserStore keeps users in memory.
type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func testPasswordConfig() *config.PasswordConfig {
	// Lowest accepted cost keeps the hashing tests fast.
	return &config.PasswordConfig{BcryptCost: 10}
}

func TestRegister(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash is never the raw password.
	stored := store.users[user.ID]
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	req := &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "secret-password"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)

	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	registered, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Missing user and wrong password are indistinguishable to the caller.
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}
