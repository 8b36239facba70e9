package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/careerpath-ai/internal/types"
)

func newTestAuthHandler() (*AuthHandler, *fakeUserStore) {
	store := newFakeUserStore()
	userService := NewUserService(store, testPasswordConfig())
	return NewAuthHandler(userService, testJWTService()), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignup(t *testing.T) {
	handler, _ := newTestAuthHandler()

	rec := postJSON(t, handler.Signup, "/api/auth/signup", types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-password",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	// The issued token must validate and carry the new user's ID.
	claims, err := testJWTService().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.GetUserID())
}

func TestSignup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  types.CreateUserRequest
	}{
		{
			name: "missing name",
			req:  types.CreateUserRequest{Email: "ada@example.com", Password: "secret-password"},
		},
		{
			name: "invalid email",
			req:  types.CreateUserRequest{Name: "Ada", Email: "not-an-email", Password: "secret-password"},
		},
		{
			name: "password too short",
			req:  types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestAuthHandler()
			rec := postJSON(t, handler.Signup, "/api/auth/signup", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation error")
		})
	}
}

func TestSignup_InvalidBody(t *testing.T) {
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	handler, _ := newTestAuthHandler()
	req := types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "secret-password"}

	first := postJSON(t, handler.Signup, "/api/auth/signup", req)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, handler.Signup, "/api/auth/signup", req)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestLoginHandler(t *testing.T) {
	handler, _ := newTestAuthHandler()

	signup := postJSON(t, handler.Signup, "/api/auth/signup", types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-password",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	rec := postJSON(t, handler.Login, "/api/auth/login", types.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret-password",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	handler, _ := newTestAuthHandler()

	rec := postJSON(t, handler.Login, "/api/auth/login", types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
