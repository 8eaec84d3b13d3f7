package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authservice "github.com/edakaya/heritage-api/internal/services/auth"
)

// Мок сервиса с методом Login
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockToken      string
		mockErr        error
		skipMock       bool
		wantStatusCode int
		wantToken      string
		wantError      string
	}{
		{
			name: "valid login",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "password123",
			},
			mockToken:      "signed-token",
			wantStatusCode: http.StatusOK,
			wantToken:      "signed-token",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			skipMock:       true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "validation error - missing password",
			requestBody: Request{
				Email: "user1@example.com",
			},
			skipMock:       true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Password is a required field",
		},
		{
			name: "unknown email",
			requestBody: Request{
				Email:    "missing@example.com",
				Password: "password123",
			},
			mockErr:        authservice.ErrInvalidCredentials,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid credentials",
		},
		{
			name: "wrong password",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "wrongpass",
			},
			mockErr:        authservice.ErrInvalidCredentials,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid credentials",
		},
		{
			name: "internal error",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "password123",
			},
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AuthServiceMock)
			if !tt.skipMock {
				serviceMock.On("Login", mock.Anything, mock.AnythingOfType("string"),
					mock.AnythingOfType("string")).
					Return(tt.mockToken, tt.mockErr)
			}

			handler := New(newNoopLogger(), serviceMock)

			var body bytes.Buffer
			switch v := tt.requestBody.(type) {
			case string:
				body.WriteString(v)
			default:
				err := json.NewEncoder(&body).Encode(v)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &body)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)

			var got map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))

			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, got["access_token"])
				assert.Equal(t, "bearer", got["token_type"])
			}
			if tt.wantError != "" {
				assert.Contains(t, got["error"], tt.wantError)
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
