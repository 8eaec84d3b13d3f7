package me

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edakaya/heritage-api/internal/http/middlewarectx"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestMeHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		userUID        any
		role           any
		wantStatusCode int
		wantUserID     string
		wantRole       string
		wantError      string
	}{
		{
			name:           "identity in context",
			userUID:        "0b7acb8e-6f3d-4a43-9d50-0e5c2dd1a111",
			role:           "user",
			wantStatusCode: http.StatusOK,
			wantUserID:     "0b7acb8e-6f3d-4a43-9d50-0e5c2dd1a111",
			wantRole:       "user",
		},
		{
			name:           "admin role",
			userUID:        "0b7acb8e-6f3d-4a43-9d50-0e5c2dd1a111",
			role:           "admin",
			wantStatusCode: http.StatusOK,
			wantUserID:     "0b7acb8e-6f3d-4a43-9d50-0e5c2dd1a111",
			wantRole:       "admin",
		},
		{
			name:           "no identity",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid or missing credentials",
		},
		{
			name:           "empty user id",
			userUID:        "",
			role:           "user",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid or missing credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(newNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			ctx := req.Context()
			if tt.userUID != nil {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			}
			if tt.role != nil {
				ctx = context.WithValue(ctx, middlewarectx.Role, tt.role)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatusCode, rr.Code)

			var got map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))

			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, tt.wantUserID, got["user_id"])
				assert.Equal(t, tt.wantRole, got["role"])
			} else {
				assert.Contains(t, got["error"], tt.wantError)
			}
		})
	}
}
