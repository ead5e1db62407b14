package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// handlerSpy records whether the wrapped handler ran and with what claims
type handlerSpy struct {
	called bool
	claims *Claims
}

func (p *handlerSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.claims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	validToken, err := issuer.Issue(7, "carol", models.RoleMember)
	require.NoError(t, err)

	expiredIssuer := NewTokenIssuer(testSecret, -time.Minute)
	expiredToken, err := expiredIssuer.Issue(7, "carol", models.RoleMember)
	require.NoError(t, err)

	tests := []struct {
		name         string
		authHeader   string
		expectStatus int
		expectError  string
		expectNext   bool
	}{
		{
			name:         "missing header",
			authHeader:   "",
			expectStatus: http.StatusUnauthorized,
			expectError:  "Access token required",
		},
		{
			name:         "header without bearer prefix",
			authHeader:   validToken,
			expectStatus: http.StatusUnauthorized,
			expectError:  "Access token required",
		},
		{
			name:         "invalid token",
			authHeader:   "Bearer not-a-token",
			expectStatus: http.StatusForbidden,
			expectError:  "Invalid or expired token",
		},
		{
			name:         "expired token",
			authHeader:   "Bearer " + expiredToken,
			expectStatus: http.StatusForbidden,
			expectError:  "Invalid or expired token",
		},
		{
			name:         "valid token",
			authHeader:   "Bearer " + validToken,
			expectStatus: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "lowercase bearer",
			authHeader:   "bearer " + validToken,
			expectStatus: http.StatusOK,
			expectNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &handlerSpy{}
			handler := Authenticate(issuer)(spy.handler())

			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectNext, spy.called)
			if tt.expectError != "" {
				body := decodeErrorBody(t, rec)
				assert.Equal(t, tt.expectError, body["error"])
			}
		})
	}
}

func TestAuthenticate_AttachesClaims(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	token, err := issuer.Issue(7, "carol", models.RoleLibrarian)
	require.NoError(t, err)

	spy := &handlerSpy{}
	handler := Authenticate(issuer)(spy.handler())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, spy.called)
	require.NotNil(t, spy.claims)
	assert.Equal(t, 7, spy.claims.UserID)
	assert.Equal(t, "carol", spy.claims.Username)
	assert.Equal(t, models.RoleLibrarian, spy.claims.Role)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		claims       *Claims
		expectStatus int
		expectError  string
		expectNext   bool
	}{
		{
			name:         "matching role",
			claims:       &Claims{UserID: 1, Username: "carol", Role: models.RoleLibrarian},
			expectStatus: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "insufficient role",
			claims:       &Claims{UserID: 2, Username: "dave", Role: models.RoleMember},
			expectStatus: http.StatusForbidden,
			expectError:  "Insufficient permissions",
		},
		{
			name:         "no claims in context",
			claims:       nil,
			expectStatus: http.StatusInternalServerError,
			expectError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &handlerSpy{}
			handler := RequireRole(zap.NewNop(), models.RoleLibrarian)(spy.handler())

			req := httptest.NewRequest(http.MethodPost, "/books", nil)
			if tt.claims != nil {
				req = req.WithContext(ContextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectNext, spy.called)
			if tt.expectError != "" {
				body := decodeErrorBody(t, rec)
				assert.Equal(t, tt.expectError, body["error"])
			}
		})
	}
}
