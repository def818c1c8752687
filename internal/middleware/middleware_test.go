package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp
}

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "middleware-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
}

func protectedRouter(jwtService *auth.JWTService, role models.Role) *gin.Engine {
	m := NewAuthMiddleware(jwtService)
	r := gin.New()
	r.GET("/protected", m.JWTAuth(), m.RoleRequired(role), func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		role, _ := c.Get(ContextKeyRole)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := newJWTService()
	r := protectedRouter(jwtService, models.RoleStudent)

	studentToken, _, err := jwtService.GenerateToken(auth.Subject{ID: 7, Identifier: "21A1", Name: "Ann", Role: models.RoleStudent})
	require.NoError(t, err)
	teacherToken, _, err := jwtService.GenerateToken(auth.Subject{ID: 3, Identifier: "T-1", Name: "Tess", Role: models.RoleTeacher})
	require.NoError(t, err)
	otherIssuer, _, err := auth.NewJWTService(auth.JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour}).
		GenerateToken(auth.Subject{ID: 7, Role: models.RoleStudent})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"missing header", "", http.StatusUnauthorized, MsgNoToken},
		{"no bearer prefix", studentToken, http.StatusUnauthorized, MsgNoToken},
		{"garbage token", "Bearer not.a.token", http.StatusForbidden, MsgInvalidToken},
		{"foreign signature", "Bearer " + otherIssuer, http.StatusForbidden, MsgInvalidToken},
		{"wrong role", "Bearer " + teacherToken, http.StatusForbidden, "Access denied. Student privileges required."},
		{"valid", "Bearer " + studentToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, w).Error)
				return
			}
			assert.JSONEq(t, `{"id":7,"role":"student"}`, w.Body.String())
		})
	}
}

func TestJWTAuthErrorCodes(t *testing.T) {
	jwtService := newJWTService()
	r := protectedRouter(jwtService, models.RoleStudent)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		ID:   7,
		Role: models.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    "test",
		},
	}).SignedString([]byte("middleware-secret"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"missing header", "", http.StatusUnauthorized, dto.ErrorCodeTokenNotFound},
		{"basic scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, dto.ErrorCodeTokenNotFound},
		{"empty bearer", "Bearer   ", http.StatusUnauthorized, dto.ErrorCodeTokenNotFound},
		{"expired", "Bearer " + expired, http.StatusForbidden, dto.ErrorCodeExpiredToken},
		{"garbage", "Bearer not.a.token", http.StatusForbidden, dto.ErrorCodeInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}
}

func TestRoleRequiredWithoutAuth(t *testing.T) {
	m := NewAuthMiddleware(newJWTService())
	r := gin.New()
	r.GET("/admin", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantError  string
		wantField  string
	}{
		{"conflict", apperrors.NewConflictError("roll_number", "Roll number"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Roll number already exists", "roll_number"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials", ""},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found", ""},
		{"complaint custom message", apperrors.NewCustomError(apperrors.ErrComplaintNotFound, "Complaint not found or not owned by student"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Complaint not found or not owned by student", ""},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrInventoryItemNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found", ""},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid status value", ""},
		{"validation", apperrors.NewValidationError("password", "too short"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "too short", "password"},
		{"forbidden", apperrors.NewForbiddenError("Invalid admin registration key"), http.StatusForbidden, dto.ErrorCodeForbidden, "Invalid admin registration key", ""},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, MsgInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantField, resp.Field)
		})
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleAPIErrorWithFallback(c, errors.New("relation \"complaints\" does not exist"), "Failed to fetch complaints. Please try again later.")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
	assert.Equal(t, "Failed to fetch complaints. Please try again later.", decodeError(t, w).Error)
}

type bindTarget struct {
	Name     string                 `json:"name" binding:"required,notblank"`
	Password string                 `json:"password" binding:"required,min=6"`
	Status   models.ComplaintStatus `json:"status" binding:"omitempty,complaint_status"`
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantOK    bool
		wantError string
		wantField string
	}{
		{"valid", `{"name":"Ann","password":"secret1","status":"Resolved"}`, true, "", ""},
		{"missing name", `{"password":"secret1"}`, false, "name is required", "name"},
		{"blank name", `{"name":"   ","password":"secret1"}`, false, "name is required", "name"},
		{"short password", `{"name":"Ann","password":"abc"}`, false, "Password must be at least 6 characters long", "password"},
		{"bad status", `{"name":"Ann","password":"secret1","status":"Rejected"}`, false, "Invalid status value", "status"},
		{"malformed", `{"name":`, false, "Invalid request body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var target bindTarget
			ok := BindJSON(c, &target)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "Ann", target.Name)
				return
			}
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantField, resp.Field)
		})
	}
}

func TestRequestIDAndRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.Nop()), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.NoRoute(NoRouteHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MsgInternalServerError, decodeError(t, w).Error)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000/"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
