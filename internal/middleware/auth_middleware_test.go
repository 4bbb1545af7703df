package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/pkg/auth"
)

func newTestAuthMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "notesphere.test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	return accessToken
}

func newGuardedRouter(m *AuthMiddleware, handlerCalled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	staff := router.Group("", m.JWTAuth(), m.StaffRequired())
	staff.POST("/notes", func(c *gin.Context) {
		*handlerCalled = true
		userID, ok := UserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "ok": ok})
	})
	return router
}

func TestStaffRequired_AllowsStaff(t *testing.T) {
	m, jwtService := newTestAuthMiddleware()
	handlerCalled := false
	router := newGuardedRouter(m, &handlerCalled)

	token := tokenFor(t, jwtService, &models.User{ID: 7, Email: "staff@example.com", IsStaff: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerCalled)
}

func TestStaffRequired_RejectsNonStaff(t *testing.T) {
	m, jwtService := newTestAuthMiddleware()
	handlerCalled := false
	router := newGuardedRouter(m, &handlerCalled)

	token := tokenFor(t, jwtService, &models.User{ID: 8, Email: "visitor@example.com", IsStaff: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	// Authenticated but not staff: forbidden and the handler never ran
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled)
}

func TestJWTAuth_RejectsMissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware()
	handlerCalled := false
	router := newGuardedRouter(m, &handlerCalled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notes", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled)
}

func TestJWTAuth_RejectsInvalidToken(t *testing.T) {
	m, _ := newTestAuthMiddleware()
	handlerCalled := false
	router := newGuardedRouter(m, &handlerCalled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notes", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled)
}

func TestJWTAuth_SetsContextValues(t *testing.T) {
	m, jwtService := newTestAuthMiddleware()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var gotUserID int64
	var gotEmail string
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		gotUserID, _ = UserIDFromContext(c)
		gotEmail = c.GetString(ContextEmailKey)
		c.Status(http.StatusOK)
	})

	token := tokenFor(t, jwtService, &models.User{ID: 7, Email: "staff@example.com", IsStaff: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, "staff@example.com", gotEmail)
}
