package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza-delivery/middleware"
	"pizza-delivery/models"
	"pizza-delivery/utils"
)

type stubUserStore struct {
	users map[string]*models.User
}

func (s *stubUserStore) Create(_ context.Context, user *models.User) error {
	s.users[user.Username] = user
	return nil
}

func (s *stubUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return s.users[username], nil
}

func (s *stubUserStore) UsernameOrEmailTaken(_ context.Context, username, _ string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func newAuthRouter(users *stubUserStore, staffOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(users)}
	if staffOnly {
		handlers = append(handlers, middleware.StaffMiddleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(200, gin.H{"username": middleware.Username(c), "resolved": false})
			return
		}
		c.JSON(200, gin.H{"username": user.Username, "resolved": true})
	})

	router.GET("/protected", handlers...)
	return router
}

func doGet(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := newAuthRouter(&stubUserStore{users: map[string]*models.User{}}, false)

	w := doGet(t, router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := newAuthRouter(&stubUserStore{users: map[string]*models.User{}}, false)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		w := doGet(t, router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	router := newAuthRouter(&stubUserStore{users: map[string]*models.User{}}, false)

	w := doGet(t, router, "Bearer not-a-valid-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRefreshTokenOnAccessRoute(t *testing.T) {
	users := &stubUserStore{users: map[string]*models.User{
		"lokesh": {ID: 1, Username: "lokesh"},
	}}
	router := newAuthRouter(users, false)

	refresh, err := utils.GenerateRefreshToken("lokesh")
	require.NoError(t, err)

	w := doGet(t, router, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareResolvesUser(t *testing.T) {
	users := &stubUserStore{users: map[string]*models.User{
		"lokesh": {ID: 1, Username: "lokesh"},
	}}
	router := newAuthRouter(users, false)

	token, err := utils.GenerateAccessToken("lokesh")
	require.NoError(t, err)

	w := doGet(t, router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resolved":true`)
	assert.Contains(t, w.Body.String(), `"username":"lokesh"`)
}

func TestAuthMiddlewarePassesUnresolvedSubjectThrough(t *testing.T) {
	router := newAuthRouter(&stubUserStore{users: map[string]*models.User{}}, false)

	token, err := utils.GenerateAccessToken("ghost")
	require.NoError(t, err)

	w := doGet(t, router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resolved":false`)
	assert.Contains(t, w.Body.String(), `"username":"ghost"`)
}

func TestStaffMiddleware(t *testing.T) {
	users := &stubUserStore{users: map[string]*models.User{
		"customer": {ID: 1, Username: "customer", IsStaff: false},
		"staff":    {ID: 2, Username: "staff", IsStaff: true},
	}}
	router := newAuthRouter(users, true)

	cases := []struct {
		username string
		want     int
	}{
		{"customer", http.StatusForbidden},
		{"ghost", http.StatusForbidden},
		{"staff", http.StatusOK},
	}

	for _, tc := range cases {
		token, err := utils.GenerateAccessToken(tc.username)
		require.NoError(t, err)

		w := doGet(t, router, "Bearer "+token)
		assert.Equal(t, tc.want, w.Code, "username %s", tc.username)
	}
}
