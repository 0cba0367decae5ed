package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubAuthService テスト用のAuthService
type stubAuthService struct {
	user *models.User
	err  error
}

func (s *stubAuthService) Register(input services.RegisterInput) error {
	return nil
}

func (s *stubAuthService) SignIn(account, password, role string) (*models.User, string, error) {
	return nil, "", nil
}

func (s *stubAuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	return s.user, s.err
}

func newProtectedRouter(authService services.AuthService, gates ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticated(authService)}, gates...)
	handlers = append(handlers, func(ctx *gin.Context) {
		user, _ := CurrentUser(ctx)
		ctx.JSON(http.StatusOK, gin.H{"account": user.Account})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthenticated(t *testing.T) {
	alice := &models.User{ID: 1, Account: "alice", Role: services.RoleUser}

	t.Run("有効なトークンでユーザーがコンテキストにセットされる", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{user: alice})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"account":"alice"}`, w.Body.String())
	})

	t.Run("Authorizationヘッダーが無い場合は401", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{user: alice})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String())
	})

	t.Run("Bearer以外の形式は401", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{user: alice})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Invalid authorization format"}`, w.Body.String())
	})

	t.Run("無効なトークンは401", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{err: errors.New("bad token")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
	})
}

func TestRoleGates(t *testing.T) {
	alice := &models.User{ID: 1, Account: "alice", Role: services.RoleUser}
	root := &models.User{ID: 2, Account: "root", Role: services.RoleAdmin}

	t.Run("一般ユーザーは一般用ゲートを通過できる", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{user: alice}, AuthenticatedUser())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("管理者は一般用ゲートで403", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{user: root}, AuthenticatedUser())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"message":"Permission denied"}`, w.Body.String())
	})

	t.Run("一般ユーザーは管理者用ゲートで403", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{user: alice}, AuthenticatedAdmin())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("管理者は管理者用ゲートを通過できる", func(t *testing.T) {
		router := newProtectedRouter(&stubAuthService{user: root}, AuthenticatedAdmin())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
