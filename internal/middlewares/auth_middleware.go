package middlewares

import (
	"net/http"
	"strings"

	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
)

// Authenticated 認証ミドルウェア
// Bearerトークンからユーザーをロードしてコンテキストにセットする
func Authenticated(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			ctx.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization format"})
			ctx.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// AuthenticatedUser 一般ユーザーのロールゲート
func AuthenticatedUser() gin.HandlerFunc {
	return requireRole(services.RoleUser)
}

// AuthenticatedAdmin 管理者のロールゲート
func AuthenticatedAdmin() gin.HandlerFunc {
	return requireRole(services.RoleAdmin)
}

// requireRole コンテキストのユーザーが指定ロールであることを要求する
func requireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			ctx.Abort()
			return
		}

		u, ok := user.(*models.User)
		if !ok || u.Role != role {
			ctx.JSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// CurrentUser コンテキストから認証済みユーザーを取得
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	u, ok := user.(*models.User)
	return u, ok
}
