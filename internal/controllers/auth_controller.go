package controllers

import (
	"net/http"

	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// SignUpRequest ユーザー登録リクエスト
type SignUpRequest struct {
	Account       string `json:"account"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CheckPassword string `json:"checkPassword"`
}

// SignInRequest サインインリクエスト
type SignInRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// SignUp ユーザー登録
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := c.authService.Register(services.RegisterInput{
		Account:       req.Account,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		CheckPassword: req.CheckPassword,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User is registered successfully"})
}

// SignIn 一般ユーザーのサインイン
func (c *AuthController) SignIn(ctx *gin.Context) {
	c.signIn(ctx, services.RoleUser)
}

// AdminSignIn 管理者のサインイン
func (c *AuthController) AdminSignIn(ctx *gin.Context) {
	c.signIn(ctx, services.RoleAdmin)
}

// signIn 資格情報を検証してトークンとユーザーを返す
func (c *AuthController) signIn(ctx *gin.Context, role string) {
	var req SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := c.authService.SignIn(req.Account, req.Password, role)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}
