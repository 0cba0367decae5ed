package controllers

import (
	"net/http"
	"strconv"

	"github.com/wenliangsu/twitter-api-2023/internal/middlewares"
	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// UpdateAccountRequest アカウント設定更新リクエスト
type UpdateAccountRequest struct {
	Account       string `json:"account"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CheckPassword string `json:"checkPassword"`
}

// parseID パスパラメータのIDを解析
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GetUser ユーザーのプロフィールを取得
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	profile, err := c.userService.GetProfile(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateAccount アカウント設定を更新
func (c *UserController) UpdateAccount(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := c.userService.UpdateAccount(id, current.ID, services.UpdateAccountInput{
		Account:       req.Account,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		CheckPassword: req.CheckPassword,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User is updated successfully",
		"user": gin.H{
			"account": user.Account,
			"name":    user.Name,
			"email":   user.Email,
		},
	})
}

// UpdateProfile プロフィール（name/introduction/画像）を更新
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	input := services.UpdateProfileInput{
		Name:         ctx.PostForm("name"),
		Introduction: ctx.PostForm("introduction"),
	}

	// 画像は未指定でもエラーにしない
	if file, err := ctx.FormFile("avatar"); err == nil {
		input.Avatar = file
	}
	if file, err := ctx.FormFile("cover_image"); err == nil {
		input.CoverImage = file
	}

	user, err := c.userService.UpdateProfile(id, current.ID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User Profile is updated successfully",
		"user": gin.H{
			"name":         user.Name,
			"introduction": user.Introduction,
			"avatar":       user.Avatar,
			"cover_image":  user.CoverImage,
		},
	})
}

// GetTweets ユーザーのツイート一覧を取得
func (c *UserController) GetTweets(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	tweets, err := c.userService.ListTweets(id, current.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tweets)
}

// GetRepliedTweets ユーザーのリプライ一覧を取得
func (c *UserController) GetRepliedTweets(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	replies, err := c.userService.ListReplies(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, replies)
}

// GetLikes ユーザーのいいね一覧を取得
func (c *UserController) GetLikes(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	likes, err := c.userService.ListLikes(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, likes)
}

// GetFollowers ユーザーのフォロワー一覧を取得
func (c *UserController) GetFollowers(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	followers, err := c.userService.ListFollowers(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, followers)
}

// GetFollowings ユーザーのフォロー一覧を取得
func (c *UserController) GetFollowings(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	followings, err := c.userService.ListFollowings(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, followings)
}
