package controllers

import (
	"net/http"

	"github.com/wenliangsu/twitter-api-2023/internal/middlewares"
	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
)

// FollowshipController フォロー関係に関するコントローラー
type FollowshipController struct {
	followshipService services.FollowshipService
}

// NewFollowshipController FollowshipControllerを作成
func NewFollowshipController(followshipService services.FollowshipService) *FollowshipController {
	return &FollowshipController{
		followshipService: followshipService,
	}
}

// FollowRequest フォローリクエスト（idはフォロー対象のユーザーID）
type FollowRequest struct {
	ID uint `json:"id"`
}

// Create フォロー関係を作成
func (c *FollowshipController) Create(ctx *gin.Context) {
	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req FollowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := c.followshipService.Follow(current.ID, req.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Delete フォロー関係を削除（:idはフォロー解除するユーザーID）
func (c *FollowshipController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := c.followshipService.Unfollow(current.ID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}
