package controllers

import (
	"net/http"

	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminController 管理者操作に関するコントローラー
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController AdminControllerを作成
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// ListUsers 全ユーザーをカウント付きで取得
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// DeleteTweet ツイートを削除
func (c *AdminController) DeleteTweet(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.DeleteTweet(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}
