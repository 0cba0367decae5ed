package controllers

import (
	"github.com/wenliangsu/twitter-api-2023/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError サービスのエラーをHTTPステータスとJSONボディに変換して返す
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.StatusCode(err), gin.H{"message": apperrors.ClientMessage(err)})
}
