package controllers

import (
	"net/http"

	"github.com/wenliangsu/twitter-api-2023/internal/middlewares"
	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
)

// TweetController ツイートに関するコントローラー
type TweetController struct {
	tweetService services.TweetService
}

// NewTweetController TweetControllerを作成
func NewTweetController(tweetService services.TweetService) *TweetController {
	return &TweetController{
		tweetService: tweetService,
	}
}

// CreateTweetRequest ツイート作成リクエスト
type CreateTweetRequest struct {
	Description string `json:"description"`
}

// CreateReplyRequest リプライ作成リクエスト
type CreateReplyRequest struct {
	Comment string `json:"comment"`
}

// List 全ツイートを取得
func (c *TweetController) List(ctx *gin.Context) {
	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	tweets, err := c.tweetService.List(current.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tweets)
}

// Create 新しいツイートを作成
func (c *TweetController) Create(ctx *gin.Context) {
	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req CreateTweetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tweet, err := c.tweetService.Create(current.ID, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tweet)
}

// GetByID ツイートを取得
func (c *TweetController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	tweet, err := c.tweetService.GetByID(id, current.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tweet)
}

// ListReplies ツイートのリプライ一覧を取得
func (c *TweetController) ListReplies(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	replies, err := c.tweetService.ListReplies(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, replies)
}

// CreateReply ツイートへのリプライを作成
func (c *TweetController) CreateReply(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req CreateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	reply, err := c.tweetService.CreateReply(id, current.ID, req.Comment)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reply)
}

// Like ツイートにいいねする
func (c *TweetController) Like(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := c.tweetService.Like(current.ID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Unlike ツイートのいいねを取り消す
func (c *TweetController) Unlike(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	current, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := c.tweetService.Unlike(current.ID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}
