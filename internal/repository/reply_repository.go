package repository

import (
	"github.com/wenliangsu/twitter-api-2023/internal/models"

	"gorm.io/gorm"
)

// ReplyRepository リプライに関するデータベース操作を行うインターフェース
type ReplyRepository interface {
	Create(reply *models.Reply) error
	ListByTweet(tweetID uint) ([]models.Reply, error)
	ListByUser(userID uint) ([]models.Reply, error)
}

// replyRepository ReplyRepositoryの実装
type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository ReplyRepositoryを作成
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

// Create 新しいリプライを作成
func (r *replyRepository) Create(reply *models.Reply) error {
	return r.db.Create(reply).Error
}

// ListByTweet ツイートのリプライを時系列順で取得
func (r *replyRepository) ListByTweet(tweetID uint) ([]models.Reply, error) {
	var replies []models.Reply
	if err := r.db.
		Where("tweet_id = ?", tweetID).
		Preload("User").
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// ListByUser ユーザーのリプライを親ツイートと投稿者付きで新着順に取得
func (r *replyRepository) ListByUser(userID uint) ([]models.Reply, error) {
	var replies []models.Reply
	if err := r.db.
		Where("user_id = ?", userID).
		Preload("Tweet").
		Preload("Tweet.User").
		Order("created_at DESC").
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}
