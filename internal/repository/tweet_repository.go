package repository

import (
	"errors"

	"github.com/wenliangsu/twitter-api-2023/internal/models"

	"gorm.io/gorm"
)

// TweetRepository ツイートといいねに関するデータベース操作を行うインターフェース
type TweetRepository interface {
	Create(tweet *models.Tweet) error
	FindByID(id uint) (*models.Tweet, error)
	List() ([]models.Tweet, error)
	ListByUser(userID uint) ([]models.Tweet, error)
	Delete(id uint) error
	CountByUser(userID uint) (int64, error)
	CountReplies(tweetID uint) (int64, error)
	CountLikes(tweetID uint) (int64, error)
	CreateLike(like *models.Like) error
	DeleteLike(userID, tweetID uint) (bool, error)
	HasLiked(userID, tweetID uint) (bool, error)
	ListLikedTweetIDs(userID uint) ([]uint, error)
	ListLikesByUser(userID uint) ([]models.Like, error)
}

// tweetRepository TweetRepositoryの実装
type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository TweetRepositoryを作成
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

// Create 新しいツイートを作成
func (r *tweetRepository) Create(tweet *models.Tweet) error {
	return r.db.Create(tweet).Error
}

// FindByID IDでツイートを検索
// 見つからない場合は (nil, nil) を返す
func (r *tweetRepository) FindByID(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.Preload("User").First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tweet, nil
}

// List 全ツイートを新着順で取得
func (r *tweetRepository) List() ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.
		Preload("User").
		Order("created_at DESC").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// ListByUser ユーザーのツイートを新着順で取得
func (r *tweetRepository) ListByUser(userID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.
		Where("user_id = ?", userID).
		Preload("User").
		Order("created_at DESC").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// Delete ツイートをリプライ・いいねごと削除（管理者用）
func (r *tweetRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", id).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tweet{}, id).Error
	})
}

// CountByUser ユーザーのツイート数を取得
func (r *tweetRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Tweet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountReplies ツイートのリプライ数を取得
func (r *tweetRepository) CountReplies(tweetID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Reply{}).Where("tweet_id = ?", tweetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountLikes ツイートのいいね数を取得
func (r *tweetRepository) CountLikes(tweetID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("tweet_id = ?", tweetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateLike いいねを作成
func (r *tweetRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike いいねを削除し、削除された行があったかどうかを返す
func (r *tweetRepository) DeleteLike(userID, tweetID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&models.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// HasLiked ユーザーがツイートにいいねしているか確認
func (r *tweetRepository) HasLiked(userID, tweetID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListLikedTweetIDs ユーザーがいいねしたツイートIDの一覧を取得
func (r *tweetRepository) ListLikedTweetIDs(userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.Like{}).
		Where("user_id = ?", userID).
		Pluck("tweet_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ListLikesByUser ユーザーのいいねをツイート付きで新着順に取得
func (r *tweetRepository) ListLikesByUser(userID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.
		Where("user_id = ?", userID).
		Preload("Tweet.User").
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
