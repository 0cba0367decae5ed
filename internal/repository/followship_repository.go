package repository

import (
	"github.com/wenliangsu/twitter-api-2023/internal/models"

	"gorm.io/gorm"
)

// FollowshipRepository フォロー関係に関するデータベース操作を行うインターフェース
type FollowshipRepository interface {
	Create(followship *models.Followship) error
	Delete(followerID, followingID uint) (bool, error)
	Exists(followerID, followingID uint) (bool, error)
	ListFollowers(userID uint) ([]models.UserSummary, error)
	ListFollowings(userID uint) ([]models.UserSummary, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowings(userID uint) (int64, error)
}

// followshipRepository FollowshipRepositoryの実装
type followshipRepository struct {
	db *gorm.DB
}

// NewFollowshipRepository FollowshipRepositoryを作成
func NewFollowshipRepository(db *gorm.DB) FollowshipRepository {
	return &followshipRepository{db: db}
}

// Create フォロー関係を作成
func (r *followshipRepository) Create(followship *models.Followship) error {
	return r.db.Create(followship).Error
}

// Delete フォロー関係を削除し、削除された行があったかどうかを返す
func (r *followshipRepository) Delete(followerID, followingID uint) (bool, error) {
	result := r.db.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Followship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists フォロー関係が存在するか確認
func (r *followshipRepository) Exists(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Followship{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowers ユーザーをフォローしているユーザーの要約一覧を取得
func (r *followshipRepository) ListFollowers(userID uint) ([]models.UserSummary, error) {
	var followers []models.UserSummary
	if err := r.db.Model(&models.User{}).
		Select("users.id, users.account, users.avatar, users.name").
		Joins("JOIN followships ON followships.follower_id = users.id").
		Where("followships.following_id = ?", userID).
		Order("followships.created_at DESC").
		Scan(&followers).Error; err != nil {
		return nil, err
	}
	return followers, nil
}

// ListFollowings ユーザーがフォローしているユーザーの要約一覧を取得
func (r *followshipRepository) ListFollowings(userID uint) ([]models.UserSummary, error) {
	var followings []models.UserSummary
	if err := r.db.Model(&models.User{}).
		Select("users.id, users.account, users.avatar, users.name").
		Joins("JOIN followships ON followships.following_id = users.id").
		Where("followships.follower_id = ?", userID).
		Order("followships.created_at DESC").
		Scan(&followings).Error; err != nil {
		return nil, err
	}
	return followings, nil
}

// CountFollowers フォロワー数を取得
func (r *followshipRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Followship{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountFollowings フォロー数を取得
func (r *followshipRepository) CountFollowings(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Followship{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
