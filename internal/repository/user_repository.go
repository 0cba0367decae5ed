package repository

import (
	"errors"

	"github.com/wenliangsu/twitter-api-2023/internal/models"

	"gorm.io/gorm"
)

// UserRepository ユーザーに関するデータベース操作を行うインターフェース
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByAccount(account string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindProfile(id uint) (*models.User, error)
	Update(user *models.User) error
	List() ([]models.User, error)
}

// userRepository UserRepositoryの実装
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository UserRepositoryを作成
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 新しいユーザーを作成
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID IDでユーザーを検索
// 見つからない場合は (nil, nil) を返し、DBエラーのみをエラーとして返す
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByAccount アカウント名でユーザーを検索
func (r *userRepository) FindByAccount(account string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("account = ?", account).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail メールアドレスでユーザーを検索
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindProfile プロフィール表示用にツイート・リプライ・いいねを含めてユーザーを取得
func (r *userRepository) FindProfile(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.
		Preload("Tweets", func(db *gorm.DB) *gorm.DB {
			return db.Order("tweets.created_at DESC")
		}).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at DESC")
		}).
		Preload("Likes").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Update ユーザー情報を更新
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// List 全ユーザーを取得（管理者用）
func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
