package services

import (
	"github.com/wenliangsu/twitter-api-2023/internal/apperrors"
	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/repository"
)

// FollowshipService フォロー関係に関するサービスインターフェース
type FollowshipService interface {
	Follow(followerID, followingID uint) error
	Unfollow(followerID, followingID uint) error
}

// followshipService FollowshipServiceの実装
type followshipService struct {
	followshipRepo repository.FollowshipRepository
	userRepo       repository.UserRepository
}

// NewFollowshipService FollowshipServiceを作成
func NewFollowshipService(followshipRepo repository.FollowshipRepository, userRepo repository.UserRepository) FollowshipService {
	return &followshipService{
		followshipRepo: followshipRepo,
		userRepo:       userRepo,
	}
}

// Follow ユーザーをフォローする
func (s *followshipService) Follow(followerID, followingID uint) error {
	if followerID == followingID {
		return apperrors.NewValidation("You cannot follow yourself")
	}

	target, err := s.userRepo.FindByID(followingID)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if target == nil {
		return apperrors.NewNotFound("User not found")
	}

	exists, err := s.followshipRepo.Exists(followerID, followingID)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if exists {
		return apperrors.NewValidation("You are already following this user")
	}

	followship := &models.Followship{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := s.followshipRepo.Create(followship); err != nil {
		return apperrors.WrapInternal(err)
	}

	return nil
}

// Unfollow ユーザーのフォローを解除する
func (s *followshipService) Unfollow(followerID, followingID uint) error {
	deleted, err := s.followshipRepo.Delete(followerID, followingID)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if !deleted {
		return apperrors.NewNotFound("Followship not found")
	}

	return nil
}
