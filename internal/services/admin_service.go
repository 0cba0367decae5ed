package services

import (
	"github.com/wenliangsu/twitter-api-2023/internal/apperrors"
	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/repository"
)

// AdminService 管理者操作に関するサービスインターフェース
type AdminService interface {
	ListUsers() ([]models.User, error)
	DeleteTweet(id uint) error
}

// adminService AdminServiceの実装
type adminService struct {
	userRepo       repository.UserRepository
	tweetRepo      repository.TweetRepository
	followshipRepo repository.FollowshipRepository
}

// NewAdminService AdminServiceを作成
func NewAdminService(
	userRepo repository.UserRepository,
	tweetRepo repository.TweetRepository,
	followshipRepo repository.FollowshipRepository,
) AdminService {
	return &adminService{
		userRepo:       userRepo,
		tweetRepo:      tweetRepo,
		followshipRepo: followshipRepo,
	}
}

// ListUsers 全ユーザーをツイート数・フォロワー数付きで取得
func (s *adminService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	for i := range users {
		tweetsCount, err := s.tweetRepo.CountByUser(users[i].ID)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		followersCount, err := s.followshipRepo.CountFollowers(users[i].ID)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		followingsCount, err := s.followshipRepo.CountFollowings(users[i].ID)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		users[i].TweetsCount = tweetsCount
		users[i].FollowersCount = followersCount
		users[i].FollowingsCount = followingsCount
	}

	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// DeleteTweet ツイートをリプライ・いいねごと削除
func (s *adminService) DeleteTweet(id uint) error {
	tweet, err := s.tweetRepo.FindByID(id)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if tweet == nil {
		return apperrors.NewNotFound("Tweet not found")
	}

	if err := s.tweetRepo.Delete(id); err != nil {
		return apperrors.WrapInternal(err)
	}

	return nil
}
