package services

import (
	"mime/multipart"
	"strings"

	"github.com/wenliangsu/twitter-api-2023/internal/apperrors"
	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UpdateAccountInput アカウント設定更新の入力
// パスワードは空欄のままなら変更しない
type UpdateAccountInput struct {
	Account       string
	Name          string
	Email         string
	Password      string
	CheckPassword string
}

// UpdateProfileInput プロフィール更新の入力
// 画像ファイルはnilの場合に既存の値を維持する
type UpdateProfileInput struct {
	Name         string
	Introduction string
	Avatar       *multipart.FileHeader
	CoverImage   *multipart.FileHeader
}

// Profile フォロワー・フォロー一覧付きのユーザープロフィール
type Profile struct {
	models.User
	Followers  []models.UserSummary `json:"followers"`
	Followings []models.UserSummary `json:"followings"`
}

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	GetProfile(id uint) (*Profile, error)
	UpdateAccount(targetID, actingID uint, input UpdateAccountInput) (*models.User, error)
	UpdateProfile(targetID, actingID uint, input UpdateProfileInput) (*models.User, error)
	ListTweets(userID, viewerID uint) ([]models.Tweet, error)
	ListReplies(userID uint) ([]models.Reply, error)
	ListLikes(userID uint) ([]models.Like, error)
	ListFollowers(userID uint) ([]models.UserSummary, error)
	ListFollowings(userID uint) ([]models.UserSummary, error)
}

// userService UserServiceの実装
type userService struct {
	userRepo       repository.UserRepository
	tweetRepo      repository.TweetRepository
	replyRepo      repository.ReplyRepository
	followshipRepo repository.FollowshipRepository
	imageService   ImageService
}

// NewUserService UserServiceを作成
func NewUserService(
	userRepo repository.UserRepository,
	tweetRepo repository.TweetRepository,
	replyRepo repository.ReplyRepository,
	followshipRepo repository.FollowshipRepository,
	imageService ImageService,
) UserService {
	return &userService{
		userRepo:       userRepo,
		tweetRepo:      tweetRepo,
		replyRepo:      replyRepo,
		followshipRepo: followshipRepo,
		imageService:   imageService,
	}
}

// GetProfile ユーザーのプロフィールをフォロワー・フォロー一覧付きで取得
func (s *userService) GetProfile(id uint) (*Profile, error) {
	user, err := s.userRepo.FindProfile(id)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	followers, err := s.followshipRepo.ListFollowers(id)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	followings, err := s.followshipRepo.ListFollowings(id)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	if followers == nil {
		followers = []models.UserSummary{}
	}
	if followings == nil {
		followings = []models.UserSummary{}
	}

	return &Profile{
		User:       *user,
		Followers:  followers,
		Followings: followings,
	}, nil
}

// UpdateAccount アカウント設定（account/name/email/password）を更新
// 対象ユーザー本人以外からの更新は拒否する
func (s *userService) UpdateAccount(targetID, actingID uint, input UpdateAccountInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	if actingID != user.ID {
		return nil, apperrors.NewAuthorization("You are not authorized to edit this user")
	}

	if strings.TrimSpace(input.Account) == "" ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.NewValidation("All fields are required")
	}

	if len([]rune(input.Name)) > 50 {
		return nil, apperrors.NewValidation("Name is longer than 50 characters")
	}

	// 別のユーザーが使用中のアカウント名は拒否する
	if input.Account != user.Account {
		existing, err := s.userRepo.FindByAccount(input.Account)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		if existing != nil {
			return nil, apperrors.NewValidation("This account already exists")
		}
	}

	// 別のユーザーが使用中のメールアドレスは拒否する
	if input.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(input.Email)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		if existing != nil {
			return nil, apperrors.NewValidation("This email already exists")
		}
	}

	// パスワードは空欄でなければ再ハッシュする
	// 空白のみの入力は「未指定」として扱い、既存のハッシュを維持する
	if strings.TrimSpace(input.Password) != "" || strings.TrimSpace(input.CheckPassword) != "" {
		if input.Password != input.CheckPassword {
			return nil, apperrors.NewValidation("Passwords do not match")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		user.Password = string(hashed)
	}

	user.Account = input.Account
	user.Name = input.Name
	user.Email = input.Email

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	return user, nil
}

// UpdateProfile プロフィール（name/introduction/画像）を更新
// 新しい画像が無い場合は既存のURLを維持する
func (s *userService) UpdateProfile(targetID, actingID uint, input UpdateProfileInput) (*models.User, error) {
	if actingID != targetID {
		return nil, apperrors.NewAuthorization("You are not authorized to edit this user")
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidation("Name is required")
	}
	if len([]rune(input.Name)) > 50 {
		return nil, apperrors.NewValidation("Name is longer than 50 characters")
	}
	if len([]rune(input.Introduction)) > 160 {
		return nil, apperrors.NewValidation("Introduction is longer than 160 characters")
	}

	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	// 画像を外部ホスティングへアップロード
	if input.Avatar != nil {
		url, err := s.imageService.Upload(input.Avatar)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		user.Avatar = url
	}
	if input.CoverImage != nil {
		url, err := s.imageService.Upload(input.CoverImage)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		user.CoverImage = url
	}

	user.Name = input.Name
	user.Introduction = input.Introduction

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	return user, nil
}

// ListTweets ユーザーのツイートを新着順で取得
// 各ツイートにリプライ数・いいね数・閲覧者のいいね状態を付与する
// ツイートが無い場合はエラーではなく空のリストを返す
func (s *userService) ListTweets(userID, viewerID uint) ([]models.Tweet, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	tweets, err := s.tweetRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	if err := annotateTweets(s.tweetRepo, tweets, viewerID); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	if tweets == nil {
		tweets = []models.Tweet{}
	}
	return tweets, nil
}

// ListReplies ユーザーのリプライを親ツイート・投稿者付きで新着順に取得
func (s *userService) ListReplies(userID uint) ([]models.Reply, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	replies, err := s.replyRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	if replies == nil {
		replies = []models.Reply{}
	}
	return replies, nil
}

// ListLikes ユーザーがいいねしたツイートを新着順で取得
func (s *userService) ListLikes(userID uint) ([]models.Like, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	likes, err := s.tweetRepo.ListLikesByUser(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	// いいね済み一覧なので各ツイートのいいね状態は常にtrue
	for i := range likes {
		if likes[i].Tweet == nil {
			continue
		}
		repliesCount, err := s.tweetRepo.CountReplies(likes[i].TweetID)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		likesCount, err := s.tweetRepo.CountLikes(likes[i].TweetID)
		if err != nil {
			return nil, apperrors.WrapInternal(err)
		}
		likes[i].Tweet.RepliesCount = repliesCount
		likes[i].Tweet.LikesCount = likesCount
		likes[i].Tweet.IsLiked = true
	}

	if likes == nil {
		likes = []models.Like{}
	}
	return likes, nil
}

// ListFollowers ユーザーのフォロワー一覧を取得
func (s *userService) ListFollowers(userID uint) ([]models.UserSummary, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	followers, err := s.followshipRepo.ListFollowers(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if followers == nil {
		followers = []models.UserSummary{}
	}
	return followers, nil
}

// ListFollowings ユーザーのフォロー一覧を取得
func (s *userService) ListFollowings(userID uint) ([]models.UserSummary, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	followings, err := s.followshipRepo.ListFollowings(userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if followings == nil {
		followings = []models.UserSummary{}
	}
	return followings, nil
}
