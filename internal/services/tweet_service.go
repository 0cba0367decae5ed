package services

import (
	"strings"

	"github.com/wenliangsu/twitter-api-2023/internal/apperrors"
	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/repository"
)

// TweetService ツイートといいねに関するサービスインターフェース
type TweetService interface {
	List(viewerID uint) ([]models.Tweet, error)
	Create(userID uint, description string) (*models.Tweet, error)
	GetByID(id, viewerID uint) (*models.Tweet, error)
	CreateReply(tweetID, userID uint, comment string) (*models.Reply, error)
	ListReplies(tweetID uint) ([]models.Reply, error)
	Like(userID, tweetID uint) error
	Unlike(userID, tweetID uint) error
}

// tweetService TweetServiceの実装
type tweetService struct {
	tweetRepo repository.TweetRepository
	replyRepo repository.ReplyRepository
}

// NewTweetService TweetServiceを作成
func NewTweetService(tweetRepo repository.TweetRepository, replyRepo repository.ReplyRepository) TweetService {
	return &tweetService{
		tweetRepo: tweetRepo,
		replyRepo: replyRepo,
	}
}

// annotateTweets 各ツイートにリプライ数・いいね数・閲覧者のいいね状態を付与する
func annotateTweets(tweetRepo repository.TweetRepository, tweets []models.Tweet, viewerID uint) error {
	likedIDs, err := tweetRepo.ListLikedTweetIDs(viewerID)
	if err != nil {
		return err
	}
	liked := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = true
	}

	for i := range tweets {
		repliesCount, err := tweetRepo.CountReplies(tweets[i].ID)
		if err != nil {
			return err
		}
		likesCount, err := tweetRepo.CountLikes(tweets[i].ID)
		if err != nil {
			return err
		}
		tweets[i].RepliesCount = repliesCount
		tweets[i].LikesCount = likesCount
		tweets[i].IsLiked = liked[tweets[i].ID]
	}

	return nil
}

// List 全ツイートを新着順で取得
func (s *tweetService) List(viewerID uint) ([]models.Tweet, error) {
	tweets, err := s.tweetRepo.List()
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

// Create 新しいツイートを作成
func (s *tweetService) Create(userID uint, description string) (*models.Tweet, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidation("Description is required")
	}
	if len([]rune(description)) > 140 {
		return nil, apperrors.NewValidation("Description is longer than 140 characters")
	}

	tweet := &models.Tweet{
		UserID:      userID,
		Description: description,
	}
	if err := s.tweetRepo.Create(tweet); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	return tweet, nil
}

// GetByID ツイートをカウント・いいね状態付きで取得
func (s *tweetService) GetByID(id, viewerID uint) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if tweet == nil {
		return nil, apperrors.NewNotFound("Tweet not found")
	}

	tweets := []models.Tweet{*tweet}
	if err := annotateTweets(s.tweetRepo, tweets, viewerID); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	return &tweets[0], nil
}

// CreateReply ツイートへのリプライを作成
func (s *tweetService) CreateReply(tweetID, userID uint, comment string) (*models.Reply, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.NewValidation("Comment is required")
	}

	tweet, err := s.tweetRepo.FindByID(tweetID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if tweet == nil {
		return nil, apperrors.NewNotFound("Tweet not found")
	}

	reply := &models.Reply{
		UserID:  userID,
		TweetID: tweetID,
		Comment: comment,
	}
	if err := s.replyRepo.Create(reply); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	return reply, nil
}

// ListReplies ツイートのリプライ一覧を取得
func (s *tweetService) ListReplies(tweetID uint) ([]models.Reply, error) {
	tweet, err := s.tweetRepo.FindByID(tweetID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if tweet == nil {
		return nil, apperrors.NewNotFound("Tweet not found")
	}

	replies, err := s.replyRepo.ListByTweet(tweetID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	if replies == nil {
		replies = []models.Reply{}
	}
	return replies, nil
}

// Like ツイートにいいねする
func (s *tweetService) Like(userID, tweetID uint) error {
	tweet, err := s.tweetRepo.FindByID(tweetID)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if tweet == nil {
		return apperrors.NewNotFound("Tweet not found")
	}

	liked, err := s.tweetRepo.HasLiked(userID, tweetID)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if liked {
		return apperrors.NewValidation("You have already liked this tweet")
	}

	like := &models.Like{
		UserID:  userID,
		TweetID: tweetID,
	}
	if err := s.tweetRepo.CreateLike(like); err != nil {
		return apperrors.WrapInternal(err)
	}

	return nil
}

// Unlike ツイートのいいねを取り消す
func (s *tweetService) Unlike(userID, tweetID uint) error {
	tweet, err := s.tweetRepo.FindByID(tweetID)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if tweet == nil {
		return apperrors.NewNotFound("Tweet not found")
	}

	deleted, err := s.tweetRepo.DeleteLike(userID, tweetID)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if !deleted {
		return apperrors.NewValidation("You haven't liked this tweet")
	}

	return nil
}
