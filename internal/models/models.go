package models

import (
	"time"
)

// User ユーザーモデル
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Account      string    `json:"account" gorm:"uniqueIndex;size:191;not null"`
	Name         string    `json:"name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password     string    `json:"-" gorm:"not null"`
	Introduction string    `json:"introduction" gorm:"size:160"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"cover_image"`
	Role         string    `json:"role" gorm:"size:20;not null;default:user"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// リレーション
	Tweets  []Tweet `json:"tweets,omitempty"`
	Replies []Reply `json:"replies,omitempty"`
	Likes   []Like  `json:"likes,omitempty"`

	// カウント (JSONレスポンス用)
	TweetsCount     int64 `json:"tweets_count,omitempty" gorm:"-"`
	FollowersCount  int64 `json:"followers_count,omitempty" gorm:"-"`
	FollowingsCount int64 `json:"followings_count,omitempty" gorm:"-"`
}

// UserSummary フォロワー一覧などで返すユーザーの要約
type UserSummary struct {
	ID      uint   `json:"id"`
	Account string `json:"account"`
	Avatar  string `json:"avatar"`
	Name    string `json:"name"`
}

// Tweet ツイートモデル
type Tweet struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Description string    `json:"description" gorm:"size:140;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// リレーション
	User    *User   `json:"user,omitempty"`
	Replies []Reply `json:"replies,omitempty"`
	Likes   []Like  `json:"likes,omitempty"`

	// カウント (JSONレスポンス用)
	RepliesCount int64 `json:"replies_count" gorm:"-"`
	LikesCount   int64 `json:"likes_count" gorm:"-"`
	IsLiked      bool  `json:"is_liked" gorm:"-"`
}

// Reply リプライモデル
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	TweetID   uint      `json:"tweet_id" gorm:"not null;index"`
	Comment   string    `json:"comment" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	User  *User  `json:"user,omitempty"`
	Tweet *Tweet `json:"tweet,omitempty"`
}

// Like いいねモデル
// ユーザーとツイートの組み合わせはユニーク制約で保護する（同時登録対策）
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_tweet"`
	TweetID   uint      `json:"tweet_id" gorm:"not null;uniqueIndex:idx_likes_user_tweet"`
	CreatedAt time.Time `json:"created_at"`

	// リレーション
	Tweet *Tweet `json:"tweet,omitempty"`
}

// Followship フォロー関係モデル（follower → following の有向エッジ）
type Followship struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"not null;uniqueIndex:idx_followships_edge"`
	FollowingID uint      `json:"following_id" gorm:"not null;uniqueIndex:idx_followships_edge"`
	CreatedAt   time.Time `json:"created_at"`
}
