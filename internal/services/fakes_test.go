package services

import (
	"fmt"
	"mime/multipart"
	"sort"

	"github.com/wenliangsu/twitter-api-2023/internal/models"
)

// fakeUserRepo テスト用のインメモリUserRepository
type fakeUserRepo struct {
	users   map[uint]*models.User
	nextID  uint
	created []*models.User
	updated []*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]*models.User{}}
	for _, u := range users {
		cp := *u
		repo.users[u.ID] = &cp
		if u.ID > repo.nextID {
			repo.nextID = u.ID
		}
	}
	return repo
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByAccount(account string) (*models.User, error) {
	for _, u := range f.users {
		if u.Account == account {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindProfile(id uint) (*models.User, error) {
	return f.FindByID(id)
}

func (f *fakeUserRepo) Update(user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	f.updated = append(f.updated, &cp)
	return nil
}

func (f *fakeUserRepo) List() ([]models.User, error) {
	ids := make([]uint, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *f.users[id])
	}
	return users, nil
}

// fakeTweetRepo テスト用のインメモリTweetRepository
type fakeTweetRepo struct {
	tweets       []models.Tweet
	nextID       uint
	replyCounts  map[uint]int64
	likeCounts   map[uint]int64
	likes        map[uint]map[uint]bool
	likesByUser  map[uint][]models.Like
	createdLikes []*models.Like
	deletedIDs   []uint
}

func newFakeTweetRepo(tweets ...models.Tweet) *fakeTweetRepo {
	repo := &fakeTweetRepo{
		tweets:      tweets,
		replyCounts: map[uint]int64{},
		likeCounts:  map[uint]int64{},
		likes:       map[uint]map[uint]bool{},
		likesByUser: map[uint][]models.Like{},
	}
	for _, tw := range tweets {
		if tw.ID > repo.nextID {
			repo.nextID = tw.ID
		}
	}
	return repo
}

func (f *fakeTweetRepo) addLike(userID, tweetID uint) {
	if f.likes[userID] == nil {
		f.likes[userID] = map[uint]bool{}
	}
	f.likes[userID][tweetID] = true
}

func (f *fakeTweetRepo) Create(tweet *models.Tweet) error {
	f.nextID++
	tweet.ID = f.nextID
	f.tweets = append(f.tweets, *tweet)
	return nil
}

func (f *fakeTweetRepo) FindByID(id uint) (*models.Tweet, error) {
	for i := range f.tweets {
		if f.tweets[i].ID == id {
			cp := f.tweets[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTweetRepo) List() ([]models.Tweet, error) {
	out := make([]models.Tweet, len(f.tweets))
	copy(out, f.tweets)
	return out, nil
}

func (f *fakeTweetRepo) ListByUser(userID uint) ([]models.Tweet, error) {
	var out []models.Tweet
	for _, tw := range f.tweets {
		if tw.UserID == userID {
			out = append(out, tw)
		}
	}
	return out, nil
}

func (f *fakeTweetRepo) Delete(id uint) error {
	f.deletedIDs = append(f.deletedIDs, id)
	for i := range f.tweets {
		if f.tweets[i].ID == id {
			f.tweets = append(f.tweets[:i], f.tweets[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeTweetRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, tw := range f.tweets {
		if tw.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTweetRepo) CountReplies(tweetID uint) (int64, error) {
	return f.replyCounts[tweetID], nil
}

func (f *fakeTweetRepo) CountLikes(tweetID uint) (int64, error) {
	return f.likeCounts[tweetID], nil
}

func (f *fakeTweetRepo) CreateLike(like *models.Like) error {
	f.addLike(like.UserID, like.TweetID)
	f.createdLikes = append(f.createdLikes, like)
	return nil
}

func (f *fakeTweetRepo) DeleteLike(userID, tweetID uint) (bool, error) {
	if !f.likes[userID][tweetID] {
		return false, nil
	}
	delete(f.likes[userID], tweetID)
	return true, nil
}

func (f *fakeTweetRepo) HasLiked(userID, tweetID uint) (bool, error) {
	return f.likes[userID][tweetID], nil
}

func (f *fakeTweetRepo) ListLikedTweetIDs(userID uint) ([]uint, error) {
	var ids []uint
	for id := range f.likes[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeTweetRepo) ListLikesByUser(userID uint) ([]models.Like, error) {
	return f.likesByUser[userID], nil
}

// fakeReplyRepo テスト用のインメモリReplyRepository
type fakeReplyRepo struct {
	replies []models.Reply
	nextID  uint
}

func newFakeReplyRepo(replies ...models.Reply) *fakeReplyRepo {
	repo := &fakeReplyRepo{replies: replies}
	for _, rp := range replies {
		if rp.ID > repo.nextID {
			repo.nextID = rp.ID
		}
	}
	return repo
}

func (f *fakeReplyRepo) Create(reply *models.Reply) error {
	f.nextID++
	reply.ID = f.nextID
	f.replies = append(f.replies, *reply)
	return nil
}

func (f *fakeReplyRepo) ListByTweet(tweetID uint) ([]models.Reply, error) {
	var out []models.Reply
	for _, rp := range f.replies {
		if rp.TweetID == tweetID {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (f *fakeReplyRepo) ListByUser(userID uint) ([]models.Reply, error) {
	var out []models.Reply
	for _, rp := range f.replies {
		if rp.UserID == userID {
			out = append(out, rp)
		}
	}
	return out, nil
}

// fakeFollowshipRepo テスト用のインメモリFollowshipRepository
type fakeFollowshipRepo struct {
	edges   map[[2]uint]bool
	created []*models.Followship
}

func newFakeFollowshipRepo() *fakeFollowshipRepo {
	return &fakeFollowshipRepo{edges: map[[2]uint]bool{}}
}

func (f *fakeFollowshipRepo) follow(followerID, followingID uint) {
	f.edges[[2]uint{followerID, followingID}] = true
}

func (f *fakeFollowshipRepo) Create(followship *models.Followship) error {
	f.follow(followship.FollowerID, followship.FollowingID)
	f.created = append(f.created, followship)
	return nil
}

func (f *fakeFollowshipRepo) Delete(followerID, followingID uint) (bool, error) {
	key := [2]uint{followerID, followingID}
	if !f.edges[key] {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

func (f *fakeFollowshipRepo) Exists(followerID, followingID uint) (bool, error) {
	return f.edges[[2]uint{followerID, followingID}], nil
}

func (f *fakeFollowshipRepo) ListFollowers(userID uint) ([]models.UserSummary, error) {
	var out []models.UserSummary
	for edge := range f.edges {
		if edge[1] == userID {
			out = append(out, models.UserSummary{ID: edge[0]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFollowshipRepo) ListFollowings(userID uint) ([]models.UserSummary, error) {
	var out []models.UserSummary
	for edge := range f.edges {
		if edge[0] == userID {
			out = append(out, models.UserSummary{ID: edge[1]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFollowshipRepo) CountFollowers(userID uint) (int64, error) {
	followers, _ := f.ListFollowers(userID)
	return int64(len(followers)), nil
}

func (f *fakeFollowshipRepo) CountFollowings(userID uint) (int64, error) {
	followings, _ := f.ListFollowings(userID)
	return int64(len(followings)), nil
}

// fakeImageService テスト用のImageService
type fakeImageService struct {
	uploads []string
}

func (f *fakeImageService) Upload(file *multipart.FileHeader) (string, error) {
	f.uploads = append(f.uploads, file.Filename)
	return fmt.Sprintf("https://images.example.com/%s", file.Filename), nil
}
