package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wenliangsu/twitter-api-2023/internal/apperrors"
	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter(userService services.UserService, current *models.User) *gin.Engine {
	router := gin.New()
	controller := NewUserController(userService)

	users := router.Group("/api/users", setCurrentUser(current))
	users.GET("/:id", controller.GetUser)
	users.PUT("/:id/account", controller.UpdateAccount)
	users.GET("/:id/tweets", controller.GetTweets)
	return router
}

func TestGetUserEndpoint(t *testing.T) {
	current := &models.User{ID: 7, Account: "viewer", Role: services.RoleUser}

	t.Run("プロフィールが200で返る", func(t *testing.T) {
		stub := &stubUserService{
			getProfileFn: func(id uint) (*services.Profile, error) {
				return &services.Profile{
					User:       models.User{ID: id, Account: "alice", Password: "hashed-secret"},
					Followers:  []models.UserSummary{{ID: 2, Account: "bob"}},
					Followings: []models.UserSummary{},
				}, nil
			},
		}
		router := newUserRouter(stub, current)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"account":"alice"`)
		assert.Contains(t, w.Body.String(), `"followers"`)
		// パスワードハッシュはレスポンスに含まれない
		assert.NotContains(t, w.Body.String(), "hashed-secret")
	})

	t.Run("数値でないidは400が返る", func(t *testing.T) {
		router := newUserRouter(&stubUserService{}, current)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid id"}`, w.Body.String())
	})

	t.Run("存在しないユーザーは404が返る", func(t *testing.T) {
		stub := &stubUserService{
			getProfileFn: func(id uint) (*services.Profile, error) {
				return nil, apperrors.NewNotFound("User not found")
			},
		}
		router := newUserRouter(stub, current)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/99", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
	})
}

func TestUpdateAccountEndpoint(t *testing.T) {
	current := &models.User{ID: 7, Account: "alice", Role: services.RoleUser}

	t.Run("対象IDと操作ユーザーIDがサービスへ渡る", func(t *testing.T) {
		var gotTarget, gotActing uint
		var gotInput services.UpdateAccountInput
		stub := &stubUserService{
			updateAccountFn: func(targetID, actingID uint, input services.UpdateAccountInput) (*models.User, error) {
				gotTarget = targetID
				gotActing = actingID
				gotInput = input
				return &models.User{ID: targetID, Account: input.Account, Name: input.Name, Email: input.Email, Password: "hashed-secret"}, nil
			},
		}
		router := newUserRouter(stub, current)

		body := `{"account":"alice2","name":"Alice","email":"a2@x.com","password":"","checkPassword":""}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/7/account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), gotTarget)
		assert.Equal(t, uint(7), gotActing)
		assert.Equal(t, "alice2", gotInput.Account)
		assert.Contains(t, w.Body.String(), `"message":"User is updated successfully"`)
		assert.NotContains(t, w.Body.String(), "hashed-secret")
	})

	t.Run("本人以外の更新は400とメッセージが返る", func(t *testing.T) {
		stub := &stubUserService{
			updateAccountFn: func(targetID, actingID uint, input services.UpdateAccountInput) (*models.User, error) {
				return nil, apperrors.NewAuthorization("You are not authorized to edit this user")
			},
		}
		router := newUserRouter(stub, current)

		body := `{"account":"bob","name":"Bob","email":"b@x.com"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/8/account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"You are not authorized to edit this user"}`, w.Body.String())
	})
}

func TestGetUserTweetsEndpoint(t *testing.T) {
	current := &models.User{ID: 7, Account: "viewer", Role: services.RoleUser}

	t.Run("閲覧者IDがサービスへ渡る", func(t *testing.T) {
		var gotUser, gotViewer uint
		stub := &stubUserService{
			listTweetsFn: func(userID, viewerID uint) ([]models.Tweet, error) {
				gotUser = userID
				gotViewer = viewerID
				return []models.Tweet{{ID: 1, UserID: userID, Description: "hello", IsLiked: true}}, nil
			},
		}
		router := newUserRouter(stub, current)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/3/tweets", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), gotUser)
		assert.Equal(t, uint(7), gotViewer)
		assert.Contains(t, w.Body.String(), `"is_liked":true`)
	})

	t.Run("ツイートが無い場合は空の配列が返る", func(t *testing.T) {
		stub := &stubUserService{
			listTweetsFn: func(userID, viewerID uint) ([]models.Tweet, error) {
				return []models.Tweet{}, nil
			},
		}
		router := newUserRouter(stub, current)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/3/tweets", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
