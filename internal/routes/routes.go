package routes

import (
	"log"

	"github.com/wenliangsu/twitter-api-2023/internal/config"
	"github.com/wenliangsu/twitter-api-2023/internal/controllers"
	"github.com/wenliangsu/twitter-api-2023/internal/middlewares"
	"github.com/wenliangsu/twitter-api-2023/internal/repository"
	"github.com/wenliangsu/twitter-api-2023/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	followshipRepo := repository.NewFollowshipRepository(db)

	// 画像ホスティングサービスを作成
	imageService, err := services.NewImageService(cfg)
	if err != nil {
		log.Fatalf("画像サービスの初期化に失敗しました: %v", err)
	}

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo, tweetRepo, replyRepo, followshipRepo, imageService)
	tweetService := services.NewTweetService(tweetRepo, replyRepo)
	followshipService := services.NewFollowshipService(followshipRepo, userRepo)
	adminService := services.NewAdminService(userRepo, tweetRepo, followshipRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	tweetController := controllers.NewTweetController(tweetService)
	followshipController := controllers.NewFollowshipController(followshipService)
	adminController := controllers.NewAdminController(adminService)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authenticated := middlewares.Authenticated(authService)
	authenticatedUser := middlewares.AuthenticatedUser()
	authenticatedAdmin := middlewares.AuthenticatedAdmin()

	// APIグループを作成
	api := r.Group("/api")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// 登録・サインイン（認証不要）
		api.POST("/users", authController.SignUp)
		api.POST("/users/signin", authController.SignIn)
		api.POST("/admin/signin", authController.AdminSignIn)

		// 全ツイートのタイムライン
		api.GET("/tweets", authenticated, tweetController.List)

		// ユーザールート
		users := api.Group("/users", authenticated, authenticatedUser)
		{
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id/account", userController.UpdateAccount)
			users.PUT("/:id/profile", userController.UpdateProfile)
			users.GET("/:id/tweets", userController.GetTweets)
			users.GET("/:id/replied_tweets", userController.GetRepliedTweets)
			users.GET("/:id/likes", userController.GetLikes)
			users.GET("/:id/followers", userController.GetFollowers)
			users.GET("/:id/followings", userController.GetFollowings)
		}

		// ツイートルート
		tweets := api.Group("/tweets", authenticated, authenticatedUser)
		{
			tweets.POST("", tweetController.Create)
			tweets.GET("/:id", tweetController.GetByID)
			tweets.GET("/:id/replies", tweetController.ListReplies)
			tweets.POST("/:id/replies", tweetController.CreateReply)
			tweets.POST("/:id/like", tweetController.Like)
			tweets.POST("/:id/unlike", tweetController.Unlike)
		}

		// フォロールート
		followships := api.Group("/followships", authenticated, authenticatedUser)
		{
			followships.POST("", followshipController.Create)
			followships.DELETE("/:id", followshipController.Delete)
		}

		// 管理者ルート
		admin := api.Group("/admin", authenticated, authenticatedAdmin)
		{
			admin.GET("/users", adminController.ListUsers)
			admin.DELETE("/tweets/:id", adminController.DeleteTweet)
		}
	}

	return r
}
