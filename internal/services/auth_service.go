package services

import (
	"time"

	"github.com/wenliangsu/twitter-api-2023/internal/apperrors"
	"github.com/wenliangsu/twitter-api-2023/internal/config"
	"github.com/wenliangsu/twitter-api-2023/internal/models"
	"github.com/wenliangsu/twitter-api-2023/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// RoleUser 一般ユーザーのロール
const RoleUser = "user"

// RoleAdmin 管理者のロール
const RoleAdmin = "admin"

// RegisterInput ユーザー登録の入力
type RegisterInput struct {
	Account       string
	Name          string
	Email         string
	Password      string
	CheckPassword string
}

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(input RegisterInput) error
	SignIn(account, password, role string) (*models.User, string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims JWTのペイロード（パスワードを除いたユーザー情報を保持する）
type Claims struct {
	UserID       uint   `json:"id"`
	Account      string `json:"account"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar"`
	CoverImage   string `json:"cover_image"`
	Introduction string `json:"introduction"`
	Role         string `json:"role"`
	jwt.StandardClaims
}

// Register ユーザー登録
// 成功してもトークンは発行しない（自動ログインはしない）
func (s *authService) Register(input RegisterInput) error {
	if input.Account == "" || input.Name == "" || input.Email == "" ||
		input.Password == "" || input.CheckPassword == "" {
		return apperrors.NewValidation("All fields are required")
	}

	if input.Password != input.CheckPassword {
		return apperrors.NewValidation("Passwords do not match")
	}

	// アカウント名の重複を確認
	existing, err := s.userRepo.FindByAccount(input.Account)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if existing != nil {
		return apperrors.NewValidation("This account already exists")
	}

	// メールアドレスの重複を確認
	existing, err = s.userRepo.FindByEmail(input.Email)
	if err != nil {
		return apperrors.WrapInternal(err)
	}
	if existing != nil {
		return apperrors.NewValidation("This email already exists")
	}

	// パスワードをハッシュ化
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.WrapInternal(err)
	}

	user := &models.User{
		Account:  input.Account,
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		return apperrors.WrapInternal(err)
	}

	return nil
}

// SignIn 資格情報を検証し、パスワードを除いたユーザーとトークンを返す
// role はサインイン口が要求するロール（user または admin）
func (s *authService) SignIn(account, password, role string) (*models.User, string, error) {
	if account == "" || password == "" {
		return nil, "", apperrors.NewValidation("All fields are required")
	}

	user, err := s.userRepo.FindByAccount(account)
	if err != nil {
		return nil, "", apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, "", apperrors.NewValidation("Account or password is incorrect")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.NewValidation("Account or password is incorrect")
	}

	// サインイン口のロールと一致しないアカウントは拒否する
	if user.Role != role {
		return nil, "", apperrors.NewAuthorization("Permission denied")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", apperrors.WrapInternal(err)
	}

	// パスワードハッシュはレスポンスにもトークンにも載せない
	user.Password = ""

	return user, token, nil
}

// GetUserFromToken トークンを検証してユーザーを取得
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewValidation("unexpected signing method")
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, apperrors.NewValidation("invalid token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	return user, nil
}

// generateToken パスワードを除いたユーザー情報を含むJWTトークンを生成
func (s *authService) generateToken(user *models.User) (string, error) {
	expirationTime := time.Now().Add(s.config.Auth.TokenExpiry)

	claims := &Claims{
		UserID:       user.ID,
		Account:      user.Account,
		Name:         user.Name,
		Email:        user.Email,
		Avatar:       user.Avatar,
		CoverImage:   user.CoverImage,
		Introduction: user.Introduction,
		Role:         user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}
