package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/wenliangsu/twitter-api-2023/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageService 画像ホスティングとの連携を管理するサービス
type ImageService interface {
	Upload(file *multipart.FileHeader) (string, error)
}

// imageService Cloudinaryを使ったImageServiceの実装
type imageService struct {
	cld *cloudinary.Cloudinary
	cfg *config.Config
}

// NewImageService ImageServiceを作成
func NewImageService(cfg *config.Config) (ImageService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &imageService{
		cld: cld,
		cfg: cfg,
	}, nil
}

// Upload 画像をアップロードしてURLを返す
func (s *imageService) Upload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("ファイルのオープンに失敗しました: %v", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("ファイルの読み込みに失敗しました: %v", err)
	}

	publicID := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))

	result, err := s.cld.Upload.Upload(context.Background(), buf, uploader.UploadParams{
		Folder:       s.cfg.Cloudinary.Folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("画像のアップロードに失敗しました: %v", err)
	}

	return result.SecureURL, nil
}
