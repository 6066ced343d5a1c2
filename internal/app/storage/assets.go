package storage

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Имена фирменных изображений
const (
	AssetLogo     = "logo.png"
	AssetTeamHero = "team-hero.png"
)

// DefaultAssetURLs - публичные адреса изображений, используются без MinIO
var DefaultAssetURLs = map[string]string{
	AssetLogo:     "https://app.legistant.com/img/largeLogobothv.png",
	AssetTeamHero: "https://legistant.com/wp-content/uploads/2019/11/img-team-2-1.png",
}

// Assets отдает URL фирменных изображений для разметки
type Assets interface {
	URL(ctx context.Context, name string) string
}

// StaticAssets - фиксированные URL
type StaticAssets map[string]string

func (s StaticAssets) URL(_ context.Context, name string) string {
	return s[name]
}

// presigner - часть MinIOClient, нужная для подписи ссылок
type presigner interface {
	GetFileURL(ctx context.Context, objectName string) (string, error)
}

// MinIOAssets подписывает ссылки на объекты bucket; при ошибке отдает статический URL
type MinIOAssets struct {
	client   presigner
	fallback StaticAssets
}

func NewMinIOAssets(client *MinIOClient, fallback StaticAssets) *MinIOAssets {
	return &MinIOAssets{client: client, fallback: fallback}
}

func (a *MinIOAssets) URL(ctx context.Context, name string) string {
	url, err := a.client.GetFileURL(ctx, name)
	if err != nil {
		logrus.WithError(err).WithField("asset", name).Warn("presign failed, using static asset url")
		return a.fallback.URL(ctx, name)
	}
	return url
}
