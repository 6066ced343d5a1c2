// Command assets синхронизирует логотип и изображения страниц с bucket MinIO,
// из которого сервер выдает presigned ссылки.
package main

import (
	"context"
	"flag"
	"time"

	"storefront/internal/app/config"
	"storefront/internal/app/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	dir := flag.String("dir", "assets", "directory with asset files")
	prune := flag.Bool("prune", false, "delete bucket objects that have no local file")
	timeout := flag.Duration("timeout", time.Minute, "sync timeout")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if !cfg.MinIO.Enabled() {
		logrus.Fatal("MINIO_ENDPOINT is empty. Check your .env file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := storage.NewMinIOClient(ctx, cfg.MinIO)
	if err != nil {
		logrus.Fatal(err)
	}

	res, err := storage.SyncAssets(ctx, client, storage.BrandAssets, storage.SyncOptions{Dir: *dir, Prune: *prune})
	if err != nil {
		logrus.Fatal(err)
	}
	for _, name := range res.Missing {
		logrus.Warnf("no local file for %s in %s", name, *dir)
	}

	logrus.Infof("bucket %s: %d uploaded, %d unchanged, %d deleted",
		cfg.MinIO.Bucket, len(res.Uploaded), len(res.Unchanged), len(res.Deleted))
}
