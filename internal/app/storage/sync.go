package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// BrandAssets - объекты bucket, на которые ссылается разметка
var BrandAssets = []string{AssetLogo, AssetTeamHero}

// objectStore - часть MinIOClient, нужная для синхронизации
type objectStore interface {
	FileExists(ctx context.Context, objectName string) (bool, error)
	DownloadFile(ctx context.Context, objectName string) ([]byte, error)
	UploadFile(ctx context.Context, objectName string, fileData []byte) error
	DeleteFile(ctx context.Context, objectName string) error
}

var _ objectStore = (*MinIOClient)(nil)

type SyncOptions struct {
	Dir   string
	Prune bool // удалять объекты, для которых нет локального файла
}

type SyncResult struct {
	Uploaded  []string
	Unchanged []string
	Deleted   []string
	Missing   []string
}

// SyncAssets приводит bucket к содержимому каталога. Объект с теми же байтами не перезаписывается
func SyncAssets(ctx context.Context, store objectStore, names []string, opts SyncOptions) (SyncResult, error) {
	var res SyncResult

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(opts.Dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			res.Missing = append(res.Missing, name)
			if opts.Prune {
				deleted, err := pruneObject(ctx, store, name)
				if err != nil {
					return res, err
				}
				if deleted {
					res.Deleted = append(res.Deleted, name)
				}
			}
			continue
		}
		if err != nil {
			return res, fmt.Errorf("read %s: %w", name, err)
		}

		same, err := sameObject(ctx, store, name, data)
		if err != nil {
			return res, err
		}
		if same {
			res.Unchanged = append(res.Unchanged, name)
			continue
		}

		if err := store.UploadFile(ctx, name, data); err != nil {
			return res, fmt.Errorf("upload %s: %w", name, err)
		}
		res.Uploaded = append(res.Uploaded, name)
	}

	logrus.WithFields(logrus.Fields{
		"uploaded":  len(res.Uploaded),
		"unchanged": len(res.Unchanged),
		"deleted":   len(res.Deleted),
		"missing":   len(res.Missing),
	}).Info("assets synced")

	return res, nil
}

func sameObject(ctx context.Context, store objectStore, name string, data []byte) (bool, error) {
	exists, err := store.FileExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	if !exists {
		return false, nil
	}

	current, err := store.DownloadFile(ctx, name)
	if err != nil {
		return false, fmt.Errorf("download %s: %w", name, err)
	}
	return bytes.Equal(current, data), nil
}

func pruneObject(ctx context.Context, store objectStore, name string) (bool, error) {
	exists, err := store.FileExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	if !exists {
		return false, nil
	}
	if err := store.DeleteFile(ctx, name); err != nil {
		return false, fmt.Errorf("delete %s: %w", name, err)
	}
	return true, nil
}
