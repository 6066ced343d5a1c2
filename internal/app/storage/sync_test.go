package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBucket struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploads   int
	statErr   error
	uploadErr error
}

func newMemBucket(objects map[string][]byte) *memBucket {
	if objects == nil {
		objects = map[string][]byte{}
	}
	return &memBucket{objects: objects}
}

func (b *memBucket) FileExists(_ context.Context, name string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.statErr != nil {
		return false, b.statErr
	}
	_, ok := b.objects[name]
	return ok, nil
}

func (b *memBucket) DownloadFile(_ context.Context, name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[name]
	if !ok {
		return nil, errors.New("no such key")
	}
	return append([]byte(nil), data...), nil
}

func (b *memBucket) UploadFile(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.uploadErr != nil {
		return b.uploadErr
	}
	b.objects[name] = append([]byte(nil), data...)
	b.uploads++
	return nil
}

func (b *memBucket) DeleteFile(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, name)
	return nil
}

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestSyncAssets_UploadsNewAndChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, AssetLogo, "logo-v2")
	writeAsset(t, dir, AssetTeamHero, "hero")

	bucket := newMemBucket(map[string][]byte{AssetLogo: []byte("logo-v1")})

	res, err := SyncAssets(context.Background(), bucket, BrandAssets, SyncOptions{Dir: dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{AssetLogo, AssetTeamHero}, res.Uploaded)
	assert.Equal(t, []byte("logo-v2"), bucket.objects[AssetLogo])
	assert.Equal(t, []byte("hero"), bucket.objects[AssetTeamHero])
}

func TestSyncAssets_SkipsIdenticalObjects(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, AssetLogo, "logo")
	bucket := newMemBucket(map[string][]byte{AssetLogo: []byte("logo")})

	res, err := SyncAssets(context.Background(), bucket, []string{AssetLogo}, SyncOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{AssetLogo}, res.Unchanged)
	assert.Empty(t, res.Uploaded)
	assert.Zero(t, bucket.uploads)
}

func TestSyncAssets_MissingFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		prune       bool
		wantDeleted []string
		wantKept    bool
	}{
		{name: "kept without prune", prune: false, wantKept: true},
		{name: "deleted with prune", prune: true, wantDeleted: []string{AssetTeamHero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bucket := newMemBucket(map[string][]byte{AssetTeamHero: []byte("old")})

			res, err := SyncAssets(context.Background(), bucket, []string{AssetTeamHero}, SyncOptions{Dir: t.TempDir(), Prune: tt.prune})
			require.NoError(t, err)
			assert.Equal(t, []string{AssetTeamHero}, res.Missing)
			assert.Equal(t, tt.wantDeleted, res.Deleted)

			_, kept := bucket.objects[AssetTeamHero]
			assert.Equal(t, tt.wantKept, kept)
		})
	}
}

func TestSyncAssets_PruneIgnoresAbsentObjects(t *testing.T) {
	t.Parallel()

	res, err := SyncAssets(context.Background(), newMemBucket(nil), BrandAssets, SyncOptions{Dir: t.TempDir(), Prune: true})
	require.NoError(t, err)
	assert.Empty(t, res.Deleted)
	assert.Len(t, res.Missing, 2)
}

func TestSyncAssets_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, AssetLogo, "logo")

	statFails := newMemBucket(nil)
	statFails.statErr = errors.New("connection reset")
	_, err := SyncAssets(context.Background(), statFails, []string{AssetLogo}, SyncOptions{Dir: dir})
	assert.ErrorContains(t, err, "stat logo.png")

	uploadFails := newMemBucket(nil)
	uploadFails.uploadErr = errors.New("access denied")
	_, err = SyncAssets(context.Background(), uploadFails, []string{AssetLogo}, SyncOptions{Dir: dir})
	assert.ErrorContains(t, err, "upload logo.png")
}
