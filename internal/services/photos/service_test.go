package photos

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

func setupPhotoTest(t *testing.T) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Photo{}, &models.Component{}))

	return NewService(NewRepository(db))
}

func TestAddAndListPhotos(t *testing.T) {
	ctx := context.Background()
	service := setupPhotoTest(t)

	componentID := uint(3)
	_, err := service.AddPhoto(ctx, "user-1", PhotoDraft{
		Caption:     "north roof",
		ComponentID: &componentID,
		ObjectKey:   "photos/abc",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)

	_, err = service.AddPhoto(ctx, "user-1", PhotoDraft{
		Caption:   "clubhouse",
		ObjectKey: "photos/def",
	})
	require.NoError(t, err)

	all, err := service.ListPhotos(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	linked, err := service.ListPhotos(ctx, &componentID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "north roof", linked[0].Caption)
}

func TestAddPhotoMintsObjectKey(t *testing.T) {
	ctx := context.Background()
	service := setupPhotoTest(t)

	photo, err := service.AddPhoto(ctx, "user-1", PhotoDraft{Caption: "no key"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(photo.ObjectKey, "photos/"))
}

func TestRemovePhotoOwnership(t *testing.T) {
	ctx := context.Background()
	service := setupPhotoTest(t)

	photo, err := service.AddPhoto(ctx, "user-1", PhotoDraft{ObjectKey: "photos/abc"})
	require.NoError(t, err)

	err = service.RemovePhoto(ctx, photo.ID, "user-2")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))

	require.NoError(t, service.RemovePhoto(ctx, photo.ID, "user-1"))

	_, err = service.GetPhoto(ctx, photo.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
