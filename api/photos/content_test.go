package photos_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hoaworks/reserve-api/api/photos"
	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/database"
	"github.com/hoaworks/reserve-api/internal/models"
	photosvc "github.com/hoaworks/reserve-api/internal/services/photos"
)

// memStore is an in-memory stand-in for the S3 object store
type memStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(_ context.Context, key, contentType string, content []byte) error {
	m.objects[key] = content
	m.types[key] = contentType
	return nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	content, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", key)
	}
	return content, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

type contentSuite struct {
	t      *testing.T
	router *gin.Engine
	store  *memStore
	userID string
}

func setupContentSuite(t *testing.T, withStore bool) *contentSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Photo{}, &models.Component{}))

	suite := &contentSuite{t: t, userID: "user-alice"}
	deps := &types.Dependencies{
		DB:           &database.DB{DB: db},
		PhotoService: photosvc.NewService(photosvc.NewRepository(db)),
	}
	if withStore {
		suite.store = newMemStore()
		deps.ObjectStore = suite.store
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if suite.userID != "" {
			c.Set("user_id", suite.userID)
		}
		c.Next()
	})
	photos.RegisterRoutes(router.Group("/api/v1/photos"), deps)
	suite.router = router
	return suite
}

func (s *contentSuite) createPhoto() models.Photo {
	body, err := json.Marshal(map[string]interface{}{
		"caption":      "Pool deck cracking",
		"content_type": "image/jpeg",
	})
	require.NoError(s.t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(s.t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created models.Photo
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestUploadAndDownloadPhotoContent(t *testing.T) {
	suite := setupContentSuite(t, true)
	photo := suite.createPhoto()

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/photos/%d/content", photo.ID),
		bytes.NewReader([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	req.Header.Set("Content-Type", "image/jpeg")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0}, suite.store.objects[photo.ObjectKey])
	assert.Equal(t, "image/jpeg", suite.store.types[photo.ObjectKey])

	req = httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/photos/%d/content", photo.ID), nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0}, w.Body.Bytes())
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
}

func TestUploadPhotoContentUploaderOnly(t *testing.T) {
	suite := setupContentSuite(t, true)
	photo := suite.createPhoto()

	suite.userID = "user-bob"
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/photos/%d/content", photo.ID),
		bytes.NewReader([]byte("not my photo")))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, suite.store.objects)
}

func TestUploadPhotoContentStoreNotConfigured(t *testing.T) {
	suite := setupContentSuite(t, false)
	photo := suite.createPhoto()

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/photos/%d/content", photo.ID),
		bytes.NewReader([]byte("unstorable")))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDownloadPhotoContentMissingObject(t *testing.T) {
	suite := setupContentSuite(t, true)
	photo := suite.createPhoto()

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/photos/%d/content", photo.ID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
