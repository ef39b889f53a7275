package documents_test

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

	"github.com/hoaworks/reserve-api/api/documents"
	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/database"
	"github.com/hoaworks/reserve-api/internal/models"
	documentsvc "github.com/hoaworks/reserve-api/internal/services/documents"
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

func setupContentSuite(t *testing.T) *contentSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Document{}, &models.Annotation{}, &models.AnnotationReply{}))

	store := newMemStore()
	deps := &types.Dependencies{
		DB:              &database.DB{DB: db},
		DocumentService: documentsvc.NewService(documentsvc.NewRepository(db)),
		ObjectStore:     store,
	}

	suite := &contentSuite{t: t, store: store, userID: "user-alice"}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if suite.userID != "" {
			c.Set("user_id", suite.userID)
		}
		c.Next()
	})
	documents.RegisterRoutes(router.Group("/api/v1/documents"), deps)
	suite.router = router
	return suite
}

func (s *contentSuite) createDocument() models.Document {
	body, err := json.Marshal(map[string]interface{}{
		"title":        "Roof report",
		"content_type": "application/pdf",
	})
	require.NoError(s.t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(s.t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created models.Document
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestUploadAndDownloadContent(t *testing.T) {
	suite := setupContentSuite(t)
	doc := suite.createDocument()

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/documents/%d/content", doc.ID),
		bytes.NewReader([]byte("%PDF-1.7 reserve study")))
	req.Header.Set("Content-Type", "application/pdf")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	assert.Equal(t, []byte("%PDF-1.7 reserve study"), suite.store.objects[doc.FileKey])
	assert.Equal(t, "application/pdf", suite.store.types[doc.FileKey])

	req = httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/documents/%d/content", doc.ID), nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.7 reserve study", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestUploadContentOwnerOnly(t *testing.T) {
	suite := setupContentSuite(t)
	doc := suite.createDocument()

	suite.userID = "user-bob"
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/documents/%d/content", doc.ID),
		bytes.NewReader([]byte("not my document")))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, suite.store.objects)
}

func TestUploadContentEmptyBody(t *testing.T) {
	suite := setupContentSuite(t)
	doc := suite.createDocument()

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/documents/%d/content", doc.ID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadContentMissingObject(t *testing.T) {
	suite := setupContentSuite(t)
	doc := suite.createDocument()

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/documents/%d/content", doc.ID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
