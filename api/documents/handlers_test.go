package documents_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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

type documentSuite struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	userID string
}

func setupDocumentSuite(t *testing.T) *documentSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Document{}, &models.Annotation{}, &models.AnnotationReply{}))

	deps := &types.Dependencies{
		DB:              &database.DB{DB: db},
		DocumentService: documentsvc.NewService(documentsvc.NewRepository(db)),
	}

	suite := &documentSuite{t: t, db: db, userID: "user-alice"}

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

func (s *documentSuite) do(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		require.NoError(s.t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestCreateAndListDocuments(t *testing.T) {
	suite := setupDocumentSuite(t)

	w := suite.do(http.MethodPost, "/api/v1/documents", map[string]interface{}{
		"title":        "2026 Reserve Study Draft",
		"file_key":     "documents/abc-123",
		"content_type": "application/pdf",
		"size_bytes":   204800,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created models.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.UUID)
	assert.Equal(t, "user-alice", created.UserID)

	w = suite.do(http.MethodGet, "/api/v1/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Documents []models.Document `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Documents, 1)
	assert.Equal(t, "2026 Reserve Study Draft", listResp.Documents[0].Title)
}

func TestCreateDocumentValidation(t *testing.T) {
	suite := setupDocumentSuite(t)

	w := suite.do(http.MethodPost, "/api/v1/documents", map[string]interface{}{
		"file_key": "documents/no-title",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/documents", map[string]interface{}{
		"title": "t", "size_bytes": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDocumentMintsFileKey(t *testing.T) {
	suite := setupDocumentSuite(t)

	w := suite.do(http.MethodPost, "/api/v1/documents", map[string]interface{}{
		"title": "No key supplied",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created models.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.FileKey, "documents/"))
}

func TestListDocumentsScopedToOwner(t *testing.T) {
	suite := setupDocumentSuite(t)

	w := suite.do(http.MethodPost, "/api/v1/documents", map[string]interface{}{
		"title": "Alice's doc", "file_key": "documents/a",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	suite.userID = "user-bob"
	w = suite.do(http.MethodGet, "/api/v1/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Documents []models.Document `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.NotNil(t, listResp.Documents)
	assert.Empty(t, listResp.Documents)
}

func TestDeleteDocumentCascades(t *testing.T) {
	suite := setupDocumentSuite(t)

	w := suite.do(http.MethodPost, "/api/v1/documents", map[string]interface{}{
		"title": "Doomed", "file_key": "documents/doomed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	annotation := models.Annotation{
		DocumentID: created.ID,
		UserID:     "user-alice",
		Content:    "note",
		Position:   models.Position{X: 1, Y: 2},
		Type:       models.AnnotationTypeComment,
	}
	require.NoError(t, suite.db.Create(&annotation).Error)
	require.NoError(t, suite.db.Create(&models.AnnotationReply{
		AnnotationID: annotation.ID,
		UserID:       "user-bob",
		Content:      "reply",
	}).Error)

	w = suite.do(http.MethodDelete, fmt.Sprintf("/api/v1/documents/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var docCount, annCount, replyCount int64
	suite.db.Model(&models.Document{}).Count(&docCount)
	suite.db.Model(&models.Annotation{}).Count(&annCount)
	suite.db.Model(&models.AnnotationReply{}).Count(&replyCount)
	assert.Zero(t, docCount)
	assert.Zero(t, annCount)
	assert.Zero(t, replyCount)
}

func TestDeleteDocumentNotOwner(t *testing.T) {
	suite := setupDocumentSuite(t)

	w := suite.do(http.MethodPost, "/api/v1/documents", map[string]interface{}{
		"title": "Alice's", "file_key": "documents/hers",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	suite.userID = "user-bob"
	w = suite.do(http.MethodDelete, fmt.Sprintf("/api/v1/documents/%d", created.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteDocumentMissing(t *testing.T) {
	suite := setupDocumentSuite(t)

	w := suite.do(http.MethodDelete, "/api/v1/documents/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
