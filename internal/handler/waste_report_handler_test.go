package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menro-ph/waste-api/internal/service"
	"github.com/menro-ph/waste-api/internal/store/memory"
	"github.com/menro-ph/waste-api/pkg/storage"
)

func TestCreateWasteReportMultipartWithImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := memory.New()
	uploadsDir := t.TempDir()
	uploads, err := storage.NewLocalStorage(uploadsDir)
	require.NoError(t, err)

	reports := service.NewWasteReportService(db.WasteReports(), nil, nil)
	h := NewWasteReportHandler(reports, uploads, "/uploads")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "Dumping near creek"))
	require.NoError(t, writer.WriteField("description", "Sacks of trash thrown into the creek overnight"))
	require.NoError(t, writer.WriteField("type", "illegal_dumping"))
	require.NoError(t, writer.WriteField("location", "Creekside, Barangay 4"))
	require.NoError(t, writer.WriteField("reportedBy", "2"))
	part, err := writer.CreateFormFile("image", "evidence.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	r := gin.New()
	r.POST("/api/waste-reports", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/waste-reports", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	imageURL, _ := report["imageUrl"].(string)
	require.True(t, strings.HasPrefix(imageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(imageURL, ".jpg"))
	assert.Equal(t, float64(2), report["reportedBy"])

	// the file landed in the uploads directory under the generated name
	stored := filepath.Join(uploadsDir, strings.TrimPrefix(imageURL, "/uploads/"))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake jpeg bytes", string(content))
}

func TestCreateWasteReportMultipartWithoutImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := memory.New()
	uploads, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	reports := service.NewWasteReportService(db.WasteReports(), nil, nil)
	h := NewWasteReportHandler(reports, uploads, "/uploads")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "Missed pickup"))
	require.NoError(t, writer.WriteField("description", "Truck skipped our street today"))
	require.NoError(t, writer.WriteField("type", "uncollected"))
	require.NoError(t, writer.WriteField("location", "Mabini St."))
	require.NoError(t, writer.Close())

	r := gin.New()
	r.POST("/api/waste-reports", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/waste-reports", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Nil(t, report["imageUrl"])
	assert.Nil(t, report["reportedBy"])
	assert.Equal(t, "pending", report["status"])
}
