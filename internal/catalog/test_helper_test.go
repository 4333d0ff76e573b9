package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"safar-travel-api/internal/logs"
	"safar-travel-api/internal/media"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&PackageRecord{}, &logs.SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

// fakeStore records uploads and delete requests in memory.
type fakeStore struct {
	objects   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(_ context.Context, data []byte, contentType, objectName string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.objects[objectName] = data
	return media.PublicURL("test-bucket", objectName), nil
}

func (f *fakeStore) Delete(_ context.Context, objectPath string) error {
	f.deleted = append(f.deleted, objectPath)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, objectPath)
	return nil
}

func newTestService(t *testing.T) (*CatalogService, *fakeStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	store := newFakeStore()
	return &CatalogService{DB: db, Media: store}, store, db
}

// setupCatalogRouter mounts one dashboard's handlers without the auth
// middleware so controller behavior is tested in isolation.
func setupCatalogRouter(d Dashboard, svc *CatalogService, db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	controller := &CatalogController{
		Dashboard:      d,
		CatalogService: svc,
		LogService:     &logs.LogService{DB: db},
	}

	group := r.Group(d.RouteBase)
	{
		group.GET("", controller.List)
		group.POST("", controller.Save)
		group.PATCH("", controller.ToggleActive)
		group.DELETE("", controller.Delete)
	}
	return r
}

func multipartBody(t *testing.T, fields map[string]string, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}

	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(imageData); err != nil {
			t.Fatalf("write image part: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	return body, w.FormDataContentType()
}

func postMultipart(r http.Handler, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	return w
}

func patchJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func deleteReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
