package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"advocacia_elite/config"
	"advocacia_elite/db"
	"advocacia_elite/middleware"
	"advocacia_elite/models"
	"advocacia_elite/services"
	"advocacia_elite/services/uistate/uistatetest"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testBaseURL = "https://advocaciaelite.com.br"

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.AutoMigrate(models.ContentModels()...)
	require.NoError(t, err)

	err = services.SeedContent(testDB, services.DefaultContent())
	require.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

type testSite struct {
	*Site
	scheduler *uistatetest.Scheduler
	media     *services.LocalMedia
}

// setupTestSite builds the handlers over the seeded content with timers
// driven by the test
func setupTestSite(t *testing.T) *testSite {
	testDB := setupTestDB(t)

	catalog, err := services.LoadCatalog(testDB)
	require.NoError(t, err)

	scheduler := &uistatetest.Scheduler{}
	registry := services.NewPageRegistry(catalog, services.PageConfig{
		HeroInterval:        5 * time.Second,
		TestimonialInterval: 6 * time.Second,
		TTL:                 30 * time.Minute,
		Scheduler:           scheduler,
	})
	t.Cleanup(registry.Shutdown)

	media := services.NewLocalMedia(t.TempDir())
	cfg := &config.Config{
		Environment: "test",
		AppURL:      testBaseURL,
	}

	site := NewSite(cfg, registry, media)
	site.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }

	return &testSite{Site: site, scheduler: scheduler, media: media}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return e, c, rec
}

// setupPageEcho is setupEcho for a request acting on a page's state
func setupPageEcho(method, path, pageID string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e, c, rec := setupEcho(method, path, nil)
	c.Set(string(middleware.PageKeyName), pageID)
	return e, c, rec
}

// streamRecorder is a ResponseRecorder that can be read while a handler is
// still writing to it
type streamRecorder struct {
	*httptest.ResponseRecorder
	mu  sync.Mutex
	buf bytes.Buffer
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{ResponseRecorder: httptest.NewRecorder()}
}

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

var _ http.Flusher = (*streamRecorder)(nil)
