package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"advocacia_elite/middleware"
	"advocacia_elite/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startStream runs the events handler in the background and waits until it
// has subscribed
func startStream(t *testing.T, site *testSite, id string) (*streamRecorder, context.CancelFunc, <-chan error) {
	t.Helper()

	e := echo.New()
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := newStreamRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(middleware.PageKeyName), id)

	done := make(chan error, 1)
	go func() {
		done <- site.Events(c)
	}()

	require.Eventually(t, func() bool {
		page, err := site.registry.Get(id)
		return err == nil && page.Subscribers() == 1
	}, time.Second, 5*time.Millisecond)

	return rec, cancel, done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stream did not stop")
	}
}

func TestEvents(t *testing.T) {
	t.Run("Streams carousel ticks as fragments", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		rec, cancel, done := startStream(t, site, id)
		defer cancel()

		site.scheduler.Tick()

		assert.Eventually(t, func() bool {
			body := rec.String()
			return strings.Contains(body, "event: hero\n") && strings.Contains(body, "event: testimonials\n")
		}, time.Second, 5*time.Millisecond)

		body := rec.String()
		assert.Contains(t, body, "Experiência Comprovada")
		assert.Contains(t, body, "Ana Martins")
		for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
			if line == "" {
				continue
			}
			assert.True(t,
				strings.HasPrefix(line, "event: ") || strings.HasPrefix(line, "data: "),
				"unexpected line %q", line)
		}

		cancel()
		waitDone(t, done)
		assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("Manual controls are pushed to the stream", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		rec, cancel, done := startStream(t, site, id)
		defer cancel()

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/testimonials/prev", id)
		require.NoError(t, site.CarouselPrev(services.SectionTestimonials)(c))

		assert.Eventually(t, func() bool {
			return strings.Contains(rec.String(), "event: testimonials\n")
		}, time.Second, 5*time.Millisecond)

		cancel()
		waitDone(t, done)
	})

	t.Run("Stops when the page state is released", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, cancel, done := startStream(t, site, id)
		defer cancel()

		site.registry.Unmount(id)
		waitDone(t, done)
	})

	t.Run("Unsubscribes on disconnect", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, cancel, done := startStream(t, site, id)
		cancel()
		waitDone(t, done)

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Subscribers())
	})
}

func TestWriteSSEEvent(t *testing.T) {
	var b strings.Builder
	require.NoError(t, writeSSEEvent(&b, "hero", "<section>\n<h1>x</h1>\n</section>"))

	assert.Equal(t,
		"event: hero\ndata: <section>\ndata: <h1>x</h1>\ndata: </section>\n\n",
		b.String())
}
