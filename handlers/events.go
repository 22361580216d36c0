package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"advocacia_elite/services"

	"github.com/labstack/echo/v4"
)

const streamHeartbeat = 20 * time.Second

// Events streams the page's carousel changes as server-sent events. Each
// event is named after the section and carries the re-rendered fragment, so
// the htmx sse extension swaps it in place.
func (s *Site) Events(c echo.Context) error {
	page, err := s.mount(c)
	if err != nil {
		return err
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	changes, cancel := page.Subscribe()
	defer cancel()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				// Page state released; the browser reconnects and remounts
				return nil
			}
			if err := s.writeChange(w, change); err != nil {
				return nil
			}
			w.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func (s *Site) writeChange(w io.Writer, change services.Change) error {
	var buf bytes.Buffer
	if err := s.carouselFragment(change.Section, change.Index).Render(&buf); err != nil {
		return err
	}
	return writeSSEEvent(w, string(change.Section), buf.String())
}

// writeSSEEvent writes one event, splitting data across lines as the
// protocol requires
func writeSSEEvent(w io.Writer, event, data string) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(event)
	b.WriteByte('\n')
	for _, line := range strings.Split(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
