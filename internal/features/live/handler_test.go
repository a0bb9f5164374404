package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/features/comments"
	"github.com/xyz-asif/voiceup/internal/features/feed"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

var base = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

// notifier hands out one notification channel per Watch call
type notifier struct {
	mu    sync.Mutex
	chans []chan struct{}
}

func (n *notifier) Watch(ctx context.Context, _ ...string) (<-chan struct{}, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan struct{}, 1)
	n.chans = append(n.chans, ch)
	return ch, nil
}

func (n *notifier) fire() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.chans {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

type mutableSource struct {
	mu    sync.Mutex
	items []reports.Report
}

func (s *mutableSource) ListApproved(context.Context) ([]reports.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]reports.Report, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *mutableSource) add(r reports.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
}

type detailStub struct {
	mu      sync.Mutex
	removed bool
}

func (d *detailStub) Detail(_ context.Context, id string, _ reports.Viewer) (*reports.Detail, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.removed || id != "r1" {
		return nil, pkgerrors.ErrNotFound
	}
	return &reports.Detail{Report: &reports.Report{ID: id, Status: reports.StatusApproved}}, nil
}

type threadStub struct{}

func (threadStub) Thread(context.Context, reports.Viewer, string) ([]comments.Entry, error) {
	return []comments.Entry{{Comment: comments.Comment{ID: "c1", Text: "hi"}}}, nil
}

func approved(id string, minute int, votes int) reports.Report {
	return reports.Report{
		ID: id, CorruptionType: reports.Categories[0], Status: reports.StatusApproved,
		CreatedAt: base.Add(time.Duration(minute) * time.Minute),
		Votes:     reports.Tally{True: votes},
	}
}

func liveServer(t *testing.T) (*httptest.Server, *notifier, *mutableSource, *detailStub) {
	gin.SetMode(gin.TestMode)
	src := &notifier{}
	items := &mutableSource{items: []reports.Report{approved("old-popular", 0, 9), approved("new", 5, 0)}}
	details := &detailStub{}

	h := NewHandler(src, items, feed.NewService(items, nil), details, threadStub{},
		func(*http.Request) bool { return true })
	r := gin.New()
	RegisterRoutes(r.Group(""), h, func(c *gin.Context) { c.Next() })

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, src, items, details
}

func dial(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

type frame struct {
	Type string `json:"type"`
	Code string `json:"code"`
	Data struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Mode     string `json:"mode"`
		Comments []struct {
			ID string `json:"id"`
		} `json:"comments"`
		Gone bool `json:"gone"`
	} `json:"data"`
}

func read(t *testing.T, ws *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(3*time.Second)))
	var f frame
	require.NoError(t, ws.ReadJSON(&f))
	return f
}

func feedIDs(f frame) []string {
	out := make([]string, len(f.Data.Items))
	for i, it := range f.Data.Items {
		out[i] = it.ID
	}
	return out
}

func TestFeedSocket(t *testing.T) {
	srv, src, items, _ := liveServer(t)
	ws := dial(t, srv, "/live/feed")

	f := read(t, ws)
	require.Equal(t, TypeFeed, f.Type)
	require.Equal(t, []string{"new", "old-popular"}, feedIDs(f))

	// re-rank without a new fetch
	require.NoError(t, ws.WriteJSON(FeedRequest{Mode: "trending"}))
	f = read(t, ws)
	require.Equal(t, "trending", f.Data.Mode)
	require.Equal(t, []string{"old-popular", "new"}, feedIDs(f))

	require.NoError(t, ws.WriteJSON(FeedRequest{Mode: "nearby"}))
	f = read(t, ws)
	require.Equal(t, TypeError, f.Type)
	require.Equal(t, "LOCATION_REQUIRED", f.Code)

	// a write elsewhere replaces the snapshot; the trending choice sticks
	items.add(approved("hot", 9, 20))
	src.fire()
	f = read(t, ws)
	require.Equal(t, []string{"hot", "old-popular", "new"}, feedIDs(f))
}

func TestReportSocket(t *testing.T) {
	srv, src, _, details := liveServer(t)

	resp, err := http.Get(srv.URL + "/live/reports/missing")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	ws := dial(t, srv, "/live/reports/r1")
	f := read(t, ws)
	require.Equal(t, TypeReport, f.Type)
	require.Len(t, f.Data.Comments, 1)
	require.False(t, f.Data.Gone)

	details.mu.Lock()
	details.removed = true
	details.mu.Unlock()
	src.fire()

	f = read(t, ws)
	require.True(t, f.Data.Gone)
}
