package live

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/xyz-asif/voiceup/internal/features/comments"
	"github.com/xyz-asif/voiceup/internal/features/feed"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/livequery"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/pagination"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 4096
)

// Pager ranks and pages an already loaded snapshot
type Pager interface {
	Page(ctx context.Context, items []reports.Report, opts feed.Options, page, limit int) (*feed.FeedResponse, error)
}

// DetailReader builds a report detail for a viewer
type DetailReader interface {
	Detail(ctx context.Context, id string, viewer reports.Viewer) (*reports.Detail, error)
}

// ThreadReader builds the comment thread of a report
type ThreadReader interface {
	Thread(ctx context.Context, viewer reports.Viewer, reportID string) ([]comments.Entry, error)
}

type Handler struct {
	source   livequery.Source
	approved feed.ApprovedLister
	pager    Pager
	details  DetailReader
	threads  ThreadReader
	upgrader websocket.Upgrader
	log      *logger.Logger
}

// NewHandler creates the live handler. checkOrigin decides which browser
// origins may open sockets.
func NewHandler(source livequery.Source, approved feed.ApprovedLister, pager Pager, details DetailReader, threads ThreadReader, checkOrigin func(r *http.Request) bool) *Handler {
	return &Handler{
		source:   source,
		approved: approved,
		pager:    pager,
		details:  details,
		threads:  threads,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		log: logger.Default().With("live"),
	}
}

// Feed godoc
// @Summary Live feed
// @Description WebSocket. Pushes the ranked feed whenever reports or comments change. Send {mode, category, lat, lng, page, limit} to re-rank.
// @Tags live
// @Param access_token query string false "API token"
// @Success 101
// @Failure 503 {object} response.APIResponse
// @Router /live/feed [get]
func (h *Handler) Feed(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub, err := livequery.Subscribe[[]reports.Report](ctx, h.source, h.approved.ListApproved,
		reports.CollectionReports, reports.CollectionComments)
	if err != nil {
		h.log.Error("subscribe feed: %v", err)
		response.ServiceUnavailable(c, "Live updates are unavailable", "LIVE_UNAVAILABLE")
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("upgrade: %v", err)
		return
	}
	defer ws.Close()

	requests := make(chan FeedRequest)
	go readLoop(ctx, cancel, ws, h.log, func(ws *websocket.Conn) error {
		var req FeedRequest
		if err := ws.ReadJSON(&req); err != nil {
			return err
		}
		select {
		case requests <- req:
		case <-ctx.Done():
		}
		return nil
	})

	opts := feed.Options{Mode: feed.ModeLatest, Category: feed.CategoryAll}
	page, limit := 1, pagination.DefaultLimit
	var snapshot []reports.Report
	loaded := false

	push := func() error {
		if !loaded {
			return nil
		}
		resp, err := h.pager.Page(ctx, snapshot, opts, page, limit)
		if err != nil {
			return write(ws, Message{Type: TypeError, Message: err.Error(), Code: "INVALID_QUERY"})
		}
		return write(ws, Message{Type: TypeFeed, Data: resp})
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		var err error
		select {
		case <-ctx.Done():
			return

		case snap, ok := <-sub.Updates():
			if !ok {
				return
			}
			snapshot, loaded = snap.Value, true
			err = push()

		case req := <-requests:
			q := req.query()
			next, verr := feed.ValidateFeedQuery(q)
			if verr != nil {
				code := "INVALID_QUERY"
				if errors.Is(verr, feed.ErrViewerLocationRequired) {
					code = "LOCATION_REQUIRED"
				}
				err = write(ws, Message{Type: TypeError, Message: verr.Error(), Code: code})
				break
			}
			opts = next
			p := pagination.FromRequest(strconv.Itoa(q.Page), strconv.Itoa(q.Limit))
			page, limit = p.Page, p.Limit
			err = push()

		case <-ping.C:
			err = ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		}
		if err != nil {
			h.log.Debug("feed socket closed: %v", err)
			return
		}
	}
}

// Report godoc
// @Summary Live report detail
// @Description WebSocket. Pushes the report detail and its comment thread whenever the report, its comments or its votes change.
// @Tags live
// @Param id path string true "Report ID"
// @Param access_token query string false "API token"
// @Success 101
// @Failure 404 {object} response.APIResponse
// @Router /live/reports/{id} [get]
func (h *Handler) Report(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	id := c.Param("id")
	viewer := reports.ViewerFrom(c)

	if _, err := h.details.Detail(ctx, id, viewer); err != nil {
		reports.WriteError(c, h.log, err)
		return
	}

	fetch := func(ctx context.Context) (ReportState, error) {
		return h.reportState(ctx, id, viewer)
	}
	sub, err := livequery.Subscribe[ReportState](ctx, h.source, fetch,
		reports.CollectionReports, reports.CollectionComments, reports.CollectionVotes)
	if err != nil {
		h.log.Error("subscribe report %s: %v", id, err)
		response.ServiceUnavailable(c, "Live updates are unavailable", "LIVE_UNAVAILABLE")
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("upgrade: %v", err)
		return
	}
	defer ws.Close()

	// clients only listen; reading detects the close
	go readLoop(ctx, cancel, ws, h.log, func(ws *websocket.Conn) error {
		_, _, err := ws.ReadMessage()
		return err
	})

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		var err error
		select {
		case <-ctx.Done():
			return

		case snap, ok := <-sub.Updates():
			if !ok {
				return
			}
			err = write(ws, Message{Type: TypeReport, Data: snap.Value})
			if err == nil && snap.Value.Gone {
				_ = ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "report removed"),
					time.Now().Add(writeWait))
				return
			}

		case <-ping.C:
			err = ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		}
		if err != nil {
			h.log.Debug("report socket closed: %v", err)
			return
		}
	}
}

func (h *Handler) reportState(ctx context.Context, id string, viewer reports.Viewer) (ReportState, error) {
	detail, err := h.details.Detail(ctx, id, viewer)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return ReportState{Gone: true, Comments: []comments.Entry{}}, nil
	}
	if err != nil {
		return ReportState{}, err
	}

	thread, err := h.threads.Thread(ctx, viewer, id)
	if err != nil {
		return ReportState{}, err
	}
	return ReportState{Report: detail, Comments: thread}, nil
}

// readLoop runs read until it fails, then cancels the connection context
func readLoop(ctx context.Context, cancel context.CancelFunc, ws *websocket.Conn, log *logger.Logger, read func(*websocket.Conn) error) {
	defer cancel()

	ws.SetReadLimit(maxMessage)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for ctx.Err() == nil {
		if err := read(ws); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("websocket read: %v", err)
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func write(ws *websocket.Conn, msg Message) error {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	return ws.WriteJSON(msg)
}
