package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/importer"
	"github.com/alexanderramin/streakmind/internal/logger"
	"github.com/alexanderramin/streakmind/internal/service"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

// DefaultRequestTimeout bounds a request including reply generation.
const DefaultRequestTimeout = 30 * time.Second

// Options configures a Handler. A nil Gatherer disables /metrics.
type Options struct {
	Timeout  time.Duration
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
	Clock    func() time.Time
}

// Handler serves the JSON API over the service layer.
type Handler struct {
	svc     *service.Services
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time
	metrics fasthttp.RequestHandler
}

func NewHandler(svc *service.Services, opts Options) *Handler {
	h := &Handler{
		svc:     svc,
		timeout: opts.Timeout,
		log:     opts.Logger,
		now:     opts.Clock,
	}
	if h.timeout <= 0 {
		h.timeout = DefaultRequestTimeout
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	h.log = h.log.Named("http")
	if h.now == nil {
		h.now = time.Now
	}
	if opts.Gatherer != nil {
		h.metrics = fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return h
}

// requestContext derives a bounded context carrying the request ID, which is
// echoed in the X-Request-ID response header.
func (h *Handler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
	return logger.ContextWithRequestID(stdCtx, requestID(ctx)), cancel
}

func requestID(ctx *fasthttp.RequestCtx) string {
	if id, ok := ctx.UserValue(requestIDKey).(string); ok {
		return id
	}
	id := strings.TrimSpace(string(ctx.Request.Header.Peek("X-Request-ID")))
	if id == "" {
		id = uuid.NewString()
	}
	ctx.SetUserValue(requestIDKey, id)
	ctx.Response.Header.Set("X-Request-ID", id)
	return id
}

const requestIDKey = "request_id"

func (h *Handler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h *Handler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data any) {
	h.respondJSON(ctx, status, NewSuccess(data, nil))
}

func (h *Handler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("request_id", requestID(ctx)),
			zap.ByteString("path", ctx.Path()),
			zap.Error(err))
		msg = "Internal server error"
	}
	h.respondJSON(ctx, status, NewError(code, msg, nil))
}

func (h *Handler) badRequest(ctx *fasthttp.RequestCtx, msg string) {
	h.respondJSON(ctx, http.StatusBadRequest, NewError(string(domain.ErrCodeInvalid), msg, nil))
}

func mapError(err error) (int, string) {
	code := domain.CodeOf(err)
	switch code {
	case domain.ErrCodeInvalid:
		return http.StatusBadRequest, string(code)
	case domain.ErrCodeNotFound:
		return http.StatusNotFound, string(code)
	case domain.ErrCodeConflict:
		return http.StatusConflict, string(code)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}

func pathParam(ctx *fasthttp.RequestCtx, name string) string {
	v, _ := ctx.UserValue(name).(string)
	return v
}

func decode(ctx *fasthttp.RequestCtx, v any) bool {
	if len(ctx.PostBody()) == 0 {
		return true
	}
	return json.Unmarshal(ctx.PostBody(), v) == nil
}

// logged reports every request at debug level.
func (h *Handler) logged(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := h.now()
		id := requestID(ctx)
		next(ctx)
		reqLog := logger.WithRequestID(logger.ContextWithRequestID(context.Background(), id), h.log)
		reqLog.Debug("http_request",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", h.now().Sub(start)),
		)
	}
}

func (h *Handler) Health(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": h.now().UTC(),
	})
}

func (h *Handler) Metrics(ctx *fasthttp.RequestCtx) {
	if h.metrics == nil {
		h.respondJSON(ctx, http.StatusNotFound, NewError(string(domain.ErrCodeNotFound), "metrics disabled", nil))
		return
	}
	h.metrics(ctx)
}

// Messages

func (h *Handler) ListMessages(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	msgs, err := h.svc.Transcript.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	h.respondSuccess(ctx, http.StatusOK, msgs)
}

func (h *Handler) PostMessage(ctx *fasthttp.RequestCtx) {
	var req messageRequest
	if !decode(ctx, &req) {
		h.badRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	res, err := h.svc.Tracker.Ingest(stdCtx, contract.IngestRequest{Message: req.text()})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, res)
}

func (h *Handler) ClearMessages(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.svc.Transcript.Clear(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"message": "All messages deleted successfully"})
}

func (h *Handler) DeleteMessage(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.svc.Transcript.Delete(stdCtx, pathParam(ctx, "id")); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}

// Stats and activities

func (h *Handler) Stats(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.svc.Tracker.Stats(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

func (h *Handler) ListActivities(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	acts, err := h.svc.Tracker.ListActivities(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if acts == nil {
		acts = []domain.Activity{}
	}
	h.respondSuccess(ctx, http.StatusOK, acts)
}

func (h *Handler) CreateActivity(ctx *fasthttp.RequestCtx) {
	var req contract.CreateActivityRequest
	if !decode(ctx, &req) {
		h.badRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	a, err := h.svc.Tracker.CreateActivity(stdCtx, req)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, a)
}

func (h *Handler) UpdateActivity(ctx *fasthttp.RequestCtx) {
	var req contract.UpdateActivityRequest
	if !decode(ctx, &req) {
		h.badRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	a, err := h.svc.Tracker.UpdateActivity(stdCtx, pathParam(ctx, "name"), req)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, a)
}

func (h *Handler) DeleteActivity(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	res, err := h.svc.Tracker.DeleteActivity(stdCtx, pathParam(ctx, "name"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, res)
}

// Logs and streaks

func (h *Handler) ListLogs(ctx *fasthttp.RequestCtx) {
	activity := string(ctx.QueryArgs().Peek("activity"))
	limit := 0
	if raw := string(ctx.QueryArgs().Peek("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.badRequest(ctx, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	logs, err := h.svc.Tracker.ListLogs(stdCtx, activity, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, logs)
}

func (h *Handler) DeleteLog(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	res, err := h.svc.Tracker.DeleteLog(stdCtx, pathParam(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, res)
}

func (h *Handler) RebuildStreaks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	streaks, err := h.svc.Tracker.RebuildStreaks(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]any{"streaks": streaks})
}

// Settings

func (h *Handler) GetSettings(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	s, err := h.svc.Settings.Get(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, s)
}

func (h *Handler) UpdateSettings(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patch := append([]byte(nil), ctx.PostBody()...)
	s, err := h.svc.Settings.Update(stdCtx, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, s)
}

func (h *Handler) ResetSettings(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	s, err := h.svc.Settings.Reset(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, s)
}

// Memory

func (h *Handler) GetMemory(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	m, err := h.svc.Memory.Get(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, m)
}

func (h *Handler) ClearMemory(ctx *fasthttp.RequestCtx) {
	var req clearMemoryRequest
	if !decode(ctx, &req) {
		h.badRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	m, err := h.svc.Memory.Clear(stdCtx, req.Fields...)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, m)
}

func (h *Handler) RemoveMemoryItem(ctx *fasthttp.RequestCtx) {
	var req removeMemoryItemRequest
	if !decode(ctx, &req) || req.Category == "" || req.Item == "" {
		h.badRequest(ctx, "category and item are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	m, err := h.svc.Memory.RemoveItem(stdCtx, req.Category, req.Item)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, m)
}

// Backup

func (h *Handler) Export(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	b, err := h.svc.Backup.Export(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, b)
}

// Import restores a backup sent as the request body. YAML bodies are
// accepted when the content type says so; anything else is read as JSON.
func (h *Handler) Import(ctx *fasthttp.RequestCtx) {
	format := importer.FormatJSON
	if strings.Contains(string(ctx.Request.Header.ContentType()), "yaml") {
		format = importer.FormatYAML
	}
	b, err := importer.Decode(bytes.NewReader(ctx.PostBody()), format)
	if err != nil {
		h.badRequest(ctx, err.Error())
		return
	}
	mode := contract.ImportMode(ctx.QueryArgs().Peek("mode"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	res, err := h.svc.Backup.Import(stdCtx, b, mode)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, res)
}
