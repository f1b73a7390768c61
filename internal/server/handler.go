package server

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/javiermolinar/afazeres/internal/dateutil"
	"github.com/javiermolinar/afazeres/internal/extract"
	"github.com/javiermolinar/afazeres/internal/report"
)

// maxBatch bounds the texts accepted by one batch request.
const maxBatch = 100

var (
	errEmptyText     = errors.New("text is required")
	errEmptyBatch    = errors.New("texts must not be empty")
	errBatchTooLarge = fmt.Errorf("at most %d texts per request", maxBatch)
)

type extractRequest struct {
	Text  string `json:"text"`
	Today string `json:"today"` // YYYY-MM-DD, defaults to the server's date
}

type batchRequest struct {
	Texts []string `json:"texts"`
	Today string   `json:"today"`
}

// extractData is the payload of a successful extraction.
type extractData struct {
	report.View
	Report []string `json:"report"`
}

func (srv *Server) mapHandlers() {
	srv.gin.Use(requestID())
	srv.gin.Use(accessLog(srv.l))
	srv.gin.Use(recovery(srv.l))

	srv.gin.GET("/health", srv.healthCheck)

	api := srv.gin.Group("/api/v1")
	if srv.limiter != nil {
		api.Use(limit(srv.limiter))
	}
	api.POST("/extract", srv.handleExtract)
	api.POST("/extract/batch", srv.handleBatch)
}

func (srv *Server) healthCheck(c *gin.Context) {
	ok(c, gin.H{"status": "healthy"})
}

func (srv *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("decoding request: %w", err))
		return
	}
	if req.Text == "" {
		badRequest(c, errEmptyText)
		return
	}
	today, err := srv.today(req.Today)
	if err != nil {
		badRequest(c, err)
		return
	}

	ok(c, srv.extract(c, req.Text, today))
}

func (srv *Server) handleBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("decoding request: %w", err))
		return
	}
	switch {
	case len(req.Texts) == 0:
		badRequest(c, errEmptyBatch)
		return
	case len(req.Texts) > maxBatch:
		badRequest(c, errBatchTooLarge)
		return
	}
	today, err := srv.today(req.Today)
	if err != nil {
		badRequest(c, err)
		return
	}

	results := make([]extractData, len(req.Texts))
	for i, text := range req.Texts {
		results[i] = srv.extract(c, text, today)
	}
	ok(c, results)
}

// today parses the request's reference date, or uses the server clock.
func (srv *Server) today(s string) (string, error) {
	if s == "" {
		return srv.now().Format(dateutil.DateLayout), nil
	}
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return "", fmt.Errorf("today: %w", err)
	}
	return t.Format(dateutil.DateLayout), nil
}

// extract runs the extractor, consulting the cache first. Results depend
// only on the text and the reference date.
func (srv *Server) extract(c *gin.Context, text, today string) extractData {
	key := today + "\x00" + text
	if srv.cache != nil {
		if data, found := srv.cache.Get(key); found {
			return data
		}
	}

	day, _ := dateutil.ParseDate(today)
	r := extract.Extract(text, day)

	lines := report.Lines(r, srv.dateLayout)
	data := extractData{
		View:   report.NewView(r),
		Report: make([]string, len(lines)),
	}
	for i, l := range lines {
		data.Report[i] = l.String()
	}

	srv.l.Debug("extracted",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("text", text),
		zap.String("today", today),
		zap.String("date", data.Date),
		zap.Bool("empty", data.Empty),
	)

	if srv.cache != nil {
		srv.cache.Add(key, data)
	}
	return data
}
