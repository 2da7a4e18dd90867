package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/tradecast/internal/ingest"
	"github.com/yourusername/tradecast/internal/metrics"
	"github.com/yourusername/tradecast/internal/models"
)

// health is a simple liveness probe.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   s.cfg.App.Name,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// upload accepts a trade-fills CSV and returns the parsed round-trip
// trades. Tolerant of the column naming conventions used by QuantConnect
// and compatible platforms.
func (s *Server) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		returnErrorJSON(c, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		returnErrorJSON(c, http.StatusBadRequest, errors.New("only CSV files are accepted"))
		return
	}
	if fileHeader.Size > s.cfg.MaxUploadBytes() {
		returnErrorJSON(c, http.StatusRequestEntityTooLarge,
			fmt.Errorf("file exceeds the %d MB upload limit", s.cfg.Upload.MaxFileSizeMB))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		returnErrorJSON(c, http.StatusBadRequest, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	trades, err := ingest.ParseRoundTrips(file)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingColumns), errors.Is(err, models.ErrNoRoundTrips):
			returnErrorJSON(c, http.StatusUnprocessableEntity, err)
		default:
			returnErrorJSON(c, http.StatusBadRequest, err)
		}
		return
	}

	symbols := ingest.Symbols(trades)
	metrics.RecordUpload(len(trades))
	s.logger.WithField("trades", len(trades)).WithField("symbols", symbols).
		Info("CSV upload parsed")

	c.JSON(http.StatusOK, models.UploadResponse{
		Trades:      trades,
		TotalTrades: len(trades),
		Symbols:     symbols,
	})
}

// analyze runs the full analytics and Monte Carlo pipeline on a parsed
// trade list.
func (s *Server) analyze(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJSON(c, http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err))
		return
	}

	var cacheKey string
	if s.cache != nil {
		if key, ok := s.cache.Key(&req); ok {
			cacheKey = key
			if resp := s.cache.Get(key); resp != nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.AnalysisTimeout())
	defer cancel()

	resp, err := s.analyzer.Analyze(ctx, &req)
	if err != nil {
		var invalidErr *models.InvalidInputError
		var limitErr *models.ResourceLimitError
		switch {
		case errors.As(err, &invalidErr):
			returnErrorJSON(c, http.StatusBadRequest, err)
		case errors.As(err, &limitErr):
			returnErrorJSON(c, http.StatusRequestEntityTooLarge, err)
		case errors.Is(err, context.DeadlineExceeded):
			returnErrorJSON(c, http.StatusGatewayTimeout, errors.New("analysis timed out"))
		default:
			s.logger.WithError(err).Error("Analysis failed")
			returnErrorJSON(c, http.StatusInternalServerError, err)
		}
		return
	}

	if s.cache != nil && cacheKey != "" {
		s.cache.Set(cacheKey, resp)
	}

	c.JSON(http.StatusOK, resp)
}
