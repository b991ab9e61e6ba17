package api

import (
	"net/http" // HTTP status codes

	"campuscard/internal/query"   // Read repository
	"campuscard/internal/summary" // Summarization collaborator
	"campuscard/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// recentCacheKey is the cache entry for the recent-transactions shortcut
const recentCacheKey = "transactions:recent"

// HealthHandler reports liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// RecentTransactionsHandler returns the 20 most recent transactions
// system-wide, served through a short-lived Redis cache when available.
func RecentTransactionsHandler(repo *query.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []query.TransactionView
		if found, err := cache.Get(ctx, recentCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		views, err := repo.RecentTransactions()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("recent transactions query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		_ = cache.Set(ctx, recentCacheKey, views) // Cache misses are non-fatal
		c.JSON(http.StatusOK, views)
	}
}

// ListTransactionsHandler returns up to 1000 transactions, optionally
// scoped by the email query parameter. An unknown email yields an empty
// array, never an error.
func ListTransactionsHandler(repo *query.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := repo.ListTransactions(c.Query("email"))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": c.Query("email"),
				"error": err.Error(),
			}).Error("transaction listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// MetricsHandler returns the per-user derived metrics. Unknown users get
// both fields null rather than an error status.
func MetricsHandler(repo *query.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := repo.UserMetrics(c.Query("email"))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": c.Query("email"),
				"error": err.Error(),
			}).Error("metrics query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// SummaryRequest carries the caller-selected transactions to summarize
type SummaryRequest struct {
	Transactions []summary.TransactionInput `json:"transactions"`
}

// SummaryResponse wraps the model's free-text summary
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// SummaryHandler forwards the supplied transactions to the summarization
// model. An empty list short-circuits to a fixed placeholder and never
// reaches the model.
func SummaryHandler(s summary.Summarizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if len(req.Transactions) == 0 {
			c.JSON(http.StatusOK, SummaryResponse{Summary: summary.Placeholder})
			return
		}
		if s == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Summarization is not configured"})
			return
		}
		text, err := s.Summarize(c.Request.Context(), req.Transactions)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"count": len(req.Transactions),
				"error": err.Error(),
			}).Error("summarization failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Summarization failed"})
			return
		}
		c.JSON(http.StatusOK, SummaryResponse{Summary: text})
	}
}
