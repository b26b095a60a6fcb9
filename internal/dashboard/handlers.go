// Package dashboard exposes the store and analyzer over a small JSON API.
// Handlers only read and serialize; nothing here mutates store state.
package dashboard

import (
	"net/http"
	"strconv"

	"jobtrend/internal/ai"
	"jobtrend/internal/analyzer"
	"jobtrend/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	store *store.Store
	ai    ai.Client
}

func NewRouter(st *store.Store, client ai.Client) *gin.Engine {
	s := &Server{store: st, ai: client}

	r := gin.Default()
	r.GET("/", s.health)

	api := r.Group("/api")
	api.GET("/jobs", s.jobs)
	api.GET("/stats", s.stats)
	api.GET("/trends", s.trends)
	api.GET("/skills", s.skills)
	api.GET("/insights", s.insights)
	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "JobTrend API is running!",
		"status":  "healthy",
	})
}

// jobs returns the most recent postings first, capped by ?limit (default 100).
func (s *Server) jobs(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	postings := s.store.ReadAll()
	if len(postings) > limit {
		postings = postings[len(postings)-limit:]
	}

	// reverse into most-recent-first order
	for i, j := 0, len(postings)-1; i < j; i, j = i+1, j-1 {
		postings[i], postings[j] = postings[j], postings[i]
	}
	c.JSON(http.StatusOK, postings)
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Stats())
}

func (s *Server) trends(c *gin.Context) {
	c.JSON(http.StatusOK, analyzer.AnalyzeTrends(s.store.ReadAll()))
}

func (s *Server) skills(c *gin.Context) {
	skills := analyzer.TopSkills(s.store.ReadAll(), 20)
	c.JSON(http.StatusOK, gin.H{
		"top_skills": skills,
	})
}

func (s *Server) insights(c *gin.Context) {
	summary := ai.Insights(c.Request.Context(), s.ai, s.store.ReadAll())
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
