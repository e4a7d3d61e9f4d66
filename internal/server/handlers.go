package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/session"
)

func (s *Server) keywordsHandler(c *gin.Context) {
	entries, err := s.keywords.FetchKeywords(c.Request.Context())
	if err != nil {
		s.logger.Error("fetch keywords", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "keyword collection unavailable"})
		return
	}
	if entries == nil {
		entries = []session.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) answerHandler(c *gin.Context) {
	problem, err := strconv.Atoi(c.Param("problem"))
	if err != nil || problem <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "problem must be a positive integer"})
		return
	}

	ans, err := s.answers.FetchAnswer(c.Request.Context(), problem)
	switch {
	case errors.Is(err, docs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no answer for problem"})
		return
	case err != nil:
		s.logger.Error("fetch answer", "problem", problem, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "answer collection unavailable"})
		return
	}
	c.JSON(http.StatusOK, ans)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
