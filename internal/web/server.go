// Copyright SilloVV, 2026. All rights reserved.

// Package web serves a minimal browser front end over the question
// pipeline. One question is processed per request; concurrent runs are
// neither guarded against nor supported.
package web

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SilloVV/appel-legifrance-gemini/internal/pipeline"
)

//go:embed static
var staticFiles embed.FS

// Runner executes one pipeline run. *pipeline.Pipeline satisfies it.
type Runner interface {
	Run(ctx context.Context, question, priorContext string) (*pipeline.Result, error)
}

type Server struct {
	Engine *gin.Engine
	runner Runner
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
	Context  string `json:"context"`
}

type askResponse struct {
	Answer       string `json:"answer"`
	Sources      string `json:"sources"`
	Insufficient bool   `json:"insufficient"`
	Raw          string `json:"raw"`
	ResultCount  int    `json:"result_count"`
}

// NewServer wires the routes. Run the returned server with Start.
func NewServer(runner Runner) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{Engine: engine, runner: runner}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.POST("/api/ask", s.handleAsk)

	static, _ := fs.Sub(staticFiles, "static")
	engine.StaticFileFS("/", "index.html", http.FS(static))

	return s
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "le champ 'question' est requis"})
		return
	}

	slog.Info("question reçue", "question", req.Question)
	res, err := s.runner.Run(c.Request.Context(), req.Question, req.Context)
	if err != nil {
		slog.Error("échec du pipeline", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, askResponse{
		Answer:       res.Answer.Body,
		Sources:      res.Answer.Sources,
		Insufficient: res.Answer.Insufficient,
		Raw:          res.Answer.Raw,
		ResultCount:  len(res.Results),
	})
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	if addr == "" {
		addr = ":8123"
	}
	slog.Info("serveur web démarré", "addr", addr)
	return s.Engine.Run(addr)
}
