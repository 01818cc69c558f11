/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package chatapi is the gin-based REST+SSE transport exposing the BPMN
// authoring engine (spec.md §6.6), grounded on the teacher's
// src/core/restapi/server.go. Everything it fronts — the LLM, the intent
// that drove a change request, the persisted snapshot — stays external;
// this package only turns HTTP requests into internal/bpmn/session calls
// and internal/bpmn/session calls into SSE frames.
package chatapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/session"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
	"github.com/darosuardiaz/bpmn-generator/internal/llm"
	"github.com/darosuardiaz/bpmn-generator/internal/store"
)

var log = logger.Global().With("chatapi")

// Config holds the REST+SSE server's listen address and logging
// behavior, trimmed from the teacher's restapi.Config to the concerns
// this transport actually has (no Swagger/rate-limit/auth — spec.md's
// core has none of those either).
type Config struct {
	Host    string
	Port    int
	Logging *LoggingConfig
}

// DefaultConfig mirrors the teacher's restapi.DefaultConfig shape.
func DefaultConfig() *Config {
	return &Config{Host: "0.0.0.0", Port: 8080, Logging: DefaultLoggingConfig()}
}

// Server is the REST+SSE transport. It holds the session snapshot store
// and the LLM collaborator used to build new sessions, the way the
// teacher's Server held coreInterface and authComponent.
type Server struct {
	config     *Config
	httpServer *http.Server
	router     *gin.Engine
	store      *store.Store
	model      llm.ChatModel
	metrics    *Metrics
}

// NewServer builds the router and registers routes eagerly, matching the
// teacher's NewServer → setupHandlers → setupRouter sequence.
func NewServer(config *Config, sessionStore *store.Store, model llm.ChatModel) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Logging == nil {
		config.Logging = DefaultLoggingConfig()
	}

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config:  config,
		store:   sessionStore,
		model:   model,
		metrics: NewMetrics(),
	}

	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(loggingMiddleware(config.Logging))
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/metrics", s.metrics.Handler())

	v1 := s.router.Group("/api/v1")
	{
		processes := v1.Group("/processes")
		{
			processes.POST("/import", s.importHandler)
			processes.GET("/:id/xml", s.xmlHandler)
			processes.POST("/:id/chat", s.chatHandler)
		}
	}
}

// Start launches the HTTP server in a background goroutine, matching the
// teacher's Start/Stop shape (src/core/restapi/server.go).
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // SSE responses can run long; no fixed write deadline.
		IdleTimeout:  120 * time.Second,
	}

	log.Info("starting chatapi server", logger.String("address", addr))

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("chatapi server failed", logger.Err(err))
		}
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// sessionModel resolves the collaborator for a request. Per-request
// override isn't wired yet; every session currently uses the server's
// configured default model.
func (s *Server) sessionModel() llm.ChatModel {
	return s.model
}

func (s *Server) newSession() *session.Session {
	return session.New(s.sessionModel())
}
