/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package chatapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
)

// LoggingConfig mirrors the teacher's request-logging knobs
// (src/core/restapi/middleware/logging_middleware.go), trimmed to the
// fields this transport actually uses.
type LoggingConfig struct {
	SkipPaths []string
}

// DefaultLoggingConfig skips the health and metrics endpoints, matching
// the teacher's own DefaultLoggingConfig.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{SkipPaths: []string{"/health", "/metrics"}}
}

func loggingMiddleware(cfg *LoggingConfig) gin.HandlerFunc {
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}
	log := logger.Global().With("chatapi")

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		log.Info("request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("duration", time.Since(start).String()),
		)
	}
}
