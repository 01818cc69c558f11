/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package chatapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/bpmnxml"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/flatten"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/validate"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
)

// errorStatus maps the six coreerr kinds onto HTTP status codes
// (spec.md §7's mapping, grounded on the teacher's
// src/core/restapi/models/errors.go catalogue).
func errorStatus(err error) int {
	kind, ok := coreerr.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case coreerr.KindSchema, coreerr.KindStructure, coreerr.KindProposal:
		return http.StatusBadRequest
	case coreerr.KindLookup:
		return http.StatusNotFound
	case coreerr.KindEditExhausted:
		return http.StatusConflict
	case coreerr.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

// importHandler parses a posted BPMN XML document into a hierarchical
// process, assigns it a new session ID, and persists it (spec.md §6.6's
// "POST /api/v1/processes/import").
func (s *Server) importHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, coreerr.Wrap(coreerr.KindTransport, "read request body", err))
		return
	}

	process, err := bpmnxml.Parse(body)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := validate.Validate(process); err != nil {
		writeError(c, err)
		return
	}

	id := uuid.NewString()
	if err := s.store.Save(id, process); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// xmlHandler emits the current process for sessionID as BPMN XML
// (spec.md §6.6's "GET /api/v1/processes/:id/xml").
func (s *Server) xmlHandler(c *gin.Context) {
	snap, err := s.store.Load(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml", []byte(bpmnxml.Emit(flatten.Flatten(snap.Process))))
}

type chatRequest struct {
	Message string `json:"message"`
}

// chatHandler drives one session.Edit call, streaming spec.md §6.6's
// phase/proposal/process/error/done SSE frames via gin's c.SSEvent.
func (s *Server) chatHandler(c *gin.Context) {
	sessionID := c.Param("id")

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, coreerr.Wrap(coreerr.KindSchema, "invalid chat request body", err))
		return
	}

	snap, err := s.store.Load(sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	s.metrics.sessionsStarted.Inc()
	sess := s.newSession()
	sess.ID = sessionID

	sseEvent(c, "phase", gin.H{"phase": "editing"})

	result, err := sess.Edit(c.Request.Context(), snap.Process, req.Message)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if kind, ok := coreerr.KindOf(err); ok && kind == coreerr.KindEditExhausted {
			s.metrics.sessionsExhausted.Inc()
		}
		sseEvent(c, "error", gin.H{"error": err.Error()})
		return
	}

	for _, p := range result.Applied {
		s.metrics.editsApplied.WithLabelValues(p.Function).Inc()
		sseEvent(c, "proposal", gin.H{"function": p.Function})
	}

	if err := s.store.Save(sessionID, result.Process); err != nil {
		log.Error("failed to persist session snapshot", logger.String("session", sessionID), logger.Err(err))
	}

	s.metrics.sessionsCompleted.Inc()
	sseEvent(c, "process", gin.H{"xml": bpmnxml.Emit(flatten.Flatten(result.Process))})
	sseEvent(c, "done", gin.H{})
}

func sseEvent(c *gin.Context, event string, data gin.H) {
	c.SSEvent(event, data)
	c.Writer.Flush()
}
