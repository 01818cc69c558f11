/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package rpcapi is the gRPC transport exposing the BPMN authoring
// engine (spec.md §6.7), grounded on the teacher's src/core/grpc/server.go
// shape: a .proto contract (proto/bpmnrpc/bpmn.proto) compiles to the
// generated stubs in internal/rpcapi/bpmnrpc, and this file registers
// them on one *grpc.Server the way the teacher registers
// processpb.RegisterProcessServiceServer and its seven siblings.
package rpcapi

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/bpmnxml"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/flatten"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/session"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
	"github.com/darosuardiaz/bpmn-generator/internal/llm"
	"github.com/darosuardiaz/bpmn-generator/internal/rpcapi/bpmnrpc"
)

var log = logger.Global().With("rpcapi")

// Config holds the gRPC server's listen port, matching the teacher's
// grpc.Config shape (src/core/grpc/server.go).
type Config struct {
	Port int
}

// Server hosts the EditService and RenderService on one *grpc.Server,
// the way the teacher's Server registered seven services on one
// *grpc.Server.
type Server struct {
	config     *Config
	grpcServer *grpc.Server
	listener   net.Listener
	model      llm.ChatModel
}

// NewServer builds a Server. model is the collaborator every incoming
// Edit call's session.Session will drive.
func NewServer(config *Config, model llm.ChatModel) *Server {
	return &Server{config: config, model: model}
}

// Start opens the listener and registers both services, matching the
// teacher's Start (net.Listen, grpc.NewServer, RegisterXServiceServer).
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.config.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.config.Port, err)
	}
	s.listener = listener

	s.grpcServer = grpc.NewServer()

	impl := &serviceImpl{model: s.model}
	bpmnrpc.RegisterEditServiceServer(s.grpcServer, impl)
	bpmnrpc.RegisterRenderServiceServer(s.grpcServer, impl)

	reflection.Register(s.grpcServer)

	log.Info("starting rpcapi server", logger.Int("port", s.config.Port))
	go func() {
		if err := s.grpcServer.Serve(listener); err != nil {
			log.Error("rpcapi server failed", logger.Err(err))
		}
	}()
	return nil
}

// Stop gracefully drains in-flight RPCs and closes the listener.
func (s *Server) Stop() error {
	if s.grpcServer == nil {
		return nil
	}
	s.grpcServer.GracefulStop()
	return nil
}

// serviceImpl backs both EditServiceServer and RenderServiceServer; a
// single struct implementing both is simpler than the teacher's one-
// struct-per-service split, since these two services share the same
// collaborator. It embeds both Unimplemented structs so it satisfies
// the generated interfaces' forward-compatibility requirement.
type serviceImpl struct {
	bpmnrpc.UnimplementedEditServiceServer
	bpmnrpc.UnimplementedRenderServiceServer
	model llm.ChatModel
}

func (s *serviceImpl) Edit(ctx context.Context, req *bpmnrpc.EditRequest) (*bpmnrpc.EditResponse, error) {
	var process model.Process
	if err := unmarshalProcess(req.GetProcessJson(), &process); err != nil {
		return &bpmnrpc.EditResponse{Error: err.Error()}, nil
	}

	sess := session.New(s.model)
	result, err := sess.Edit(ctx, process, req.GetChangeRequest())
	if err != nil {
		return &bpmnrpc.EditResponse{Error: err.Error()}, nil
	}

	out, err := marshalProcess(result.Process)
	if err != nil {
		return &bpmnrpc.EditResponse{Error: err.Error()}, nil
	}
	return &bpmnrpc.EditResponse{ProcessJson: out}, nil
}

func (s *serviceImpl) Render(ctx context.Context, req *bpmnrpc.RenderRequest) (*bpmnrpc.RenderResponse, error) {
	var process model.Process
	if err := unmarshalProcess(req.GetProcessJson(), &process); err != nil {
		return &bpmnrpc.RenderResponse{Error: err.Error()}, nil
	}

	return &bpmnrpc.RenderResponse{Xml: bpmnxml.Emit(flatten.Flatten(process))}, nil
}
