/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package session is the editing-session orchestrator (spec.md §4.8): it
// alternates "send prompt → receive proposal → apply" against an injected
// LLM collaborator, with bounded retries and iterations. It holds no
// state across calls to Edit — every iteration starts from the previous
// iteration's returned process value (spec.md §5).
package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/edit"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/path"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/proposal"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
	"github.com/darosuardiaz/bpmn-generator/internal/llm"
)

// MaxRetries and MaxIterations are spec.md §4.8's fixed budgets: up to 4
// retries per proposal, up to 15 iterations in the iterative phase.
const (
	MaxRetries    = 4
	MaxIterations = 15
)

var log = logger.Global().With("session")

// Session is one editing conversation: a stable ID (for internal/store's
// snapshot keys) and the LLM collaborator it drives.
type Session struct {
	ID    string
	Model llm.ChatModel
}

// New creates a session with a fresh ID.
func New(model llm.ChatModel) *Session {
	return &Session{ID: uuid.NewString(), Model: model}
}

// Result is what one Edit call produces: the final process and the full
// trail of applied proposals, for callers that stream progress (spec.md
// §6.6's chat transport).
type Result struct {
	Process model.Process
	Applied []proposal.Proposal
}

// Edit runs spec.md §4.8's full protocol: one initial edit (stop
// disallowed), then up to MaxIterations further turns where the model may
// either propose another edit or stop. It returns EditExhausted if either
// budget is exceeded.
func (s *Session) Edit(ctx context.Context, process model.Process, changeRequest string) (Result, error) {
	history := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: changeRequest},
	}

	result := Result{Process: process}

	next, history, err := s.turn(ctx, process, history, true)
	if err != nil {
		return Result{}, err
	}
	result.Process = next.process
	result.Applied = append(result.Applied, next.proposal)

	for i := 0; i < MaxIterations; i++ {
		next, history, err = s.turn(ctx, result.Process, history, false)
		if err != nil {
			return Result{}, err
		}
		if next.stopped {
			return result, nil
		}
		result.Process = next.process
		result.Applied = append(result.Applied, next.proposal)
	}

	return Result{}, coreerr.EditExhausted("editing session exceeded %d iterations without a stop proposal", MaxIterations)
}

type turnResult struct {
	process  model.Process
	proposal proposal.Proposal
	stopped  bool
}

// turn performs one "send prompt → receive proposal → apply" round: a
// first attempt plus up to MaxRetries retries, feeding the prior error
// back into the next prompt (spec.md §4.8).
func (s *Session) turn(ctx context.Context, process model.Process, history []llm.Message, isFirst bool) (turnResult, []llm.Message, error) {
	messages := append([]llm.Message{}, history...)

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if lastErr != nil {
			messages = append(messages, llm.Message{
				Role:    llm.RoleUser,
				Content: "Your previous proposal failed: " + lastErr.Error() + ". Please try again.",
			})
		}

		out, err := s.Model.Chat(ctx, messages, toolSpecs)
		if err != nil {
			return turnResult{}, history, err
		}

		proposalJSON, callErr := firstToolCallJSON(out, isFirst)
		if callErr != nil {
			lastErr = callErr
			continue
		}

		p, verr := proposal.Validate(proposalJSON, isFirst, path.IDSet(process))
		if verr != nil {
			lastErr = verr
			continue
		}

		if p.Stop {
			return turnResult{stopped: true}, appendAssistant(history, proposalJSON), nil
		}

		applied, aerr := apply(process, p)
		if aerr != nil {
			lastErr = aerr
			continue
		}

		log.Info("applied edit proposal", logger.String("session", s.ID), logger.String("function", p.Function))
		return turnResult{process: applied, proposal: p}, appendAssistant(history, proposalJSON), nil
	}

	return turnResult{}, history, coreerr.EditExhausted("exceeded %d retries: %v", MaxRetries, lastErr)
}

func appendAssistant(history []llm.Message, proposalJSON []byte) []llm.Message {
	return append(append([]llm.Message{}, history...), llm.Message{Role: llm.RoleAssistant, Content: string(proposalJSON)})
}

// firstToolCallJSON extracts the sole proposal JSON from the model's
// reply: {"stop":true} when the first tool call is the stop tool, and
// otherwise that call's arguments wrapped back into the
// {"function":...,"arguments":...} envelope. Further tool calls are
// ignored. A reply with no tool call is a TransportError; a stop signal
// written as free text is not recognised (spec.md §4.8's "requesting a
// single function call").
func firstToolCallJSON(out llm.ChatOut, isFirst bool) ([]byte, error) {
	if len(out.ToolCalls) == 0 {
		return nil, coreerr.Transport("model returned no tool call")
	}
	call := out.ToolCalls[0]
	if call.Name == "stop" {
		return []byte(`{"stop":true}`), nil
	}
	return []byte(`{"function":"` + call.Name + `","arguments":` + call.ArgumentsJSON + `}`), nil
}

// apply dispatches a validated proposal to the editing engine (spec.md
// §4.6). Every case deep-clones internally, so the caller's process is
// never mutated (spec.md §8.1's purity property).
func apply(process model.Process, p proposal.Proposal) (model.Process, error) {
	switch p.Function {
	case "delete_element":
		return edit.DeleteElement(process, p.DeleteElement.ElementID)
	case "redirect_branch":
		return edit.RedirectBranch(process, p.RedirectBranch.BranchCondition, p.RedirectBranch.NextID)
	case "add_element":
		return edit.AddElement(process, p.AddElement.Element, p.AddElement.BeforeID, p.AddElement.AfterID)
	case "move_element":
		return edit.MoveElement(process, p.MoveElement.ElementID, p.MoveElement.BeforeID, p.MoveElement.AfterID)
	case "update_element":
		return edit.UpdateElement(process, p.UpdateElement.NewElement)
	default:
		return model.Process{}, coreerr.Proposal("unknown edit function %q", p.Function)
	}
}

const systemPrompt = `You edit BPMN 2.0 process diagrams by calling exactly one structural ` +
	`edit function per turn, or stop when the change request is satisfied.`

// toolSpecs mirrors spec.md §6.4's five edit functions as callable tools,
// plus an implicit stop tool the session recognises by name.
var toolSpecs = []llm.ToolSpec{
	{Name: "delete_element", Description: "Remove an element by ID.", Schema: schema("element_id", "string")},
	{Name: "redirect_branch", Description: "Set the next element an exclusive branch flows into.", Schema: schema("branch_condition", "string", "next_id", "string")},
	{Name: "add_element", Description: "Insert a new element before or after an anchor element.", Schema: schema("element", "object", "before_id", "string", "after_id", "string")},
	{Name: "move_element", Description: "Move an existing element before or after an anchor element.", Schema: schema("element_id", "string", "before_id", "string", "after_id", "string")},
	{Name: "update_element", Description: "Replace a non-gateway element's fields in place.", Schema: schema("new_element", "object")},
	{Name: "stop", Description: "Signal that no further edits are needed."},
}

func schema(kv ...string) map[string]interface{} {
	properties := map[string]interface{}{}
	for i := 0; i+1 < len(kv); i += 2 {
		properties[kv[i]] = map[string]interface{}{"type": kv[i+1]}
	}
	return map[string]interface{}{"type": "object", "properties": properties}
}
