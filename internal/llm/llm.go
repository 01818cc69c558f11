/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package llm is the LLM collaborator seam (spec.md §1): the engine only
// ever sees this interface, never a concrete provider SDK.
package llm

import "context"

// ChatModel is the LLM collaborator the editing session (spec.md §4.8)
// drives: one function-call request per turn, either an edit proposal or
// a stop signal.
type ChatModel interface {
	// Chat sends the conversation so far plus the available tools and
	// returns the model's reply. ctx governs the suspension point — the
	// session aborts here on cancellation (spec.md §5).
	Chat(ctx context.Context, messages []Message, tools []ToolSpec) (ChatOut, error)
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ToolSpec describes one callable edit function (spec.md §6.4) the model
// may invoke, expressed as a JSON Schema parameter set.
type ToolSpec struct {
	Name        string
	Description string
	Schema      map[string]interface{}
}

// ChatOut is the model's reply: free text, a tool call, or both.
type ChatOut struct {
	Text      string
	ToolCalls []ToolCall
}

// ToolCall is a single function invocation the model requested, with its
// arguments left as raw JSON — proposal.Validate (spec.md §4.7) is the
// only place that narrows it further.
type ToolCall struct {
	Name          string
	ArgumentsJSON string
}
