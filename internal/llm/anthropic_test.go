package llm

import (
	"encoding/json"
	"testing"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
)

func TestExtractSystemSeparatesSystemMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "be terse"},
		{Role: RoleUser, Content: "hello"},
		{Role: RoleSystem, Content: "never apologize"},
		{Role: RoleAssistant, Content: "hi"},
	}
	system, rest := extractSystem(messages)
	if system != "be terse\n\nnever apologize" {
		t.Fatalf("expected concatenated system prompt, got %q", system)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 non-system messages, got %d", len(rest))
	}
}

func TestExtractSystemWithNoSystemMessages(t *testing.T) {
	messages := []Message{{Role: RoleUser, Content: "hello"}}
	system, rest := extractSystem(messages)
	if system != "" {
		t.Fatalf("expected empty system prompt, got %q", system)
	}
	if len(rest) != 1 {
		t.Fatalf("expected 1 message, got %d", len(rest))
	}
}

func TestToAnthropicMessagesMapsRoles(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
	}
	out := toAnthropicMessages(messages)
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
}

func TestToAnthropicToolsCarriesSchema(t *testing.T) {
	tools := []ToolSpec{
		{Name: "delete_element", Description: "Remove an element.", Schema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"element_id": map[string]interface{}{"type": "string"}},
			"required":   []string{"element_id"},
		}},
	}
	out := toAnthropicTools(tools)
	if len(out) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(out))
	}
	if out[0].OfTool.Name != "delete_element" {
		t.Fatalf("expected tool name delete_element, got %q", out[0].OfTool.Name)
	}
	if len(out[0].OfTool.InputSchema.Required) != 1 || out[0].OfTool.InputSchema.Required[0] != "element_id" {
		t.Fatalf("expected required [element_id], got %v", out[0].OfTool.InputSchema.Required)
	}
}

func TestToAnthropicToolsWithNilSchema(t *testing.T) {
	tools := []ToolSpec{{Name: "stop", Description: "Stop editing."}}
	out := toAnthropicTools(tools)
	if len(out) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(out))
	}
}

// decodeAnthropicMessage builds a Message from its documented wire JSON
// rather than from SDK struct literals, so this test doesn't depend on
// the SDK's internal Go type names for content block variants.
func decodeAnthropicMessage(t *testing.T, wireJSON string) *anthropicsdk.Message {
	t.Helper()
	var msg anthropicsdk.Message
	if err := json.Unmarshal([]byte(wireJSON), &msg); err != nil {
		t.Fatalf("decode anthropic message: %v", err)
	}
	return &msg
}

func TestFromAnthropicMessageExtractsText(t *testing.T) {
	msg := decodeAnthropicMessage(t, `{
		"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-sonnet-4-5-20250929",
		"content": [{"type": "text", "text": "hello there"}],
		"stop_reason": "end_turn"
	}`)
	out := fromAnthropicMessage(msg)
	if out.Text != "hello there" {
		t.Fatalf("expected text %q, got %q", "hello there", out.Text)
	}
	if len(out.ToolCalls) != 0 {
		t.Fatalf("expected no tool calls, got %d", len(out.ToolCalls))
	}
}

func TestFromAnthropicMessageExtractsToolUse(t *testing.T) {
	msg := decodeAnthropicMessage(t, `{
		"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-sonnet-4-5-20250929",
		"content": [
			{"type": "text", "text": "deleting it"},
			{"type": "tool_use", "id": "tu_1", "name": "delete_element", "input": {"element_id": "t1"}}
		],
		"stop_reason": "tool_use"
	}`)
	out := fromAnthropicMessage(msg)
	if out.Text != "deleting it" {
		t.Fatalf("expected text preserved alongside tool use, got %q", out.Text)
	}
	if len(out.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(out.ToolCalls))
	}
	if out.ToolCalls[0].Name != "delete_element" {
		t.Fatalf("expected name delete_element, got %q", out.ToolCalls[0].Name)
	}
	var args map[string]string
	if err := json.Unmarshal([]byte(out.ToolCalls[0].ArgumentsJSON), &args); err != nil {
		t.Fatalf("expected valid json arguments: %v", err)
	}
	if args["element_id"] != "t1" {
		t.Fatalf("expected element_id t1, got %q", args["element_id"])
	}
}

func TestNewAnthropicClientDefaultsModel(t *testing.T) {
	c := NewAnthropicClient("test-key", "")
	if c.model != "claude-sonnet-4-5-20250929" {
		t.Fatalf("expected default model, got %q", c.model)
	}
}

func TestNewAnthropicClientKeepsExplicitModel(t *testing.T) {
	c := NewAnthropicClient("test-key", "claude-opus-4")
	if c.model != "claude-opus-4" {
		t.Fatalf("expected explicit model to survive, got %q", c.model)
	}
}
