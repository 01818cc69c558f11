package llm

import (
	"encoding/json"
	"testing"

	openaisdk "github.com/openai/openai-go"
)

func TestToOpenAIMessagesMapsRoles(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "be terse"},
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
	}
	out := toOpenAIMessages(messages)
	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
}

func TestToOpenAIToolsCarriesSchema(t *testing.T) {
	tools := []ToolSpec{
		{Name: "delete_element", Description: "Remove an element.", Schema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"element_id": map[string]interface{}{"type": "string"}},
		}},
	}
	out := toOpenAITools(tools)
	if len(out) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(out))
	}
	if out[0].Function.Name != "delete_element" {
		t.Fatalf("expected function name delete_element, got %q", out[0].Function.Name)
	}
}

// decodeOpenAIMessage builds a ChatCompletionMessage from its documented
// wire JSON rather than from SDK struct literals, so this test doesn't
// depend on the SDK's internal Go type names for nested fields.
func decodeOpenAIMessage(t *testing.T, wireJSON string) openaisdk.ChatCompletionMessage {
	t.Helper()
	var msg openaisdk.ChatCompletionMessage
	if err := json.Unmarshal([]byte(wireJSON), &msg); err != nil {
		t.Fatalf("decode chat completion message: %v", err)
	}
	return msg
}

func TestFromOpenAIMessageExtractsToolCalls(t *testing.T) {
	msg := decodeOpenAIMessage(t, `{
		"role": "assistant",
		"content": "",
		"tool_calls": [{
			"id": "call_1",
			"type": "function",
			"function": {"name": "delete_element", "arguments": "{\"element_id\":\"t1\"}"}
		}]
	}`)
	out := fromOpenAIMessage(msg)
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

func TestFromOpenAIMessageWithNoToolCalls(t *testing.T) {
	msg := decodeOpenAIMessage(t, `{"role": "assistant", "content": "no tool needed"}`)
	out := fromOpenAIMessage(msg)
	if out.Text != "no tool needed" {
		t.Fatalf("expected text preserved, got %q", out.Text)
	}
	if len(out.ToolCalls) != 0 {
		t.Fatalf("expected no tool calls, got %d", len(out.ToolCalls))
	}
}

func TestNewOpenAIClientDefaultsModel(t *testing.T) {
	c := NewOpenAIClient("test-key", "")
	if c.model != "gpt-4" {
		t.Fatalf("expected default model gpt-4, got %q", c.model)
	}
}

func TestNewOpenAIClientKeepsExplicitModel(t *testing.T) {
	c := NewOpenAIClient("test-key", "gpt-4-turbo")
	if c.model != "gpt-4-turbo" {
		t.Fatalf("expected explicit model to survive, got %q", c.model)
	}
}
