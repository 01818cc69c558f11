/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package llm

import (
	"context"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

// AnthropicClient adapts the official Anthropic SDK to ChatModel. It is
// the session's second collaborator implementation (spec.md §9's note
// that the LLM client is an injected collaborator, not a singleton).
type AnthropicClient struct {
	client *anthropicsdk.Client
	model  string
}

// NewAnthropicClient builds an AnthropicClient. model defaults to a
// current Claude model when empty.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}
	c := anthropicsdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{client: &c, model: model}
}

func (c *AnthropicClient) Chat(ctx context.Context, messages []Message, tools []ToolSpec) (ChatOut, error) {
	systemPrompt, rest := extractSystem(messages)

	params := anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(c.model),
		Messages:  toAnthropicMessages(rest),
		MaxTokens: 4096,
	}
	if systemPrompt != "" {
		params.System = []anthropicsdk.TextBlockParam{{Text: systemPrompt}}
	}
	if len(tools) > 0 {
		params.Tools = toAnthropicTools(tools)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return ChatOut{}, coreerr.Wrap(coreerr.KindTransport, "anthropic message failed", err)
	}

	return fromAnthropicMessage(resp), nil
}

// extractSystem pulls the (at most conceptual) system messages out of the
// conversation, since Anthropic takes the system prompt as a separate
// parameter rather than a message with role "system".
func extractSystem(messages []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}

func toAnthropicMessages(messages []Message) []anthropicsdk.MessageParam {
	out := make([]anthropicsdk.MessageParam, len(messages))
	for i, m := range messages {
		if m.Role == RoleAssistant {
			out[i] = anthropicsdk.NewAssistantMessage(anthropicsdk.NewTextBlock(m.Content))
		} else {
			out[i] = anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(m.Content))
		}
	}
	return out
}

func toAnthropicTools(tools []ToolSpec) []anthropicsdk.ToolUnionParam {
	out := make([]anthropicsdk.ToolUnionParam, len(tools))
	for i, t := range tools {
		var properties any
		var required []string
		if t.Schema != nil {
			properties = t.Schema["properties"]
			if req, ok := t.Schema["required"].([]string); ok {
				required = req
			}
		}
		out[i] = anthropicsdk.ToolUnionParam{
			OfTool: &anthropicsdk.ToolParam{
				Name:        t.Name,
				Description: anthropicsdk.String(t.Description),
				InputSchema: anthropicsdk.ToolInputSchemaParam{
					Properties: properties,
					Required:   required,
				},
			},
		}
	}
	return out
}

func fromAnthropicMessage(resp *anthropicsdk.Message) ChatOut {
	var out ChatOut
	for _, block := range resp.Content {
		switch b := block.AsAny().(type) {
		case anthropicsdk.TextBlock:
			if out.Text != "" {
				out.Text += "\n"
			}
			out.Text += b.Text
		case anthropicsdk.ToolUseBlock:
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				Name:          b.Name,
				ArgumentsJSON: string(b.Input),
			})
		}
	}
	return out
}
