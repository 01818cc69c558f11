/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package llm

import (
	"context"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

// OpenAIClient adapts the official OpenAI SDK to ChatModel, consuming
// spec.md §6.5's OPENAI_API_KEY/OPENAI_MODEL at construction time.
type OpenAIClient struct {
	client *openaisdk.Client
	model  string
}

// NewOpenAIClient builds an OpenAIClient. model defaults to "gpt-4" per
// spec.md §6.5 when empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4"
	}
	c := openaisdk.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: &c, model: model}
}

func (c *OpenAIClient) Chat(ctx context.Context, messages []Message, tools []ToolSpec) (ChatOut, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(c.model),
		Messages: toOpenAIMessages(messages),
	}
	if len(tools) > 0 {
		params.Tools = toOpenAITools(tools)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return ChatOut{}, coreerr.Wrap(coreerr.KindTransport, "openai chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return ChatOut{}, coreerr.Transport("openai returned no choices")
	}

	return fromOpenAIMessage(resp.Choices[0].Message), nil
}

func toOpenAIMessages(messages []Message) []openaisdk.ChatCompletionMessageParamUnion {
	out := make([]openaisdk.ChatCompletionMessageParamUnion, len(messages))
	for i, m := range messages {
		switch m.Role {
		case RoleSystem:
			out[i] = openaisdk.SystemMessage(m.Content)
		case RoleAssistant:
			out[i] = openaisdk.AssistantMessage(m.Content)
		default:
			out[i] = openaisdk.UserMessage(m.Content)
		}
	}
	return out
}

func toOpenAITools(tools []ToolSpec) []openaisdk.ChatCompletionToolParam {
	out := make([]openaisdk.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		out[i] = openaisdk.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openaisdk.String(t.Description),
				Parameters:  shared.FunctionParameters(t.Schema),
			},
		}
	}
	return out
}

func fromOpenAIMessage(msg openaisdk.ChatCompletionMessage) ChatOut {
	out := ChatOut{Text: msg.Content}
	if len(msg.ToolCalls) == 0 {
		return out
	}
	out.ToolCalls = make([]ToolCall, len(msg.ToolCalls))
	for i, tc := range msg.ToolCalls {
		out.ToolCalls[i] = ToolCall{
			Name:          tc.Function.Name,
			ArgumentsJSON: tc.Function.Arguments,
		}
	}
	return out
}
