package rpcapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/llm"
	"github.com/darosuardiaz/bpmn-generator/internal/rpcapi/bpmnrpc"
)

func linearProcessJSON(t *testing.T) string {
	t.Helper()
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{ID: "t1", Type: model.Task, Label: "Do it"},
		{ID: "e1", Type: model.EndEvent},
	}}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal sample process: %v", err)
	}
	return string(data)
}

func TestMarshalUnmarshalProcessRoundTrips(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{ID: "e1", Type: model.EndEvent},
	}}
	out, err := marshalProcess(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded model.Process
	if err := unmarshalProcess(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(decoded.Elements))
	}
}

func TestUnmarshalProcessRejectsMalformedJSON(t *testing.T) {
	var p model.Process
	if err := unmarshalProcess("not json", &p); err == nil {
		t.Fatalf("expected an error for malformed process json")
	}
}

// stopModel immediately stops, so serviceImpl tests exercise the
// request/response plumbing without depending on edit semantics.
type stopModel struct{}

func (stopModel) Chat(ctx context.Context, messages []llm.Message, tools []llm.ToolSpec) (llm.ChatOut, error) {
	return llm.ChatOut{ToolCalls: []llm.ToolCall{{Name: "stop"}}}, nil
}

func TestServiceImplEditReportsErrorOnFirstTurnStop(t *testing.T) {
	svc := &serviceImpl{model: stopModel{}}
	resp, err := svc.Edit(context.Background(), &bpmnrpc.EditRequest{
		ProcessJson:   linearProcessJSON(t),
		ChangeRequest: "leave it as is",
	})
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("expected an error for a first-turn stop, got response %+v", resp)
	}
}

func TestServiceImplEditRejectsMalformedProcessJSON(t *testing.T) {
	svc := &serviceImpl{model: stopModel{}}
	resp, err := svc.Edit(context.Background(), &bpmnrpc.EditRequest{ProcessJson: "not json"})
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("expected a decode error on the response, got %+v", resp)
	}
}

func TestServiceImplRenderEmitsXML(t *testing.T) {
	svc := &serviceImpl{model: stopModel{}}
	resp, err := svc.Render(context.Background(), &bpmnrpc.RenderRequest{ProcessJson: linearProcessJSON(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error in response: %s", resp.Error)
	}
	if resp.Xml == "" {
		t.Fatalf("expected non-empty rendered xml")
	}
}

func TestServiceImplRenderRejectsMalformedProcessJSON(t *testing.T) {
	svc := &serviceImpl{model: stopModel{}}
	resp, err := svc.Render(context.Background(), &bpmnrpc.RenderRequest{ProcessJson: "not json"})
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("expected a decode error on the response, got %+v", resp)
	}
}
