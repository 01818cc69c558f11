package validate

import (
	"errors"
	"testing"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

func strptr(s string) *string { return &s }

func validProcess() model.Process {
	return model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "OK?", HasJoin: true,
			ExclusiveBranches: []model.ExclusiveBranch{
				{Condition: "yes", Path: []model.Element{{ID: "a", Type: model.Task, Label: "A"}}},
				{Condition: "no", Path: []model.Element{{ID: "b", Type: model.Task, Label: "B"}}},
			},
		},
		{ID: "e1", Type: model.EndEvent},
	}}
}

func TestValidateAcceptsWellFormedProcess(t *testing.T) {
	if err := Validate(validProcess()); err != nil {
		t.Fatalf("expected valid process, got error: %v", err)
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	p := validProcess()
	before := p.Clone()
	if err := Validate(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(before); err != nil {
		t.Fatalf("unexpected error on snapshot: %v", err)
	}
}

func TestValidateRejectsMissingStartEvent(t *testing.T) {
	p := model.Process{Elements: []model.Element{{ID: "t1", Type: model.Task, Label: "A"}}}
	err := Validate(p)
	if err == nil {
		t.Fatalf("expected error for missing start event")
	}
	assertKind(t, err, coreerr.KindSchema)
}

func TestValidateRejectsTwoStartEvents(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{ID: "s2", Type: model.StartEvent},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for two start events")
	}
}

func TestValidateRejectsNestedStartEvent(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "X",
			ExclusiveBranches: []model.ExclusiveBranch{
				{Condition: "a", Path: []model.Element{{ID: "s2", Type: model.StartEvent}}},
				{Condition: "b", Path: nil},
			},
		},
	}}
	err := Validate(p)
	if err == nil {
		t.Fatalf("expected error for nested start event")
	}
	assertKind(t, err, coreerr.KindSchema)
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{ID: "s1", Type: model.EndEvent},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for duplicate id")
	}
}

func TestValidateRejectsDuplicateIDAcrossBranches(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "X",
			ExclusiveBranches: []model.ExclusiveBranch{
				{Condition: "a", Path: []model.Element{{ID: "dup", Type: model.Task, Label: "A"}}},
				{Condition: "b", Path: []model.Element{{ID: "dup", Type: model.Task, Label: "B"}}},
			},
		},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for duplicate id across branches")
	}
}

func TestValidateRejectsGatewayWithOneBranch(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "X",
			ExclusiveBranches: []model.ExclusiveBranch{{Condition: "a"}},
		},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for gateway with fewer than 2 branches")
	}
}

func TestValidateRejectsEmptyBranchCondition(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "X",
			ExclusiveBranches: []model.ExclusiveBranch{
				{Condition: "", Path: nil},
				{Condition: "b", Path: nil},
			},
		},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for empty branch condition")
	}
}

func TestValidateRejectsEmptyTaskLabel(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{ID: "t1", Type: model.Task, Label: "   "},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for blank task label")
	}
}

func TestValidateRejectsUnknownNextReference(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "X",
			ExclusiveBranches: []model.ExclusiveBranch{
				{Condition: "a", Next: strptr("missing")},
				{Condition: "b"},
			},
		},
	}}
	err := Validate(p)
	if err == nil {
		t.Fatalf("expected error for unknown next reference")
	}
	assertKind(t, err, coreerr.KindLookup)
}

func TestValidateRejectsUnsupportedType(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{ID: "b1", Type: model.ElementType("boundaryEvent")},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for unsupported element type")
	}
}

func TestValidateRejectsParallelGatewayWithEmptyBranch(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "p1", Type: model.ParallelGateway,
			ParallelBranches: []model.ParallelBranch{
				{Path: nil},
				{Path: []model.Element{{ID: "tb", Type: model.Task, Label: "B"}}},
			},
		},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for empty parallel branch")
	}
}

func TestValidateRejectsExclusiveGatewayWithParallelBranches(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "X",
			ExclusiveBranches: []model.ExclusiveBranch{{Condition: "a"}, {Condition: "b"}},
			ParallelBranches:  []model.ParallelBranch{{Path: []model.Element{{ID: "x", Type: model.Task, Label: "X"}}}},
		},
	}}
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for gateway type/branch-shape mismatch")
	}
}

func TestElementValidatesEmbeddedElementInIsolation(t *testing.T) {
	allIDs := map[string]struct{}{"known": {}}

	if err := Element(model.Element{ID: "t1", Type: model.Task, Label: "A"}, allIDs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Element(model.Element{ID: "t1", Type: model.Task, Label: ""}, allIDs); err == nil {
		t.Fatalf("expected error for empty label")
	}
}

func assertKind(t *testing.T, err error, want coreerr.Kind) {
	t.Helper()
	var ce *coreerr.Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *coreerr.Error, got %T: %v", err, err)
	}
	if ce.Kind != want {
		t.Fatalf("expected kind %s, got %s", want, ce.Kind)
	}
}
