package path

import (
	"reflect"
	"sort"
	"testing"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
)

func nestedProcess() model.Process {
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

func TestAllIDs(t *testing.T) {
	ids := AllIDs(nestedProcess())
	want := []string{"s1", "g1", "a", "b", "e1"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("AllIDs = %v, want %v", ids, want)
	}
}

func TestAllIDsNoDuplicates(t *testing.T) {
	ids := AllIDs(nestedProcess())
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q in %v", id, ids)
		}
		seen[id] = true
	}
}

func TestFindPositionBefore(t *testing.T) {
	p := nestedProcess()
	_, idx, err := FindPosition(p, "e1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 2 {
		t.Fatalf("expected index 2 (e1's position), got %d", idx)
	}
}

func TestFindPositionAfter(t *testing.T) {
	p := nestedProcess()
	_, idx, err := FindPosition(p, "", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 2 {
		t.Fatalf("expected index 2 (g1's position + 1), got %d", idx)
	}
}

func TestFindPositionRequiresExactlyOneID(t *testing.T) {
	p := nestedProcess()
	if _, _, err := FindPosition(p, "e1", "g1"); err == nil {
		t.Fatalf("expected error when both before and after given")
	}
	if _, _, err := FindPosition(p, "", ""); err == nil {
		t.Fatalf("expected error when neither before nor after given")
	}
}

func TestFindPositionUnknownID(t *testing.T) {
	p := nestedProcess()
	if _, _, err := FindPosition(p, "nope", ""); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestFindPositionInsideBranch(t *testing.T) {
	p := nestedProcess()
	listPath, idx, err := FindPosition(p, "", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := ResolveElementList(&p, listPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if idx != 1 || len(*list) != 1 {
		t.Fatalf("expected index 1 into a 1-element branch path, got idx=%d len=%d", idx, len(*list))
	}
}

func TestFindBranchPosition(t *testing.T) {
	p := nestedProcess()
	branchesPath, idx, err := FindBranchPosition(p, "no")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	branches, err := ResolveExclusiveBranches(&p, branchesPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if (*branches)[idx].Condition != "no" {
		t.Fatalf("expected branch %d to have condition \"no\", got %q", idx, (*branches)[idx].Condition)
	}
}

func TestFindBranchPositionUnknownCondition(t *testing.T) {
	p := nestedProcess()
	if _, _, err := FindBranchPosition(p, "maybe"); err == nil {
		t.Fatalf("expected error for unknown condition")
	}
}

func TestFindBranchPositionSearchesNestedGateways(t *testing.T) {
	p := model.Process{Elements: []model.Element{
		{ID: "s1", Type: model.StartEvent},
		{
			ID: "g1", Type: model.ExclusiveGateway, Label: "outer",
			ExclusiveBranches: []model.ExclusiveBranch{
				{Condition: "outer-yes", Path: []model.Element{
					{
						ID: "g2", Type: model.ExclusiveGateway, Label: "inner",
						ExclusiveBranches: []model.ExclusiveBranch{
							{Condition: "inner-a", Path: nil},
							{Condition: "inner-b", Path: nil},
						},
					},
				}},
				{Condition: "outer-no", Path: nil},
			},
		},
	}}

	branchesPath, idx, err := FindBranchPosition(p, "inner-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	branches, err := ResolveExclusiveBranches(&p, branchesPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if (*branches)[idx].Condition != "inner-b" {
		t.Fatalf("expected to resolve inner-b, got %q", (*branches)[idx].Condition)
	}
}

func TestDeepCloneIsIndependent(t *testing.T) {
	p := nestedProcess()
	clone := DeepClone(p)
	clone.Elements[0].ID = "changed"
	if p.Elements[0].ID == "changed" {
		t.Fatalf("mutating clone leaked into original")
	}
}

func TestResolveElementListTopLevel(t *testing.T) {
	p := nestedProcess()
	list, err := ResolveElementList(&p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*list) != 3 {
		t.Fatalf("expected top-level list of 3, got %d", len(*list))
	}
}

func TestLocateFindsNestedElement(t *testing.T) {
	p := nestedProcess()
	listPath, idx, err := Locate(p, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := ResolveElementList(&p, listPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if (*list)[idx].ID != "b" {
		t.Fatalf("expected to locate element \"b\", got %q", (*list)[idx].ID)
	}
}

func TestLocateUnknownID(t *testing.T) {
	p := nestedProcess()
	if _, _, err := Locate(p, "nope"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestIDSetMatchesAllIDs(t *testing.T) {
	p := nestedProcess()
	set := IDSet(p)
	ids := AllIDs(p)
	sort.Strings(ids)

	got := make([]string, 0, len(set))
	for id := range set {
		got = append(got, id)
	}
	sort.Strings(got)

	if !reflect.DeepEqual(got, ids) {
		t.Fatalf("IDSet = %v, want %v", got, ids)
	}
}
