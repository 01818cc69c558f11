/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package proposal

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/zoobzio/pipz"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/validate"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

// Function names accepted in the "function" field (spec.md §6.4).
const (
	fnDeleteElement  = "delete_element"
	fnRedirectBranch = "redirect_branch"
	fnAddElement     = "add_element"
	fnMoveElement    = "move_element"
	fnUpdateElement  = "update_element"
)

// argumentKeys lists, per function, the exact key sets validation
// accepts — no extras, no missing (spec.md §4.7). add_element and
// move_element have two valid shapes (before_id xor after_id).
var argumentKeys = map[string][][]string{
	fnDeleteElement:  {{"element_id"}},
	fnRedirectBranch: {{"branch_condition", "next_id"}},
	fnAddElement:     {{"element", "before_id"}, {"element", "after_id"}},
	fnMoveElement:    {{"element_id", "before_id"}, {"element_id", "after_id"}},
	fnUpdateElement:  {{"new_element"}},
}

// wireProposal is the raw JSON shape of an edit proposal (spec.md §6.4).
type wireProposal struct {
	Stop      *bool                      `json:"stop,omitempty"`
	Function  string                     `json:"function,omitempty"`
	Arguments map[string]json.RawMessage `json:"arguments,omitempty"`
}

// staging carries a proposal through the pipz chain below, accumulating
// the narrowed result as each stage runs.
type staging struct {
	raw     wireProposal
	isFirst bool
	allIDs  map[string]struct{}
	result  Proposal
}

// stageFunc adapts a plain function into a pipz.Chainable.
type stageFunc func(*staging) (*staging, error)

func (f stageFunc) Process(s *staging) (*staging, error) { return f(s) }

// Validate narrows raw edit-proposal JSON into a Proposal, enforcing
// exact argument keys per function, embedded-element validity, and the
// first-proposal stop rejection (spec.md §4.7). allIDs is the target
// process's known element IDs, used to validate embedded elements'
// `next` references.
func Validate(data []byte, isFirst bool, allIDs map[string]struct{}) (Proposal, error) {
	var raw wireProposal
	if err := json.Unmarshal(data, &raw); err != nil {
		return Proposal{}, coreerr.Wrap(coreerr.KindProposal, "edit proposal is not valid json", err)
	}

	if raw.Stop != nil && *raw.Stop {
		if isFirst {
			return Proposal{}, coreerr.Proposal("stop is not a valid first proposal")
		}
		return Proposal{Stop: true}, nil
	}

	chain := pipz.NewChain[*staging]()
	chain.Add(
		stageFunc(checkKnownFunction),
		stageFunc(checkArgumentKeys),
		stageFunc(narrowArguments),
		stageFunc(validateEmbeddedElement),
	)

	out, err := chain.Process(&staging{raw: raw, isFirst: isFirst, allIDs: allIDs})
	if err != nil {
		return Proposal{}, err
	}
	return out.result, nil
}

func checkKnownFunction(s *staging) (*staging, error) {
	if _, ok := argumentKeys[s.raw.Function]; !ok {
		return nil, coreerr.Proposal("unknown edit function %q", s.raw.Function)
	}
	return s, nil
}

func checkArgumentKeys(s *staging) (*staging, error) {
	got := make([]string, 0, len(s.raw.Arguments))
	for k := range s.raw.Arguments {
		got = append(got, k)
	}
	sort.Strings(got)
	gotKey := strings.Join(got, ",")

	for _, shape := range argumentKeys[s.raw.Function] {
		want := append([]string{}, shape...)
		sort.Strings(want)
		if strings.Join(want, ",") == gotKey {
			return s, nil
		}
	}
	return nil, coreerr.Proposal("function %q received arguments %v, which match none of its accepted shapes", s.raw.Function, got)
}

func narrowArguments(s *staging) (*staging, error) {
	args := s.raw.Arguments

	switch s.raw.Function {
	case fnDeleteElement:
		var id string
		if err := json.Unmarshal(args["element_id"], &id); err != nil {
			return nil, coreerr.Wrap(coreerr.KindProposal, "invalid element_id", err)
		}
		s.result = Proposal{Function: s.raw.Function, DeleteElement: &DeleteElementArgs{ElementID: id}}

	case fnRedirectBranch:
		var cond, next string
		if err := json.Unmarshal(args["branch_condition"], &cond); err != nil {
			return nil, coreerr.Wrap(coreerr.KindProposal, "invalid branch_condition", err)
		}
		if err := json.Unmarshal(args["next_id"], &next); err != nil {
			return nil, coreerr.Wrap(coreerr.KindProposal, "invalid next_id", err)
		}
		s.result = Proposal{Function: s.raw.Function, RedirectBranch: &RedirectBranchArgs{BranchCondition: cond, NextID: next}}

	case fnAddElement:
		var elem model.Element
		if err := json.Unmarshal(args["element"], &elem); err != nil {
			return nil, coreerr.Wrap(coreerr.KindProposal, "invalid element", err)
		}
		var before, after string
		if raw, ok := args["before_id"]; ok {
			if err := json.Unmarshal(raw, &before); err != nil {
				return nil, coreerr.Wrap(coreerr.KindProposal, "invalid before_id", err)
			}
		}
		if raw, ok := args["after_id"]; ok {
			if err := json.Unmarshal(raw, &after); err != nil {
				return nil, coreerr.Wrap(coreerr.KindProposal, "invalid after_id", err)
			}
		}
		s.result = Proposal{Function: s.raw.Function, AddElement: &AddElementArgs{Element: elem, BeforeID: before, AfterID: after}}

	case fnMoveElement:
		var id, before, after string
		if err := json.Unmarshal(args["element_id"], &id); err != nil {
			return nil, coreerr.Wrap(coreerr.KindProposal, "invalid element_id", err)
		}
		if raw, ok := args["before_id"]; ok {
			if err := json.Unmarshal(raw, &before); err != nil {
				return nil, coreerr.Wrap(coreerr.KindProposal, "invalid before_id", err)
			}
		}
		if raw, ok := args["after_id"]; ok {
			if err := json.Unmarshal(raw, &after); err != nil {
				return nil, coreerr.Wrap(coreerr.KindProposal, "invalid after_id", err)
			}
		}
		s.result = Proposal{Function: s.raw.Function, MoveElement: &MoveElementArgs{ElementID: id, BeforeID: before, AfterID: after}}

	case fnUpdateElement:
		var elem model.Element
		if err := json.Unmarshal(args["new_element"], &elem); err != nil {
			return nil, coreerr.Wrap(coreerr.KindProposal, "invalid new_element", err)
		}
		s.result = Proposal{Function: s.raw.Function, UpdateElement: &UpdateElementArgs{NewElement: elem}}
	}

	return s, nil
}

func validateEmbeddedElement(s *staging) (*staging, error) {
	var embedded *model.Element
	switch {
	case s.result.AddElement != nil:
		embedded = &s.result.AddElement.Element
	case s.result.UpdateElement != nil:
		embedded = &s.result.UpdateElement.NewElement
	default:
		return s, nil
	}

	if err := validate.Element(*embedded, s.allIDs); err != nil {
		return nil, err
	}
	return s, nil
}
