/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package bpmnxml

import (
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

// unflattener holds the lookup tables a single reconstruction walk
// (spec.md §4.5) needs: elements by ID and each element's outgoing flows
// in document order.
type unflattener struct {
	elemByID map[string]model.FlatElement
	outFlows map[string][]model.SequenceFlow
}

func newUnflattener(fp model.FlatProcess) *unflattener {
	u := &unflattener{
		elemByID: make(map[string]model.FlatElement, len(fp.Elements)),
		outFlows: make(map[string][]model.SequenceFlow),
	}
	for _, e := range fp.Elements {
		u.elemByID[e.ID] = e
	}
	for _, fl := range fp.Flows {
		u.outFlows[fl.Source] = append(u.outFlows[fl.Source], fl)
	}
	return u
}

func (u *unflattener) targets(id string) []string {
	outs := u.outFlows[id]
	ts := make([]string, len(outs))
	for i, fl := range outs {
		ts[i] = fl.Target
	}
	return ts
}

// Unflatten reconstructs the hierarchical process from its flat
// representation (spec.md §4.5), starting at the sole start event and
// walking forward.
func Unflatten(fp model.FlatProcess) (model.Process, error) {
	u := newUnflattener(fp)

	var start *model.FlatElement
	count := 0
	for i := range fp.Elements {
		if fp.Elements[i].Type == model.StartEvent {
			count++
			start = &fp.Elements[i]
		}
	}
	if count != 1 {
		return model.Process{}, coreerr.Structure("expected exactly one start event, found %d", count)
	}

	visited := make(map[string]bool)
	elements, err := u.walkChain(start.ID, "", visited)
	if err != nil {
		return model.Process{}, err
	}

	return model.Process{Elements: elements}, nil
}

// walkChain walks forward from id, appending elements to the result list
// until it reaches stop, an already-visited node, or a dead end
// (spec.md §4.5's final bullet).
func (u *unflattener) walkChain(id, stop string, visited map[string]bool) ([]model.Element, error) {
	var result []model.Element

	cur := id
	for cur != "" && cur != stop && !visited[cur] {
		visited[cur] = true

		fe, ok := u.elemByID[cur]
		if !ok {
			return nil, coreerr.Structure("sequence flow references unknown element %q", cur)
		}

		switch fe.Type {
		case model.ExclusiveGateway:
			elem, next, err := u.buildExclusive(fe, visited)
			if err != nil {
				return nil, err
			}
			result = append(result, elem)
			cur = next

		case model.ParallelGateway:
			elem, next, err := u.buildParallel(fe, visited)
			if err != nil {
				return nil, err
			}
			result = append(result, elem)
			cur = next

		case model.EndEvent:
			result = append(result, model.Element{ID: fe.ID, Type: fe.Type, Label: fe.Label})
			cur = ""

		case model.Task, model.UserTask, model.ServiceTask, model.StartEvent:
			result = append(result, model.Element{ID: fe.ID, Type: fe.Type, Label: fe.Label})
			outs := u.outFlows[cur]
			if len(outs) != 1 {
				return nil, coreerr.Structure("expected exactly one outgoing flow from %q, found %d", cur, len(outs))
			}
			cur = outs[0].Target

		default:
			return nil, coreerr.Structure("unsupported element type %q", fe.Type)
		}
	}

	return result, nil
}

// naturalContinuation reports where elemID flows to when nothing
// overrides it: its sole outgoing flow for a plain element, or its
// computed join successor for a gateway (for an exclusive gateway whose
// branches meet at an element that is not a join, that element itself).
// ok is false when there is no well-defined single continuation: a plain
// element without exactly one outgoing flow (e.g. an end event), an
// exclusive gateway whose branches never reconverge, or a parallel
// gateway without a parallel join that has one outgoing flow.
func (u *unflattener) naturalContinuation(elemID string) (string, bool) {
	fe, ok := u.elemByID[elemID]
	if !ok {
		return "", false
	}

	switch fe.Type {
	case model.ExclusiveGateway:
		return u.exclusiveContinuation(elemID)
	case model.ParallelGateway:
		return u.parallelContinuation(elemID)
	default:
		outs := u.outFlows[elemID]
		if len(outs) == 1 {
			return outs[0].Target, true
		}
		return "", false
	}
}

func (u *unflattener) exclusiveContinuation(id string) (string, bool) {
	cbe, found := commonBranchEndpoint(u.targets, u.targets(id))
	if !found {
		return "", false
	}
	if cbeFe, ok := u.elemByID[cbe]; ok && cbeFe.Type == model.ExclusiveGateway {
		joinOuts := u.outFlows[cbe]
		if len(joinOuts) == 1 {
			return joinOuts[0].Target, true
		}
	}
	return cbe, true
}

func (u *unflattener) parallelContinuation(id string) (string, bool) {
	cbe, found := commonBranchEndpoint(u.targets, u.targets(id))
	if !found {
		return "", false
	}
	if cbeFe, ok := u.elemByID[cbe]; ok && cbeFe.Type == model.ParallelGateway {
		joinOuts := u.outFlows[cbe]
		if len(joinOuts) == 1 {
			return joinOuts[0].Target, true
		}
	}
	return "", false
}

// buildExclusive reconstructs an exclusive gateway and its branches,
// returning the element and the ID the walk should continue from.
func (u *unflattener) buildExclusive(fe model.FlatElement, visited map[string]bool) (model.Element, string, error) {
	outs := u.outFlows[fe.ID]
	if len(outs) < 2 {
		return model.Element{}, "", coreerr.Structure("exclusive gateway %q must have at least two outgoing flows", fe.ID)
	}

	targets := make([]string, len(outs))
	for i, fl := range outs {
		targets[i] = fl.Target
	}

	cbe, found := commonBranchEndpoint(u.targets, targets)
	if !found {
		cbe = ""
	}

	hasJoin := false
	nextID := cbe
	if found {
		if cbeFe, ok := u.elemByID[cbe]; ok && cbeFe.Type == model.ExclusiveGateway {
			joinOuts := u.outFlows[cbe]
			if len(joinOuts) == 1 {
				hasJoin = true
				nextID = joinOuts[0].Target
			}
		}
	}

	branches := make([]model.ExclusiveBranch, 0, len(outs))
	for _, fl := range outs {
		path, err := u.walkChain(fl.Target, cbe, visited)
		if err != nil {
			return model.Element{}, "", err
		}

		branch := model.ExclusiveBranch{Condition: fl.Condition, Path: path}

		if len(path) == 0 {
			if fl.Target != cbe {
				next := fl.Target
				branch.Next = &next
			}
		} else {
			last := path[len(path)-1]
			cont, contOK := u.naturalContinuation(last.ID)
			if !contOK {
				cont = ""
			}
			if cont != cbe && cont != "" {
				next := cont
				branch.Next = &next
			}
		}

		branches = append(branches, branch)
	}

	elem := model.Element{
		ID:                fe.ID,
		Type:              model.ExclusiveGateway,
		Label:             fe.Label,
		HasJoin:           hasJoin,
		ExclusiveBranches: branches,
	}
	return elem, nextID, nil
}

// buildParallel reconstructs a parallel gateway and its branches. Unlike
// exclusive gateways, a parallel gateway's CBE must itself be a parallel
// join (spec.md §4.5); anything else is a structural error.
func (u *unflattener) buildParallel(fe model.FlatElement, visited map[string]bool) (model.Element, string, error) {
	outs := u.outFlows[fe.ID]
	if len(outs) < 2 {
		return model.Element{}, "", coreerr.Structure("parallel gateway %q must have at least two outgoing flows", fe.ID)
	}

	targets := make([]string, len(outs))
	for i, fl := range outs {
		targets[i] = fl.Target
	}

	cbe, found := commonBranchEndpoint(u.targets, targets)
	if !found {
		return model.Element{}, "", coreerr.Structure("parallel gateway %q has no common join", fe.ID)
	}
	cbeFe, ok := u.elemByID[cbe]
	if !ok || cbeFe.Type != model.ParallelGateway {
		return model.Element{}, "", coreerr.Structure("parallel gateway %q does not converge on a parallel join", fe.ID)
	}
	joinOuts := u.outFlows[cbe]
	if len(joinOuts) != 1 {
		return model.Element{}, "", coreerr.Structure("parallel join %q must have exactly one outgoing flow", cbe)
	}

	branches := make([]model.ParallelBranch, 0, len(outs))
	for _, fl := range outs {
		path, err := u.walkChain(fl.Target, cbe, visited)
		if err != nil {
			return model.Element{}, "", err
		}
		branches = append(branches, model.ParallelBranch{Path: path})
	}

	elem := model.Element{
		ID:               fe.ID,
		Type:             model.ParallelGateway,
		Label:            fe.Label,
		ParallelBranches: branches,
	}
	return elem, joinOuts[0].Target, nil
}
