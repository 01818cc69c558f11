/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package path addresses elements and branches inside the hierarchical
// tree by a structural path (spec.md §4.2), and provides the deep-clone
// entry point used by the editing engine.
package path

import (
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

// StepKind distinguishes the four token shapes a Path step can take
// (spec.md §4.2).
type StepKind int

const (
	StepTopLevel StepKind = iota // index into Process.Elements or a branch's Path
	StepBranches                 // literal "branches": descend into a gateway's branch list
	StepBranch                   // index into that branch list
	StepPath                     // literal "path": descend into the chosen branch's element list
)

// Step is one token of a Path.
type Step struct {
	Kind  StepKind
	Index int // meaningful for StepTopLevel and StepBranch
}

// Path is an ordered sequence of steps identifying a sub-tree slot
// (spec.md §4.2).
type Path []Step

// AllIDs returns every ID in the tree, in a deterministic depth-first,
// top-level-index order.
func AllIDs(p model.Process) []string {
	var ids []string
	collectIDs(p.Elements, &ids)
	return ids
}

func collectIDs(elements []model.Element, ids *[]string) {
	for _, e := range elements {
		*ids = append(*ids, e.ID)
		switch e.Type {
		case model.ExclusiveGateway:
			for _, b := range e.ExclusiveBranches {
				collectIDs(b.Path, ids)
			}
		case model.ParallelGateway:
			for _, b := range e.ParallelBranches {
				collectIDs(b.Path, ids)
			}
		}
	}
}

// IDSet is a convenience membership set built from AllIDs.
func IDSet(p model.Process) map[string]struct{} {
	set := make(map[string]struct{})
	for _, id := range AllIDs(p) {
		set[id] = struct{}{}
	}
	return set
}

// FindPosition locates the containing list and index for exactly one of
// before/after (spec.md §4.2's find_position). Exactly one of beforeID,
// afterID must be non-empty.
func FindPosition(p model.Process, beforeID, afterID string) (Path, int, error) {
	if (beforeID == "") == (afterID == "") {
		return nil, 0, coreerr.Lookup("find_position requires exactly one of before_id or after_id")
	}

	target := beforeID
	offset := 0
	if afterID != "" {
		target = afterID
		offset = 1
	}

	list, listPath, index, ok := findListContaining(p.Elements, nil, target)
	if !ok {
		return nil, 0, coreerr.Lookup("unknown element id %q", target)
	}
	_ = list
	return listPath, index + offset, nil
}

// Locate finds the element with the given id anywhere in the tree,
// returning the Path to its containing list and its index within it.
func Locate(p model.Process, id string) (Path, int, error) {
	_, listPath, idx, ok := findListContaining(p.Elements, nil, id)
	if !ok {
		return nil, 0, coreerr.Lookup("unknown element id %q", id)
	}
	return listPath, idx, nil
}

// findListContaining searches elements (addressed by prefix) for target,
// returning the list it was found in, the Path to that list, and its
// index within it.
func findListContaining(elements []model.Element, prefix Path, target string) ([]model.Element, Path, int, bool) {
	for i, e := range elements {
		if e.ID == target {
			return elements, prefix, i, true
		}
	}
	for i, e := range elements {
		stepToElement := append(append(Path{}, prefix...), Step{Kind: StepTopLevel, Index: i})
		switch e.Type {
		case model.ExclusiveGateway:
			for bi, b := range e.ExclusiveBranches {
				branchPrefix := append(append(Path{}, stepToElement...), Step{Kind: StepBranches}, Step{Kind: StepBranch, Index: bi}, Step{Kind: StepPath})
				if list, found, idx, ok := findListContaining(b.Path, branchPrefix, target); ok {
					return list, found, idx, true
				}
			}
		case model.ParallelGateway:
			for bi, b := range e.ParallelBranches {
				branchPrefix := append(append(Path{}, stepToElement...), Step{Kind: StepBranches}, Step{Kind: StepBranch, Index: bi}, Step{Kind: StepPath})
				if list, found, idx, ok := findListContaining(b.Path, branchPrefix, target); ok {
					return list, found, idx, true
				}
			}
		}
	}
	return nil, nil, 0, false
}

// FindBranchPosition searches nested gateways depth-first, top-level-index
// order, for an ExclusiveBranch with the exact given condition (spec.md
// §4.2's find_branch_position). Returns the Path to that gateway's
// branches list and the branch's index within it.
func FindBranchPosition(p model.Process, condition string) (Path, int, error) {
	if path, idx, ok := findBranchPosition(p.Elements, nil, condition); ok {
		return path, idx, nil
	}
	return nil, 0, coreerr.Lookup("no branch with condition %q", condition)
}

func findBranchPosition(elements []model.Element, prefix Path, condition string) (Path, int, bool) {
	for i, e := range elements {
		stepToElement := append(append(Path{}, prefix...), Step{Kind: StepTopLevel, Index: i})
		if e.Type == model.ExclusiveGateway {
			branchesPath := append(append(Path{}, stepToElement...), Step{Kind: StepBranches})
			for bi, b := range e.ExclusiveBranches {
				if b.Condition == condition {
					return branchesPath, bi, true
				}
			}
			for bi, b := range e.ExclusiveBranches {
				branchPrefix := append(append(Path{}, branchesPath...), Step{Kind: StepBranch, Index: bi}, Step{Kind: StepPath})
				if path, idx, ok := findBranchPosition(b.Path, branchPrefix, condition); ok {
					return path, idx, true
				}
			}
		}
		if e.Type == model.ParallelGateway {
			for bi, b := range e.ParallelBranches {
				branchPrefix := append(append(Path{}, stepToElement...), Step{Kind: StepBranches}, Step{Kind: StepBranch, Index: bi}, Step{Kind: StepPath})
				if path, idx, ok := findBranchPosition(b.Path, branchPrefix, condition); ok {
					return path, idx, true
				}
			}
		}
	}
	return nil, 0, false
}

// DeepClone returns an independent copy of the process (spec.md §4.2).
func DeepClone(p model.Process) model.Process {
	return p.Clone()
}

// ResolveElementList navigates p down to the []model.Element it
// addresses, returning a pointer so the editing engine (spec.md §4.6)
// can splice elements in place on a cloned process. An empty Path
// resolves to the process's top-level list.
func ResolveElementList(process *model.Process, p Path) (*[]model.Element, error) {
	list, _, err := walk(&process.Elements, p)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, coreerr.Lookup("path does not address an element list")
	}
	return list, nil
}

// ResolveExclusiveBranches navigates p down to the []model.ExclusiveBranch
// it addresses (a path produced by FindBranchPosition, ending in the
// "branches" token). Fails if the addressed gateway is not exclusive.
func ResolveExclusiveBranches(process *model.Process, p Path) (*[]model.ExclusiveBranch, error) {
	_, branches, err := walk(&process.Elements, p)
	if err != nil {
		return nil, err
	}
	if branches == nil {
		return nil, coreerr.Lookup("path does not address a branches list")
	}
	return branches, nil
}

// walk interprets the step tokens of p against the list rooted at elements,
// descending one gateway/branch level per (TopLevel, Branches[, Branch,
// Path]) group. It returns either the terminal element list (when p is
// empty or ends with a "path" token) or the terminal exclusive-branch list
// (when p ends with a bare "branches" token) — never both.
func walk(elements *[]model.Element, p Path) (*[]model.Element, *[]model.ExclusiveBranch, error) {
	cur := elements
	i := 0
	for i < len(p) {
		if p[i].Kind != StepTopLevel {
			return nil, nil, coreerr.Lookup("malformed path: expected top-level index at step %d", i)
		}
		idx := p[i].Index
		if idx < 0 || idx >= len(*cur) {
			return nil, nil, coreerr.Lookup("malformed path: index %d out of range", idx)
		}
		elemPtr := &(*cur)[idx]
		i++

		if i >= len(p) || p[i].Kind != StepBranches {
			return nil, nil, coreerr.Lookup("malformed path: expected branches token at step %d", i)
		}
		i++

		if i >= len(p) {
			if elemPtr.Type != model.ExclusiveGateway {
				return nil, nil, coreerr.Lookup("element %q is not an exclusive gateway", elemPtr.ID)
			}
			return nil, &elemPtr.ExclusiveBranches, nil
		}

		if p[i].Kind != StepBranch {
			return nil, nil, coreerr.Lookup("malformed path: expected branch index at step %d", i)
		}
		bidx := p[i].Index
		i++

		if i >= len(p) || p[i].Kind != StepPath {
			return nil, nil, coreerr.Lookup("malformed path: expected path token at step %d", i)
		}
		i++

		switch elemPtr.Type {
		case model.ExclusiveGateway:
			if bidx < 0 || bidx >= len(elemPtr.ExclusiveBranches) {
				return nil, nil, coreerr.Lookup("malformed path: branch index %d out of range", bidx)
			}
			cur = &elemPtr.ExclusiveBranches[bidx].Path
		case model.ParallelGateway:
			if bidx < 0 || bidx >= len(elemPtr.ParallelBranches) {
				return nil, nil, coreerr.Lookup("malformed path: branch index %d out of range", bidx)
			}
			cur = &elemPtr.ParallelBranches[bidx].Path
		default:
			return nil, nil, coreerr.Lookup("element %q is not a gateway", elemPtr.ID)
		}
	}
	return cur, nil, nil
}
