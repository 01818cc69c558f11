/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package validate checks a hierarchical process against the invariants
// of spec.md §3.3, failing on the first violation with a descriptive
// *coreerr.Error of KindSchema (spec.md §4.1).
package validate

import (
	"strings"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/path"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
)

var log = logger.Global().With("validate")

// Validate walks the process tree once, checking spec.md §3.3's six
// invariants, and returns the first violation found. It never mutates p.
func Validate(p model.Process) error {
	allIDs := path.IDSet(p)

	seen := make(map[string]struct{})
	startCount := 0

	if err := validateElements(p.Elements, true, seen, allIDs, &startCount); err != nil {
		log.Debug("process failed validation", logger.Err(err))
		return err
	}

	if startCount != 1 {
		return coreerr.Schema("process must have exactly one top-level start event, found %d", startCount)
	}

	return nil
}

// Element validates a single element in isolation — e.g. one embedded in
// an edit proposal (spec.md §4.7) — against the same invariants Validate
// enforces for a tree member, given the target tree's known IDs for
// `next` lookups. It is never treated as a top-level start event.
func Element(e model.Element, allIDs map[string]struct{}) error {
	seen := make(map[string]struct{})
	startCount := 0
	return validateElement(e, false, seen, allIDs, &startCount)
}

func validateElements(elements []model.Element, topLevel bool, seen map[string]struct{}, allIDs map[string]struct{}, startCount *int) error {
	for _, e := range elements {
		if err := validateElement(e, topLevel, seen, allIDs, startCount); err != nil {
			return err
		}
	}
	return nil
}

func validateElement(e model.Element, topLevel bool, seen map[string]struct{}, allIDs map[string]struct{}, startCount *int) error {
	if e.ID == "" {
		return coreerr.Schema("element has empty id")
	}
	if _, dup := seen[e.ID]; dup {
		return coreerr.Schema("duplicate element id %q", e.ID)
	}
	seen[e.ID] = struct{}{}

	switch e.Type {
	case model.StartEvent:
		if !topLevel {
			return coreerr.Schema("start event %q must not appear inside a nested branch", e.ID)
		}
		*startCount++

	case model.EndEvent:
		// label optional, no further checks

	case model.Task, model.UserTask, model.ServiceTask:
		if strings.TrimSpace(e.Label) == "" {
			return coreerr.Schema("element %q of type %s must have a non-empty label", e.ID, e.Type)
		}

	case model.ExclusiveGateway:
		if strings.TrimSpace(e.Label) == "" {
			return coreerr.Schema("exclusive gateway %q must have a non-empty label", e.ID)
		}
		if len(e.ParallelBranches) > 0 {
			return coreerr.Schema("exclusive gateway %q carries parallel branches", e.ID)
		}
		if len(e.ExclusiveBranches) < 2 {
			return coreerr.Schema("exclusive gateway %q must have at least 2 branches, found %d", e.ID, len(e.ExclusiveBranches))
		}
		for i, b := range e.ExclusiveBranches {
			if strings.TrimSpace(b.Condition) == "" {
				return coreerr.Schema("branch %d of exclusive gateway %q has an empty condition", i, e.ID)
			}
			if b.Next != nil {
				if _, ok := allIDs[*b.Next]; !ok {
					return coreerr.Lookup("branch %q of exclusive gateway %q has next referring to unknown id %q", b.Condition, e.ID, *b.Next)
				}
			}
			if err := validateElements(b.Path, false, seen, allIDs, startCount); err != nil {
				return err
			}
		}

	case model.ParallelGateway:
		if len(e.ExclusiveBranches) > 0 {
			return coreerr.Schema("parallel gateway %q carries exclusive branches", e.ID)
		}
		if len(e.ParallelBranches) < 2 {
			return coreerr.Schema("parallel gateway %q must have at least 2 branches, found %d", e.ID, len(e.ParallelBranches))
		}
		for i, b := range e.ParallelBranches {
			if len(b.Path) == 0 {
				return coreerr.Schema("branch %d of parallel gateway %q has an empty path", i, e.ID)
			}
			if err := validateElements(b.Path, false, seen, allIDs, startCount); err != nil {
				return err
			}
		}

	default:
		return coreerr.Schema("element %q has unsupported type %q", e.ID, e.Type)
	}

	return nil
}
