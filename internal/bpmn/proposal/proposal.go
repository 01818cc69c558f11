/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package proposal narrows the LLM collaborator's free-form edit-proposal
// JSON (spec.md §6.4) into a typed argument record — the sole place in
// the system that accepts untyped maps (spec.md §9).
package proposal

import "github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"

// Proposal is a validated edit proposal: either a stop signal or exactly
// one function call with its narrowed arguments.
type Proposal struct {
	Stop     bool
	Function string

	DeleteElement  *DeleteElementArgs
	RedirectBranch *RedirectBranchArgs
	AddElement     *AddElementArgs
	MoveElement    *MoveElementArgs
	UpdateElement  *UpdateElementArgs
}

// DeleteElementArgs is delete_element's argument record.
type DeleteElementArgs struct {
	ElementID string
}

// RedirectBranchArgs is redirect_branch's argument record.
type RedirectBranchArgs struct {
	BranchCondition string
	NextID          string
}

// AddElementArgs is add_element's argument record. Exactly one of
// BeforeID, AfterID is non-empty.
type AddElementArgs struct {
	Element  model.Element
	BeforeID string
	AfterID  string
}

// MoveElementArgs is move_element's argument record. Exactly one of
// BeforeID, AfterID is non-empty.
type MoveElementArgs struct {
	ElementID string
	BeforeID  string
	AfterID   string
}

// UpdateElementArgs is update_element's argument record.
type UpdateElementArgs struct {
	NewElement model.Element
}
