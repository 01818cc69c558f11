/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package edit implements the five pure structural operations on the
// hierarchical process (spec.md §4.6). Every operation deep-clones the
// process before mutating the clone; the caller's input is never touched.
package edit

import (
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/path"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

// DeleteElement removes the element with elementID from its containing
// list. It does not cascade across branches (spec.md §4.6).
func DeleteElement(p model.Process, elementID string) (model.Process, error) {
	clone := path.DeepClone(p)

	listPath, idx, err := path.Locate(clone, elementID)
	if err != nil {
		return model.Process{}, err
	}

	list, err := path.ResolveElementList(&clone, listPath)
	if err != nil {
		return model.Process{}, err
	}

	*list = append((*list)[:idx], (*list)[idx+1:]...)
	return clone, nil
}

// RedirectBranch sets the next of the first exclusive branch whose
// condition matches branchCondition exactly. It does not validate that
// nextID exists in the tree; that is the caller's responsibility
// (spec.md §4.6).
func RedirectBranch(p model.Process, branchCondition, nextID string) (model.Process, error) {
	clone := path.DeepClone(p)

	branchesPath, idx, err := path.FindBranchPosition(clone, branchCondition)
	if err != nil {
		return model.Process{}, err
	}

	branches, err := path.ResolveExclusiveBranches(&clone, branchesPath)
	if err != nil {
		return model.Process{}, err
	}

	next := nextID
	(*branches)[idx].Next = &next
	return clone, nil
}

// AddElement inserts element into the list containing the anchor
// (beforeID XOR afterID), at the anchor's index (before) or anchor+1
// (after). It fails if element.ID already exists in the tree, the anchor
// ID is unknown, or both/neither anchor is given (spec.md §4.6).
func AddElement(p model.Process, element model.Element, beforeID, afterID string) (model.Process, error) {
	if (beforeID == "") == (afterID == "") {
		return model.Process{}, coreerr.Proposal("add_element requires exactly one of before_id or after_id")
	}

	if _, exists := path.IDSet(p)[element.ID]; exists {
		return model.Process{}, coreerr.Schema("element id %q already exists", element.ID)
	}

	clone := path.DeepClone(p)

	listPath, idx, err := path.FindPosition(clone, beforeID, afterID)
	if err != nil {
		return model.Process{}, err
	}

	list, err := path.ResolveElementList(&clone, listPath)
	if err != nil {
		return model.Process{}, err
	}

	inserted := make([]model.Element, 0, len(*list)+1)
	inserted = append(inserted, (*list)[:idx]...)
	inserted = append(inserted, element.Clone())
	inserted = append(inserted, (*list)[idx:]...)
	*list = inserted

	return clone, nil
}

// MoveElement is equivalent to DeleteElement followed by AddElement of
// the removed value (spec.md §4.6).
func MoveElement(p model.Process, elementID, beforeID, afterID string) (model.Process, error) {
	if (beforeID == "") == (afterID == "") {
		return model.Process{}, coreerr.Proposal("move_element requires exactly one of before_id or after_id")
	}

	clone := path.DeepClone(p)

	elemPath, idx, err := path.Locate(clone, elementID)
	if err != nil {
		return model.Process{}, err
	}

	list, err := path.ResolveElementList(&clone, elemPath)
	if err != nil {
		return model.Process{}, err
	}

	removed := (*list)[idx].Clone()
	*list = append((*list)[:idx], (*list)[idx+1:]...)

	destPath, destIdx, err := path.FindPosition(clone, beforeID, afterID)
	if err != nil {
		return model.Process{}, err
	}

	destList, err := path.ResolveElementList(&clone, destPath)
	if err != nil {
		return model.Process{}, err
	}

	inserted := make([]model.Element, 0, len(*destList)+1)
	inserted = append(inserted, (*destList)[:destIdx]...)
	inserted = append(inserted, removed)
	inserted = append(inserted, (*destList)[destIdx:]...)
	*destList = inserted

	return clone, nil
}

// UpdateElement replaces the element with the same ID as newElement. It
// fails if newElement.Type is a gateway — structural edits must use
// add/delete — or the ID is unknown (spec.md §4.6).
func UpdateElement(p model.Process, newElement model.Element) (model.Process, error) {
	if newElement.Type.IsGateway() {
		return model.Process{}, coreerr.Schema("update_element cannot target a gateway; use add_element/delete_element")
	}

	clone := path.DeepClone(p)

	elemPath, idx, err := path.Locate(clone, newElement.ID)
	if err != nil {
		return model.Process{}, err
	}

	list, err := path.ResolveElementList(&clone, elemPath)
	if err != nil {
		return model.Process{}, err
	}

	(*list)[idx] = newElement.Clone()
	return clone, nil
}
