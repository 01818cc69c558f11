/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package model

import (
	"encoding/json"
	"fmt"
)

// wireElement mirrors the LLM-exchanged JSON shape (spec.md §6.2): a flat
// object whose fields are interpreted according to "type", the same way
// the teacher's element parsers switch on a tag before populating a
// result map (src/parser/elements/gateways.go).
type wireElement struct {
	ID      string        `json:"id"`
	Type    ElementType   `json:"type"`
	Label   string        `json:"label,omitempty"`
	HasJoin bool          `json:"has_join,omitempty"`
	Branches []wireBranch `json:"branches,omitempty"`
}

// wireBranch carries both ExclusiveBranch and ParallelBranch fields;
// which ones are meaningful depends on the parent element's Type.
type wireBranch struct {
	Condition string        `json:"condition,omitempty"`
	Path      []wireElement `json:"path,omitempty"`
	Next      *string       `json:"next,omitempty"`
}

func elementToWire(e Element) wireElement {
	w := wireElement{ID: e.ID, Type: e.Type, Label: e.Label, HasJoin: e.HasJoin}
	switch e.Type {
	case ExclusiveGateway:
		w.Branches = make([]wireBranch, len(e.ExclusiveBranches))
		for i, b := range e.ExclusiveBranches {
			w.Branches[i] = wireBranch{Condition: b.Condition, Path: elementsToWire(b.Path), Next: b.Next}
		}
	case ParallelGateway:
		w.Branches = make([]wireBranch, len(e.ParallelBranches))
		for i, b := range e.ParallelBranches {
			w.Branches[i] = wireBranch{Path: elementsToWire(b.Path)}
		}
	}
	return w
}

func elementsToWire(elements []Element) []wireElement {
	if elements == nil {
		return nil
	}
	out := make([]wireElement, len(elements))
	for i, e := range elements {
		out[i] = elementToWire(e)
	}
	return out
}

func wireToElement(w wireElement) (Element, error) {
	e := Element{ID: w.ID, Type: w.Type, Label: w.Label, HasJoin: w.HasJoin}
	switch w.Type {
	case ExclusiveGateway:
		e.ExclusiveBranches = make([]ExclusiveBranch, len(w.Branches))
		for i, b := range w.Branches {
			path, err := wireToElements(b.Path)
			if err != nil {
				return Element{}, err
			}
			e.ExclusiveBranches[i] = ExclusiveBranch{Condition: b.Condition, Path: path, Next: b.Next}
		}
	case ParallelGateway:
		e.ParallelBranches = make([]ParallelBranch, len(w.Branches))
		for i, b := range w.Branches {
			path, err := wireToElements(b.Path)
			if err != nil {
				return Element{}, err
			}
			e.ParallelBranches[i] = ParallelBranch{Path: path}
		}
	case Task, UserTask, ServiceTask, StartEvent, EndEvent:
		// no branches expected; ignore any present rather than fail here —
		// the validator (spec.md §4.1) is the place that rejects shape
		// mismatches, not the deserialiser.
	default:
		return Element{}, fmt.Errorf("unsupported element type %q", w.Type)
	}
	return e, nil
}

func wireToElements(wires []wireElement) ([]Element, error) {
	if wires == nil {
		return nil, nil
	}
	out := make([]Element, len(wires))
	for i, w := range wires {
		e, err := wireToElement(w)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler using the wire shape of spec.md §6.2.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementToWire(e))
}

// UnmarshalJSON implements json.Unmarshaler using the wire shape of spec.md §6.2.
func (e *Element) UnmarshalJSON(data []byte) error {
	var w wireElement
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := wireToElement(w)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

type wireProcess struct {
	Process []wireElement `json:"process"`
}

// MarshalJSON implements json.Marshaler, emitting the {"process": [...]}
// root object of spec.md §6.2.
func (p Process) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireProcess{Process: elementsToWire(p.Elements)})
}

// UnmarshalJSON implements json.Unmarshaler, reading the {"process": [...]}
// root object of spec.md §6.2.
func (p *Process) UnmarshalJSON(data []byte) error {
	var w wireProcess
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	elements, err := wireToElements(w.Process)
	if err != nil {
		return err
	}
	p.Elements = elements
	return nil
}
