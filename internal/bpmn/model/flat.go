/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package model

// FlatElement is a BPMN node in the flat representation (spec.md §3.2):
// the shape the XML Emitter serialises directly.
type FlatElement struct {
	ID       string
	Type     ElementType
	Label    string // empty means absent, per spec.md §9's canonical form
	Incoming []string
	Outgoing []string
}

// SequenceFlow is a directed edge between two flat elements (spec.md
// §3.2), optionally condition-labelled (emitted as the XML "name"
// attribute, spec.md §6.3).
type SequenceFlow struct {
	ID        string
	Source    string
	Target    string
	Condition string // empty means no condition/name attribute
}

// FlatProcess is the complete flattened process (spec.md §4.3): elements
// plus the sequence flows connecting them.
type FlatProcess struct {
	Elements []FlatElement
	Flows    []SequenceFlow
}
