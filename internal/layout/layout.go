/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package layout is the diagram-layout collaborator seam (spec.md §1): the
// engine treats it as external, the same way internal/llm treats the chat
// model as external. GridLayouter gives callers a reference implementation
// so bpmnctl render can produce a viewable diagram without depending on a
// real layout service.
//
// No library in the retrieval pack does graph/diagram layout; this
// implementation is intentionally built on the standard library alone
// (see DESIGN.md).
package layout

import "github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"

// Position is one shape's bounding box in diagram coordinates.
type Position struct {
	X, Y, Width, Height int
}

// Waypoint is one point on a sequence-flow edge's route.
type Waypoint struct {
	X, Y int
}

// Diagram is a full set of positions and routes for one flat process,
// keyed by element/flow ID — the shape the layout collaborator hands back
// to the caller for splicing into a BPMN Diagram Interchange block.
type Diagram struct {
	Shapes map[string]Position
	Edges  map[string][]Waypoint
}

// Layouter positions a flat process's elements and flows. Implementations
// may call out to an external layout service; the engine itself never
// depends on a concrete one (spec.md §1's "diagram-layout library" is an
// out-of-scope collaborator).
type Layouter interface {
	Layout(fp model.FlatProcess) (Diagram, error)
}

const (
	shapeWidth  = 100
	shapeHeight = 80
	gridSize    = 150
	columns     = 8
)

// GridLayouter tiles elements onto a fixed grid and routes every edge as a
// straight line between its two shapes' centers. Its shape grid is the
// same placeholder grid bpmnxml.Emit writes inline (spec.md §4.4), where
// Emit gives every edge two zero waypoints instead of a route; here it is
// exposed as a standalone, swappable collaborator rather than hardcoded
// XML text.
type GridLayouter struct{}

// Layout implements Layouter.
func (GridLayouter) Layout(fp model.FlatProcess) (Diagram, error) {
	d := Diagram{
		Shapes: make(map[string]Position, len(fp.Elements)),
		Edges:  make(map[string][]Waypoint, len(fp.Flows)),
	}

	for i, e := range fp.Elements {
		d.Shapes[e.ID] = Position{
			X:      (i % columns) * gridSize,
			Y:      (i / columns) * gridSize,
			Width:  shapeWidth,
			Height: shapeHeight,
		}
	}

	for _, fl := range fp.Flows {
		source, hasSource := d.Shapes[fl.Source]
		target, hasTarget := d.Shapes[fl.Target]
		if !hasSource || !hasTarget {
			d.Edges[fl.ID] = []Waypoint{{}, {}}
			continue
		}
		d.Edges[fl.ID] = []Waypoint{
			center(source),
			center(target),
		}
	}

	return d, nil
}

func center(p Position) Waypoint {
	return Waypoint{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}
