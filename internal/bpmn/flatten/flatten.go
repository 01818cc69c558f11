/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package flatten converts a hierarchical process into the flat
// elements-plus-sequence-flows shape the XML Emitter serialises
// (spec.md §4.3). It is the approximate inverse of package bpmnxml's
// unflattener.
package flatten

import (
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
)

var log = logger.Global().With("flatten")

// Flatten produces the flat representation of p (spec.md §4.3), with
// incoming/outgoing populated on every FlatElement from the final flow
// list. Flattening the same process twice yields byte-identical output
// (spec.md §8.1's flow-determinism property): every step below walks
// elements and branches in stable, insertion order and only ever appends.
func Flatten(p model.Process) model.FlatProcess {
	fp := flattenElements(p.Elements, "")
	populateIncomingOutgoing(&fp)

	log.Debug("flattened process",
		logger.Int("elements", len(fp.Elements)),
		logger.Int("flows", len(fp.Flows)))

	return fp
}

// flattenElements is the recursive core of spec.md §4.3's algorithm. Each
// call owns its own accumulator (a fresh FlatProcess) so that a branch's
// emissions compose into its parent purely by splicing — no shared
// mutable state is threaded through the recursion.
func flattenElements(elements []model.Element, parentNextID string) model.FlatProcess {
	var fp model.FlatProcess

	addFlow := func(source, target, condition string) {
		if hasFlow(fp.Flows, source, target) {
			return
		}
		fp.Flows = append(fp.Flows, model.SequenceFlow{
			ID:        source + "-" + target,
			Source:    source,
			Target:    target,
			Condition: condition,
		})
	}

	spliceFlows := func(flows []model.SequenceFlow) {
		for _, fl := range flows {
			if hasFlow(fp.Flows, fl.Source, fl.Target) {
				continue
			}
			fp.Flows = append(fp.Flows, fl)
		}
	}

	for i, e := range elements {
		nextInList := parentNextID
		if i+1 < len(elements) {
			nextInList = elements[i+1].ID
		}

		fp.Elements = append(fp.Elements, model.FlatElement{ID: e.ID, Type: e.Type, Label: e.Label})

		switch e.Type {
		case model.ExclusiveGateway:
			joinID := ""
			if e.HasJoin {
				joinID = e.ID + "-join"
				fp.Elements = append(fp.Elements, model.FlatElement{ID: joinID, Type: model.ExclusiveGateway})
			}

			for _, b := range e.ExclusiveBranches {
				branchTarget := nextInList
				if joinID != "" {
					branchTarget = joinID
				}
				if b.Next != nil && *b.Next != "" {
					branchTarget = *b.Next
				}

				if len(b.Path) == 0 {
					addFlow(e.ID, branchTarget, b.Condition)
					continue
				}

				sub := flattenElements(b.Path, branchTarget)
				fp.Elements = append(fp.Elements, sub.Elements...)
				spliceFlows(sub.Flows)
				addFlow(e.ID, b.Path[0].ID, b.Condition)
			}

			if joinID != "" && nextInList != "" {
				addFlow(joinID, nextInList, "")
			}

		case model.ParallelGateway:
			joinID := e.ID + "-join"
			fp.Elements = append(fp.Elements, model.FlatElement{ID: joinID, Type: model.ParallelGateway})

			for _, b := range e.ParallelBranches {
				sub := flattenElements(b.Path, joinID)
				fp.Elements = append(fp.Elements, sub.Elements...)
				spliceFlows(sub.Flows)
				if len(b.Path) > 0 {
					addFlow(e.ID, b.Path[0].ID, "")
				}
			}

			if nextInList != "" {
				addFlow(joinID, nextInList, "")
			}

		default:
			if e.Type != model.EndEvent && nextInList != "" {
				addFlow(e.ID, nextInList, "")
			}
		}
	}

	return fp
}

func hasFlow(flows []model.SequenceFlow, source, target string) bool {
	for _, fl := range flows {
		if fl.Source == source && fl.Target == target {
			return true
		}
	}
	return false
}

func populateIncomingOutgoing(fp *model.FlatProcess) {
	incoming := make(map[string][]string)
	outgoing := make(map[string][]string)
	for _, fl := range fp.Flows {
		outgoing[fl.Source] = append(outgoing[fl.Source], fl.ID)
		incoming[fl.Target] = append(incoming[fl.Target], fl.ID)
	}
	for i := range fp.Elements {
		fp.Elements[i].Incoming = incoming[fp.Elements[i].ID]
		fp.Elements[i].Outgoing = outgoing[fp.Elements[i].ID]
	}
}
