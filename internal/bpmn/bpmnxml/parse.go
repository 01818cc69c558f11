/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package bpmnxml

import (
	"encoding/xml"
	"fmt"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

// labeledTypes are the element tags whose "name" attribute is the label
// (spec.md §4.5) — parallel gateways ignore "name".
var labeledTypes = map[model.ElementType]bool{
	model.Task:             true,
	model.UserTask:         true,
	model.ServiceTask:      true,
	model.ExclusiveGateway: true,
	model.StartEvent:       true,
	model.EndEvent:         true,
}

// Parse reads a BPMN 2.0 XML document and reconstructs the hierarchical
// process (spec.md §4.5): it locates the process element, extracts the
// flat elements and sequence flows, then traces reconvergence to rebuild
// nested gateway branches.
func Parse(data []byte) (model.Process, error) {
	var root xmlElement
	if err := xml.Unmarshal(data, &root); err != nil {
		return model.Process{}, coreerr.Wrap(coreerr.KindStructure, "invalid xml", err)
	}

	proc := findProcessElement(&root)
	if proc == nil {
		return model.Process{}, coreerr.Structure("no process element found")
	}

	fp, err := extractFlat(proc)
	if err != nil {
		return model.Process{}, err
	}

	return Unflatten(fp)
}

// findProcessElement performs the search spec.md §4.5 describes: "the
// first element whose tag ends in process". root is the document's own
// top-level element (normally definitions) as decoded into xmlElement, so
// we search it and its descendants.
func findProcessElement(root *xmlElement) *xmlElement {
	if localName(root.XMLName) == "process" {
		return root
	}
	for _, child := range root.Children {
		if found := findProcessElement(child); found != nil {
			return found
		}
	}
	return nil
}

func extractFlat(proc *xmlElement) (model.FlatProcess, error) {
	var fp model.FlatProcess

	for _, child := range proc.Children {
		tag := localName(child.XMLName)
		elemType := model.ElementType(tag)

		switch {
		case tag == "sequenceFlow":
			source, _ := child.attr("sourceRef")
			target, _ := child.attr("targetRef")
			id, _ := child.attr("id")
			condition, _ := child.attr("name")
			if id == "" {
				id = fmt.Sprintf("%s-%s", source, target)
			}
			fp.Flows = append(fp.Flows, model.SequenceFlow{ID: id, Source: source, Target: target, Condition: condition})

		case elemType.Known():
			id, _ := child.attr("id")
			fe := model.FlatElement{ID: id, Type: elemType}
			if labeledTypes[elemType] {
				fe.Label, _ = child.attr("name")
			}
			for _, grandchild := range child.Children {
				switch localName(grandchild.XMLName) {
				case "incoming":
					fe.Incoming = append(fe.Incoming, grandchild.Text)
				case "outgoing":
					fe.Outgoing = append(fe.Outgoing, grandchild.Text)
				}
			}
			fp.Elements = append(fp.Elements, fe)

		default:
			// unsupported child tag: ignored (spec.md §4.5)
		}
	}

	return fp, nil
}
