/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package layout

import (
	"fmt"
	"strings"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/bpmnxml"
	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
)

// Render emits fp as BPMN 2.0 XML using d's geometry in place of
// bpmnxml.Emit's fixed grid placeholder — the "XML Emitter → layout
// collaborator" step of spec.md §5's pipeline, made concrete for callers
// that want a laid-out diagram rather than the raw placeholder.
func Render(fp model.FlatProcess, d Diagram) string {
	base := bpmnxml.Emit(fp)

	diagramStart := strings.Index(base, "  <bpmndi:BPMNDiagram")
	diagramEnd := strings.Index(base, "</bpmndi:BPMNDiagram>")
	if diagramStart < 0 || diagramEnd < 0 {
		return base
	}
	diagramEnd += len("</bpmndi:BPMNDiagram>")

	return base[:diagramStart] + renderDiagram(fp, d) + base[diagramEnd:]
}

func renderDiagram(fp model.FlatProcess, d Diagram) string {
	var b strings.Builder

	b.WriteString(`  <bpmndi:BPMNDiagram id="BPMNDiagram_1">` + "\n")
	b.WriteString(`    <bpmndi:BPMNPlane id="BPMNPlane_1" bpmnElement="Process_1">` + "\n")

	for _, e := range fp.Elements {
		pos, ok := d.Shapes[e.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, `      <bpmndi:BPMNShape id="%s_di" bpmnElement="%s">`+"\n", e.ID, e.ID)
		fmt.Fprintf(&b, `        <dc:Bounds x="%d" y="%d" width="%d" height="%d"/>`+"\n", pos.X, pos.Y, pos.Width, pos.Height)
		b.WriteString("      </bpmndi:BPMNShape>\n")
	}

	for _, fl := range fp.Flows {
		points, ok := d.Edges[fl.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, `      <bpmndi:BPMNEdge id="%s_di" bpmnElement="%s">`+"\n", fl.ID, fl.ID)
		for _, wp := range points {
			fmt.Fprintf(&b, `        <di:waypoint x="%d" y="%d"/>`+"\n", wp.X, wp.Y)
		}
		b.WriteString("      </bpmndi:BPMNEdge>\n")
	}

	b.WriteString("    </bpmndi:BPMNPlane>\n")
	b.WriteString("  </bpmndi:BPMNDiagram>\n")
	return b.String()
}
