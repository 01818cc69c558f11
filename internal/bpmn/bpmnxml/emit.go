/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package bpmnxml serialises the flat representation to BPMN 2.0 XML
// (spec.md §4.4) and parses it back into the hierarchical tree (spec.md
// §4.5), tracing each gateway's common reconvergence point (§4.5.1).
package bpmnxml

import (
	"fmt"
	"strings"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
)

var log = logger.Global().With("bpmnxml")

const (
	nsBPMN   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	nsBPMNDI = "http://www.omg.org/spec/BPMN/20100524/DI"
	nsDC     = "http://www.omg.org/spec/DD/20100524/DC"
	nsDI     = "http://www.omg.org/spec/DD/20100524/DI"

	defaultProcessID = "Process_1"
	gridSize         = 150
)

// Emit serialises fp as BPMN 2.0 XML with placeholder diagram-interchange
// geometry (spec.md §4.4). Attribute values are escaped per spec.md §6.3.
func Emit(fp model.FlatProcess) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<bpmn:definitions xmlns:bpmn="%s" xmlns:bpmndi="%s" xmlns:dc="%s" xmlns:di="%s" id="Definitions_1" targetNamespace="http://bpmn.io/schema/bpmn">`+"\n",
		nsBPMN, nsBPMNDI, nsDC, nsDI)

	fmt.Fprintf(&b, `  <bpmn:process id="%s" isExecutable="false">`+"\n", defaultProcessID)
	writeElements(&b, fp.Elements)
	writeFlows(&b, fp.Flows)
	b.WriteString("  </bpmn:process>\n")

	writeDiagram(&b, fp)

	b.WriteString("</bpmn:definitions>\n")

	log.Debug("emitted bpmn xml", logger.Int("elements", len(fp.Elements)), logger.Int("flows", len(fp.Flows)))

	return b.String()
}

func writeElements(b *strings.Builder, elements []model.FlatElement) {
	for _, e := range elements {
		tag := string(e.Type)
		fmt.Fprintf(b, `    <bpmn:%s id="%s"`, tag, escape(e.ID))
		if e.Label != "" {
			fmt.Fprintf(b, ` name="%s"`, escape(e.Label))
		}
		if len(e.Incoming) == 0 && len(e.Outgoing) == 0 {
			b.WriteString("/>\n")
			continue
		}
		b.WriteString(">\n")
		for _, in := range e.Incoming {
			fmt.Fprintf(b, "      <bpmn:incoming>%s</bpmn:incoming>\n", escape(in))
		}
		for _, out := range e.Outgoing {
			fmt.Fprintf(b, "      <bpmn:outgoing>%s</bpmn:outgoing>\n", escape(out))
		}
		fmt.Fprintf(b, "    </bpmn:%s>\n", tag)
	}
}

func writeFlows(b *strings.Builder, flows []model.SequenceFlow) {
	for _, fl := range flows {
		fmt.Fprintf(b, `    <bpmn:sequenceFlow id="%s" sourceRef="%s" targetRef="%s"`,
			escape(fl.ID), escape(fl.Source), escape(fl.Target))
		if fl.Condition != "" {
			fmt.Fprintf(b, ` name="%s"`, escape(fl.Condition))
		}
		b.WriteString("/>\n")
	}
}

// writeDiagram appends a BPMN Diagram Interchange block with placeholder
// geometry (spec.md §4.4): downstream layout tooling needs something to
// relocate, but the exact coordinates are not a contract.
func writeDiagram(b *strings.Builder, fp model.FlatProcess) {
	b.WriteString(`  <bpmndi:BPMNDiagram id="BPMNDiagram_1">` + "\n")
	fmt.Fprintf(b, `    <bpmndi:BPMNPlane id="BPMNPlane_1" bpmnElement="%s">`+"\n", defaultProcessID)

	for i, e := range fp.Elements {
		x := (i % 8) * gridSize
		y := (i / 8) * gridSize
		fmt.Fprintf(b, `      <bpmndi:BPMNShape id="%s_di" bpmnElement="%s">`+"\n", escape(e.ID), escape(e.ID))
		fmt.Fprintf(b, `        <dc:Bounds x="%d" y="%d" width="100" height="80"/>`+"\n", x, y)
		b.WriteString("      </bpmndi:BPMNShape>\n")
	}

	for _, fl := range fp.Flows {
		fmt.Fprintf(b, `      <bpmndi:BPMNEdge id="%s_di" bpmnElement="%s">`+"\n", escape(fl.ID), escape(fl.ID))
		b.WriteString(`        <di:waypoint x="0" y="0"/>` + "\n")
		b.WriteString(`        <di:waypoint x="0" y="0"/>` + "\n")
		b.WriteString("      </bpmndi:BPMNEdge>\n")
	}

	b.WriteString("    </bpmndi:BPMNPlane>\n")
	b.WriteString("  </bpmndi:BPMNDiagram>\n")
}

// escape applies the five standard XML entity substitutions (spec.md §6.3).
func escape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
