/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package bpmnxml

import "encoding/xml"

// xmlElement is a generic XML element representation that keeps both the
// original namespace-qualified tag and its children, the same shape the
// teacher's BPMN parser walks (src/parser/parser.go's XMLElement) — it
// lets this parser accept BPMN documents with or without namespace
// prefixes, per spec.md §4.5.
type xmlElement struct {
	XMLName    xml.Name
	Attributes []xml.Attr    `xml:",any,attr"`
	Children   []*xmlElement `xml:",any"`
	Text       string        `xml:",chardata"`
}

// localName returns the tag with any "prefix:" stripped, per spec.md
// §4.5: "treat the last :-separated segment of a tag as the element type".
func localName(name xml.Name) string {
	return name.Local
}

func (e *xmlElement) attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
