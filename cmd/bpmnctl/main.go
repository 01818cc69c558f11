/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Command bpmnctl is a manual-testing CLI over the engine (spec.md's
// SPEC_FULL.md "SUPPLEMENTED FEATURES"): validate, flatten, render, and
// parse BPMN processes without standing up the chat transport.
package main

import (
	"fmt"
	"os"

	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
)

// CLI dispatches bpmnctl's four subcommands, mirroring the teacher's flat
// os.Args switch (src/interfaces/cli/cli.go's Execute).
type CLI struct{}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{}
}

// Execute processes command line arguments.
func (c *CLI) Execute() error {
	if len(os.Args) < 2 {
		showHelp()
		return nil
	}

	command := os.Args[1]
	logger.Global().Debug("executing bpmnctl command", logger.String("command", command))

	switch command {
	case "validate":
		return c.cmdValidate()
	case "flatten":
		return c.cmdFlatten()
	case "render":
		return c.cmdRender()
	case "parse":
		return c.cmdParse()
	case "help", "--help", "-h":
		showHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func showHelp() {
	fmt.Println(`bpmnctl — BPMN authoring engine CLI

Usage:
  bpmnctl validate <process.json>            validate a hierarchical process
  bpmnctl flatten  <process.json>            print the flattened elements/flows
  bpmnctl render   <process.json> -o out.bpmn  emit BPMN 2.0 XML
  bpmnctl parse    <process.bpmn>            parse BPMN XML back to hierarchical JSON
  bpmnctl help                               show this message`)
}

func main() {
	cliHandler := NewCLI()
	if err := cliHandler.Execute(); err != nil {
		logger.Global().Error("bpmnctl command failed", logger.Err(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
