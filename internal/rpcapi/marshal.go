/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package rpcapi

import (
	"encoding/json"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
)

func unmarshalProcess(data string, process *model.Process) error {
	if err := json.Unmarshal([]byte(data), process); err != nil {
		return coreerr.Wrap(coreerr.KindSchema, "invalid process json", err)
	}
	return nil
}

func marshalProcess(process model.Process) (string, error) {
	data, err := json.Marshal(process)
	if err != nil {
		return "", coreerr.Wrap(coreerr.KindSchema, "marshal process json", err)
	}
	return string(data), nil
}
