/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package config

import (
	"os"
	"strconv"
)

// LoadFromEnv applies environment overrides, per spec.md §6.5: OPENAI_API_KEY
// and OPENAI_MODEL are consumed by the LLM collaborator, not the engine core,
// but the config layer is where they enter the process.
// Применяет переопределения из окружения.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && c.LLM.Provider == "anthropic" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("BPMN_REST_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.RestAPI.Port = port
		}
	}
	if v := os.Getenv("BPMN_GRPC_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.GRPC.Port = port
		}
	}
	if v := os.Getenv("BPMN_STORAGE_DIR"); v != "" {
		c.Storage.Directory = v
	}
	if v := os.Getenv("BPMN_LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
}

// GetEnvWithDefault returns an environment variable or a fallback.
// Возвращает переменную окружения или значение по умолчанию.
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
