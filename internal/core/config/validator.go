/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package config

import "fmt"

// Validate checks the configuration for obviously unusable values.
// Проверяет конфигурацию на заведомо непригодные значения.
func (c *Config) Validate() error {
	if err := c.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}
	if err := c.validateRestAPI(); err != nil {
		return fmt.Errorf("rest_api validation failed: %w", err)
	}
	if err := c.validateGRPC(); err != nil {
		return fmt.Errorf("grpc validation failed: %w", err)
	}
	if c.RestAPI.Port == c.GRPC.Port {
		return fmt.Errorf("rest_api and grpc cannot share port %d", c.RestAPI.Port)
	}
	return nil
}

func (c *Config) validateLLM() error {
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLM.Provider)
	}
	if c.LLM.MaxRetries <= 0 {
		return fmt.Errorf("llm.max_retries must be positive, got %d", c.LLM.MaxRetries)
	}
	if c.LLM.MaxIterations <= 0 {
		return fmt.Errorf("llm.max_iterations must be positive, got %d", c.LLM.MaxIterations)
	}
	return nil
}

func (c *Config) validateRestAPI() error {
	if c.RestAPI.Port < 1024 || c.RestAPI.Port > 65535 {
		return fmt.Errorf("rest_api port must be between 1024 and 65535, got %d", c.RestAPI.Port)
	}
	return nil
}

func (c *Config) validateGRPC() error {
	if c.GRPC.Port < 1024 || c.GRPC.Port > 65535 {
		return fmt.Errorf("grpc port must be between 1024 and 65535, got %d", c.GRPC.Port)
	}
	return nil
}
