/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package config loads the YAML configuration for the BPMN authoring
// engine's transports and collaborators.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the full process configuration
// Содержит полную конфигурацию процесса
type Config struct {
	InstanceName string        `yaml:"instance_name"`
	LLM          LLMConfig     `yaml:"llm"`
	RestAPI      RestAPIConfig `yaml:"rest_api"`
	GRPC         GRPCConfig    `yaml:"grpc"`
	Storage      StorageConfig `yaml:"storage"`
	Logger       LoggerConfig  `yaml:"logger"`
}

// LLMConfig holds the LLM collaborator configuration (spec.md §6.5)
// Конфигурация LLM-коллаборатора
type LLMConfig struct {
	Provider      string `yaml:"provider"` // "openai" or "anthropic"
	Model         string `yaml:"model"`
	APIKey        string `yaml:"api_key"`
	MaxRetries    int    `yaml:"max_retries"`
	MaxIterations int    `yaml:"max_iterations"`
}

// RestAPIConfig holds the gin/SSE transport configuration
// Конфигурация REST/SSE транспорта
type RestAPIConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GRPCConfig holds the gRPC transport configuration
// Конфигурация gRPC транспорта
type GRPCConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the session-snapshot store configuration
// Конфигурация хранилища снимков сессии
type StorageConfig struct {
	Directory string `yaml:"directory"`
}

// LoggerConfig holds the logger configuration
// Конфигурация логгера
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a Config with the engine's baked-in defaults, matching
// spec.md §6.5 (OPENAI_MODEL defaults to gpt-4) and §4.8's retry/iteration
// budgets (4 retries, 15 iterations).
func Default() *Config {
	return &Config{
		InstanceName: "bpmn-author",
		LLM: LLMConfig{
			Provider:      "openai",
			Model:         "gpt-4",
			MaxRetries:    4,
			MaxIterations: 15,
		},
		RestAPI: RestAPIConfig{Host: "0.0.0.0", Port: 8080},
		GRPC:    GRPCConfig{Host: "0.0.0.0", Port: 9090},
		Storage: StorageConfig{Directory: "./data/sessions"},
		Logger:  LoggerConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML config file, falling back to Default() values for any
// field left unset.
// Читает YAML файл конфигурации, используя значения Default() для
// незаполненных полей.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
