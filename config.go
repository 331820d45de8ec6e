// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlbench.yaml"

type BenchConfig struct {
	Size         int      `yaml:"size"`
	Rounds       int      `yaml:"rounds"`
	Seed         int64    `yaml:"seed"` // 0 picks a time based seed
	Workloads    []string `yaml:"workloads"`
	Precision    int      `yaml:"precision"`
	ShowProgress bool     `yaml:"show_progress"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Disable bool   `yaml:"disable"`
}

type Config struct {
	Bench BenchConfig `yaml:"bench"`
	Log   LogConfig   `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Bench: BenchConfig{
			Size:         20000,
			Rounds:       1,
			Seed:         0,
			Workloads:    []string{"random", "small", "sorted", "reverse"},
			Precision:    5,
			ShowProgress: true,
		},
		Log: LogConfig{
			Level: "NOTICE",
		},
	}
}

// Validate rejects settings the harness cannot run with
func (c *Config) Validate() error {
	if c.Bench.Size <= 0 {
		return fmt.Errorf("bench.size must be positive, got %d", c.Bench.Size)
	}
	if c.Bench.Rounds <= 0 {
		return fmt.Errorf("bench.rounds must be positive, got %d", c.Bench.Rounds)
	}
	if c.Bench.Precision < 0 {
		return fmt.Errorf("bench.precision must not be negative, got %d", c.Bench.Precision)
	}
	if len(c.Bench.Workloads) == 0 {
		return fmt.Errorf("bench.workloads must name at least one workload")
	}
	if _, err := logLevelFromString(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads ~/.avlbench.yaml. Any problem with the file falls
// back to the defaults so the tool always starts.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	// fields missing from the file keep their defaults
	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig()
		return &config, nil
	}
	config.Log.Level = strings.ToUpper(config.Log.Level)

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}

	fmt.Printf("🔧 avlbench Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("⏱  %sBenchmark:%s\n", Green, Reset)
	fmt.Printf("  • %ssize%s: %d\n", Green, Reset, config.Bench.Size)
	fmt.Printf("  • %srounds%s: %d\n", Green, Reset, config.Bench.Rounds)
	if config.Bench.Seed == 0 {
		fmt.Printf("  • %sseed%s: 0 (time based)\n", Green, Reset)
	} else {
		fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Bench.Seed)
	}
	fmt.Printf("  • %sworkloads%s: %s\n", Green, Reset, strings.Join(config.Bench.Workloads, ", "))
	fmt.Printf("  • %sprecision%s: %d\n", Green, Reset, config.Bench.Precision)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Bench.ShowProgress)

	fmt.Printf("📜 %sLogging:%s\n", Green, Reset)
	fmt.Printf("  • %slevel%s: %s\n", Green, Reset, config.Log.Level)
	if config.Log.File == "" {
		fmt.Printf("  • %sfile%s: (stderr)\n", Green, Reset)
	} else {
		fmt.Printf("  • %sfile%s: %s\n", Green, Reset, config.Log.File)
	}
	fmt.Printf("  • %sdisable%s: %t\n\n", Green, Reset, config.Log.Disable)

	if err := config.Validate(); err != nil {
		fmt.Printf("%s⚠️  %v%s\n", Warning, err, Reset)
	}

	fmt.Printf("💡 Edit %s to change the defaults; command line flags always win.\n", configPath)
	return nil
}
