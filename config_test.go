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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
	assert.NoError(t, config.Validate())
}

func TestLoadConfigMergesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	data := []byte("bench:\n  size: 300\n  workloads: [sorted]\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), data, 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 300, config.Bench.Size)
	assert.Equal(t, []string{"sorted"}, config.Bench.Workloads)
	assert.Equal(t, "DEBUG", config.Log.Level)
	// untouched fields keep their defaults
	assert.Equal(t, 1, config.Bench.Rounds)
	assert.Equal(t, 5, config.Bench.Precision)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte("bench: [oops"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, createDefaultConfigFile(path))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		Name   string
		Modify func(c *Config)
	}{
		{Name: "zero size", Modify: func(c *Config) { c.Bench.Size = 0 }},
		{Name: "negative rounds", Modify: func(c *Config) { c.Bench.Rounds = -1 }},
		{Name: "negative precision", Modify: func(c *Config) { c.Bench.Precision = -2 }},
		{Name: "no workloads", Modify: func(c *Config) { c.Bench.Workloads = nil }},
		{Name: "bad log level", Modify: func(c *Config) { c.Log.Level = "LOUD" }},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			config := defaultConfig()
			tc.Modify(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestLogBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlbench.log")
	backend, err := newLogBackend(LogConfig{Level: "INFO", File: path})
	require.NoError(t, err)

	log := backend.GetLogger("test")
	log.Info("hello from the tests")
	log.Debug("filtered out")
	require.NoError(t, backend.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO test: hello from the tests")
	assert.NotContains(t, string(data), "filtered out")

	_, err = newLogBackend(LogConfig{Level: "nope"})
	assert.Error(t, err)
}
