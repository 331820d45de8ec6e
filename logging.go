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
	"io"
	"os"

	"gopkg.in/op/go-logging.v1"
)

// logBackend routes every module logger to one leveled writer
type logBackend struct {
	w       io.Writer
	backend logging.LeveledBackend
}

// newLogBackend creates the backend from the log section of the config.
// An empty file name logs to stderr so stdout stays clean for reports.
func newLogBackend(cfg LogConfig) (*logBackend, error) {
	b := new(logBackend)

	lvl, err := logLevelFromString(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Disable {
		b.w = io.Discard
	} else if cfg.File == "" {
		b.w = os.Stderr
	} else {
		flags := os.O_CREATE | os.O_APPEND | os.O_WRONLY
		b.w, err = os.OpenFile(cfg.File, flags, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %v", err)
		}
	}

	logFmt := logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{module}: %{message}")
	base := logging.NewLogBackend(b.w, "", 0)
	formatted := logging.NewBackendFormatter(base, logFmt)
	b.backend = logging.AddModuleLevel(formatted)
	b.backend.SetLevel(lvl, "")
	return b, nil
}

// GetLogger returns a logger for module that writes to the backend
func (b *logBackend) GetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	l.SetBackend(b.backend)
	return l
}

// Close releases the log file, if one was opened
func (b *logBackend) Close() error {
	if c, ok := b.w.(io.Closer); ok && b.w != os.Stderr {
		return c.Close()
	}
	return nil
}

func logLevelFromString(l string) (logging.Level, error) {
	switch l {
	case "ERROR":
		return logging.ERROR, nil
	case "WARNING":
		return logging.WARNING, nil
	case "NOTICE":
		return logging.NOTICE, nil
	case "INFO":
		return logging.INFO, nil
	case "DEBUG":
		return logging.DEBUG, nil
	default:
		return logging.CRITICAL, fmt.Errorf("invalid log level: '%v'", l)
	}
}
