package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// cpuProfile is a CPU profile being written for the lifetime of a run.
type cpuProfile struct {
	path    string
	file    *os.File
	started time.Time
	once    sync.Once
}

// startCPUProfile begins writing a CPU profile to path.
func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile %q: %w", path, errors.Join(errSetupFailed, err))
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting profile %q: %w", path, errors.Join(errSetupFailed, err))
	}
	return &cpuProfile{path: path, file: f, started: time.Now()}, nil
}

// Stop flushes the profile and reports how long it covered. Only the first
// call does anything.
func (p *cpuProfile) Stop() {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		size := int64(-1)
		if info, err := p.file.Stat(); err == nil {
			size = info.Size()
		}
		if err := p.file.Close(); err != nil {
			slog.Warn("closing CPU profile failed", "path", p.path, "err", err)
			return
		}
		slog.Info("CPU profile written", "path", p.path, "bytes", size, "duration", time.Since(p.started))
	})
}
