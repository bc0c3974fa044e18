package config

import (
	"os"

	"gopkg.in/ini.v1"

	octerr "octest/errors"
)

type RPCTuning struct {
	TimeoutSeconds int `ini:"timeout_seconds"`
}

type RetryTuning struct {
	Attempts       int `ini:"attempts"`
	BackoffSeconds int `ini:"backoff_seconds"`
}

type PacingTuning struct {
	DelaySeconds int `ini:"delay_seconds"`
}

type ReportTuning struct {
	Path string `ini:"path"`
}

type HistoryTuning struct {
	Path string `ini:"path"`
}

// Tuning is the optional octest.ini knob set. Every field has a default
// matching the wire-level constants, so the file can be absent entirely.
type Tuning struct {
	RPC     RPCTuning
	Retry   RetryTuning
	Pacing  PacingTuning
	Report  ReportTuning
	History HistoryTuning
}

func DefaultTuning() *Tuning {
	return &Tuning{
		RPC:     RPCTuning{TimeoutSeconds: 100},
		Retry:   RetryTuning{Attempts: 3, BackoffSeconds: 2},
		Pacing:  PacingTuning{DelaySeconds: 2},
		Report:  ReportTuning{Path: "octest_report.txt"},
		History: HistoryTuning{Path: ""},
	}
}

// LoadTuning reads octest.ini, section by section. A missing file yields
// the defaults; a malformed one is fatal.
func LoadTuning(path string) (*Tuning, error) {
	tuning := DefaultTuning()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tuning, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if err := cfg.Section("rpc").MapTo(&tuning.RPC); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if err := cfg.Section("retry").MapTo(&tuning.Retry); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if err := cfg.Section("pacing").MapTo(&tuning.Pacing); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if err := cfg.Section("report").MapTo(&tuning.Report); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if err := cfg.Section("history").MapTo(&tuning.History); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	return tuning, nil
}
