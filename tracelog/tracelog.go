// Package tracelog provides squaremap's opt-in diagnostic logging.
//
// It is a small-scale relative of github.com/NVIDIA/proxyfs's logger
// package: that package maps a parsed per-package trace-level config
// string onto github.com/sirupsen/logrus calls; squaremap has no config
// file to parse, so tracelog keeps just the two ideas that still apply
// to a library with no init-time configuration of its own — a single
// process-wide enable switch, off by default, and a Tracef surface keyed
// by a caller-supplied subsystem tag rather than a config-derived one.
package tracelog

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

var enabled atomic.Bool

// SetEnabled turns trace logging on or off process-wide. It defaults to
// off, the same default proxyfs's logger.setTraceLoggingLevel applies in
// the absence of a Logging.TraceLevelLogging config entry.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports the current state set by SetEnabled.
func Enabled() bool {
	return enabled.Load()
}

// Tracef logs a formatted trace line tagged with subsystem, if and only
// if tracing is enabled. The format/args are not evaluated when tracing
// is disabled, keeping the call cheap on squaremap's hot paths.
func Tracef(subsystem string, format string, args ...interface{}) {
	if !enabled.Load() {
		return
	}
	log.WithField("subsystem", subsystem).Tracef(format, args...)
}
