package dynasm

import "github.com/sirupsen/logrus"

// Config controls the behavior of an Assembler, with the default implementation as NewConfig.
type Config struct {
	initialCapacity int
	logger          logrus.FieldLogger
	relocateHook    RelocateHook
}

var defaultConfig = &Config{
	initialCapacity: 4096,
}

// clone ensures all fields are copied even if nil.
func (c *Config) clone() *Config {
	return &Config{
		initialCapacity: c.initialCapacity,
		logger:          c.logger,
		relocateHook:    c.relocateHook,
	}
}

// NewConfig returns the default configuration: a 4KiB initial executable
// region, the logrus standard logger and no relocate hook.
func NewConfig() *Config {
	ret := defaultConfig.clone()
	ret.logger = logrus.StandardLogger()
	return ret
}

// WithInitialCapacity sets the capacity of the first executable region. The
// capacity is rounded up to a whole number of pages. Later regions double in
// size.
func (c *Config) WithInitialCapacity(capacity int) *Config {
	ret := c.clone()
	if capacity < 0 {
		capacity = 0
	}
	ret.initialCapacity = capacity
	return ret
}

// WithLogger sets the logger used for buffer management events. Defaults to
// logrus.StandardLogger if nil. All entries are logged at debug level except
// protection failures.
func (c *Config) WithLogger(logger logrus.FieldLogger) *Config {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ret := c.clone()
	ret.logger = logger
	return ret
}

// WithRelocateHook registers a function called with the old and new base
// addresses whenever committed code moves to a new executable region.
//
// References using AbsToRel or RelToAbs are rewritten automatically; the hook
// is for state held outside the buffer (for example addresses stored in Go
// memory). It runs before the new region is published to readers.
func (c *Config) WithRelocateHook(hook RelocateHook) *Config {
	ret := c.clone()
	ret.relocateHook = hook
	return ret
}
