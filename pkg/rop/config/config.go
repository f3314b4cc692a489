package config

import (
	"sync"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/logging"
)

// Options is the root configuration.
type Options struct {
	EnableLogging bool
	Logging       *LoggingConfig
}

func newOptions() *Options {
	return &Options{
		EnableLogging: true,
		Logging:       &LoggingConfig{},
	}
}

func (o *Options) validate() error {
	if o.EnableLogging && (o.Logging == nil || !o.Logging.IsConfigured()) {
		return rop.NewArgumentError("Logging",
			"Logging configuration must be set up when logging is enabled.")
	}
	return nil
}

// Config is the process-wide configuration handle. The zero value is ready
// to use and unconfigured.
type Config struct {
	mu      sync.RWMutex
	options *Options
}

func New() *Config {
	return &Config{}
}

// Configure builds Options through configure, validates them and applies
// them. An error returned by configure aborts the call. It fails with
// rop.ErrInvalidOperation when the handle is already configured and with an
// *rop.ArgumentError when the options are incomplete. On error the handle is
// left unchanged.
func (c *Config) Configure(configure func(o *Options) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options != nil {
		return rop.NewInvalidOperation("Result configuration has already been set.")
	}

	o := newOptions()
	if err := configure(o); err != nil {
		return err
	}
	if err := o.validate(); err != nil {
		return err
	}

	c.options = o
	return nil
}

func (c *Config) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options != nil
}

// Options returns a copy of the applied options. Changing the copy does not
// affect the handle.
func (c *Config) Options() (*Options, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.options == nil {
		return nil, rop.NewInvalidOperation("Global configuration has not been set.")
	}
	o := *c.options
	return &o, nil
}

// Logger implements logging.Provider.
func (c *Config) Logger() (logging.Adapter, error) {
	o, err := c.Options()
	if err != nil {
		return nil, err
	}
	if !o.EnableLogging {
		return nil, rop.NewInvalidOperation("Logging configuration is disabled.")
	}
	return o.Logging.Adapter()
}

var _ logging.Provider = (*Config)(nil)
