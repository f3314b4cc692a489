package config

import (
	"sync"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/logging"
)

// LoggingOptions collects the logging settings. The adapter may be set only
// once.
type LoggingOptions struct {
	adapter logging.Adapter
}

func (o *LoggingOptions) SetAdapter(adapter logging.Adapter) error {
	if rop.IsNil(adapter) {
		return rop.NewArgumentError("adapter", "LoggingAdapter cannot be null.")
	}
	if o.adapter != nil {
		return rop.NewInvalidOperation("LoggingAdapter has already been set.")
	}
	o.adapter = adapter
	return nil
}

func (o *LoggingOptions) validate() error {
	if o.adapter == nil {
		return rop.NewArgumentError("LoggingAdapter", "LoggingAdapter must be set in the configuration.")
	}
	return nil
}

// LoggingConfig is the apply-once logging section of Options.
type LoggingConfig struct {
	mu      sync.RWMutex
	options *LoggingOptions
}

// Configure applies the logging options once. configure may return an error
// (for example from SetAdapter), which aborts the call.
func (c *LoggingConfig) Configure(configure func(o *LoggingOptions) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options != nil {
		return rop.NewInvalidOperation("Logging configuration has already been set.")
	}

	o := &LoggingOptions{}
	if err := configure(o); err != nil {
		return err
	}
	if err := o.validate(); err != nil {
		return err
	}

	c.options = o
	return nil
}

func (c *LoggingConfig) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options != nil
}

func (c *LoggingConfig) Adapter() (logging.Adapter, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.options == nil {
		return nil, rop.NewInvalidOperation("Logging configuration has not been set.")
	}
	return c.options.adapter, nil
}
