package config

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/logging"
)

type recorder struct {
	mu      sync.Mutex
	entries []string
}

func (r *recorder) Log(message string, level logging.Level, logContext string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, level.String()+":"+logContext+":"+message)
}

func withAdapter(a logging.Adapter) func(o *Options) error {
	return func(o *Options) error {
		return o.Logging.Configure(func(lo *LoggingOptions) error {
			return lo.SetAdapter(a)
		})
	}
}

func TestConfigure_WithAdapter(t *testing.T) {
	rec := &recorder{}
	c := New()

	require.NoError(t, c.Configure(withAdapter(rec)))
	assert.True(t, c.IsConfigured())

	logger, err := c.Logger()
	require.NoError(t, err)
	assert.Same(t, rec, logger)

	logging.IfFailure(c, rop.Failed(rop.Failure("lost")))
	assert.Equal(t, []string{"Error:ResultLogger:lost"}, rec.entries)
}

func TestConfigure_Twice(t *testing.T) {
	c := New()
	require.NoError(t, c.Configure(withAdapter(&recorder{})))

	err := c.Configure(withAdapter(&recorder{}))
	require.ErrorIs(t, err, rop.ErrInvalidOperation)
	assert.EqualError(t, err, "Result configuration has already been set.")
}

func TestConfigure_LoggingEnabledWithoutAdapter(t *testing.T) {
	c := New()

	err := c.Configure(func(o *Options) error { return nil })

	var argErr *rop.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "Logging configuration must be set up when logging is enabled.", argErr.Message)
	assert.False(t, c.IsConfigured())
}

func TestConfigure_CallbackErrorAborts(t *testing.T) {
	c := New()
	boom := errors.New("boom")

	assert.ErrorIs(t, c.Configure(func(o *Options) error { return boom }), boom)
	assert.False(t, c.IsConfigured())

	require.NoError(t, c.Configure(withAdapter(&recorder{})))
}

func TestConfigure_LoggingDisabled(t *testing.T) {
	c := New()
	require.NoError(t, c.Configure(func(o *Options) error {
		o.EnableLogging = false
		return nil
	}))

	_, err := c.Logger()
	require.ErrorIs(t, err, rop.ErrInvalidOperation)
	assert.EqualError(t, err, "Logging configuration is disabled.")

	assert.PanicsWithError(t, "Logging configuration is disabled.", func() {
		logging.Information(c, rop.Done(), "msg")
	})
}

func TestUnconfigured(t *testing.T) {
	var c Config

	_, err := c.Options()
	assert.EqualError(t, err, "Global configuration has not been set.")

	_, err = c.Logger()
	assert.ErrorIs(t, err, rop.ErrInvalidOperation)
}

func TestLoggingOptions_SetAdapter(t *testing.T) {
	var lo LoggingOptions

	err := lo.SetAdapter(nil)
	require.ErrorIs(t, err, rop.ErrInvalidArgument)
	assert.EqualError(t, err, "LoggingAdapter cannot be null.")

	var nilRecorder *recorder
	assert.ErrorIs(t, lo.SetAdapter(nilRecorder), rop.ErrInvalidArgument)

	require.NoError(t, lo.SetAdapter(&recorder{}))

	err = lo.SetAdapter(&recorder{})
	require.ErrorIs(t, err, rop.ErrInvalidOperation)
	assert.EqualError(t, err, "LoggingAdapter has already been set.")
}

func TestLoggingConfig(t *testing.T) {
	var lc LoggingConfig

	_, err := lc.Adapter()
	assert.EqualError(t, err, "Logging configuration has not been set.")

	err = lc.Configure(func(lo *LoggingOptions) error { return nil })
	assert.EqualError(t, err, "LoggingAdapter must be set in the configuration.")
	assert.False(t, lc.IsConfigured())

	require.NoError(t, lc.Configure(func(lo *LoggingOptions) error { return lo.SetAdapter(&recorder{}) }))
	assert.True(t, lc.IsConfigured())

	err = lc.Configure(func(lo *LoggingOptions) error { return lo.SetAdapter(&recorder{}) })
	assert.EqualError(t, err, "Logging configuration has already been set.")
}

func TestConfigure_Concurrent(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Configure(withAdapter(&recorder{})) == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestConfigure_NilLoggingSection(t *testing.T) {
	c := New()

	err := c.Configure(func(o *Options) error {
		o.Logging = nil
		return nil
	})

	var argErr *rop.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "Logging configuration must be set up when logging is enabled.", argErr.Message)
	assert.False(t, c.IsConfigured())
}

func TestOptions_ReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.Configure(withAdapter(&recorder{})))

	o, err := c.Options()
	require.NoError(t, err)
	o.EnableLogging = false
	o.Logging = nil

	again, err := c.Options()
	require.NoError(t, err)
	assert.True(t, again.EnableLogging)
	assert.NotNil(t, again.Logging)

	_, err = c.Logger()
	assert.NoError(t, err)
}
