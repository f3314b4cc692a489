// Package config holds the apply-once configuration handle consumed by the
// result logging helpers. Create one Config at startup, call Configure (or
// ConfigureFromFile) exactly once, and pass the handle to whatever logs.
package config
