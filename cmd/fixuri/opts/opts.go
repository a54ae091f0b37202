// Package opts carries the root command's shared flag values.
package opts

// RootOpts holds flag values shared by all commands. Values are bound at
// flag-registration time and read only after cobra has parsed them.
type RootOpts struct {
	// ConfigFile is the config file path (missing file means defaults)
	ConfigFile string
	// Debug enables debug logging
	Debug bool
	// Async runs the batch off the calling goroutine
	Async bool
}
