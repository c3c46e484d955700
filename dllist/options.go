// SPDX-License-Identifier: MIT
// File: options.go
// Role: Construction-time configuration for List.

package dllist

import "fmt"

// Option configures a List at construction time.
type Option func(*Options)

// Options holds the construction-time settings of a List.
// Options are copied into the list; changing them afterwards has no effect.
type Options struct {
	// FailFast makes every Cursor verify that the list was not structurally
	// modified behind its back, returning ErrConcurrentModification if it was.
	FailFast bool

	// Format renders a single key for List.String.
	Format func(key any) string
}

// DefaultOptions returns Options with:
//   - FailFast disabled (no modification tracking checks in cursors)
//   - keys rendered with fmt.Sprint
func DefaultOptions() Options {
	return Options{
		FailFast: false,
		Format:   defaultFormat,
	}
}

func defaultFormat(key any) string { return fmt.Sprint(key) }

// WithFailFast enables modification checks in every Cursor of the list.
func WithFailFast() Option {
	return func(o *Options) { o.FailFast = true }
}

// WithFormatter overrides how List.String renders each key.
// A nil fn is ignored.
func WithFormatter(fn func(key any) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.Format = fn
		}
	}
}

// buildOptions applies opts left-to-right on top of DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
