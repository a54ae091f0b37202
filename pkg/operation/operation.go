// Package operation provides the batch fix operation over a scanned file set.
package operation

import (
	"context"

	"github.com/walteh/fixuri/pkg/config"
	"github.com/walteh/fixuri/pkg/log"
	"github.com/walteh/fixuri/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for fixuri operations
type Operator interface {
	// Fix rewrites every file matched by the configured patterns,
	// writing back only files whose content changed.
	Fix(ctx context.Context) error
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the fixuri configuration
	Config *config.Config
	// Rewriter applies the rule list to file content
	Rewriter *rewrite.Rewriter
	// Logger reports fixed files and completion
	Logger *log.Logger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &operator{
		config:   opts.Config,
		rewriter: opts.Rewriter,
		logger:   opts.Logger,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config   *config.Config
	rewriter *rewrite.Rewriter
	logger   *log.Logger
}

// Fix method is implemented in fix.go
