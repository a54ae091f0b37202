package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fixuri/cmd/fixuri/opts"
	"github.com/walteh/fixuri/pkg/config"
	"github.com/walteh/fixuri/pkg/log"
	"github.com/walteh/fixuri/pkg/operation"
	"github.com/walteh/fixuri/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite matched files in place",
		Long: `Fix expands the configured glob patterns and runs every matched file
through the migration rules. It will:
1. Load the configuration (or defaults when no config file exists)
2. Expand the glob patterns to regular files
3. Apply the rewrite rules to each file, in order
4. Write back and report only files whose content changed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunFix(cmd.Context(), opts)
		},
	}

	return cmd
}

// RunFix is the shared implementation behind `fixuri` and `fixuri fix`.
func RunFix(ctx context.Context, rootOpts *opts.RootOpts) error {
	cfg, err := config.Load(ctx, rootOpts.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	level := zerolog.InfoLevel
	if rootOpts.Debug || cfg.Debug {
		level = zerolog.DebugLevel
	}
	ctx = zerolog.Ctx(ctx).Level(level).With().Str("command", "fix").Logger().WithContext(ctx)

	rules := cfg.Rules()
	if err := rewrite.ValidateRules(rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	// Report lines go to stdout, which is the tool's output contract.
	logger := log.New(os.Stdout, level)
	ctx = log.NewContext(ctx, logger)

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Rewriter: rewrite.New(rules),
		Logger:   logger,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	runner := operation.NewRunner(zerolog.Ctx(ctx), rootOpts.Async)
	if err := runner.Run(ctx, operation.Fn(op.Fix)); err != nil {
		return errors.Errorf("running fix: %w", err)
	}

	return nil
}
