package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/fixuri/cmd/fixuri/opts"
	"github.com/walteh/fixuri/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates a new rules command
func NewRulesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rewrite rules that a fix run would apply",
		Long: `Rules prints the ordered rule list: the built-in vscode-uri migration
rules followed by any extra replacements from the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx, opts.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			data := pterm.TableData{{"#", "NAME", "DESCRIPTION"}}
			for i, rule := range cfg.Rules() {
				data = append(data, []string{pterm.Sprintf("%d", i+1), rule.Name(), rule.Describe()})
			}

			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return errors.Errorf("rendering rule table: %w", err)
			}

			return nil
		},
	}

	return cmd
}
