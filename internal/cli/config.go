package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoboard/internal/config"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			return config.Write(a.stdout, cfg)
		},
	}

	validate := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check config files against the schema",
		Long: `Validate checks the given file, or every config file todoboard would read,
against the configuration schema and lists each violation.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runValidate(args)
		},
	}

	cmd.AddCommand(show, validate)
	return cmd
}

func (a *app) runValidate(args []string) error {
	r := a.renderer(a.theme)

	var sources []config.Source
	if len(args) == 1 {
		sources = []config.Source{{Layer: "explicit", Path: args[0]}}
	} else {
		sources = config.Sources(a.configPath)
	}
	if len(sources) == 0 {
		r.OK("no config files found; defaults apply")
		return nil
	}

	failed := 0
	for _, src := range sources {
		err := config.ValidateFile(src.Path)
		if err == nil {
			r.OK(fmt.Sprintf("%s (%s)", src.Path, src.Layer))
			continue
		}
		failed++
		var verr *config.ValidationError
		if !errors.As(err, &verr) {
			r.Fail(fmt.Sprintf("%s: %v", src.Path, err))
			continue
		}
		r.Fail(fmt.Sprintf("%s (%s): %d problem(s)", src.Path, src.Layer, len(verr.Problems)))
		for _, p := range verr.Problems {
			path := p.Path
			if path == "" {
				path = "(root)"
			}
			fmt.Fprintf(a.stderr, "  %s: %s\n", path, p.Message)
		}
	}
	if failed > 0 {
		return exitCode(ExitError)
	}
	return nil
}
