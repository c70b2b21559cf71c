package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoboard/internal/board"
	"github.com/idilsaglam/todoboard/internal/replay"
	"github.com/idilsaglam/todoboard/internal/todo"
)

func (a *app) replayCommand() *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a scripted session and print both lists",
		Long: `Replay runs a YAML script of board actions without a terminal and prints
the full list and the filtered list.

Each step names one action. Items are addressed by their 1-based position in
the full list at the time of the step.

  steps:
    - add: Buy milk
    - add: "   "
    - expect_error: true
    - edit: {item: 1, text: Buy oat milk}
    - status: {item: 1, to: in-progress}
    - toggle: 1
    - delete: 1
    - filter: completed`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReplay(cmd, args[0], group)
		},
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "Group the full list by status")
	return cmd
}

func (a *app) runReplay(cmd *cobra.Command, path string, group bool) error {
	cfg, err := a.config(cmd)
	if err != nil {
		return err
	}
	lg, err := a.logger(cfg, a.stderr)
	if err != nil {
		return err
	}
	defer lg.Close()

	script, err := replay.Load(path)
	if err != nil {
		return err
	}

	sess := board.NewSession(todo.New(todo.WithLogger(lg.Logger)))
	res, runErr := script.Run(sess, replay.WithLogger(lg.Logger))

	r := a.renderer(cfg.Theme)
	res.Render(r, group)
	if runErr != nil {
		return runErr
	}
	lg.Debug("replay finished", "script", path, "steps", res.Steps, "rejected", res.Rejected)
	return a.exportItems(cfg, lg, res.Items, r)
}
