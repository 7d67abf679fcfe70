package cli

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRoot(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: base.Wrap80("A single list of things to do, kept between runs."),
		Example: `
todo add "Buy milk"
todo ls
todo done 2
todo rm 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return &usageError{}
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	addRootArgs(cmd.PersistentFlags(), e)
	for _, name := range []string{"backend", "path", "key", "theme"} {
		_ = e.v.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}

	addCommands(cmd, e)
	return cmd
}

func addRootArgs(fs *pflag.FlagSet, e *env) {
	fs.StringVar(&e.configPath, "config-path", "",
		base.Wrap80("Directory holding .todo.yaml, searched before ./ and $HOME."))
	fs.String("backend", "", base.Wrap80("Storage backend: diskv, json, sqlite or memory."))
	fs.String("path", "", base.Wrap80("Where the backend keeps its data."))
	fs.String("key", "", base.Wrap80("Name of the persistence slot."))
	fs.String("theme", "", base.Wrap80("Output theme: classic, neon or mono."))
	fs.BoolVar(&e.noColor, "no-color", false, "Disable colored output.")
}

func addCommands(topLevel *cobra.Command, e *env) {
	addAdd(topLevel, e)
	addList(topLevel, e)
	addDone(topLevel, e)
	addRemove(topLevel, e)
	addEdit(topLevel, e)
	addToggleAll(topLevel, e)
	addUI(topLevel, e)
	addConfig(topLevel, e)
	addVersion(topLevel)
}
