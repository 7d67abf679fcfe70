package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todomvc/internal/ui"
)

func addAdd(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an entry",
		Example: `
todo add Buy milk
todo add "Call the plumber"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: todo add <text...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			before := svc.Len()
			snap, err := svc.Add(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(snap.Entries) == before {
				fmt.Fprintln(cmd.OutOrStdout(), ui.C(ui.Current().Muted, "nothing added"))
				return nil
			}
			ui.OK(cmd.OutOrStdout(), "added")
			ui.PrintList(cmd.OutOrStdout(), snap, ui.ListOptions{Width: ui.Width()})
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addDone(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "done <n>",
		Aliases: []string{"toggle", "complete"},
		Short:   "Toggle the entry at 1-based position n",
		Example: `
todo done 2
`,
		Args: exactArgs(1, "todo done <index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := parseIndex(args[0], svc.Len())
			if err != nil {
				return err
			}
			snap, err := svc.Toggle(cmd.Context(), idx)
			if err != nil {
				return err
			}
			msg := "reopened"
			if snap.Entries[idx].Completed {
				msg = "completed"
			}
			ui.OK(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"remove"},
		Short:   "Remove the entry at 1-based position n",
		Example: `
todo rm 3
`,
		Args: exactArgs(1, "todo rm <index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := parseIndex(args[0], svc.Len())
			if err != nil {
				return err
			}
			if _, err := svc.Remove(cmd.Context(), idx); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addToggleAll(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "toggle-all",
		Short: "Complete every entry, or reopen them all when all are complete",
		Args:  exactArgs(0, "todo toggle-all"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			snap, err := svc.ToggleAll(cmd.Context())
			if err != nil {
				return err
			}
			switch {
			case len(snap.Entries) == 0:
				ui.OK(cmd.OutOrStdout(), "nothing to toggle")
			case snap.AllCompleted:
				ui.OK(cmd.OutOrStdout(), "all completed")
			default:
				ui.OK(cmd.OutOrStdout(), "all reopened")
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
