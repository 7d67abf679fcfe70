package cli

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todomvc/internal/ui"
)

// editPrompt asks for the new description, starting from current.
var editPrompt = func(current string) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}
	prompt := promptui.Prompt{
		Label:     "Description",
		Default:   current,
		AllowEdit: true,
		Templates: templates,
	}
	return prompt.Run()
}

func addEdit(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "edit <n> [text...]",
		Short: "Change the description of the entry at 1-based position n",
		Example: `
todo edit 2 Buy oat milk
todo edit 2
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return usagef("usage: todo edit <index> [text...]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := e.service(ctx)
			if err != nil {
				return err
			}
			idx, err := parseIndex(args[0], svc.Len())
			if err != nil {
				return err
			}
			snap, err := svc.ToggleEdit(ctx, idx)
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if len(args) == 1 {
				text, err = editPrompt(snap.EditValue)
				if err != nil {
					if _, cerr := svc.CancelEdit(ctx); cerr != nil {
						return cerr
					}
					if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
						ui.OK(cmd.OutOrStdout(), "unchanged")
						return nil
					}
					return err
				}
				svc.SetEditValue(text)
			}

			if _, err := svc.Edit(ctx, idx, text); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "updated")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
