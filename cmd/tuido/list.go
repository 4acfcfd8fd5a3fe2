package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rfarias/tuido/internal/tasks"
)

// newListCmd prints every list and task to stdout without entering
// the UI, for shell pipelines and quick checks. Styling degrades with
// the terminal's color profile.
func newListCmd(configPath, dataPath *string) *cobra.Command {
	var openOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all lists and tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, mgr, err := setup(*configPath, *dataPath)
			if err != nil {
				return err
			}
			lipgloss.SetColorProfile(termenv.ColorProfile())
			printLists(mgr, openOnly)
			return nil
		},
	}
	cmd.Flags().BoolVar(&openOnly, "open", false, "only show open tasks")
	return cmd
}

func printLists(mgr *tasks.Manager, openOnly bool) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle := lipgloss.NewStyle().Faint(true).Strikethrough(true)
	dueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	prioStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	for _, l := range mgr.Lists() {
		fmt.Println(titleStyle.Render(l.Title))
		for _, t := range l.Tasks {
			if openOnly && t.Done {
				continue
			}
			mark := "[ ]"
			if t.Done {
				mark = "[x]"
			}
			var parts []string
			parts = append(parts, fmt.Sprintf("  %s %s", mark, t.Title))
			if t.Due != nil {
				parts = append(parts, dueStyle.Render(t.Due.Display()))
			}
			if t.Priority != tasks.PriorityNone {
				parts = append(parts, prioStyle.Render("!"+t.Priority.String()))
			}
			line := strings.Join(parts, "  ")
			if t.Done {
				line = doneStyle.Render(line)
			}
			fmt.Println(line)
		}
		fmt.Println()
	}
}
