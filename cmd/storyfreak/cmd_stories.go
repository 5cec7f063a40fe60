package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"storyfreak/internal/domain"
	"storyfreak/internal/stories"
	"storyfreak/internal/ui"
)

func newStoriesCmd(a *app) *cobra.Command {
	var themeName string

	theme := func() (domain.Theme, error) {
		if themeName == "" {
			return a.cfg.UI.Theme, nil
		}
		return domain.ParseTheme(themeName)
	}

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List the component stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "COMPONENT", "NAME")
			for _, s := range stories.All() {
				t.Row(s.ID, s.Component, s.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&themeName, "theme", "", "light or dark (default from config)")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a single story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := stories.Find(args[0])
			if err != nil {
				return err
			}
			t, err := theme()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stories.Show(story, t))
			return nil
		},
	}

	docs := &cobra.Command{
		Use:   "docs",
		Short: "Browse every story in a pager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme()
			if err != nil {
				return err
			}
			return ui.RunPager(stories.Catalogue(t))
		},
	}

	cmd.AddCommand(show, docs)
	return cmd
}
