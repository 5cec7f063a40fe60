package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storyfreak/internal/domain"
	"storyfreak/internal/table"
	"storyfreak/internal/ui/views"
	"storyfreak/internal/users"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the persisted user list shown in the data table",
	}

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Print the user list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.repo.Users()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}
			renderer := views.NewTableRenderer(views.NewStyles(a.cfg.UI.Theme))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(views.TableView{
				State:       table.NewState(users.Columns(), users.Rows(list)),
				Cursor:      -1,
				FocusColumn: -1,
				LoadingRows: a.cfg.UI.LoadingRows,
			}))
			return nil
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	var u domain.User
	var status string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := domain.ParseUserStatus(status)
			if err != nil {
				return err
			}
			u.Status = st
			created, err := a.repo.Add(u)
			if err != nil {
				return err
			}
			a.log.Info("user added", zap.String("id", created.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (id %s)\n", created.Name, created.ID)
			return nil
		},
	}
	add.Flags().StringVar(&u.Name, "name", "", "full name")
	add.Flags().StringVar(&u.Email, "email", "", "email address")
	add.Flags().StringVar(&u.Role, "role", "", "role")
	add.Flags().StringVar(&status, "status", domain.StatusActive.String(), "Active, Pending or Inactive")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("email")

	var patchName, patchEmail, patchRole, patchStatus string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch users.Patch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &patchName
			}
			if flags.Changed("email") {
				patch.Email = &patchEmail
			}
			if flags.Changed("role") {
				patch.Role = &patchRole
			}
			if flags.Changed("status") {
				st, err := domain.ParseUserStatus(patchStatus)
				if err != nil {
					return err
				}
				patch.Status = &st
			}
			updated, err := a.repo.Update(args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (id %s)\n", updated.Name, updated.ID)
			return nil
		},
	}
	update.Flags().StringVar(&patchName, "name", "", "full name")
	update.Flags().StringVar(&patchEmail, "email", "", "email address")
	update.Flags().StringVar(&patchRole, "role", "", "role")
	update.Flags().StringVar(&patchStatus, "status", "", "Active, Pending or Inactive")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.repo.Delete(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("%w: %s", users.ErrUserNotFound, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear stored data and restore the seed users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.repo.ClearAll(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d users\n", len(a.repo.Users()))
			return nil
		},
	}

	cmd.AddCommand(list, add, update, del, reset)
	return cmd
}
