package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ogiraldo/inkflow/internal/config"
	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform users",
	}

	cmd.AddCommand(listUsersCmd())
	cmd.AddCommand(showUserCmd())
	cmd.AddCommand(toggleUserStatusCmd("activate", "Activate a deactivated user", false))
	cmd.AddCommand(toggleUserStatusCmd("deactivate", "Deactivate an active user", true))
	cmd.AddCommand(setUserAvatarCmd())

	return cmd
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := initStore()
			if err != nil {
				return err
			}

			if err := s.FetchAllUsers(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch users: %w", err)
			}

			users := s.Users()
			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tName\tRole\tEmail\tStatus")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 24),
				strings.Repeat("-", 10),
				strings.Repeat("-", 28),
				strings.Repeat("-", 8))
			for _, u := range users {
				status := "inactive"
				if u.Active {
					status = "active"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, u.Email, status)
			}

			return nil
		},
	}
}

func showUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one user's full record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			s, _, err := initStore()
			if err != nil {
				return err
			}

			if err := s.FetchUser(cmd.Context(), userID); err != nil {
				return fmt.Errorf("failed to fetch user %d: %w", userID, err)
			}

			user, _, notFound := s.UserDetail()
			if notFound || user == nil {
				return fmt.Errorf("user %d not found", userID)
			}

			printUser(*user)
			return nil
		},
	}
}

func printUser(u model.User) {
	status := "inactive"
	if u.Active {
		status = "active"
	}

	fmt.Printf("%s (#%d) — %s, %s\n", u.Name, u.ID, u.Role, status)
	fmt.Printf("  email:     %s\n", u.Email)
	fmt.Printf("  phone:     %s\n", format.Phone(u.Phone))
	fmt.Printf("  taxpayer:  %s\n", format.TaxpayerID(u.TaxpayerID))
	fmt.Printf("  birthdate: %s\n", format.Date(u.Birthdate))
	fmt.Printf("  location:  %s, %s\n", u.Location.City, u.Location.State)
	if u.Bio != "" {
		fmt.Printf("  bio:       %s\n", u.Bio)
	}

	if u.IsEditor() {
		fmt.Printf("  price/word: %s\n", format.Money(u.PricePerWord))
		for _, skill := range u.Skills {
			fmt.Printf("  skill:      %s (%d%%)\n", skill.Name, skill.Percentage)
		}
		if u.BankAccount != nil {
			fmt.Printf("  bank:       %s ag %s acct %s-%s\n",
				u.BankAccount.BankCode, u.BankAccount.Agency, u.BankAccount.Number, u.BankAccount.Digit)
		}
	}
}

func setUserAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <id> <file>",
		Short: "Upload a new avatar image for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			s, _, err := initStore()
			if err != nil {
				return err
			}

			path := config.ExpandPath(args[1])
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer func() { _ = file.Close() }()

			url, err := s.UpdateUserAvatar(cmd.Context(), userID, filepath.Base(path), file)
			if err != nil {
				return fmt.Errorf("failed to update avatar for user %d: %w", userID, err)
			}

			fmt.Printf("avatar for user %d set to %s\n", userID, url)
			return nil
		},
	}
}

// toggleUserStatusCmd builds the activate and deactivate sub-commands;
// fromActive is the activation state the target user must currently be in.
func toggleUserStatusCmd(use, short string, fromActive bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			s, _, err := initStore()
			if err != nil {
				return err
			}

			if err := s.FetchUser(cmd.Context(), userID); err != nil {
				return fmt.Errorf("failed to fetch user %d: %w", userID, err)
			}

			user, _, notFound := s.UserDetail()
			if notFound || user == nil {
				return fmt.Errorf("user %d not found", userID)
			}
			if user.Active != fromActive {
				state := "inactive"
				if user.Active {
					state = "active"
				}
				fmt.Printf("user %d is already %s\n", userID, state)
				return nil
			}
			if !user.StatusCanToggle() {
				return fmt.Errorf("user %d cannot be %sd right now", userID, use)
			}

			if err := s.ToggleUserStatus(cmd.Context(), *user); err != nil {
				return fmt.Errorf("failed to %s user %d: %w", use, userID, err)
			}

			fmt.Printf("user %d %sd\n", userID, use)
			return nil
		},
	}
}
