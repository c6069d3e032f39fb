package commands

import (
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/pkg/api"
)

func newUserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create and look up users",
	}
	cmd.AddCommand(newUserCreateCommand(a), newUserGetCommand(a))
	return cmd
}

func newUserCreateCommand(a *app) *cobra.Command {
	var username, email string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().CreateUser(cmd.Context(), connect.NewRequest(&api.CreateUserRequest{
				Username: username,
				Email:    email,
			}))
			if err != nil {
				return rpcError("creating user", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", resp.Msg.User.ID, resp.Msg.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "display name (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}

func newUserGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().GetUserById(cmd.Context(), connect.NewRequest(&api.GetUserByIdRequest{ID: args[0]}))
			if err != nil {
				return rpcError("getting user", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}
			if !resp.Msg.Found {
				return fmt.Errorf("user %s not found", args[0])
			}

			u := resp.Msg.User
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ID:            %s\n", u.ID)
			fmt.Fprintf(w, "Username:      %s\n", u.Username)
			fmt.Fprintf(w, "Email:         %s\n", u.Email)
			fmt.Fprintf(w, "Bank accounts: %s\n", joinOrNone(u.BankAccounts))
			return nil
		},
	}
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	return strings.Join(ids, ", ")
}
