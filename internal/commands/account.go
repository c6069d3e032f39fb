package commands

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/pkg/api"
)

func newAccountCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"accounts"},
		Short:   "Manage bank accounts that receive payments",
	}
	cmd.AddCommand(
		newAccountRegisterCommand(a),
		newAccountGetCommand(a),
		newAccountRemoveCommand(a),
	)
	return cmd
}

func newAccountRegisterCommand(a *app) *cobra.Command {
	var owner, bank, number string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a bank account for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().RegisterBankAccount(cmd.Context(), connect.NewRequest(&api.RegisterBankAccountRequest{
				Owner:         owner,
				Bank:          bank,
				AccountNumber: number,
			}))
			if err != nil {
				return rpcError("registering bank account", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered bank account %s for %s\n", resp.Msg.BankAccount.ID, owner)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owning user ID (required)")
	_ = cmd.MarkFlagRequired("owner")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")
	cmd.Flags().StringVar(&number, "number", "", "account number")

	return cmd
}

func newAccountGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <account-id>",
		Short: "Show a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().GetBankAccountById(cmd.Context(), connect.NewRequest(&api.GetBankAccountByIdRequest{ID: args[0]}))
			if err != nil {
				return rpcError("getting bank account", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}
			if !resp.Msg.Found {
				return fmt.Errorf("bank account %s not found", args[0])
			}
			printAccount(cmd.OutOrStdout(), resp.Msg.BankAccount)
			return nil
		},
	}
}

func newAccountRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <account-id>",
		Short: "Delete a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().RemoveBankAccount(cmd.Context(), connect.NewRequest(&api.RemoveBankAccountRequest{ID: args[0]}))
			if err != nil {
				return rpcError("removing bank account", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed bank account %s\n", resp.Msg.BankAccount.ID)
			return nil
		},
	}
}

func printAccount(w io.Writer, acct *api.BankAccount) {
	fmt.Fprintf(w, "%s  %s  %s  (owner %s)\n", acct.ID, acct.Bank, acct.AccountNumber, acct.Owner)
}
