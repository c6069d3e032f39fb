package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/pkg/api"
)

func newBillCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bill",
		Aliases: []string{"bills"},
		Short:   "Split, inspect and pay bills",
	}
	cmd.AddCommand(
		newBillSplitCommand(a),
		newBillGetCommand(a),
		newBillParticipantsCommand(a),
		newBillPayCommand(a),
		newBillDueCommand(a),
		newBillPaymentMethodsCommand(a),
	)
	return cmd
}

func newBillSplitCommand(a *app) *cobra.Command {
	var (
		owner        string
		participants []string
		amount       string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split an amount evenly between participants",
		Long: `Split an amount evenly between participants.

The amount is given in major units (for example 12.34) and converted to minor
units using currency.exponent. Each participant owes the amount divided by the
number of participants, rounded down; any remainder is not assigned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			minor, err := money.ParseMinor(amount, cfg.Currency.Exponent)
			if err != nil {
				return err
			}

			resp, err := a.client().SplitBill(cmd.Context(), connect.NewRequest(&api.SplitBillRequest{
				Owner:        owner,
				Participants: participants,
				Amount:       minor,
			}))
			if err != nil {
				return rpcError("splitting bill", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}

			share, _ := calculator.EqualShare(minor, len(participants))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Created bill %s\n", resp.Msg.Bill.ID)
			fmt.Fprintf(w, "Each of %d participants owes %s\n",
				len(participants), money.Format(share, cfg.Currency.Exponent, cfg.Currency.Code))
			if rem := calculator.Remainder(minor, len(participants)); rem > 0 {
				fmt.Fprintf(w, "Unassigned remainder: %s\n", money.Format(rem, cfg.Currency.Exponent, cfg.Currency.Code))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "user who paid the bill (required)")
	_ = cmd.MarkFlagRequired("owner")
	cmd.Flags().StringSliceVarP(&participants, "participant", "p", nil, "participant user ID (repeatable)")
	cmd.Flags().StringVar(&amount, "amount", "", "total amount in major units (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBillGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <bill-id>",
		Short: "Show a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().GetBillById(cmd.Context(), connect.NewRequest(&api.GetBillByIdRequest{ID: args[0]}))
			if err != nil {
				return rpcError("getting bill", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}
			if !resp.Msg.Found {
				return fmt.Errorf("bill %s not found", args[0])
			}

			b := resp.Msg.Bill
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ID:      %s\n", b.ID)
			fmt.Fprintf(w, "Owner:   %s\n", b.Owner)
			fmt.Fprintf(w, "Created: %s\n", time.Unix(0, b.CreatedAt).UTC().Format(time.RFC3339))
			fmt.Fprintf(w, "Shares:  %s\n", joinOrNone(b.UserBills))
			return nil
		},
	}
}

func newBillParticipantsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "participants <bill-id>",
		Short: "List a bill's shares and payment progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			resp, err := a.client().GetSplitBillParticipant(cmd.Context(), connect.NewRequest(&api.GetSplitBillParticipantRequest{BillID: args[0]}))
			if err != nil {
				return rpcError("listing participants", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}

			exp, code := cfg.Currency.Exponent, cfg.Currency.Code
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SHARE\tUSER\tAMOUNT\tSTATUS")
			shares := make([]models.UserBill, len(resp.Msg.UserBills))
			for i, ub := range resp.Msg.UserBills {
				status := "due"
				if ub.Paid {
					status = "paid"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ub.ID, ub.User, money.FormatMinor(ub.Amount, exp), status)
				shares[i] = models.UserBill{ID: ub.ID, User: ub.User, Bill: ub.Bill, Amount: ub.Amount, Paid: ub.Paid}
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			bal := calculator.SummarizeShares(shares)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d paid, %s collected, %s outstanding\n",
				bal.PaidCount, bal.ShareCount, money.Format(bal.Paid, exp, code), money.Format(bal.Outstanding, exp, code))
			return nil
		},
	}
}

func newBillPayCommand(a *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "pay <share-id>",
		Short: "Mark your share of a bill as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().PayBill(cmd.Context(), connect.NewRequest(&api.PayBillRequest{
				UserBillID: args[0],
				UserID:     user,
			}))
			if err != nil {
				return rpcError("paying bill", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Share %s of bill %s is paid\n", resp.Msg.UserBill.ID, resp.Msg.UserBill.Bill)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "paying user ID (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newBillDueCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "due <user-id>",
		Short: "List bills with outstanding shares for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().GetMyDueBill(cmd.Context(), connect.NewRequest(&api.GetMyDueBillRequest{UserID: args[0]}))
			if err != nil {
				return rpcError("listing due bills", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}

			w := cmd.OutOrStdout()
			if len(resp.Msg.Bills) == 0 {
				fmt.Fprintln(w, "No bills due")
				return nil
			}
			for _, b := range resp.Msg.Bills {
				fmt.Fprintf(w, "%s  owner %s\n", b.ID, b.Owner)
			}
			return nil
		},
	}
}

func newBillPaymentMethodsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "payment-methods <share-id>",
		Short: "List the bank accounts a share can be paid into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().GetPaymentMethodsFromUserBill(cmd.Context(), connect.NewRequest(&api.GetPaymentMethodsFromUserBillRequest{UserBillID: args[0]}))
			if err != nil {
				return rpcError("listing payment methods", err)
			}
			if ok, err := a.printJSON(cmd, resp.Msg); ok {
				return err
			}

			w := cmd.OutOrStdout()
			if len(resp.Msg.BankAccounts) == 0 {
				fmt.Fprintln(w, "No payment methods")
				return nil
			}
			for _, acct := range resp.Msg.BankAccounts {
				printAccount(w, acct)
			}
			return nil
		},
	}
}
