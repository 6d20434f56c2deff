package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
)

func paymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Review and approve editor payments",
	}

	cmd.AddCommand(listPaymentsCmd())
	cmd.AddCommand(showPaymentCmd())
	cmd.AddCommand(approvePaymentCmd())

	return cmd
}

func paymentStatus(p model.Payment) string {
	if p.ApprovedAt != nil {
		return "approved " + p.ApprovedAt.Format(format.DisplayDate)
	}
	return "pending"
}

func listPaymentsCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled payments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := initStore()
			if err != nil {
				return err
			}

			s.SetPaymentPage(page)
			if err := s.FetchAllPayments(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch payments: %w", err)
			}

			result := s.PaymentPage()
			if len(result.Content) == 0 {
				fmt.Println("No payments found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tPayee\tPeriod\tTotal\tStatus")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 24),
				strings.Repeat("-", 23),
				strings.Repeat("-", 14),
				strings.Repeat("-", 20))
			for _, p := range result.Content {
				fmt.Fprintf(w, "%d\t%s\t%s - %s\t%s\t%s\n",
					p.ID, p.Payee.Name,
					format.Date(p.AccountingPeriod.StartsOn), format.Date(p.AccountingPeriod.EndsOn),
					format.Money(p.GrandTotalAmount), paymentStatus(p))
			}
			fmt.Fprintf(w, "\npage %d/%d, %d payments total\n", result.Number+1, result.TotalPages, result.TotalElements)

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 0")

	return cmd
}

func showPaymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one payment with its posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}

			s, _, err := initStore()
			if err != nil {
				return err
			}

			if err := s.FetchPayment(cmd.Context(), paymentID); err != nil {
				return fmt.Errorf("failed to fetch payment %d: %w", paymentID, err)
			}

			payment, posts, _, notFound := s.PaymentDetail()
			if notFound || payment == nil {
				return fmt.Errorf("payment %d not found", paymentID)
			}

			fmt.Printf("payment #%d to %s — %s\n", payment.ID, payment.Payee.Name, paymentStatus(*payment))
			fmt.Printf("  period:   %s - %s\n",
				format.Date(payment.AccountingPeriod.StartsOn), format.Date(payment.AccountingPeriod.EndsOn))
			fmt.Printf("  earnings: %s (%d words at %s/word)\n",
				format.Money(payment.Earnings.TotalAmount), payment.Earnings.Words, format.Money(payment.Earnings.PricePerWord))
			for _, b := range payment.Bonuses {
				fmt.Printf("  bonus:    %s %s\n", b.Title, format.Money(b.Amount))
			}
			fmt.Printf("  total:    %s\n", format.Money(payment.GrandTotalAmount))

			if len(posts) > 0 {
				fmt.Println("  posts:")
				for _, p := range posts {
					fmt.Printf("    #%d %s\n", p.ID, p.Title)
				}
			}

			return nil
		},
	}
}

func approvePaymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending payment",
		Long: `Approve a pending payment. Approval is final: there is no way to
undo it from this client.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}

			s, _, err := initStore()
			if err != nil {
				return err
			}

			if err := s.FetchPayment(cmd.Context(), paymentID); err != nil {
				return fmt.Errorf("failed to fetch payment %d: %w", paymentID, err)
			}

			payment, _, _, notFound := s.PaymentDetail()
			if notFound || payment == nil {
				return fmt.Errorf("payment %d not found", paymentID)
			}
			if payment.ApprovedAt != nil {
				fmt.Printf("payment %d is already approved\n", paymentID)
				return nil
			}
			if !payment.Approvable() {
				return fmt.Errorf("payment %d cannot be approved right now", paymentID)
			}

			if err := s.ApprovePayment(cmd.Context(), *payment); err != nil {
				return fmt.Errorf("failed to approve payment %d: %w", paymentID, err)
			}

			fmt.Printf("payment %d approved: %s to %s\n",
				paymentID, format.Money(payment.GrandTotalAmount), payment.Payee.Name)
			return nil
		},
	}
}
