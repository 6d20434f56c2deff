package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ogiraldo/inkflow/internal/config"
	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
)

func cashflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Inspect and maintain the cash-flow ledgers",
	}

	cmd.AddCommand(listEntriesCmd())
	cmd.AddCommand(removeEntriesCmd())
	cmd.AddCommand(exportEntriesCmd())

	return cmd
}

func entryTypeFromFlag(revenue bool) model.EntryType {
	if revenue {
		return model.EntryTypeRevenue
	}
	return model.EntryTypeExpense
}

func listEntriesCmd() *cobra.Command {
	var (
		revenue   bool
		yearMonth string
		page      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cash-flow entries",
		Long:  `Display one page of the expense or revenue ledger, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := initStore()
			if err != nil {
				return err
			}

			entryType := entryTypeFromFlag(revenue)
			s.SetEntryQuery(entryType, model.EntryQueryPatch{YearMonth: &yearMonth, Page: &page})

			if err := s.FetchEntries(cmd.Context(), entryType); err != nil {
				return fmt.Errorf("failed to fetch entries: %w", err)
			}

			result := s.EntryPage(entryType)
			if len(result.Content) == 0 {
				fmt.Println("No entries found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tDate\tDescription\tCategory\tAmount")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 10),
				strings.Repeat("-", 32),
				strings.Repeat("-", 20),
				strings.Repeat("-", 14))
			for _, e := range result.Content {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					e.ID, format.Date(e.TransactedOn), e.Description, e.Category.Name, format.Money(e.Amount))
			}
			fmt.Fprintf(w, "\npage %d/%d, %d entries total\n", result.Number+1, result.TotalPages, result.TotalElements)

			return nil
		},
	}

	cmd.Flags().BoolVar(&revenue, "revenue", false, "list revenues instead of expenses")
	cmd.Flags().StringVar(&yearMonth, "month", "", "filter by month (YYYY-MM)")
	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 0")

	return cmd
}

func removeEntriesCmd() *cobra.Command {
	var revenue bool

	cmd := &cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove cash-flow entries in one batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := initStore()
			if err != nil {
				return err
			}

			entryType := entryTypeFromFlag(revenue)
			for _, arg := range args {
				id, parseErr := strconv.ParseInt(arg, 10, 64)
				if parseErr != nil {
					return fmt.Errorf("invalid entry id %q", arg)
				}
				s.ToggleEntrySelected(entryType, id)
			}

			if err := s.RemoveSelectedEntries(cmd.Context(), entryType); err != nil {
				return fmt.Errorf("failed to remove entries: %w", err)
			}

			fmt.Printf("removed %d entries\n", len(args))
			return nil
		},
	}

	cmd.Flags().BoolVar(&revenue, "revenue", false, "the ids belong to the revenue ledger")

	return cmd
}

func exportEntriesCmd() *cobra.Command {
	var (
		revenue   bool
		yearMonth string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a ledger to CSV",
		Long:  `Walk every page of the expense or revenue ledger and write it to a CSV file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := initStore()
			if err != nil {
				return err
			}

			entryType := entryTypeFromFlag(revenue)
			path := config.ExpandPath(output)

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer func() { _ = file.Close() }()

			writer := csv.NewWriter(file)
			if err := writer.Write([]string{"id", "date", "description", "category", "amount"}); err != nil {
				return fmt.Errorf("failed to write header: %w", err)
			}

			var bar *progressbar.ProgressBar
			written := 0
			for page := 0; ; page++ {
				p := page
				s.SetEntryQuery(entryType, model.EntryQueryPatch{YearMonth: &yearMonth, Page: &p})
				if err := s.FetchEntries(cmd.Context(), entryType); err != nil {
					return fmt.Errorf("failed to fetch page %d: %w", page, err)
				}

				result := s.EntryPage(entryType)
				if bar == nil {
					bar = progressbar.Default(int64(result.TotalPages), "exporting")
				}

				for _, e := range result.Content {
					record := []string{
						strconv.FormatInt(e.ID, 10),
						e.TransactedOn,
						e.Description,
						e.Category.Name,
						strconv.FormatFloat(e.Amount, 'f', 2, 64),
					}
					if err := writer.Write(record); err != nil {
						return fmt.Errorf("failed to write entry %d: %w", e.ID, err)
					}
					written++
				}
				_ = bar.Add(1)

				if page+1 >= result.TotalPages {
					break
				}
			}

			writer.Flush()
			if err := writer.Error(); err != nil {
				return fmt.Errorf("failed to flush CSV: %w", err)
			}

			fmt.Printf("\nwrote %d entries to %s\n", written, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&revenue, "revenue", false, "export revenues instead of expenses")
	cmd.Flags().StringVar(&yearMonth, "month", "", "filter by month (YYYY-MM)")
	cmd.Flags().StringVar(&output, "output", "entries.csv", "destination file")

	return cmd
}
