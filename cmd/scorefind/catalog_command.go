package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scorefind/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the work catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogShowCommand(ctx))

	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog entries in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, cat.Len())
			for _, entry := range cat.Entries() {
				rows = append(rows, []string{
					entry.Key,
					entry.Work.Composer,
					entry.Work.Title,
					yesNo(entry.Work.Note != ""),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Key", "Composer", "Title", "Note"},
				rows,
				nil,
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d entries\n", cat.Len())
			return nil
		},
	}
}

func newCatalogShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			key := catalog.NormalizeKey(strings.Join(args, " "))
			work, ok := cat.Lookup(key)
			if !ok {
				return fmt.Errorf("no catalog entry for key %q", key)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Key", key},
					{"Title", work.Title},
					{"Composer", work.Composer},
					{"URL", work.URL},
					{"Note", work.Note},
				},
				nil,
			))
			return nil
		},
	}
}
