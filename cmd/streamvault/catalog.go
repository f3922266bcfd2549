package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmcdole/streamvault/internal/adapter"
	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/store"
	"github.com/spf13/cobra"
)

func newCatalogCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or seed the title catalog",
	}
	cmd.AddCommand(newCatalogListCmd(configFile), newCatalogSeedCmd())
	return cmd
}

func newCatalogListCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the titles and shelves of the effective catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := adapter.LoadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			c, err := loadCatalog(cfg, adapter.NullLogger())
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), c)
		},
	}
}

func printCatalog(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tRATING\tGENRES")
	for _, t := range c.Titles() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f\t%s\n", t.ID, t.Name, t.Year, t.Rating, t.GenreList())
	}
	if f, ok := c.Featured(); ok {
		fmt.Fprintf(tw, "%d\t%s (featured)\t%d\t%.1f\t%s\n", f.Title.ID, f.Title.Name, f.Title.Year, f.Title.Rating, f.Title.GenreList())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for _, s := range c.Shelves() {
		fmt.Fprintf(w, "%s: %v\n", s.Name, s.TitleIDs)
	}
	return nil
}

func newCatalogSeedCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in catalog into a snapshot file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewCatalogStore(path)
			if err != nil {
				return fmt.Errorf("failed to open catalog snapshot: %w", err)
			}
			defer st.Close()

			if err := st.SaveCatalog(catalog.Builtin()); err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", adapter.DefaultCatalogPath(), "snapshot file to write")
	return cmd
}
