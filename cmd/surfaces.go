package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var surfacesCmd = &cobra.Command{
	Use:   "surfaces",
	Short: "List the surface catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		asJSON, _ := cmd.Flags().GetBool("json")

		rules, err := container.Catalog.Enabled(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		if asJSON {
			b, _ := json.MarshalIndent(rules, jsonPrefix, jsonIndent)
			fmt.Println(string(b))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tCATEGORY\tTIER\tPROVIDER\tINPUT")
		for _, rule := range rules {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				rule.Key, rule.Category, rule.Tier, rule.Provider, rule.CanonicalInput)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d surfaces enabled\n", len(rules))
		return nil
	},
}

func init() {
	surfacesCmd.Flags().Bool("json", false, "print the catalog as JSON")
}
