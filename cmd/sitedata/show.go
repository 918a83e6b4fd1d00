package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/SiteData/internal/treemodel"
)

var (
	showFilter string
	showJSON   bool
)

var showCmd = &cobra.Command{
	Use:   "show <fixture.yaml>",
	Short: "Build the tree from a fixture and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFixture(args[0])
		if err != nil {
			return err
		}

		m := treemodel.New(f.container(log), treemodel.Options{
			GroupByCookieSource: cfg.Model.GroupByCookieSource,
			Logger:              log,
			Metrics:             metrics,
		})
		if showFilter != "" {
			m.UpdateSearchResults(showFilter)
		}

		if showJSON {
			out, err := sonic.MarshalIndent(snapshot(m.Root()), "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		renderText(os.Stdout, m.Root(), 0)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showFilter, "filter", "", "only show hosts whose title contains this string")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the tree as JSON")
	rootCmd.AddCommand(showCmd)
}
