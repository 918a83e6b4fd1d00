package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SiteData/internal/treemodel"
)

var purgeHost string

var purgeCmd = &cobra.Command{
	Use:   "purge <fixture.yaml>",
	Short: "Delete stored objects, then print what remains",
	Long: `Purge deletes every stored object in the fixture, or with --host just
one host's subtree. Deletion cascades through the external deleters and prunes
emptied ancestors; the remaining tree is printed to stdout.`,
	Args: cobra.ExactArgs(1),
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

		if purgeHost == "" {
			m.DeleteAllStoredObjects()
		} else {
			host := hostByTitle(m, purgeHost)
			if host == nil {
				return fmt.Errorf("no such host: %s", purgeHost)
			}
			m.DeleteNode(host)
		}

		log.Info("purge complete", zap.String("host", purgeHost))
		renderText(os.Stdout, m.Root(), 0)
		return nil
	},
}

func hostByTitle(m *treemodel.TreeModel, title string) treemodel.Node {
	for _, child := range m.Root().Children() {
		if child.Title() == title {
			return child
		}
	}
	return nil
}

func init() {
	purgeCmd.Flags().StringVar(&purgeHost, "host", "", "purge only this host's subtree")
	rootCmd.AddCommand(purgeCmd)
}
