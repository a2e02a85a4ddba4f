package commands

import (
	"fmt"
	"time"

	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"

	"github.com/spf13/cobra"
)

var categoriesFlags struct {
	appToken string
	timeout  int
}

func init() {
	f := categoriesCmd.Flags()
	f.StringVar(&categoriesFlags.appToken, "app-token", "", "Socrata app token. Defaults to the RDW_APP_TOKEN environment variable.")
	f.IntVar(&categoriesFlags.timeout, "timeout", 30, "HTTP timeout per request in seconds.")
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Lists the vehicle categories present in the dataset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := rdw.NewClient(rdw.ClientOptions{
			AppToken: rdw.ResolveAppToken(categoriesFlags.appToken),
			Timeout:  time.Duration(categoriesFlags.timeout) * time.Second,
		})

		dutch, err := client.Categories(cmd.Context())
		if err != nil {
			return err
		}
		english := rdw.TranslateCategories(dutch)
		for i, cat := range dutch {
			fmt.Printf("- %s -> %s\n", cat, english[i])
		}
		return nil
	},
}
