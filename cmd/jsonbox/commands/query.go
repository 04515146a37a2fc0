package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kuy/jsonbox-go/pkg/boxclient"
	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// NewQueryCommand creates the query command, which prints the request a
// listing would make without sending it.
func NewQueryCommand() *cobra.Command {
	var (
		flags   queryFlags
		showURL bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print a listing query string",
		Long:  "Build the query string the list command would send for the same flags, without contacting the service",
		Example: `  jsonbox query --sort count --desc --skip 8 --limit 42 --filter 'count:>{}=20' --filter 'count:<{}=40'
  # sort=-count&skip=8&limit=42&q=count:>20,count:<40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := flags.build()
			if err != nil {
				return err
			}

			if !showURL {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), query.Encode())

				return nil
			}

			boxID := viper.GetString("box")
			if boxID == "" {
				return ErrBoxRequired
			}

			endpoint := boxclient.NormalizeEndpoint(viper.GetString("endpoint"))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), jsonbox.QueryURL(endpoint, boxID, query.Encode()))

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showURL, "url", false, "print the full request URL for the configured box")

	return cmd
}
