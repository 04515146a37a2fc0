package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RECORD_ID",
		Short: "Get a record",
		Long:  "Display a single record and its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return runGet(cmd.Context(), client, args[0], viper.GetString("output"), cmd.OutOrStdout())
		},
	}
}

func runGet(ctx context.Context, client jsonbox.Client[Document], id, format string, w io.Writer) error {
	if id == "" {
		return ErrRecordIDRequired
	}

	record, err := client.Read().ID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	return outputRecord(w, format, record)
}
