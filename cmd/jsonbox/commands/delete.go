package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete RECORD_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a record",
		Long:    "Delete a record from the box",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID := args[0]

			if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Really delete record '%s'?", recordID)) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return runDelete(cmd.Context(), client, recordID, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func runDelete(ctx context.Context, client jsonbox.Client[Document], id string, w io.Writer) error {
	if id == "" {
		return ErrRecordIDRequired
	}

	err := client.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	_, _ = successColor.Fprintf(w, "Successfully deleted record '%s'\n", id)

	return nil
}
