package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update RECORD_ID [JSON]",
		Short: "Replace a record",
		Long: `Replace the payload of an existing record.

The payload is taken from the second argument or, when omitted, from stdin.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args[1:], cmd.InOrStdin(), len(args) == 1 && stdinIsPiped())
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return runUpdate(cmd.Context(), client, args[0], payload, cmd.OutOrStdout())
		},
	}
}

func runUpdate(ctx context.Context, client jsonbox.Client[Document], id string, payload []byte, w io.Writer) error {
	if id == "" {
		return ErrRecordIDRequired
	}

	if isJSONArray(payload) {
		return fmt.Errorf("%w: update takes a single object", ErrInvalidJSONPayload)
	}

	doc, err := decodeDocument(payload)
	if err != nil {
		return err
	}

	err = client.Update(ctx, id, doc)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	_, _ = successColor.Fprintf(w, "Successfully updated record '%s'\n", id)

	return nil
}
