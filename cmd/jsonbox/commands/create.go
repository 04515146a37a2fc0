package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	var bulk bool

	cmd := &cobra.Command{
		Use:   "create [JSON]",
		Short: "Create records",
		Long: `Store a JSON object as a new record in the box.

The payload is taken from the argument or, when omitted, from stdin.
Use --bulk to store every object of a JSON array in one request.`,
		Example: `  jsonbox create '{"name":"kuy","count":42}'
  echo '[{"name":"a"},{"name":"b"}]' | jsonbox create --bulk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args, cmd.InOrStdin(), len(args) == 0 && stdinIsPiped())
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return runCreate(cmd.Context(), client, payload, bulk, viper.GetString("output"), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&bulk, "bulk", false, "payload is a JSON array of records")

	return cmd
}

func runCreate(
	ctx context.Context,
	client jsonbox.Client[Document],
	payload []byte,
	bulk bool,
	format string,
	w io.Writer,
) error {
	if bulk {
		if !isJSONArray(payload) {
			return ErrBulkNeedsArray
		}

		docs, err := decodeDocuments(payload)
		if err != nil {
			return err
		}

		records, err := client.CreateBulk(ctx, docs)
		if err != nil {
			return fmt.Errorf("failed to create records: %w", err)
		}

		return outputRecords(w, format, records)
	}

	if isJSONArray(payload) {
		return ErrArrayNeedsBulk
	}

	doc, err := decodeDocument(payload)
	if err != nil {
		return err
	}

	record, err := client.Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	return outputRecord(w, format, record)
}
