package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kuy/jsonbox-go/internal/constants"
	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// queryFlags holds the listing flags shared by list and query.
type queryFlags struct {
	sort    string
	desc    bool
	skip    int
	limit   int
	filters []string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort ascending by field (default newest first)")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort in descending order")
	cmd.Flags().IntVar(&f.skip, "skip", constants.DefaultSkip, "number of records to skip")
	cmd.Flags().IntVar(&f.limit, "limit", constants.DefaultLimit, "maximum number of records")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter as PATTERN=VALUE, e.g. 'count:>{}=20' (repeatable)")
}

// build turns the flags into a query.
func (f *queryFlags) build() (jsonbox.Query, error) {
	query := jsonbox.NewQuery()

	if f.sort != "" {
		query = query.OrderBy(f.sort)
	}

	if f.desc {
		query = query.Desc()
	}

	query = query.Skip(f.skip).Limit(f.limit)

	for _, filter := range f.filters {
		pattern, value, err := parseFilter(filter)
		if err != nil {
			return jsonbox.Query{}, err
		}

		query = query.Filter(pattern, value)
	}

	return query, nil
}

// parseFilter splits "PATTERN=VALUE" at the first '=' following the marker.
func parseFilter(filter string) (string, string, error) {
	marker := strings.Index(filter, constants.FilterPlaceholder)
	if marker < 0 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	sep := strings.Index(filter[marker:], "=")
	if sep < 0 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	sep += marker

	return filter[:sep], filter[sep+1:], nil
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var (
		flags queryFlags
		all   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List records",
		Long: `List records in the box, newest first unless --sort is given.

Filters are ANDed. Each filter is a pattern holding a {} marker and the
value substituted into it, separated by '='.`,
		Example: `  jsonbox list --sort count --desc --limit 5
  jsonbox list --filter 'count:>{}=20' --filter 'count:<{}=40'
  jsonbox list --filter 'name:{}*=Jo'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := jsonbox.NewQuery()

			if !all {
				var err error

				query, err = flags.build()
				if err != nil {
					return err
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return runList(cmd.Context(), client, query, all, viper.GetString("output"), cmd.OutOrStdout())
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "ignore query flags and use the service defaults")

	return cmd
}

func runList(
	ctx context.Context,
	client jsonbox.Client[Document],
	query jsonbox.Query,
	all bool,
	format string,
	w io.Writer,
) error {
	var (
		records []jsonbox.Record[Document]
		err     error
	)

	if all {
		records, err = client.ReadAll(ctx)
	} else {
		records, err = client.ReadByQuery(ctx, query)
	}

	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	return outputRecords(w, format, records)
}
