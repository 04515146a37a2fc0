package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/kuy/jsonbox-go/internal/constants"
	"github.com/kuy/jsonbox-go/internal/logging"
	"github.com/kuy/jsonbox-go/pkg/boxclient"
	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// Document is the schema-less record type the CLI reads and writes.
type Document = map[string]interface{}

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Yes          = "yes"
	Ellipsis     = "..."
)

// Common static errors used throughout the commands package.
var (
	ErrBoxRequired        = errors.New("box ID is required (use --box or JSONBOX_BOX)")
	ErrPayloadRequired    = errors.New("JSON payload is required as an argument or on stdin")
	ErrArrayNeedsBulk     = errors.New("payload is a JSON array, use --bulk")
	ErrBulkNeedsArray     = errors.New("--bulk requires a JSON array payload")
	ErrInvalidFilter      = errors.New("invalid filter, expected PATTERN=VALUE with {} in PATTERN")
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrRecordIDRequired   = errors.New("record ID is required")
	ErrInvalidJSONPayload = errors.New("payload is not valid JSON")
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// CreateClient builds a schema-less client from the CLI configuration.
func CreateClient() (jsonbox.Client[Document], error) {
	boxID := viper.GetString("box")
	if boxID == "" {
		return nil, ErrBoxRequired
	}

	verbose := viper.GetBool("verbose")

	config := &jsonbox.Config{
		BoxID:       boxID,
		BaseURL:     viper.GetString("endpoint"),
		HTTPTimeout: viper.GetDuration("timeout"),
		Debug:       verbose,
	}

	if verbose {
		config.Logger = NewLogger()
	}

	client, err := boxclient.New[Document](config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// NewLogger returns the logger used for verbose CLI output.
func NewLogger() *logging.Logger {
	opts := []logging.Option{logging.WithVerbose(viper.GetBool("verbose"))}
	if color.NoColor {
		opts = append(opts, logging.WithoutColors())
	}

	return logging.New(opts...)
}

// stdinIsPiped reports whether stdin carries data rather than a terminal.
func stdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors fit in int
}

// readPayload returns the JSON payload from the first argument, or from in
// when no argument is given and in is not a terminal.
func readPayload(args []string, in io.Reader, piped bool) ([]byte, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return []byte(args[0]), nil
	}

	if !piped {
		return nil, ErrPayloadRequired
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrPayloadRequired
	}

	return data, nil
}

// isJSONArray reports whether payload starts with '['.
func isJSONArray(payload []byte) bool {
	trimmed := strings.TrimSpace(string(payload))

	return strings.HasPrefix(trimmed, "[")
}

func decodeDocument(payload []byte) (Document, error) {
	var doc Document

	err := json.Unmarshal(payload, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSONPayload, err)
	}

	return doc, nil
}

func decodeDocuments(payload []byte) ([]Document, error) {
	var docs []Document

	err := json.Unmarshal(payload, &docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSONPayload, err)
	}

	return docs, nil
}

// confirm asks a yes/no question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s (y/N): ", question)

	reader := bufio.NewReader(in)

	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))

	return response == "y" || response == Yes
}

func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", constants.JSONIndent)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

func outputYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return encoder.Close()
}

// outputRecords prints records in the requested format.
func outputRecords(w io.Writer, format string, records []jsonbox.Record[Document]) error {
	switch format {
	case constants.FormatJSON:
		return outputJSON(w, records)
	case constants.FormatYAML:
		return outputYAML(w, records)
	case constants.FormatTable, "":
		if len(records) == 0 {
			_, _ = warnColor.Fprintln(w, "No records found")

			return nil
		}

		table := tablewriter.NewWriter(w)
		table.Header("ID", "Created", "Updated", "Data")

		for _, record := range records {
			_ = table.Append(
				record.Meta.ID,
				formatTimestamp(record.Meta.CreatedOn),
				formatTimestamp(record.Meta.UpdatedOn),
				previewDocument(record.Data),
			)
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		_, _ = fmt.Fprintf(w, "%d record(s)\n", len(records))

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// outputRecord prints a single record in the requested format.
func outputRecord(w io.Writer, format string, record jsonbox.Record[Document]) error {
	switch format {
	case constants.FormatJSON:
		return outputJSON(w, record)
	case constants.FormatYAML:
		return outputYAML(w, record)
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")
		_ = table.Append("ID", record.Meta.ID)
		_ = table.Append("Created", formatTimestamp(record.Meta.CreatedOn))
		_ = table.Append("Updated", formatTimestamp(record.Meta.UpdatedOn))

		for _, key := range slices.Sorted(maps.Keys(record.Data)) {
			_ = table.Append(key, formatValue(record.Data[key]))
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func formatTimestamp(value string) string {
	if value == "" {
		return NotAvailable
	}

	parsed, err := (jsonbox.Meta{CreatedOn: value}).CreatedAt()
	if err != nil {
		return value
	}

	return parsed.Local().Format(constants.TimeDisplayFormat)
}

// formatValue renders a field for a table cell; nested values become JSON.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

// previewDocument renders a document as compact JSON, truncated for tables.
func previewDocument(doc Document) string {
	data, err := json.Marshal(doc)
	if err != nil {
		return NotAvailable
	}

	preview := []rune(string(data))
	if len(preview) > constants.MaxPreviewLength {
		return string(preview[:constants.MaxPreviewLength-len(Ellipsis)]) + Ellipsis
	}

	return string(preview)
}
