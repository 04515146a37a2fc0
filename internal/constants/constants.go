package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Service endpoint.
const (
	// DefaultBaseURL is the hosted jsonbox service.
	DefaultBaseURL = "https://jsonbox.io"

	// DefaultScheme is prepended to endpoints given without one.
	DefaultScheme = "https://"
)

// HTTP timeout.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTP status range treated as success.
const (
	// HTTPStatusSuccessMin is the first successful status code.
	HTTPStatusSuccessMin = 200

	// HTTPStatusSuccessMax is the last successful status code.
	HTTPStatusSuccessMax = 299
)

// Reserved record fields written by the service.
const (
	// FieldID holds the record identifier.
	FieldID = "_id"

	// FieldCreatedOn holds the creation timestamp.
	FieldCreatedOn = "_createdOn"

	// FieldUpdatedOn holds the last update timestamp.
	FieldUpdatedOn = "_updatedOn"
)

// Query defaults understood by the service.
const (
	// DefaultSortField is the field lists are ordered by when none is chosen.
	DefaultSortField = FieldCreatedOn

	// DefaultSkip is the number of records skipped by default.
	DefaultSkip = 0

	// DefaultLimit is the page size the service applies by default.
	DefaultLimit = 20

	// FilterPlaceholder marks where a filter value is substituted.
	FilterPlaceholder = "{}"

	// DescendingPrefix precedes the sort field for descending order.
	DescendingPrefix = "-"
)

// Query parameter names.
const (
	ParamSort  = "sort"
	ParamSkip  = "skip"
	ParamLimit = "limit"
	ParamQuery = "q"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// JSONIndent is the indentation used for pretty JSON output.
	JSONIndent = "  "

	// TimeDisplayFormat is the layout used when printing timestamps.
	TimeDisplayFormat = "2006-01-02 15:04:05"

	// MaxPreviewLength bounds the record preview column in tables.
	MaxPreviewLength = 60
)
