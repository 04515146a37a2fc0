package jsonbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kuy/jsonbox-go/internal/constants"
)

// Meta holds the fields the service attaches to every record.
// It is never sent on create or update.
type Meta struct {
	ID        string `json:"_id"        yaml:"_id"`
	CreatedOn string `json:"_createdOn" yaml:"_createdOn"`
	UpdatedOn string `json:"_updatedOn" yaml:"_updatedOn"`
}

// UnmarshalJSON decodes the reserved fields of a record, ignoring everything
// else. _id and _createdOn are required; _updatedOn falls back to _createdOn.
func (m *Meta) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        *string `json:"_id"`
		CreatedOn *string `json:"_createdOn"`
		UpdatedOn *string `json:"_updatedOn"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	if raw.ID == nil {
		return fmt.Errorf("%w: %s", ErrMissingMetaField, constants.FieldID)
	}

	if raw.CreatedOn == nil {
		return fmt.Errorf("%w: %s", ErrMissingMetaField, constants.FieldCreatedOn)
	}

	m.ID = *raw.ID
	m.CreatedOn = *raw.CreatedOn
	m.UpdatedOn = m.CreatedOn

	if raw.UpdatedOn != nil && *raw.UpdatedOn != "" {
		m.UpdatedOn = *raw.UpdatedOn
	}

	return nil
}

// CreatedAt parses CreatedOn.
func (m Meta) CreatedAt() (time.Time, error) {
	return parseTimestamp(m.CreatedOn)
}

// UpdatedAt parses UpdatedOn.
func (m Meta) UpdatedAt() (time.Time, error) {
	return parseTimestamp(m.UpdatedOn)
}

// Modified reports whether the record has been updated since it was created.
func (m Meta) Modified() bool {
	return m.UpdatedOn != m.CreatedOn
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", value, err)
	}

	return t, nil
}

// Record pairs a caller-defined payload with the metadata the service stored
// alongside it.
type Record[T any] struct {
	Data T    `json:"data" yaml:"data"`
	Meta Meta `json:"meta" yaml:"meta"`
}
