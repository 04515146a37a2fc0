package jsonbox

import (
	"encoding/json"
	"fmt"
)

// The service returns records as flat JSON objects where business fields and
// reserved metadata fields live side by side. The same bytes are therefore
// decoded twice, once into the caller's type and once into Meta, each pass
// ignoring the fields it does not know.

// EncodePayload serializes a payload for a create or update request.
func EncodePayload(data any) ([]byte, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, &DecodeError{Reason: ReasonRequest, Err: err}
	}

	return body, nil
}

// DecodeRecord splits a single JSON object into payload and metadata.
func DecodeRecord[T any](body []byte) (Record[T], error) {
	var record Record[T]

	err := json.Unmarshal(body, &record.Data)
	if err != nil {
		return Record[T]{}, &DecodeError{Reason: ReasonPayload, Err: err}
	}

	err = json.Unmarshal(body, &record.Meta)
	if err != nil {
		return Record[T]{}, &DecodeError{Reason: ReasonMeta, Err: err}
	}

	return record, nil
}

// DecodeRecords splits a JSON array into payloads and metadata and zips them
// by position.
func DecodeRecords[T any](body []byte) ([]Record[T], error) {
	var data []T

	err := json.Unmarshal(body, &data)
	if err != nil {
		return nil, &DecodeError{Reason: ReasonPayload, Err: err}
	}

	var metas []Meta

	err = json.Unmarshal(body, &metas)
	if err != nil {
		return nil, &DecodeError{Reason: ReasonMeta, Err: err}
	}

	if len(data) != len(metas) {
		return nil, &DecodeError{
			Reason: ReasonMeta,
			Err:    fmt.Errorf("%w: %d payloads, %d metadata", ErrLengthMismatch, len(data), len(metas)),
		}
	}

	records := make([]Record[T], len(data))
	for i := range data {
		records[i] = Record[T]{Data: data[i], Meta: metas[i]}
	}

	return records, nil
}

// DecodeErrorResponse turns a non-2xx response into a *GeneralError. When the
// body is not a {"message": "..."} object the decode failure is returned
// instead, so nothing is silently dropped.
func DecodeErrorResponse(code int, body []byte) error {
	var payload struct {
		Message *string `json:"message"`
	}

	err := json.Unmarshal(body, &payload)
	if err != nil {
		return &DecodeError{Reason: ReasonErrorBody, Code: code, Err: err}
	}

	if payload.Message == nil {
		return &DecodeError{Reason: ReasonErrorBody, Code: code, Err: ErrMissingMessage}
	}

	return &GeneralError{Code: code, Message: *payload.Message}
}
