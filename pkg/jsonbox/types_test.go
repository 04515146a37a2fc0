package jsonbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

type greeting struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func TestMeta_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected jsonbox.Meta
		wantErr  bool
	}{
		{
			name: "updated defaults to created",
			body: `{"_id":"1","_createdOn":"2019-09-22T12:24:37.513Z","name":"ignored"}`,
			expected: jsonbox.Meta{
				ID:        "1",
				CreatedOn: "2019-09-22T12:24:37.513Z",
				UpdatedOn: "2019-09-22T12:24:37.513Z",
			},
		},
		{
			name: "empty updated defaults to created",
			body: `{"_id":"1","_createdOn":"2019-09-22T12:24:37.513Z","_updatedOn":""}`,
			expected: jsonbox.Meta{
				ID:        "1",
				CreatedOn: "2019-09-22T12:24:37.513Z",
				UpdatedOn: "2019-09-22T12:24:37.513Z",
			},
		},
		{
			name: "updated present",
			body: `{"_id":"1","_createdOn":"2019-09-22T12:24:37.513Z","_updatedOn":"2019-09-22T12:25:52.114Z"}`,
			expected: jsonbox.Meta{
				ID:        "1",
				CreatedOn: "2019-09-22T12:24:37.513Z",
				UpdatedOn: "2019-09-22T12:25:52.114Z",
			},
		},
		{name: "missing id", body: `{"_createdOn":"2019-09-22T12:24:37.513Z"}`, wantErr: true},
		{name: "missing created", body: `{"_id":"1"}`, wantErr: true},
		{name: "not an object", body: `"nope"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var meta jsonbox.Meta

			err := json.Unmarshal([]byte(tt.body), &meta)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, meta)
		})
	}
}

func TestMeta_Timestamps(t *testing.T) {
	t.Parallel()

	meta := jsonbox.Meta{
		ID:        "1",
		CreatedOn: "2019-09-22T12:24:37.513Z",
		UpdatedOn: "2019-09-22T12:25:52.114Z",
	}

	created, err := meta.CreatedAt()
	require.NoError(t, err)
	assert.True(t, created.Equal(time.Date(2019, 9, 22, 12, 24, 37, 513000000, time.UTC)))

	updated, err := meta.UpdatedAt()
	require.NoError(t, err)
	assert.True(t, updated.After(created))
	assert.True(t, meta.Modified())

	_, err = jsonbox.Meta{CreatedOn: "yesterday"}.CreatedAt()
	require.Error(t, err)
}

func TestDecodeRecord(t *testing.T) {
	t.Parallel()

	body := []byte(`{"_id":"11111111111111111111","name":"kuy","message":"hi","_createdOn":"2019-09-22T12:24:37.513Z"}`)

	record, err := jsonbox.DecodeRecord[greeting](body)
	require.NoError(t, err)
	assert.Equal(t, greeting{Name: "kuy", Message: "hi"}, record.Data)
	assert.Equal(t, "11111111111111111111", record.Meta.ID)
	assert.Equal(t, record.Meta.CreatedOn, record.Meta.UpdatedOn)
}

func TestDecodeRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	original := greeting{Name: "kuy", Message: "hello, box"}

	body, err := jsonbox.EncodePayload(original)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "_id")

	// Simulate the service adding its reserved fields to the stored object.
	var stored map[string]any
	require.NoError(t, json.Unmarshal(body, &stored))

	stored["_id"] = "5d876d852a780700177c0557"
	stored["_createdOn"] = "2019-09-22T12:24:37.513Z"

	response, err := json.Marshal(stored)
	require.NoError(t, err)

	record, err := jsonbox.DecodeRecord[greeting](response)
	require.NoError(t, err)
	assert.Equal(t, original, record.Data)
	assert.NotEmpty(t, record.Meta.ID)
	assert.Equal(t, record.Meta.CreatedOn, record.Meta.UpdatedOn)
}

func TestDecodeRecords(t *testing.T) {
	t.Parallel()

	t.Run("zips by position", func(t *testing.T) {
		t.Parallel()

		body := []byte(`[{"_id":"a","name":"first","_createdOn":"2019-09-23T12:24:37.513Z"},` +
			`{"_id":"b","name":"last","_createdOn":"2019-09-22T12:24:37.513Z"}]`)

		records, err := jsonbox.DecodeRecords[greeting](body)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "first", records[0].Data.Name)
		assert.Equal(t, "a", records[0].Meta.ID)
		assert.Equal(t, "last", records[1].Data.Name)
		assert.Equal(t, "b", records[1].Meta.ID)
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()

		records, err := jsonbox.DecodeRecords[greeting]([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("object instead of array", func(t *testing.T) {
		t.Parallel()

		_, err := jsonbox.DecodeRecords[greeting]([]byte(`{"_id":"a","_createdOn":"x"}`))
		require.Error(t, err)

		decErr := &jsonbox.DecodeError{}
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, jsonbox.ReasonPayload, decErr.Reason)
	})

	t.Run("element without metadata", func(t *testing.T) {
		t.Parallel()

		_, err := jsonbox.DecodeRecords[greeting]([]byte(`[{"name":"orphan"}]`))
		require.Error(t, err)

		decErr := &jsonbox.DecodeError{}
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, jsonbox.ReasonMeta, decErr.Reason)
		require.ErrorIs(t, err, jsonbox.ErrMissingMetaField)
	})
}

func TestDecodeErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("message", func(t *testing.T) {
		t.Parallel()

		err := jsonbox.DecodeErrorResponse(400, []byte(`{"message":"Invalid record Id"}`))

		genErr := &jsonbox.GeneralError{}
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, 400, genErr.Code)
		assert.Equal(t, "Invalid record Id", genErr.Message)
		assert.Equal(t, "general: [400] Invalid record Id", err.Error())
	})

	t.Run("missing message", func(t *testing.T) {
		t.Parallel()

		err := jsonbox.DecodeErrorResponse(500, []byte(`{"error":"boom"}`))

		decErr := &jsonbox.DecodeError{}
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, jsonbox.ReasonErrorBody, decErr.Reason)
		assert.Equal(t, 500, decErr.Code)
		require.ErrorIs(t, err, jsonbox.ErrMissingMessage)
	})

	t.Run("not json", func(t *testing.T) {
		t.Parallel()

		err := jsonbox.DecodeErrorResponse(502, []byte(`Bad Gateway`))
		assert.True(t, jsonbox.IsDecode(err))
		assert.False(t, jsonbox.IsGeneral(err))
	})
}
