package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credstore/internal/domain/types"
)

func TestCredentials_SetRecordAndRecord(t *testing.T) {
	creds := types.Credentials{}
	rec := types.Record{PasswordHash: "ab", Email: "a@x.com", LastModified: "t", IsAdmin: true}

	require.NoError(t, creds.SetRecord("alice", rec))

	got, ok, err := creds.Record("alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, rec, got)

	_, ok, err = creds.Record("bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentials_RecordWrongType(t *testing.T) {
	creds := types.Credentials{"carol": json.RawMessage(`{"isAdmin": "true"}`)}

	_, ok, err := creds.Record("carol")
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestCredentials_SetFieldsKeepsOthers(t *testing.T) {
	creds := types.Credentials{
		"bob": json.RawMessage(`{"password": "old", "email": "b@x.com", "role": "editor"}`),
	}

	require.NoError(t, creds.SetFields("bob", map[string]any{"password": "new"}))

	var obj map[string]any
	require.NoError(t, json.Unmarshal(creds["bob"], &obj))
	assert.Equal(t, map[string]any{"password": "new", "email": "b@x.com", "role": "editor"}, obj)
}

func TestCredentials_SetFieldsOnNonObject(t *testing.T) {
	creds := types.Credentials{"dave": json.RawMessage(`5`)}
	assert.Error(t, creds.SetFields("dave", map[string]any{"password": "x"}))
}
