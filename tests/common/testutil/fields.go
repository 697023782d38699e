//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Field sets key on the top-level map, or deletes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// DataField applies Field inside the "data" envelope.
func DataField(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		data, ok := m["data"].(map[string]any)
		if !ok {
			data = map[string]any{}
			m["data"] = data
		}
		Field(key, value)(data)
	}
}

// DtoMap round-trips a request DTO through JSON so tests can drop or retype
// fields the typed DTO cannot express, e.g. people sent as a string.
func DtoMap(t *testing.T, dto any, mutators ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mutate := range mutators {
		mutate(m)
	}
	return m
}
