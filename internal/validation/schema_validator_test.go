package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()

	schemaPath := filepath.Join(tmpDir, "test.schema.json")
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"bees": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaContent), 0o644))

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "default-hive", "bees": 3}`},
		{name: "valid without optional field", data: `{"name": "hive-2"}`},
		{name: "missing required field", data: `{"bees": 2}`, wantError: true, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "h", "bees": "three"}`, wantError: true, errorMsg: "bees"},
		{name: "constraint violation", data: `{"name": "h", "bees": -1}`, wantError: true, errorMsg: "bees"},
		{name: "invalid JSON", data: `{"name": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "data.json")
			require.NoError(t, os.WriteFile(dataPath, []byte(tt.data), 0o644))

			err := v.ValidateFile(dataPath, schemaPath)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchemaValidator_BuiltInSchemas(t *testing.T) {
	v := NewSchemaValidator()

	assert.True(t, v.HasSchema("hives"))
	assert.True(t, v.HasSchema("crop_catalog"))
	assert.False(t, v.HasSchema("nope"))

	t.Run("hives accepts a valid list", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`[{"id":"default-hive","beeCount":4,"health":"good"}]`), "hives")
		assert.NoError(t, err)
	})

	t.Run("hives rejects negative bees", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`[{"id":"default-hive","beeCount":-1}]`), "hives")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("affinity is bounded", func(t *testing.T) {
		assert.NoError(t, v.ValidateBytes([]byte(`{"baker":40}`), "merchant_affinity"))
		assert.Error(t, v.ValidateBytes([]byte(`{"baker":140}`), "merchant_affinity"))
	})

	t.Run("orders require a known type", func(t *testing.T) {
		doc := `[{"id":"o1","type":"barter","merchantId":"chef","createdAt":"x","expiresAt":"y",
			"status":"active","baseReward":10,"bonusPercentage":10,"totalReward":11}]`
		assert.Error(t, v.ValidateBytes([]byte(doc), "active_orders"))
	})

	t.Run("inventory honey is keyed by grade", func(t *testing.T) {
		assert.NoError(t, v.ValidateBytes([]byte(`{"coins":5,"honey":{"amber":3}}`), "inventory"))
		assert.Error(t, v.ValidateBytes([]byte(`{"coins":5,"honey":{"golden":3}}`), "inventory"))
	})

	t.Run("honey orders need a date and a grade", func(t *testing.T) {
		ok := `{"date":"2026-06-01","orders":[{"id":"honey-1","honeyType":"dark","bottles":2,"coinReward":50}],"fulfilled":{}}`
		assert.NoError(t, v.ValidateBytes([]byte(ok), "honey_orders"))
		bad := `{"date":"June 1","orders":[{"id":"honey-1","honeyType":"dark","bottles":0,"coinReward":50}]}`
		assert.Error(t, v.ValidateBytes([]byte(bad), "honey_orders"))
	})
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "does/not/exist.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
