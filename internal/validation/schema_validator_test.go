package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_FallbackMarkets(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid",
			data: `{"markets":[{"title":"Will it snow in Paris?","category":"Weather","close_in_hours":72,"volume":100,"yes_price":0.3}]}`,
		},
		{
			name: "optional fields omitted",
			data: `{"markets":[{"title":"Will it snow?","close_in_hours":1,"yes_price":0.5}]}`,
		},
		{
			name:    "missing markets",
			data:    `{}`,
			wantErr: "required",
		},
		{
			name:    "empty list",
			data:    `{"markets":[]}`,
			wantErr: "minItems",
		},
		{
			name:    "price out of range",
			data:    `{"markets":[{"title":"x","close_in_hours":1,"yes_price":1}]}`,
			wantErr: "/markets/0/yes_price",
		},
		{
			name:    "unknown field",
			data:    `{"markets":[{"title":"x","close_in_hours":1,"yes_price":0.5,"ticker":"X"}]}`,
			wantErr: "additionalProperties",
		},
		{
			name:    "not json",
			data:    `{"markets":`,
			wantErr: "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaFallbackMarkets)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	body := `{"markets":[{"title":"Will it snow?","close_in_hours":24,"yes_price":0.5}]}`
	require.NoError(t, os.WriteFile(good, []byte(body), 0o644))

	data, err := v.ValidateFile(good, SchemaFallbackMarkets)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(data))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"markets":[]}`), 0o644))
	_, err = v.ValidateFile(bad, SchemaFallbackMarkets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")

	_, err = v.ValidateFile(filepath.Join(dir, "missing.json"), SchemaFallbackMarkets)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSchemaIsCompiledOnce(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	data := []byte(`{"markets":[{"title":"x","close_in_hours":1,"yes_price":0.5}]}`)

	require.NoError(t, v.ValidateBytes(data, SchemaFallbackMarkets))
	first := v.schemas[SchemaFallbackMarkets]
	require.NoError(t, v.ValidateBytes(data, SchemaFallbackMarkets))

	assert.Len(t, v.schemas, 1)
	assert.Same(t, first, v.schemas[SchemaFallbackMarkets])
}
