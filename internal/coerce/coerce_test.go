package coerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr error
	}{
		{name: "integer", raw: `500`, want: 500},
		{name: "float", raw: `12.75`, want: 12.75},
		{name: "negative", raw: `-3`, want: -3},
		{name: "numeric string", raw: `"100"`, want: 100},
		{name: "padded string", raw: `"  8\n"`, want: 8},
		{name: "exponent string", raw: `"1e3"`, want: 1000},
		{name: "leading dot", raw: `".5"`, want: 0.5},
		{name: "trailing dot", raw: `"5."`, want: 5},
		{name: "signed string", raw: `"+7"`, want: 7},
		{name: "empty string", raw: `""`, want: 0},
		{name: "blank string", raw: `"   "`, want: 0},
		{name: "null", raw: `null`, want: 0},
		{name: "true", raw: `true`, want: 1},
		{name: "false", raw: `false`, want: 0},
		{name: "hex", raw: `"0x1F"`, want: 31},
		{name: "octal", raw: `"0o17"`, want: 15},
		{name: "binary", raw: `"0b101"`, want: 5},
		{name: "empty array", raw: `[]`, want: 0},
		{name: "single element array", raw: `["42"]`, want: 42},
		{name: "array with null", raw: `[null]`, want: 0},
		{name: "nested single array", raw: `[[6]]`, want: 6},
		{name: "letters", raw: `"abc"`, wantErr: ErrNaN},
		{name: "number with suffix", raw: `"12px"`, wantErr: ErrNaN},
		{name: "negative hex", raw: `"-0x10"`, wantErr: ErrNaN},
		{name: "infinity string", raw: `"Infinity"`, wantErr: ErrNaN},
		{name: "overflow", raw: `1e400`, wantErr: ErrNaN},
		{name: "object", raw: `{"a":1}`, wantErr: ErrNaN},
		{name: "two element array", raw: `[1,2]`, wantErr: ErrNaN},
		{name: "array with bool", raw: `[true]`, wantErr: ErrNaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Number(json.RawMessage(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumber_MalformedJSON(t *testing.T) {
	_, err := Number(json.RawMessage(`{`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNaN)
}
