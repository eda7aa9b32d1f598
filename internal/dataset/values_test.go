package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 2.5, 2.5, true},
		{"float32", float32(1.5), 1.5, true},
		{"int", 7, 7, true},
		{"int64", int64(-3), -3, true},
		{"uint8", uint8(255), 255, true},
		{"string", "2.5", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2023, 4, 5, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "north", "north"},
		{"bool", true, "true"},
		{"whole float", 25.0, "25"},
		{"fractional float", 2.5, "2.5"},
		{"time", ts, "2023-04-05T12:30:00Z"},
		{"int fallback", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestValueSize(t *testing.T) {
	assert.Equal(t, 8, ValueSize(nil))
	assert.Equal(t, 8, ValueSize(2.5))
	assert.Equal(t, 1, ValueSize(true))
	assert.Equal(t, 16+5, ValueSize("north"))
	assert.Equal(t, 24, ValueSize(time.Now()))
}
