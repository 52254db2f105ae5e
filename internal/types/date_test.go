package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want *Date
	}{
		{"2024-05", NewDate(2024, time.May, 1)},
		{"2024-05-17", NewDate(2024, time.May, 17)},
		{" 2024-05-17 ", NewDate(2024, time.May, 17)},
		{"2024-05-17T00:00:00Z", NewDate(2024, time.May, 17)},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.True(t, tt.want.Equal(got.Time), "got %v", got)
		})
	}

	_, err := ParseDate("May 2024")
	assert.Error(t, err)
}

func TestDate_Present(t *testing.T) {
	var nilDate *Date
	assert.False(t, nilDate.Present())
	assert.False(t, (&Date{}).Present())
	assert.True(t, NewDate(2020, time.January, 1).Present())
	assert.Nil(t, nilDate.Clone())
}

func TestDate_JSON(t *testing.T) {
	var got struct {
		A *Date `json:"a"`
		B *Date `json:"b"`
		C *Date `json:"c"`
		D *Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "2021-02", "b": "garbage", "c": null, "d": 12}`), &got))
	assert.Equal(t, 2021, got.A.Year())
	assert.False(t, got.B.Present(), "malformed dates decode as absent")
	assert.Nil(t, got.C)
	assert.False(t, got.D.Present())

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "2021-02-01", "b": null, "c": null, "d": null}`, string(data))
}
