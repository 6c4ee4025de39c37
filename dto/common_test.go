package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		json  string
		set   bool
		value int
	}{
		{"number", `5`, true, 5},
		{"numeric string", `"12"`, true, 12},
		{"float truncates", `3.9`, true, 3},
		{"null stays unset", `null`, false, 0},
		{"empty string stays unset", `""`, false, 0},
		{"garbage stays unset", `"three"`, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			require.NoError(t, json.Unmarshal([]byte(tc.json), &f))
			assert.Equal(t, tc.set, f.Set)
			assert.Equal(t, tc.value, f.Value)
		})
	}
}

func TestFlexIntOr(t *testing.T) {
	assert.Equal(t, 7, FlexInt{}.Or(7))
	assert.Equal(t, 3, IntValue(3).Or(7))
	// Zero is a real value, not "unset".
	assert.Equal(t, 0, IntValue(0).Or(7))
}

func TestStringListUnmarshal(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["villa","suite"]`), &l))
	assert.Equal(t, StringList{"villa", "suite"}, l)

	require.NoError(t, json.Unmarshal([]byte(`"villa, suite"`), &l))
	assert.Equal(t, StringList{"villa", " suite"}, l)

	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestFlexIntRoundTripsInsidePayloads(t *testing.T) {
	var req PropertyRequest
	payload := `{"name":"x","price":"4500","bedrooms":2,"guests":null}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, 4500, req.Price.Or(0))
	assert.Equal(t, 2, req.Bedrooms.Or(1))
	assert.False(t, req.Guests.Set)
}
