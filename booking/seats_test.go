package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSeatsCanonicalForm(t *testing.T) {
	encoded, err := EncodeSeats([]string{" L3 ", "L4", ""})
	require.NoError(t, err)
	assert.Equal(t, `["L3","L4"]`, encoded)
}

func TestEncodeSeatsRejectsEmptySelection(t *testing.T) {
	_, err := EncodeSeats(nil)
	assert.True(t, IsValidation(err))

	_, err = EncodeSeats([]string{"", "  "})
	assert.True(t, IsValidation(err))
}

func TestEncodeSeatsRejectsDuplicates(t *testing.T) {
	_, err := EncodeSeats([]string{"L3", " L3"})
	assert.True(t, IsValidation(err))
}

func TestDecodeSeatsRoundTrip(t *testing.T) {
	seats := []string{"A1", "B7", "L12"}
	encoded, err := EncodeSeats(seats)
	require.NoError(t, err)
	assert.Equal(t, seats, DecodeSeats(encoded))
}

func TestDecodeSeatsLegacyForms(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["L3","L4"]`, []string{"L3", "L4"}},
		{"comma joined", "L3, L4", []string{"L3", "L4"}},
		{"bare value", "L3", []string{"L3"}},
		{"stray brackets and quotes", `["L3", L4]`, []string{"L3", "L4"}},
		{"mixed type array", `[12, "L4"]`, []string{"12", "L4"}},
		{"empty string", "", nil},
		{"empty array", "[]", nil},
		{"whitespace", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeSeats(tc.raw))
		})
	}
}

func TestDecodeSeatsNeverPanicsOnGarbage(t *testing.T) {
	for _, raw := range []string{"{", `{"a":1}`, "[,,,]", `""`, "null"} {
		assert.NotPanics(t, func() { DecodeSeats(raw) }, "raw=%q", raw)
	}
}

func TestUnionSeats(t *testing.T) {
	union := UnionSeats([]string{`["L3","L4"]`, "L4, L5", "", "L3"})
	assert.Equal(t, []string{"L3", "L4", "L5"}, union)
}

func TestNormalizeSeatInput(t *testing.T) {
	assert.Nil(t, NormalizeSeatInput(nil))
	assert.Equal(t, []string{"L3", "L4"}, NormalizeSeatInput([]string{"L3", " L4 "}))
	assert.Equal(t, []string{"L3", "12"}, NormalizeSeatInput([]any{"L3", float64(12)}))
	assert.Equal(t, []string{"L3", "L4"}, NormalizeSeatInput(`["L3","L4"]`))
	assert.Equal(t, []string{"L3"}, NormalizeSeatInput("L3"))
	assert.Equal(t, []string{"7"}, NormalizeSeatInput(float64(7)))
}

func TestJoinSeats(t *testing.T) {
	assert.Equal(t, "L3, L4", JoinSeats([]string{"L3", "L4"}))
	assert.Equal(t, "", JoinSeats(nil))
}
