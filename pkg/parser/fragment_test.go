package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFragment(t *testing.T) {
	tests := []struct {
		in   string
		want fragment
	}{
		{
			in:   "BCB 105 - LT1 / DR OTIENO",
			want: fragment{codeText: "BCB 105", code: "BCB 105", venue: "LT1", lecturer: "DR OTIENO"},
		},
		{
			in:   "BIT 113/BCS 110 - ICT1 / LECTURER",
			want: fragment{codeText: "BIT 113/BCS 110", code: "BIT 113", venue: "ICT1", lecturer: "LECTURER"},
		},
		{
			in:   "BCB 105 - LT2 - DR OTIENO",
			want: fragment{codeText: "BCB 105", code: "BCB 105", venue: "LT2", lecturer: "DR OTIENO"},
		},
		{
			in:   "BCB-105 LT2 DR X",
			want: fragment{codeText: "BCB-105", code: "BCB 105", venue: "LT2", lecturer: "DR X"},
		},
		{
			in:   "BCB105-LT2",
			want: fragment{codeText: "BCB105", code: "BCB 105", venue: "LT2"},
		},
		{
			in:   "BCB 105 LT2 / DR X",
			want: fragment{codeText: "BCB 105", code: "BCB 105", venue: "LT2", lecturer: "DR X"},
		},
		{
			in:   "BIT 113/BCS 110",
			want: fragment{codeText: "BIT 113/BCS 110", code: "BIT 113"},
		},
		{
			in:   "CS1A LT2 DR MOSES",
			want: fragment{codeText: "CS1A", code: "CS1A", venue: "LT2", lecturer: "DR MOSES"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFragment(tt.in))
		})
	}
}

func TestFragmentEntriesCodeAfterVenue(t *testing.T) {
	entries := fragmentEntries("LT1 - BCB 105", testParams)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "BCB 105", entries[0].UnitCode)
		assert.Equal(t, "LT1", entries[0].Venue)
	}

	entries = fragmentEntries("BCB 105 - LT1", testParams)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "LT1", entries[0].Venue)
	}
}

func TestLooksLikeCode(t *testing.T) {
	assert.True(t, looksLikeCode("CS1A"))
	assert.False(t, looksLikeCode("LUNCH"))
	assert.False(t, looksLikeCode("1"))
	assert.False(t, looksLikeCode("2026"))
}
