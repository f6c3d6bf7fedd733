package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLender(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{"capital capture", "MERCHANT CAPITAL GROUP WDRL", "MERCHANT CAPITAL GROUP WDRL"},
		{"financial capture", "APEX FINANCIAL DAILY DR", "APEX FINANCIAL DAILY DR"},
		{"funding capture", "FUNDING CIRCLE PMT 8810", "FUNDING CIRCLE PMT 8810"},
		{"advance capture", "RAPID ADVANCE LLC", "RAPID ADVANCE LLC"},
		{"orig co name label", "Orig CO Name: FORWARD FUNDING", "Orig CO Name: FORWARD FUNDING"},
		{"fallback first three words", "ONDECK DAILY ACH PMT 0094 STORE 12", "ONDECK DAILY ACH"},
		{"fallback short description", "KABBAGE PMT", "KABBAGE PMT"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractLender(tc.desc)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestExtractLender_CaptureOrder(t *testing.T) {
	// CAPITAL is tried before ADVANCE, so a description with both yields
	// the CAPITAL capture (here the full string either way, but the order
	// is what the first-match contract promises).
	got := ExtractLender("BUSINESS ADVANCE CAPITAL CO")
	require.NotNil(t, got)
	assert.Equal(t, "BUSINESS ADVANCE CAPITAL CO", *got)
}

func TestExtractLender_Empty(t *testing.T) {
	assert.Nil(t, ExtractLender(""))
}
