package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHours(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantFound bool
	}{
		{
			name:      "sprint points convert",
			content:   "Sized at 5 points.",
			want:      "40 hours",
			wantFound: true,
		},
		{
			name:      "points win over explicit hours",
			content:   "Takes 3 hours of setup, sized at 2 story points.",
			want:      "16 hours",
			wantFound: true,
		},
		{
			name:      "direct hours",
			content:   "The whole procedure takes 12 hours.",
			want:      "12 hours",
			wantFound: true,
		},
		{
			name:      "hrs abbreviation",
			content:   "Roughly 3 hrs including review.",
			want:      "3 hours",
			wantFound: true,
		},
		{
			name:      "single letter unit",
			content:   "Budget 4h for this.",
			want:      "4 hours",
			wantFound: true,
		},
		{
			name:      "labeled duration line",
			content:   "Duration: 6\nSteps follow.",
			want:      "6 hours",
			wantFound: true,
		},
		{
			name:    "days do not count as hours",
			content: "Estimate: 3 days",
		},
		{
			name:    "empty content",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Hours(tt.content)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
