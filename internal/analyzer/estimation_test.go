package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimation(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		title     string
		want      string
		wantFound bool
	}{
		{
			name:      "sprint points convert to hours",
			content:   "This effort is sized at 5 points overall.",
			want:      "5 sprint points (40 hours)",
			wantFound: true,
		},
		{
			name:      "story points phrasing wins over bare duration",
			content:   "Roughly 3 days of work, sized as 2 story points.",
			want:      "2 sprint points (16 hours)",
			wantFound: true,
		},
		{
			name:      "fractional points",
			content:   "Sized at 2.5 points.",
			want:      "2.5 sprint points (20 hours)",
			wantFound: true,
		},
		{
			name:      "labeled duration",
			content:   "Estimate: 3 days\nMore text follows.",
			want:      "3 days",
			wantFound: true,
		},
		{
			name:      "labeled duration beats earlier bare mention",
			content:   "Plan for 2 weeks of prep.\nEstimated time: 4 days",
			want:      "4 days",
			wantFound: true,
		},
		{
			name:      "generic number plus unit",
			content:   "The migration runs for 6 hours on average.",
			want:      "6 hours",
			wantFound: true,
		},
		{
			name:      "title bracket fallback",
			content:   "",
			title:     "Deploy [2h]",
			want:      "2h",
			wantFound: true,
		},
		{
			name:      "title bracket only used when content has nothing",
			content:   "Estimate: 1 week",
			title:     "Deploy [2h]",
			want:      "1 week",
			wantFound: true,
		},
		{
			name:    "no match anywhere",
			content: "A playbook without any effort hints.",
			title:   "Untitled",
		},
		{
			name:    "empty content and title",
			content: "",
			title:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Estimation(tt.content, tt.title)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimationCaseInsensitive(t *testing.T) {
	got, found := Estimation("ESTIMATE: 3 DAYS", "")
	assert.True(t, found)
	assert.Equal(t, "3 DAYS", got)
}
