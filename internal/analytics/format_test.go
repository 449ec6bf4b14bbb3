package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeThumbsUp(t *testing.T) {
	tests := []struct {
		name      string
		records   []RatingRecord
		minSample int
		want      string
	}{
		{
			name: "no ratings",
			want: "No rated answers yet",
		},
		{
			name:    "below default minimum shows count",
			records: []RatingRecord{{Rating: RatingUp}},
			want:    "1 of 1 rated answer marked helpful",
		},
		{
			name:    "at minimum shows percent",
			records: []RatingRecord{{Rating: RatingUp}, {Rating: RatingDown}},
			want:    "50% thumbs up across 2 rated answers",
		},
		{
			name:      "custom minimum",
			records:   []RatingRecord{{Rating: RatingUp}, {Rating: RatingDown}, {Rating: RatingUp}},
			minSample: 5,
			want:      "2 of 3 rated answers marked helpful",
		},
		{
			name:      "non-positive minimum uses default",
			records:   []RatingRecord{{Rating: RatingUp}, {Rating: RatingUp}},
			minSample: -1,
			want:      "100% thumbs up across 2 rated answers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeThumbsUp(Compute(tt.records), tt.minSample))
		})
	}
}

func TestDescribeSourceAccuracy(t *testing.T) {
	no := false

	assert.Equal(t, "No source suggestions evaluated yet", DescribeSourceAccuracy(Compute(nil), 0))

	one := []RatingRecord{{SourceProvided: &no, FinalSource: "jira", SuggestedSource: "Jira"}}
	assert.Equal(t, "1 of 1 suggested source was correct", DescribeSourceAccuracy(Compute(one), 0))

	three := append(one,
		RatingRecord{SourceProvided: &no, FinalSource: "slack", SuggestedSource: "jira"},
		RatingRecord{SourceProvided: &no, FinalSource: "slack", SuggestedSource: "slack"},
	)
	assert.Equal(t, "Suggested source correct 67% of the time (3 evaluated)", DescribeSourceAccuracy(Compute(three), 0))
}
