package analytics

import "fmt"

// sentence describing the thumbs-up rate; small samples show the raw count
func DescribeThumbsUp(s Summary, minSample int) string {
	minSample = effectiveMinSample(minSample)

	if s.RatedCount == 0 || s.ThumbsUpPercent == nil {
		return "No rated answers yet"
	}

	if s.RatedCount < minSample {
		return fmt.Sprintf("%d of %d rated %s marked helpful", s.Up, s.RatedCount, plural(s.RatedCount, "answer", "answers"))
	}

	return fmt.Sprintf("%d%% thumbs up across %d rated %s", *s.ThumbsUpPercent, s.RatedCount, plural(s.RatedCount, "answer", "answers"))
}

// sentence describing how often the suggested source matched the final one
func DescribeSourceAccuracy(s Summary, minSample int) string {
	minSample = effectiveMinSample(minSample)

	if s.SourceEvalCount == 0 || s.CorrectSourcePercent == nil {
		return "No source suggestions evaluated yet"
	}

	if s.SourceEvalCount < minSample {
		return fmt.Sprintf("%d of %d suggested %s correct", s.CorrectSourceCount, s.SourceEvalCount, plural(s.SourceEvalCount, "source was", "sources were"))
	}

	return fmt.Sprintf("Suggested source correct %d%% of the time (%d evaluated)", *s.CorrectSourcePercent, s.SourceEvalCount)
}

func effectiveMinSample(minSample int) int {
	if minSample <= 0 {
		return DefaultMinSample
	}

	return minSample
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
