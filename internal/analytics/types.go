package analytics

// user feedback on a single answer
type Rating string

const (
	RatingUp    Rating = "up"
	RatingDown  Rating = "down"
	RatingUnset Rating = ""
)

// smallest sample for which a percentage is shown instead of a raw count
const DefaultMinSample = 2

// one rating document as stored by the backend
type RatingRecord struct {
	Rating Rating `json:"rating"`

	// nil when the field was absent or not a boolean
	SourceProvided *bool `json:"source_provided,omitempty"`

	FinalSource     string `json:"final_source,omitempty"`
	SuggestedSource string `json:"suggested_source,omitempty"`
}

// derived statistics, recomputed from scratch for every input
type Summary struct {
	Up           int `json:"up"`
	Down         int `json:"down"`
	RatedCount   int `json:"rated_count"`
	MessageCount int `json:"message_count"`

	ThumbsUpRate    *float64 `json:"thumbs_up_rate"`
	ThumbsUpPercent *int     `json:"thumbs_up_percent"`

	SourceEvalCount      int      `json:"source_eval_count"`
	CorrectSourceCount   int      `json:"correct_source_count"`
	CorrectSourceRate    *float64 `json:"correct_source_rate"`
	CorrectSourcePercent *int     `json:"correct_source_percent"`
}
