package dataset

// Series is one television show with its aggregate site statistics.
type Series struct {
	Code        string
	Title       string
	Rating      float64
	RatingCount int64
	Rank        int64
	RatingMean  float64
}

// Episode is one rated episode of a series.
type Episode struct {
	Code    string
	Season  int64
	Episode int64
	Rating  float64
}

// SeasonSummary holds per-season aggregates for a series.
type SeasonSummary struct {
	Code             string
	Season           int64
	Title            string
	RatingMean       float64
	NumberOfEpisodes int64
}

// Dataset is the canonical form of the three inputs, ready for the store.
type Dataset struct {
	Series   []Series
	Episodes []Episode
	Seasons  []SeasonSummary
}

// Files names the three CSV inputs.
type Files struct {
	Episodes string
	Series   string
	Seasons  string
}
