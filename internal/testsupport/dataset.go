package testsupport

import "seriesreport/internal/dataset"

// SampleDataset returns a small catalog that gives every report query a
// distinct answer:
//
//	A Alpha   most popular (max count, min rank); low episode in s1 of two seasons
//	B Bravo   low series rating and mean; low episodes in a single season
//	C Charlie least popular (min count, max rank); low rating, three seasons
//	D Delta   no episodes or seasons
func SampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Series: []dataset.Series{
			{Code: "A", Title: "Alpha", Rating: 9.0, RatingCount: 5000, Rank: 1, RatingMean: 8.0},
			{Code: "B", Title: "Bravo", Rating: 4.5, RatingCount: 300, Rank: 5, RatingMean: 4.8},
			{Code: "C", Title: "Charlie", Rating: 3.9, RatingCount: 50, Rank: 9, RatingMean: 4.9},
			{Code: "D", Title: "Delta", Rating: 7.0, RatingCount: 800, Rank: 3, RatingMean: 7.5},
		},
		Episodes: []dataset.Episode{
			{Code: "A", Season: 1, Episode: 1, Rating: 9.0},
			{Code: "A", Season: 1, Episode: 2, Rating: 4.5},
			{Code: "A", Season: 2, Episode: 1, Rating: 8.0},
			{Code: "B", Season: 1, Episode: 1, Rating: 3.0},
			{Code: "B", Season: 1, Episode: 2, Rating: 5.0},
			{Code: "C", Season: 1, Episode: 1, Rating: 6.0},
			{Code: "C", Season: 2, Episode: 1, Rating: 6.5},
			{Code: "C", Season: 3, Episode: 1, Rating: 7.0},
		},
		Seasons: []dataset.SeasonSummary{
			{Code: "A", Season: 1, Title: "Alpha", RatingMean: 6.75, NumberOfEpisodes: 2},
			{Code: "A", Season: 2, Title: "Alpha", RatingMean: 8.0, NumberOfEpisodes: 1},
			{Code: "B", Season: 1, Title: "Bravo", RatingMean: 4.0, NumberOfEpisodes: 2},
			{Code: "C", Season: 1, Title: "Charlie", RatingMean: 6.0, NumberOfEpisodes: 1},
			{Code: "C", Season: 2, Title: "Charlie", RatingMean: 6.5, NumberOfEpisodes: 1},
			{Code: "C", Season: 3, Title: "Charlie", RatingMean: 7.0, NumberOfEpisodes: 1},
		},
	}
}

// SingleSeriesDataset is one series with a low episode in season 1 and a
// good episode in season 2.
func SingleSeriesDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Series: []dataset.Series{
			{Code: "S1", Title: "Foo", Rating: 4.0, RatingCount: 100, Rank: 1, RatingMean: 3.5},
		},
		Episodes: []dataset.Episode{
			{Code: "S1", Season: 1, Episode: 1, Rating: 4.0},
			{Code: "S1", Season: 2, Episode: 1, Rating: 6.0},
		},
	}
}
