package queries

// multiSeasonCodes selects series with episodes in more than one season.
const multiSeasonCodes = `SELECT code
    FROM episode_ratings
    GROUP BY code
    HAVING COUNT(DISTINCT season) > 1`

var all = []Query{
	{
		ID:    "episode-low-detail",
		Title: "1-OPTION 1: Table with Ratings-Shows with ANY episode rated ≤ 5",
		SQL: `SELECT DISTINCT s.code, s.title, e.season, e.episode, e.rating
FROM episode_ratings e
JOIN series_summary s ON e.code = s.code
WHERE e.rating <= 5
ORDER BY s.code, e.season, e.episode`,
	},
	{
		ID:    "episode-low",
		Title: "1-OPTION 1: Table without Ratings-Shows with ANY episode rated ≤ 5",
		SQL: `SELECT DISTINCT s.code, s.title
FROM episode_ratings e
JOIN series_summary s ON e.code = s.code
WHERE e.rating <= 5
ORDER BY s.code`,
	},
	{
		// Season count spans every episode of the series, not only the low ones.
		ID:    "episode-low-multi-season",
		Title: "1-a.Shows with episode ≤ 5 AND more than 1 season",
		SQL: `SELECT s.code, s.title, MIN(e.rating) AS lowest_rating
FROM episode_ratings e
JOIN series_summary s ON e.code = s.code
GROUP BY s.code
HAVING MIN(e.rating) <= 5 AND COUNT(DISTINCT e.season) > 1
ORDER BY s.code`,
	},
	{
		ID:    "series-low",
		Title: "1-OPTION 2: Shows with SERIES rating ≤ 5",
		SQL: `SELECT code, title, rating
FROM series_summary
WHERE rating <= 5
ORDER BY code`,
	},
	{
		ID:    "series-low-multi-season",
		Title: "1-b.Shows with series rating ≤ 5 AND more than 1 season",
		SQL: `SELECT s.code, s.title, s.rating
FROM series_summary s
WHERE s.rating <= 5
  AND s.code IN (` + multiSeasonCodes + `)
ORDER BY s.code`,
	},
	{
		ID:    "mean-low",
		Title: "1-OPTION 3: Shows with average episode rating (rating_mean) ≤ 5",
		SQL: `SELECT code, title, rating_mean
FROM series_summary
WHERE rating_mean <= 5
ORDER BY code`,
	},
	{
		ID:    "mean-low-multi-season",
		Title: "1-c.Shows with rating_mean ≤ 5 AND more than 1 season",
		SQL: `SELECT s.code, s.title, s.rating_mean
FROM series_summary s
WHERE s.rating_mean <= 5
  AND s.code IN (` + multiSeasonCodes + `)
ORDER BY s.code`,
	},
	{
		ID:    "most-popular",
		Title: "2-i) Show with HIGHEST rating count & the LOWEST rank",
		SQL: `SELECT code, title, rating_count, rank
FROM series_summary
WHERE rating_count = (SELECT MAX(rating_count) FROM series_summary)
  AND rank = (SELECT MIN(rank) FROM series_summary)
ORDER BY code`,
	},
	{
		ID:    "most-popular-counts",
		Title: "2-ii) Episode & Season count for HIGHEST rating & LOWEST rank shows",
		SQL: `SELECT s.code, s.title, COUNT(e.episode) AS total_episodes, COUNT(DISTINCT e.season) AS total_seasons
FROM episode_ratings e
JOIN series_summary s ON e.code = s.code
WHERE s.rating_count = (SELECT MAX(rating_count) FROM series_summary)
  AND s.rank = (SELECT MIN(rank) FROM series_summary)
GROUP BY s.code
ORDER BY s.code`,
	},
	{
		ID:    "least-popular",
		Title: "3-i) Show with LOWEST rating count & the HIGHEST rank",
		SQL: `SELECT code, title, rating_count, rank
FROM series_summary
WHERE rating_count = (SELECT MIN(rating_count) FROM series_summary)
  AND rank = (SELECT MAX(rank) FROM series_summary)
ORDER BY code`,
	},
	{
		ID:    "least-popular-counts",
		Title: "3-ii) Episode & Season count for LOWEST rating & HIGHEST rank shows",
		SQL: `SELECT s.code, s.title, COUNT(e.episode) AS total_episodes, COUNT(DISTINCT e.season) AS total_seasons
FROM episode_ratings e
JOIN series_summary s ON e.code = s.code
WHERE s.rating_count = (SELECT MIN(rating_count) FROM series_summary)
  AND s.rank = (SELECT MAX(rank) FROM series_summary)
GROUP BY s.code
ORDER BY s.code`,
	},
	{
		ID:    "season-low",
		Title: "4-i) Seasons with season rating_mean ≤ 5",
		SQL: `SELECT t.code, t.title, t.season, t.rating_mean, t.number_of_episodes
FROM top_seasons t
WHERE t.rating_mean <= 5
ORDER BY t.code, t.season`,
	},
	{
		ID:    "season-multi",
		Title: "4-ii) Shows with more than 1 season summary",
		SQL: `SELECT s.code, s.title, COUNT(t.season) AS total_seasons, SUM(t.number_of_episodes) AS total_episodes
FROM top_seasons t
JOIN series_summary s ON t.code = s.code
GROUP BY s.code
HAVING COUNT(t.season) > 1
ORDER BY s.code`,
	},
	{
		ID:    "season-best",
		Title: "4-iii) Best rated season of each show",
		SQL: `SELECT t.code, t.title, t.season, t.rating_mean
FROM top_seasons t
WHERE t.rating_mean = (SELECT MAX(x.rating_mean) FROM top_seasons x WHERE x.code = t.code)
ORDER BY t.code, t.season`,
	},
}
