package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"seriesreport/internal/config"
	"seriesreport/internal/dataset"
)

// WriteDataset writes ds to the three input files named by cfg, using the
// source column order and headers. Rating counts are written with thousands
// separators the way the upstream export formats them.
func WriteDataset(t testing.TB, cfg *config.Config, ds *dataset.Dataset) {
	t.Helper()

	episodes := [][]string{{"", "Season", "Episode", "Rating", "Code"}}
	for i, ep := range ds.Episodes {
		episodes = append(episodes, []string{
			strconv.Itoa(i),
			strconv.FormatInt(ep.Season, 10),
			strconv.FormatInt(ep.Episode, 10),
			formatFloat(ep.Rating),
			ep.Code,
		})
	}
	series := [][]string{{"Code", "Title", "Rating", "Rating Count", "Rank", "Average"}}
	for _, s := range ds.Series {
		series = append(series, []string{
			s.Code,
			s.Title,
			formatFloat(s.Rating),
			withThousands(s.RatingCount),
			strconv.FormatInt(s.Rank, 10),
			formatFloat(s.RatingMean),
		})
	}
	seasons := [][]string{{"Code", "Title", "Season", "Rating Mean", "Episodes"}}
	for _, s := range ds.Seasons {
		seasons = append(seasons, []string{
			s.Code,
			s.Title,
			strconv.FormatInt(s.Season, 10),
			formatFloat(s.RatingMean),
			strconv.FormatInt(s.NumberOfEpisodes, 10),
		})
	}

	writeCSV(t, cfg.EpisodesPath(), episodes)
	writeCSV(t, cfg.SeriesPath(), series)
	writeCSV(t, cfg.SeasonsPath(), seasons)
}

// WriteFile places raw content at path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeCSV(t testing.TB, path string, records [][]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func withThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		digits = digits[1:]
	}
	out := make([]byte, 0, len(digits)+len(digits)/3+1)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
