package config

const (
	defaultDataDir      = "."
	defaultEpisodesFile = "all-episode-ratings.csv"
	defaultSeriesFile   = "all-series-ep-average.csv"
	defaultSeasonsFile  = "top-seasons-full.csv"
	defaultReportFormat = FormatTable
	defaultReportStyle  = StyleGrid
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			EpisodesFile: defaultEpisodesFile,
			SeriesFile:   defaultSeriesFile,
			SeasonsFile:  defaultSeasonsFile,
		},
		Report: Report{
			Format: defaultReportFormat,
			Style:  defaultReportStyle,
			Color:  true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
