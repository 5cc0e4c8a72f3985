package config

const (
	defaultLibraryPath      = "~/.local/share/filmlog/movies.json"
	defaultLibraryFormat    = "auto"
	defaultOMDbBaseURL      = "https://www.omdbapi.com"
	defaultOMDbTimeout      = 15
	defaultOMDbRPS          = 1.0
	defaultWebsiteOutputDir = "~/.local/share/filmlog/site"
	defaultWebsiteTitle     = "My Movie Collection"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Library: Library{
			Path:   defaultLibraryPath,
			Format: defaultLibraryFormat,
		},
		OMDb: OMDb{
			BaseURL:           defaultOMDbBaseURL,
			TimeoutSeconds:    defaultOMDbTimeout,
			RequestsPerSecond: defaultOMDbRPS,
		},
		Website: Website{
			OutputDir: defaultWebsiteOutputDir,
			Title:     defaultWebsiteTitle,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
