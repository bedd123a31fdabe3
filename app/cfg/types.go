package cfg

type Cfg struct {
	// HTTP service
	Port         string
	APIAccessKey string

	// Normalization
	FeedsFile   string
	ItemCap     int
	Topic       string
	DatabaseURL string

	// Logging
	LogFile       string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	Debug         bool

	// Application metadata
	Timezone string
	Version  string
}
