package domain

// Config represents the recordsort configuration loaded from recordsort.yaml.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Addr        string
	CORSOrigins string
}

// StorageDriver selects the RecordStore implementation.
type StorageDriver string

const (
	StorageMemory StorageDriver = "memory"
	StorageFile   StorageDriver = "file"
)

type StorageConfig struct {
	Driver StorageDriver
	Path   string // file driver only
}

type LogConfig struct {
	Debug  bool
	Stderr bool
	Dir    string
}

type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig provides sane defaults if recordsort.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: "*",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
			Path:   "data/records.jsonl",
		},
		Log: LogConfig{
			Dir: ".",
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}
