package config

// YAMLConfig mirrors recordsort.yaml. Pointers distinguish "unset" from zero values.
type YAMLConfig struct {
	Server  YAMLServer  `yaml:"server"`
	Storage YAMLStorage `yaml:"storage"`
	Log     YAMLLog     `yaml:"log"`
	Metrics YAMLMetrics `yaml:"metrics"`
}

type YAMLServer struct {
	Addr        string `yaml:"addr"`
	CORSOrigins string `yaml:"cors_origins"`
}

type YAMLStorage struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type YAMLLog struct {
	Debug  *bool  `yaml:"debug"`
	Stderr *bool  `yaml:"stderr"`
	Dir    string `yaml:"dir"`
}

type YAMLMetrics struct {
	Enabled *bool `yaml:"enabled"`
}
