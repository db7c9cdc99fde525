package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/aalvaropc/recordsort/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "recordsort.yaml"

// Load reads path and maps it over the defaults.
// When path is empty and DefaultFileName does not exist, defaults are returned.
func Load(path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
