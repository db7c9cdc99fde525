package cli

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/recordsort/internal/infra/logger"
)

// setupLogging writes debug logs under the working directory. Without
// --debug the global logger stays a discard logger.
func setupLogging(debug bool) func() {
	if !debug {
		return func() {}
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	cleanup, err := logger.Setup(logger.Config{Root: wd, Debug: true})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
