package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/infra/logger"
	"github.com/aalvaropc/recordsort/internal/infra/recordfile"
)

const stdinInput = "-"

func validateCmd(root *rootFlags) *cobra.Command {
	var input string
	var delimiter string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Parse an input file without printing its records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer setupLogging(root.debug)()

			if strings.TrimSpace(input) == "" {
				return &ExitError{Code: ExitMissingArgs, Err: errors.New("--input is required")}
			}

			var (
				records []domain.Record
				err     error
				reader  = recordfile.NewReader()
			)
			if input == stdinInput {
				if delimiter == "" {
					return &ExitError{Code: ExitMissingArgs, Err: errors.New("--delimiter is required when reading stdin")}
				}
				records, err = reader.ParseReader(cmd.InOrStdin(), resolveDelimiter("", delimiter))
			} else {
				if !fileExists(input) {
					return &ExitError{Code: ExitMissingInput, Err: fmt.Errorf("input file does not exist: %s", input)}
				}
				records, err = reader.ParseFile(input, resolveDelimiter(input, delimiter))
			}
			if err != nil {
				logger.L().Warn("validate.failed", "path", input, "err", err)
				if domain.IsParseError(err) {
					return &ExitError{Code: ExitParseFailure, Err: err}
				}
				return err
			}

			logger.L().Info("validate.ok", "path", input, "records", len(records))
			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d records)\n", len(records))
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Input file, or - for stdin (required)")
	c.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Delimiter: , | or space, or csv|ssv|psv (default from file extension)")
	return c
}

// resolveDelimiter accepts a literal delimiter or its name and falls back to
// the file extension. Unknown values are passed through so the parser reports them.
func resolveDelimiter(path, flag string) string {
	if flag != "" {
		if d, ok := domain.DelimiterByName(flag); ok {
			return string(d)
		}
		return flag
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if d, ok := domain.DelimiterByName(ext); ok && ext != "" {
		return string(d)
	}
	return ""
}
