package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/infra/logger"
	"github.com/aalvaropc/recordsort/internal/infra/memstore"
	"github.com/aalvaropc/recordsort/internal/infra/recordfile"
	"github.com/aalvaropc/recordsort/internal/usecase"
)

const sortUsage = "Usage: recordsort sort --input-csv <path> --input-ssv <path> --input-psv <path> --sort-type [gender|birth_date|last_name]"

type sortOptions struct {
	csv      string
	ssv      string
	psv      string
	extra    []string
	sortType string
	reverse  bool
	format   string
}

func sortCmd(root *rootFlags) *cobra.Command {
	var opts sortOptions

	c := &cobra.Command{
		Use:   "sort",
		Short: "Merge the three input files and print the records in the chosen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer setupLogging(root.debug)()
			return runSort(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	c.Flags().StringVar(&opts.csv, "input-csv", "", "Comma delimited input file (required)")
	c.Flags().StringVar(&opts.ssv, "input-ssv", "", "Space delimited input file (required)")
	c.Flags().StringVar(&opts.psv, "input-psv", "", "Pipe delimited input file (required)")
	c.Flags().StringArrayVar(&opts.extra, "input", nil, "Extra input as path:csv|ssv|psv (repeatable)")
	c.Flags().StringVar(&opts.sortType, "sort-type", "", "Sort order: gender|birth_date|last_name (required)")
	c.Flags().BoolVar(&opts.reverse, "reverse", false, "Reverse the whole ordering")
	c.Flags().StringVar(&opts.format, "format", "plain", "Output format: plain|pretty|json")
	return c
}

func runSort(ctx context.Context, opts sortOptions, stdout, stderr io.Writer) error {
	fail := func(code int, err error) error {
		fmt.Fprintln(stderr, sortUsage)
		return &ExitError{Code: code, Err: err}
	}

	if opts.csv == "" || opts.ssv == "" || opts.psv == "" || opts.sortType == "" {
		return fail(ExitMissingArgs, errors.New("--input-csv, --input-ssv, --input-psv and --sort-type are required"))
	}

	sources := []usecase.Source{
		{Path: opts.csv, Delimiter: domain.DelimiterComma},
		{Path: opts.ssv, Delimiter: domain.DelimiterSpace},
		{Path: opts.psv, Delimiter: domain.DelimiterPipe},
	}
	for _, in := range opts.extra {
		src, err := parseSourceArg(in)
		if err != nil {
			return fail(ExitMissingArgs, err)
		}
		sources = append(sources, src)
	}

	if err := checkFormat(opts.format); err != nil {
		return fail(ExitMissingArgs, err)
	}

	field, ok := domain.ParseSortField(opts.sortType)
	if !ok {
		return fail(ExitInvalidSortType, fmt.Errorf("sort type must be one of [gender|birth_date|last_name], found %q", opts.sortType))
	}

	for _, src := range sources {
		if !fileExists(src.Path) {
			return fail(ExitMissingInput, fmt.Errorf("%s input file does not exist: %s", strings.ToUpper(src.Delimiter.Name()), src.Path))
		}
	}

	store := memstore.New()
	imp := usecase.NewImportFiles(recordfile.NewReader(), store, nil, logger.L())
	if _, err := imp.Execute(ctx, sources); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFilePath):
			return fail(ExitMissingInput, err)
		case domain.IsParseError(err):
			return &ExitError{Code: ExitParseFailure, Err: err}
		}
		return err
	}

	records, err := usecase.NewListRecords(store).Display(ctx, field, opts.reverse)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%d records by %s", len(records), field)
	if opts.reverse {
		title += " (reversed)"
	}
	return printRecords(stdout, records, opts.format, title)
}

// parseSourceArg splits "path:name" on its last colon.
func parseSourceArg(in string) (usecase.Source, error) {
	i := strings.LastIndex(in, ":")
	if i <= 0 || i == len(in)-1 {
		return usecase.Source{}, fmt.Errorf("invalid --input %q, expected path:csv|ssv|psv", in)
	}
	d, ok := domain.DelimiterByName(in[i+1:])
	if !ok {
		return usecase.Source{}, fmt.Errorf("invalid --input %q: unknown delimiter %q", in, in[i+1:])
	}
	return usecase.Source{Path: in[:i], Delimiter: d}, nil
}
