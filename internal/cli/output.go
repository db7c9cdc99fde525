package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/recordsort/internal/api"
	"github.com/aalvaropc/recordsort/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Faint(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

var prettyColumns = []string{"LAST NAME", "FIRST NAME", "GENDER", "COLOR", "BORN"}

func checkFormat(format string) error {
	switch format {
	case "plain", "pretty", "json", "":
		return nil
	}
	return fmt.Errorf("unsupported format %q (expected plain|pretty|json)", format)
}

func printRecords(w io.Writer, records []domain.Record, format, title string) error {
	switch format {
	case "plain", "":
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(api.NewRecordResponses(records))
	case "pretty":
		printPrettyRecords(w, records, title)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyRecords(w io.Writer, records []domain.Record, title string) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.LastName,
			r.FirstName,
			r.Gender.String(),
			r.FavoriteColor,
			domain.FormatDate(r.DateOfBirth),
		})
	}

	widths := make([]int, len(prettyColumns))
	for i, h := range prettyColumns {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	render := func(style lipgloss.Style, cells []string) string {
		out := make([]string, len(cells))
		for i, cell := range cells {
			out[i] = cellStyle.Width(widths[i] + 2).Render(cell)
		}
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, out...))
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, render(headerStyle, prettyColumns))
	for _, row := range rows {
		fmt.Fprintln(w, render(lipgloss.NewStyle(), row))
	}
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	if err != nil {
		return false
	}
	return !st.IsDir()
}
