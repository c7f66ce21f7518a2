package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	memo "github.com/venkatsvpr/golang-memo"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})
}

func seconds(d float64) string {
	return strconv.FormatFloat(d, 'f', 8, 64)
}

// RenderRangeSum writes the range-sum comparison as a table.
func RenderRangeSum(w io.Writer, results []Result) error {
	t := newTable("run", "time (s)", "hits", "misses", "hit rate", "invalidations", "evictions")
	for _, r := range results {
		row := []string{r.Name, seconds(r.Duration.Seconds())}
		if r.Name == NoCache {
			row = append(row, "-", "-", "-", "-", "-")
		} else {
			row = append(row,
				strconv.FormatUint(r.Stats.Hits, 10),
				strconv.FormatUint(r.Stats.Misses, 10),
				fmt.Sprintf("%.1f%%", r.Stats.HitRate()*100),
				strconv.FormatUint(r.Stats.Invalidations, 10),
				strconv.FormatUint(r.Stats.Evictions, 10),
			)
		}
		t.Row(row...)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// RenderFibonacci writes the sweep as a table with one column per backend.
func RenderFibonacci(w io.Writer, kinds []memo.Kind, points []FibPoint) error {
	headers := []string{"n"}
	for _, k := range kinds {
		headers = append(headers, k.String()+" time (s)")
	}
	t := newTable(headers...)
	for _, p := range points {
		row := []string{strconv.Itoa(p.N)}
		for _, k := range kinds {
			row = append(row, seconds(p.Means[k].Seconds()))
		}
		t.Row(row...)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
