package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sells-group/mapkit/internal/format"
)

// FormatText renders the table as fixed-width text with a dashed rule
// under the header. Numeric cells are right-aligned.
func FormatText(t Table) string {
	headers := t.Names()
	rows := make([][]string, t.NumRows())
	numeric := make([]bool, len(t.Columns))

	for j, c := range t.Columns {
		numeric[j] = c.IsNumeric()
		for i, v := range c.Values {
			if rows[i] == nil {
				rows[i] = make([]string, len(t.Columns))
			}
			rows[i][j] = textCell(v)
		}
	}

	return renderText(headers, rows, numeric)
}

// FormatTextHeaders renders pre-stringified rows under the given
// headers, left-aligned.
func FormatTextHeaders(headers []string, rows [][]string) string {
	return renderText(headers, rows, make([]bool, len(headers)))
}

func renderText(headers []string, rows [][]string, rightAlign []bool) string {
	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = len(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if j < len(widths) && len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for j, w := range widths {
			if j > 0 {
				b.WriteString("  ")
			}
			cell := ""
			if j < len(cells) {
				cell = cells[j]
			}
			pad := strings.Repeat(" ", w-len(cell))
			if j < len(rightAlign) && rightAlign[j] {
				b.WriteString(pad)
				b.WriteString(cell)
			} else if j == len(widths)-1 {
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(pad)
			}
		}
		b.WriteByte('\n')
	}

	writeRow(headers)
	rule := make([]string, len(widths))
	for j, w := range widths {
		rule[j] = strings.Repeat("-", w)
	}
	writeRow(rule)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// textCell renders one cell for text output. Whole-number floats get
// thousands separators; everything else falls through to CellString.
func textCell(v any) string {
	if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return format.WithCommasFloat(f)
	}
	return CellString(v)
}

// CellString renders one cell value. Floats drop insignificant trailing
// zeros so whole numbers render without a decimal point.
func CellString(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
