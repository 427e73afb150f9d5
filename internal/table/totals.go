package table

// TotalLabel is the placeholder written into non-summed cells of a
// totals row.
const TotalLabel = "Total"

// AddRowTotals returns a copy of t with an appended numeric column
// holding the per-row sum of the requested columns. An empty cols list
// sums every numeric column. Absent or non-numeric requested columns
// are an error.
func AddRowTotals(t Table, cols []string, name string) (Table, error) {
	if err := t.validate(); err != nil {
		return Table{}, err
	}
	cols, err := t.sumColumns(cols)
	if err != nil {
		return Table{}, err
	}
	if name == "" {
		name = TotalLabel
	}

	totals := make([]any, t.NumRows())
	for i := range totals {
		totals[i] = 0.0
	}
	for _, colName := range cols {
		c, _ := t.Column(colName)
		for i, v := range c.Values {
			totals[i] = totals[i].(float64) + v.(float64)
		}
	}

	out := Table{Columns: make([]Column, 0, len(t.Columns)+1)}
	out.Columns = append(out.Columns, t.Columns...)
	out.Columns = append(out.Columns, Column{Name: name, Values: totals})
	return out, nil
}

// AddColTotals returns a copy of t with an appended totals row. Summed
// columns get their column sum; the first non-summed column gets the
// label and remaining non-summed cells are blank.
func AddColTotals(t Table, cols []string, label string) (Table, error) {
	if err := t.validate(); err != nil {
		return Table{}, err
	}
	cols, err := t.sumColumns(cols)
	if err != nil {
		return Table{}, err
	}
	if label == "" {
		label = TotalLabel
	}

	summed := make(map[string]bool, len(cols))
	for _, name := range cols {
		summed[name] = true
	}

	out := Table{Columns: make([]Column, len(t.Columns))}
	labeled := false
	for i, c := range t.Columns {
		values := make([]any, 0, len(c.Values)+1)
		values = append(values, c.Values...)

		switch {
		case summed[c.Name]:
			var sum float64
			for _, v := range c.Values {
				sum += v.(float64)
			}
			values = append(values, sum)
		case !labeled:
			values = append(values, label)
			labeled = true
		default:
			values = append(values, "")
		}

		out.Columns[i] = Column{Name: c.Name, Values: values}
	}
	return out, nil
}

// AddTotals applies row totals then column totals, so the appended
// totals column also carries a grand total in the totals row.
func AddTotals(t Table, cols []string) (Table, error) {
	withRows, err := AddRowTotals(t, cols, TotalLabel)
	if err != nil {
		return Table{}, err
	}

	cols, err = t.sumColumns(cols)
	if err != nil {
		return Table{}, err
	}
	summed := make([]string, 0, len(cols)+1)
	summed = append(summed, cols...)
	summed = append(summed, TotalLabel)
	return AddColTotals(withRows, summed, TotalLabel)
}
