package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/gwviz/internal/demo"
)

var ErrRaggedColumns = errors.New("export: columns differ in length")

// WriteCSV writes the columns side by side with a header row.
func WriteCSV(w io.Writer, cols []demo.Column) error {
	if len(cols) == 0 {
		return nil
	}
	n := len(cols[0].Values)
	header := make([]string, len(cols))
	for i, c := range cols {
		if len(c.Values) != n {
			return fmt.Errorf("%w: %s has %d rows, want %d", ErrRaggedColumns, c.Name, len(c.Values), n)
		}
		header[i] = c.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(cols))
	for row := 0; row < n; row++ {
		for i, c := range cols {
			rec[i] = strconv.FormatFloat(c.Values[row], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
