package corpus

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/stylom/stylom/pkg/stylom/internalerr"
)

// ReadCSV parses CSV data with a header row into a Table. Empty cells
// become null values, mirroring how missing fields arrive from exported
// corpora.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: csv input has no header row", internalerr.ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv rows: %w", err)
	}

	table := NewTable(len(records))
	for c, name := range header {
		values := make([]*string, len(records))
		for i, record := range records {
			if c >= len(record) || record[c] == "" {
				continue
			}
			v := record[c]
			values[i] = &v
		}
		if err := table.SetColumn(name, values); err != nil {
			return nil, err
		}
	}

	return table, nil
}
