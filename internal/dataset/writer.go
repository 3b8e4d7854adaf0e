package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"productgen/internal/domain"
)

// WriteJSON writes the records as an indented JSON array. No records
// produce "[]".
func WriteJSON(w io.Writer, ps []domain.Product) error {
	if ps == nil {
		ps = []domain.Product{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ps); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteCSV writes a header row and one row per record. No records produce
// no output at all, not even the header.
func WriteCSV(w io.Writer, ps []domain.Product) error {
	if len(ps) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, f := range FlattenAll(ps) {
		if err := cw.Write(f.Row()); err != nil {
			return fmt.Errorf("write csv row %d: %w", f.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func SaveJSON(path string, ps []domain.Product) error {
	return saveFile(path, func(w io.Writer) error { return WriteJSON(w, ps) })
}

// SaveCSV reports whether a file was created; an empty dataset creates none.
func SaveCSV(path string, ps []domain.Product) (bool, error) {
	if len(ps) == 0 {
		return false, nil
	}
	if err := saveFile(path, func(w io.Writer) error { return WriteCSV(w, ps) }); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes <prefix>.json and/or <prefix>.csv and returns the paths
// actually written.
func Save(prefix string, format domain.Format, ps []domain.Product) ([]string, error) {
	var written []string
	if format.WantsJSON() {
		path := prefix + ".json"
		if err := SaveJSON(path, ps); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if format.WantsCSV() {
		path := prefix + ".csv"
		ok, err := SaveCSV(path, ps)
		if err != nil {
			return written, err
		}
		if ok {
			written = append(written, path)
		}
	}
	return written, nil
}

func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
