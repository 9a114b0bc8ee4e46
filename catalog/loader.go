package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poiesic/assessrec/core"
)

// csvHeader is the column order used by both the reader and the writer.
// The test_type column holds pipe-delimited values.
var csvHeader = []string{
	"name", "url", "description", "category", "test_type",
	"adaptive_support", "remote_support", "duration",
}

// Load reads a catalog file, dispatching on the extension. Supported
// formats are .json and .csv.
func Load(path string) ([]core.Assessment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadJSON decodes a JSON array of assessments. Records with a pipe-joined
// test_type string are accepted alongside the list form; both decode to the
// same normalized slice. Every record is validated before the catalog is
// returned.
func ReadJSON(r io.Reader) ([]core.Assessment, error) {
	var assessments []core.Assessment
	if err := json.NewDecoder(r).Decode(&assessments); err != nil {
		return nil, fmt.Errorf("decode catalog json: %w", err)
	}
	if err := validateAll(assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// ReadCSV decodes a headered CSV catalog. The header row names the columns;
// order does not matter, unknown columns are ignored.
func ReadCSV(r io.Reader) ([]core.Assessment, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var assessments []core.Assessment
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		duration := 0
		if raw := field(record, "duration"); raw != "" {
			duration, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: parse duration %q: %w", line, raw, err)
			}
		}

		assessments = append(assessments, core.Assessment{
			Name:            field(record, "name"),
			URL:             field(record, "url"),
			Description:     field(record, "description"),
			Category:        field(record, "category"),
			TestType:        core.NormalizeTestTypes(field(record, "test_type")),
			AdaptiveSupport: field(record, "adaptive_support"),
			RemoteSupport:   field(record, "remote_support"),
			Duration:        duration,
		})
	}

	if err := validateAll(assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// WriteJSON writes the catalog as an indented JSON array.
func WriteJSON(w io.Writer, assessments []core.Assessment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(assessments); err != nil {
		return fmt.Errorf("encode catalog json: %w", err)
	}
	return nil
}

// WriteCSV writes the catalog as headered CSV with pipe-joined test types.
func WriteCSV(w io.Writer, assessments []core.Assessment) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range assessments {
		a := &assessments[i]
		record := []string{
			a.Name,
			a.URL,
			a.Description,
			a.Category,
			strings.Join(a.TestType, "|"),
			a.AdaptiveSupport,
			a.RemoteSupport,
			strconv.Itoa(a.Duration),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save writes a catalog file, dispatching on the extension like Load.
func Save(path string, assessments []core.Assessment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSON(f, assessments)
	case ".csv":
		return WriteCSV(f, assessments)
	default:
		return fmt.Errorf("%w: unsupported catalog format %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func validateAll(assessments []core.Assessment) error {
	for i := range assessments {
		if err := core.ValidateAssessment(&assessments[i]); err != nil {
			return fmt.Errorf("catalog record %d (%s): %w", i, assessments[i].Name, err)
		}
	}
	return nil
}
