package eval

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// TestSet holds evaluation queries and, when labeled, the relevant URLs per
// query. GroundTruth may be empty for unlabeled sets.
type TestSet struct {
	Queries     []string
	GroundTruth map[string][]string
}

// testSetJSON is the labeled JSON layout: a queries list plus an optional
// ground_truth map keyed by query.
type testSetJSON struct {
	Queries     []string            `json:"queries"`
	GroundTruth map[string][]string `json:"ground_truth"`
}

// LoadTestSet reads a test set file. JSON files carry a queries list and an
// optional ground_truth map; CSV files need query and url columns, with
// repeated query rows accumulating relevant URLs; plain text files hold one
// query per line with no labels.
func LoadTestSet(path string) (*TestSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open test set: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return readJSONTestSet(f)
	case ".csv":
		return readCSVTestSet(f)
	case ".txt":
		return readTextTestSet(f)
	default:
		return nil, fmt.Errorf("unsupported test set format %q", filepath.Ext(path))
	}
}

func readJSONTestSet(r io.Reader) (*TestSet, error) {
	var raw testSetJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode test set json: %w", err)
	}

	ts := &TestSet{
		Queries:     raw.Queries,
		GroundTruth: raw.GroundTruth,
	}
	if ts.GroundTruth == nil {
		ts.GroundTruth = map[string][]string{}
	}
	return ts, nil
}

func readCSVTestSet(r io.Reader) (*TestSet, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read test set header: %w", err)
	}
	queryCol, urlCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "query":
			queryCol = i
		case "url", "assessment_url":
			urlCol = i
		}
	}
	if queryCol < 0 {
		return nil, fmt.Errorf("test set csv has no query column")
	}

	ts := &TestSet{GroundTruth: map[string][]string{}}
	seen := map[string]struct{}{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read test set record: %w", err)
		}

		query := strings.TrimSpace(record[queryCol])
		if query == "" {
			continue
		}
		if _, dup := seen[query]; !dup {
			seen[query] = struct{}{}
			ts.Queries = append(ts.Queries, query)
		}
		if urlCol >= 0 && urlCol < len(record) {
			if url := strings.TrimSpace(record[urlCol]); url != "" {
				ts.GroundTruth[query] = append(ts.GroundTruth[query], url)
			}
		}
	}

	return ts, nil
}

func readTextTestSet(r io.Reader) (*TestSet, error) {
	ts := &TestSet{GroundTruth: map[string][]string{}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			ts.Queries = append(ts.Queries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read test set: %w", err)
	}
	return ts, nil
}

// WritePredictionsCSV writes predictions in the Query,Assessment_url
// submission layout, one row per recommended URL.
func WritePredictionsCSV(w io.Writer, predictions []Prediction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Query", "Assessment_url"}); err != nil {
		return fmt.Errorf("write predictions header: %w", err)
	}
	for _, p := range predictions {
		for _, url := range p.URLs {
			if err := writer.Write([]string{p.Query, url}); err != nil {
				return fmt.Errorf("write prediction row: %w", err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
