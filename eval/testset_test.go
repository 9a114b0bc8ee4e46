package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTestSet(t *testing.T) {
	t.Run("labeled json", func(t *testing.T) {
		path := writeTempFile(t, "train.json", `{
			"queries": ["hire java developers", "find a data analyst"],
			"ground_truth": {
				"hire java developers": ["https://example.com/java", "https://example.com/teamwork"]
			}
		}`)

		ts, err := LoadTestSet(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hire java developers", "find a data analyst"}, ts.Queries)
		assert.Equal(t, []string{"https://example.com/java", "https://example.com/teamwork"},
			ts.GroundTruth["hire java developers"])
	})

	t.Run("unlabeled json gets empty ground truth", func(t *testing.T) {
		path := writeTempFile(t, "test.json", `{"queries": ["q one", "q two"]}`)

		ts, err := LoadTestSet(path)
		require.NoError(t, err)
		assert.Len(t, ts.Queries, 2)
		assert.NotNil(t, ts.GroundTruth)
		assert.Empty(t, ts.GroundTruth)
	})

	t.Run("csv accumulates urls per query", func(t *testing.T) {
		path := writeTempFile(t, "train.csv",
			"Query,Assessment_url\n"+
				"hire java developers,https://example.com/java\n"+
				"hire java developers,https://example.com/teamwork\n"+
				"find a data analyst,https://example.com/data\n")

		ts, err := LoadTestSet(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hire java developers", "find a data analyst"}, ts.Queries)
		assert.Len(t, ts.GroundTruth["hire java developers"], 2)
		assert.Len(t, ts.GroundTruth["find a data analyst"], 1)
	})

	t.Run("csv without query column fails", func(t *testing.T) {
		path := writeTempFile(t, "bad.csv", "name,url\nx,y\n")

		_, err := LoadTestSet(path)
		assert.Error(t, err)
	})

	t.Run("text file one query per line", func(t *testing.T) {
		path := writeTempFile(t, "queries.txt", "first query\n\n  second query  \n")

		ts, err := LoadTestSet(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"first query", "second query"}, ts.Queries)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempFile(t, "queries.yaml", "queries: []")

		_, err := LoadTestSet(path)
		assert.Error(t, err)
	})
}

func TestWritePredictionsCSV(t *testing.T) {
	predictions := []Prediction{
		{Query: "hire java developers", URLs: []string{"https://example.com/java", "https://example.com/teamwork"}},
		{Query: "find a data analyst", URLs: []string{"https://example.com/data"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePredictionsCSV(&buf, predictions))

	expected := "Query,Assessment_url\n" +
		"hire java developers,https://example.com/java\n" +
		"hire java developers,https://example.com/teamwork\n" +
		"find a data analyst,https://example.com/data\n"
	assert.Equal(t, expected, buf.String())
}
