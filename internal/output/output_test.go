package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmScraper/internal/scraper"
)

func sample() []scraper.Record {
	return []scraper.Record{
		{Username: "Admin", UserRole: "Admin", EmployeeName: "Paul Collings", Status: "Enabled", RawCells: []string{"Admin", "Admin", "Paul Collings", "Enabled"}},
		{Username: "alice", UserRole: "ESS", EmployeeName: "Alice <Smith> & Co", Status: "Disabled"},
		{Username: "bob", UserRole: "", EmployeeName: "", Status: ""},
	}
}

func TestNew_RejectsUnknownNaming(t *testing.T) {
	_, err := New(t.TempDir(), "x", Naming("weekly"))
	assert.Error(t, err)
}

func TestWriter_FixedPaths(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, "", "")
	require.NoError(t, err)

	assert.Equal(t, Files{
		CSV:  filepath.Join(dir, "orangehrm_users.csv"),
		JSON: filepath.Join(dir, "orangehrm_users.json"),
	}, w.Paths())
}

func TestWriter_TimestampPaths(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, "users", NamingTimestamp)
	require.NoError(t, err)
	w.now = func() time.Time { return time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC) }

	assert.Equal(t, Files{
		CSV:  filepath.Join(dir, "users_20240309_070501.csv"),
		JSON: filepath.Join(dir, "users_20240309_070501.json"),
	}, w.Paths())
}

func TestWriter_SaveJSONRoundTrip(t *testing.T) {
	w, err := New(t.TempDir(), "out", NamingFixed)
	require.NoError(t, err)

	records := sample()
	files, err := w.Save(records)
	require.NoError(t, err)

	data, err := os.ReadFile(files.JSON)
	require.NoError(t, err)

	var objects []map[string]any
	require.NoError(t, json.Unmarshal(data, &objects))
	require.Len(t, objects, len(records))
	for _, obj := range objects {
		assert.Len(t, obj, 4)
		for _, key := range []string{"Username", "User Role", "Employee Name", "Status"} {
			assert.Contains(t, obj, key)
		}
	}
	assert.Contains(t, string(data), "Alice <Smith> & Co")

	back, err := readJSON(files.JSON)
	require.NoError(t, err)
	assert.Equal(t, scraper.StripRaw(records), back)
	assert.NotNil(t, records[0].RawCells)
}

func TestWriter_SaveCSV(t *testing.T) {
	w, err := New(t.TempDir(), "out", NamingFixed)
	require.NoError(t, err)

	files, err := w.Save(sample())
	require.NoError(t, err)

	data, err := os.ReadFile(files.CSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Username,User Role,Employee Name,Status", lines[0])
	assert.Equal(t, "Admin,Admin,Paul Collings,Enabled", lines[1])

	back, err := readCSV(files.CSV)
	require.NoError(t, err)
	assert.Equal(t, scraper.StripRaw(sample()), back)
}

func TestWriter_SaveEmpty(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "nested"), "empty", NamingFixed)
	require.NoError(t, err)

	files, err := w.Save(nil)
	require.NoError(t, err)

	data, err := os.ReadFile(files.JSON)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	back, err := readJSON(files.JSON)
	require.NoError(t, err)
	assert.Empty(t, back)
}

func readJSON(path string) ([]scraper.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []scraper.Record
	err = json.Unmarshal(data, &records)
	return records, err
}

func readCSV(path string) ([]scraper.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []scraper.Record
	err = gocsv.UnmarshalFile(f, &records)
	return records, err
}
