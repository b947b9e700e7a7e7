package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmScraper/internal/browser/browsertest"
)

func TestScraper_RunDeduplicatesAcrossPages(t *testing.T) {
	s := openSite(t, testSite(
		[]browsertest.Row{
			row("Admin", "Admin", "Paul Collings", "Enabled"),
			row("alice", "ESS", "Alice Smith", "Enabled"),
		},
		[]browsertest.Row{
			row("alice", "Admin", "Alice Smith", "Enabled"),
			row("bob", "ESS", "Bob Ray", "Disabled"),
		},
		[]browsertest.Row{
			row("Admin", "Admin", "Paul Collings", "Enabled"),
			row("carol", "ESS", "Carol King", "Enabled"),
		},
	))

	res, err := New(s, nopLog(), testOptions()).Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Pages)
	assert.Len(t, res.Raw, 6)

	want := []Record{
		{Username: "Admin", UserRole: "Admin", EmployeeName: "Paul Collings", Status: "Enabled"},
		{Username: "alice", UserRole: "ESS", EmployeeName: "Alice Smith", Status: "Enabled"},
		{Username: "bob", UserRole: "ESS", EmployeeName: "Bob Ray", Status: "Disabled"},
		{Username: "carol", UserRole: "ESS", EmployeeName: "Carol King", Status: "Enabled"},
	}
	if diff := cmp.Diff(want, res.Records, cmpopts.IgnoreFields(Record{}, "RawCells")); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, res.FinishedAt.Before(res.StartedAt))
}

func TestScraper_RunLoginFailure(t *testing.T) {
	s := openSite(t, testSite([]browsertest.Row{row("Admin", "Admin", "Paul Collings", "Enabled")}))
	opts := testOptions()
	opts.Credentials.Password = "wrongpass"

	res, err := New(s, nopLog(), opts).Run(t.Context())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrLoginFailed)

	stage, ok := StageOf(err)
	require.True(t, ok)
	assert.Equal(t, StageLogin, stage)
}

func TestScraper_RunNavigateFailure(t *testing.T) {
	s := openSite(t, testSite())

	_, err := New(s, nopLog(), testOptions()).Run(t.Context())
	require.Error(t, err)

	var re *RunError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, StageNavigate, re.Stage)
	assert.Contains(t, err.Error(), "navigate: ")
}

func TestScraper_RunEmptyTable(t *testing.T) {
	s := openSite(t, testSite([]browsertest.Row{}))

	res, err := New(s, nopLog(), testOptions()).Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Empty(t, res.Records)
}

func TestScraper_WalkStopsAtMaxPages(t *testing.T) {
	s := openSite(t, testSite(
		[]browsertest.Row{row("a", "ESS", "A", "Enabled")},
		[]browsertest.Row{row("b", "ESS", "B", "Enabled")},
		[]browsertest.Row{row("c", "ESS", "C", "Enabled")},
	))
	require.NoError(t, s.Load(browsertest.PageRoute(1)))

	opts := testOptions()
	opts.MaxPages = 2
	records, pages := New(s, nopLog(), opts).Walk(t.Context())

	assert.Equal(t, 2, pages)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[1].Username)
}

func TestScraper_RunCancelled(t *testing.T) {
	s := openSite(t, testSite([]browsertest.Row{row("a", "ESS", "A", "Enabled")}))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := New(s, nopLog(), testOptions()).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStage_String(t *testing.T) {
	for stage, want := range map[Stage]string{
		StageLaunch:   "launch",
		StageLogin:    "login",
		StageNavigate: "navigate",
		StageExtract:  "extract",
		StagePersist:  "persist",
		Stage(99):     "unknown",
	} {
		assert.Equal(t, want, stage.String())
	}
}
