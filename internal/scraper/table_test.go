package scraper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmScraper/internal/browser/browsertest"
	"hrmScraper/internal/dom"
	"hrmScraper/internal/locator"
)

func TestWalker_ExtractPage_RoleRows(t *testing.T) {
	s := openSite(t, testSite([]browsertest.Row{
		row("Admin", "Admin", "Paul Collings", "Enabled"),
		row("username", "ESS", "Literal Name", "Disabled"),
	}))
	require.NoError(t, s.Load(browsertest.PageRoute(1)))

	got := NewWalker(s, nopLog(), testOptions().PageTimeout, testOptions().Poll).ExtractPage(t.Context())

	require.Len(t, got, 2)
	assert.Equal(t, "Admin", got[0].Username)
	assert.Equal(t, "Admin", got[0].UserRole)
	assert.Equal(t, "Paul Collings", got[0].EmployeeName)
	assert.Equal(t, "Enabled", got[0].Status)
	assert.Equal(t, []string{"Admin", "Admin", "Paul Collings", "Enabled"}, got[0].RawCells)
	// значение "username" без второго маркера заголовком не считается
	assert.Equal(t, "username", got[1].Username)
}

func TestWalker_ExtractPage_CardFallbackAndLineSplit(t *testing.T) {
	doc, err := dom.ParseString(`<div class="oxd-table-body">
  <div class="oxd-table-card"><div>Username</div><div>User Role</div></div>
  <div class="oxd-table-card"><div>alice</div><div>ESS</div><div>Alice Smith</div><div>Enabled</div><div>extra</div></div>
  <div class="oxd-table-card"><span>carol</span></div>
</div>`)
	require.NoError(t, err)

	got := NewWalker(doc, nopLog(), 0, 0).ExtractPage(t.Context())

	require.Len(t, got, 2)
	assert.Equal(t, Record{
		Username: "alice", UserRole: "ESS", EmployeeName: "Alice Smith", Status: "Enabled",
		RawCells: []string{"alice", "ESS", "Alice Smith", "Enabled", "extra"},
	}, got[0])
	assert.Equal(t, Record{Username: "carol", RawCells: []string{"carol"}}, got[1])
}

func TestWalker_ExtractPage_ClassCells(t *testing.T) {
	doc, err := dom.ParseString(`<div class="oxd-table-body">
  <div class="oxd-table-row"><div class="oxd-table-cell"> </div><div class="oxd-table-cell">dan</div><div class="oxd-table-cell">Admin</div></div>
</div>`)
	require.NoError(t, err)

	got := NewWalker(doc, nopLog(), 0, 0).ExtractPage(t.Context())

	require.Len(t, got, 1)
	assert.Equal(t, "dan", got[0].Username)
	assert.Equal(t, "Admin", got[0].UserRole)
	assert.Empty(t, got[0].EmployeeName)
	assert.Empty(t, got[0].Status)
}

func TestWalker_ExtractPage_NoRowsAfterTimeout(t *testing.T) {
	doc, err := dom.ParseString(`<div role="table"></div>`)
	require.NoError(t, err)

	got := NewWalker(doc, nopLog(), 10*testOptions().Poll, testOptions().Poll).ExtractPage(t.Context())
	assert.Empty(t, got)
}

type stubScope struct {
	rows []locator.Element
}

func (s stubScope) QueryAll(selector string) ([]locator.Element, error) {
	if selector == "div[role='table'] div[role='row']" {
		return s.rows, nil
	}
	return nil, nil
}

type stubRow struct {
	text string
	err  error
}

func (r stubRow) QueryAll(string) ([]locator.Element, error) { return nil, nil }
func (r stubRow) Text() (string, error)                      { return r.text, r.err }
func (r stubRow) Attribute(string) (string, error)           { return "", nil }

func TestWalker_ExtractPage_SkipsBrokenRow(t *testing.T) {
	scope := stubScope{rows: []locator.Element{
		stubRow{text: "eve\nESS\nEve Stone\nEnabled"},
		stubRow{err: errors.New("stale element")},
		stubRow{text: "frank\nAdmin\nFrank Moe\nDisabled"},
	}}

	got := NewWalker(scope, nopLog(), 0, 0).ExtractPage(t.Context())

	require.Len(t, got, 2)
	assert.Equal(t, "eve", got[0].Username)
	assert.Equal(t, "frank", got[1].Username)
	assert.Equal(t, "Disabled", got[1].Status)
}
