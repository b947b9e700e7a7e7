package commands

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"hrmScraper/internal/browser/browsertest"
	"hrmScraper/internal/config"
	"hrmScraper/internal/scenario"
	"hrmScraper/internal/scraper"
)

const testLoginURL = "https://hrm.test/web/index.php/auth/login"

func testConfig(t *testing.T) *config.Cfg {
	t.Helper()
	return &config.Cfg{
		Target: config.Target{LoginURL: testLoginURL, Username: "Admin", Password: "admin123"},
		Scrape: config.Scrape{PageTimeout: 50 * time.Millisecond, LoginTimeout: 20 * time.Millisecond},
		Output: config.Output{Dir: t.TempDir(), Prefix: "orangehrm_users", Naming: "fixed"},
	}
}

func testSite(pages ...[]browsertest.Row) browsertest.Site {
	return browsertest.Site{LoginURL: testLoginURL, Username: "Admin", Password: "admin123", Pages: pages}
}

func openSite(site browsertest.Site, opened *[]*browsertest.Session) scenario.OpenFunc {
	return func(context.Context) (scenario.Session, error) {
		s, err := site.Session()
		if err != nil {
			return nil, err
		}
		*opened = append(*opened, s)
		return s, nil
	}
}

func rows(names ...string) []browsertest.Row {
	out := make([]browsertest.Row, len(names))
	for i, n := range names {
		out[i] = browsertest.Row{Username: n, Role: "ESS", Employee: "Employee " + n, Status: "Enabled"}
	}
	return out
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
