package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hrmScraper/internal/browser/browsertest"
)

const testLoginURL = "https://hrm.test/web/index.php/auth/login"

func testOptions() Options {
	return Options{
		LoginURL:     testLoginURL,
		Credentials:  Credentials{Username: "Admin", Password: "admin123"},
		PageTimeout:  50 * time.Millisecond,
		LoginTimeout: 20 * time.Millisecond,
		Poll:         5 * time.Millisecond,
	}
}

func testSite(pages ...[]browsertest.Row) browsertest.Site {
	return browsertest.Site{
		LoginURL: testLoginURL,
		Username: "Admin",
		Password: "admin123",
		Pages:    pages,
	}
}

func openSite(t *testing.T, site browsertest.Site) *browsertest.Session {
	t.Helper()
	s, err := site.Session()
	require.NoError(t, err)
	return s
}

func row(user, role, name, status string) browsertest.Row {
	return browsertest.Row{Username: user, Role: role, Employee: name, Status: status}
}

func nopLog() *zap.Logger {
	return zap.NewNop()
}
