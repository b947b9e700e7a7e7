package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"hrmScraper/internal/browser"
	"hrmScraper/internal/config"
	"hrmScraper/internal/scraper"
)

// TestLive_Scenarios гоняет сценарии из testdata/users.json против живого
// демо OrangeHRM. Нужны HRM_LIVE=1 и установленный браузер playwright.
func TestLive_Scenarios(t *testing.T) {
	if testing.Short() || os.Getenv("HRM_LIVE") != "1" {
		t.Skip("HRM_LIVE=1 не задан")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	ids, err := LoadIdentities(filepath.Join("testdata", "users.json"))
	require.NoError(t, err)

	open := func(ctx context.Context) (Session, error) {
		br := browser.New(browser.Config{
			Engine:       cfg.Browser.Engine,
			Headless:     cfg.Browser.Headless,
			BrowsersPath: cfg.Browser.BrowsersPath,
			Display:      cfg.Browser.Display,
			SlowMo:       cfg.Browser.SlowMo,
			Timeout:      cfg.Browser.Timeout,
		})
		if err := br.Launch(ctx); err != nil {
			_ = br.Close()
			return nil, err
		}
		return br, nil
	}

	r := NewRunner(open, zaptest.NewLogger(t), Config{
		Options:      scraper.OptionsFromConfig(cfg),
		ArtifactsDir: t.TempDir(),
	})

	for _, id := range ids {
		t.Run(id.ID, func(t *testing.T) {
			out, err := r.Run(t.Context(), id)
			for _, a := range out.Artifacts {
				t.Logf("artifact %s: %s", a.Name, a.Path)
			}
			require.NoError(t, err)
		})
	}
}
