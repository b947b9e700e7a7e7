package browser

import (
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	cfg     Config
	mu      sync.RWMutex
}

type Config struct {
	Engine          string // chromium, firefox, webkit
	Headless        bool
	BrowsersPath    string
	Display         string
	SlowMo          time.Duration
	Timeout         time.Duration
	NavigateTimeout time.Duration
	ActionTimeout   time.Duration
	Viewport        *playwright.Size
}
