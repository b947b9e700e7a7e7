// Package browser реализует сессию скрапера поверх playwright-go.
package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"

	"hrmScraper/internal/locator"
)

func New(cfg Config) *PlaywrightBrowser {
	if cfg.Engine == "" {
		cfg.Engine = "chromium"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.NavigateTimeout == 0 {
		cfg.NavigateTimeout = 60 * time.Second
	}
	if cfg.ActionTimeout == 0 {
		cfg.ActionTimeout = 10 * time.Second
	}
	if cfg.Viewport == nil {
		// аналог maximize_window: таблица и пагинация должны помещаться
		cfg.Viewport = &playwright.Size{Width: 1920, Height: 1080}
	}

	return &PlaywrightBrowser{
		cfg: cfg,
	}
}

// getPage безопасно возвращает текущую страницу с read lock
func (b *PlaywrightBrowser) getPage() playwright.Page {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.page
}

func (b *PlaywrightBrowser) setPage(page playwright.Page) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page = page
}

func (b *PlaywrightBrowser) getBrowserArgs() []string {
	if b.cfg.Engine != "chromium" {
		return nil
	}
	return []string{
		"--no-sandbox",
	}
}

func (b *PlaywrightBrowser) getEnvMap() map[string]string {
	if b.cfg.Display != "" && !b.cfg.Headless {
		return map[string]string{
			"DISPLAY": b.cfg.Display,
		}
	}
	return nil
}

func (b *PlaywrightBrowser) browserType(pw *playwright.Playwright) (playwright.BrowserType, error) {
	switch b.cfg.Engine {
	case "chromium":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("неизвестный движок браузера: %s", b.cfg.Engine)
	}
}

func (b *PlaywrightBrowser) runOptions() *playwright.RunOptions {
	return &playwright.RunOptions{
		Browsers: []string{b.cfg.Engine},
	}
}

// Install скачивает драйвер и браузер выбранного движка.
func (b *PlaywrightBrowser) Install() error {
	if b.cfg.BrowsersPath != "" {
		if err := os.Setenv("PLAYWRIGHT_BROWSERS_PATH", b.cfg.BrowsersPath); err != nil {
			return err
		}
	}
	return playwright.Install(b.runOptions())
}

func (b *PlaywrightBrowser) Launch(ctx context.Context) error {
	if b.cfg.BrowsersPath != "" {
		if err := os.Setenv("PLAYWRIGHT_BROWSERS_PATH", b.cfg.BrowsersPath); err != nil {
			return err
		}
	}

	pw, err := playwright.Run(b.runOptions())
	if err != nil {
		return fmt.Errorf("ошибка запуска playwright: %w", err)
	}
	b.pw = pw

	bt, err := b.browserType(pw)
	if err != nil {
		return err
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.cfg.Headless),
		Args:     b.getBrowserArgs(),
	}
	if b.cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(b.cfg.SlowMo.Milliseconds()))
	}
	if env := b.getEnvMap(); env != nil {
		opts.Env = env
	}

	br, err := bt.Launch(opts)
	if err != nil {
		return fmt.Errorf("ошибка запуска браузера %s: %w", b.cfg.Engine, err)
	}

	b.mu.Lock()
	b.browser = br
	b.mu.Unlock()

	page, err := br.NewPage(playwright.BrowserNewPageOptions{
		Viewport: b.cfg.Viewport,
	})
	if err != nil {
		return err
	}

	b.setPage(page)
	page.SetDefaultTimeout(float64(b.cfg.Timeout.Milliseconds()))
	return nil
}

func (b *PlaywrightBrowser) Navigate(ctx context.Context, url string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	navCtx, cancel := context.WithTimeout(ctx, b.cfg.NavigateTimeout)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		_, err := page.Goto(url, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateLoad,
			Timeout:   playwright.Float(float64(b.cfg.NavigateTimeout.Milliseconds())),
		})
		errChan <- err
	}()

	select {
	case <-navCtx.Done():
		return fmt.Errorf("navigate timeout after %v", b.cfg.NavigateTimeout)
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("ошибка перехода на %s: %w", url, err)
		}
	}

	return nil
}

func (b *PlaywrightBrowser) Click(ctx context.Context, selector string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	if err := b.WaitForSelector(ctx, selector); err != nil {
		return fmt.Errorf("элемент не найден: %w", err)
	}

	if err := b.ScrollToElement(ctx, selector); err != nil {
		return fmt.Errorf("ошибка прокрутки к элементу: %w", err)
	}

	return page.Click(selector, playwright.PageClickOptions{
		Timeout: playwright.Float(float64(b.cfg.ActionTimeout.Milliseconds())),
	})
}

// QueryAll ищет элементы по всей странице.
func (b *PlaywrightBrowser) QueryAll(selector string) ([]locator.Element, error) {
	page := b.getPage()
	if page == nil {
		return nil, ErrNotLaunched
	}

	handles, err := page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapHandles(handles, b.cfg.ActionTimeout), nil
}

func (b *PlaywrightBrowser) URL() string {
	page := b.getPage()
	if page == nil {
		return ""
	}
	return page.URL()
}

func (b *PlaywrightBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
		b.browser = nil
		b.page = nil
	}
	if b.pw != nil {
		err := b.pw.Stop()
		b.pw = nil
		return err
	}
	return nil
}
