package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

var ErrNotLaunched = errors.New("браузер не запущен")

func (b *PlaywrightBrowser) WaitForSelector(ctx context.Context, selector string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	if err := ValidateSelector(selector); err != nil {
		return fmt.Errorf("невалидный селектор: %w", err)
	}

	opts := playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(b.cfg.Timeout.Milliseconds())),
	}

	_, err := page.WaitForSelector(selector, opts)
	return err
}

func (b *PlaywrightBrowser) WaitForLoadState(ctx context.Context, state string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	var loadState *playwright.LoadState
	switch strings.ToLower(state) {
	case "load":
		loadState = playwright.LoadStateLoad
	case "domcontentloaded":
		loadState = playwright.LoadStateDomcontentloaded
	case "networkidle":
		loadState = playwright.LoadStateNetworkidle
	default:
		loadState = playwright.LoadStateLoad
	}

	opts := playwright.PageWaitForLoadStateOptions{
		State:   loadState,
		Timeout: playwright.Float(float64(b.cfg.Timeout.Milliseconds())),
	}

	return page.WaitForLoadState(opts)
}

// ValidateSelector отсекает очевидно неверные селекторы до обращения к странице.
func ValidateSelector(selector string) error {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return fmt.Errorf("селектор не может быть пустым")
	}

	if strings.Contains(trimmed, "://") {
		return fmt.Errorf("селектор не может содержать протокол (://). Получен: %s", selector)
	}

	return nil
}
