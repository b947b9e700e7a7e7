package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Screenshot сохраняет снимок всей страницы в PNG.
func (b *PlaywrightBrowser) Screenshot(ctx context.Context, path string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения скриншота: %w", err)
	}
	return nil
}

// HTML возвращает текущую разметку страницы; результат пригоден для команды extract.
func (b *PlaywrightBrowser) HTML(ctx context.Context) (string, error) {
	page := b.getPage()
	if page == nil {
		return "", ErrNotLaunched
	}

	if err := b.WaitForLoadState(ctx, "domcontentloaded"); err != nil {
		return "", fmt.Errorf("ошибка ожидания загрузки страницы: %w", err)
	}

	return page.Content()
}
