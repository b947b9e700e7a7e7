package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Fill вводит значение в поле; для <select> выбирает опцию.
func (b *PlaywrightBrowser) Fill(ctx context.Context, selector, value string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	if err := b.WaitForSelector(ctx, selector); err != nil {
		return fmt.Errorf("поле формы не найдено: %w", err)
	}

	element, err := page.QuerySelector(selector)
	if err != nil {
		return fmt.Errorf("ошибка получения элемента: %w", err)
	}
	if element == nil {
		return fmt.Errorf("поле %s исчезло со страницы", selector)
	}

	tagName, err := element.Evaluate("el => el.tagName.toLowerCase()")
	if err != nil {
		return fmt.Errorf("ошибка определения типа элемента: %w", err)
	}

	if fmt.Sprintf("%v", tagName) == "select" {
		_, err := page.SelectOption(selector, playwright.SelectOptionValues{Values: &[]string{value}})
		return err
	}

	return page.Fill(selector, value)
}
