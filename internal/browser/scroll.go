package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

func (b *PlaywrightBrowser) ScrollToElement(ctx context.Context, selector string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	element, err := page.QuerySelector(selector)
	if err != nil {
		return fmt.Errorf("элемент не найден: %w", err)
	}
	if element == nil {
		return fmt.Errorf("элемент с селектором %s не найден", selector)
	}

	return scrollIntoView(element)
}

// scrollIntoView прокручивает к элементу. Если встроенный метод playwright не
// справился, используется scrollIntoView из DOM.
func scrollIntoView(element playwright.ElementHandle) error {
	visible, err := element.IsVisible()
	if err == nil && visible {
		return nil
	}

	err = element.ScrollIntoViewIfNeeded(playwright.ElementHandleScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(5000),
	})
	if err == nil {
		return nil
	}

	_, err = element.Evaluate(`el => {
		el.scrollIntoView({
			behavior: 'auto',
			block: 'center',
			inline: 'center'
		});
	}`)
	if err != nil {
		return fmt.Errorf("ошибка прокрутки к элементу: %w", err)
	}
	time.Sleep(200 * time.Millisecond)
	return nil
}
