package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"hrmScraper/internal/locator"
)

// Element оборачивает playwright.ElementHandle для locator и пагинации.
type Element struct {
	h       playwright.ElementHandle
	timeout time.Duration
}

func wrapHandles(handles []playwright.ElementHandle, timeout time.Duration) []locator.Element {
	out := make([]locator.Element, 0, len(handles))
	for _, h := range handles {
		if h == nil {
			continue
		}
		out = append(out, &Element{h: h, timeout: timeout})
	}
	return out
}

func (e *Element) QueryAll(selector string) ([]locator.Element, error) {
	handles, err := e.h.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapHandles(handles, e.timeout), nil
}

func (e *Element) Text() (string, error) {
	return e.h.InnerText()
}

func (e *Element) Attribute(name string) (string, error) {
	return e.h.GetAttribute(name)
}

func (e *Element) ScrollIntoView() error {
	return scrollIntoView(e.h)
}

func (e *Element) Click() error {
	return e.h.Click(playwright.ElementHandleClickOptions{
		Timeout: playwright.Float(float64(e.timeout.Milliseconds())),
	})
}

// DispatchClick вызывает el.click() в странице, минуя проверки перекрытия.
func (e *Element) DispatchClick() error {
	if _, err := e.h.Evaluate("el => el.click()"); err != nil {
		return fmt.Errorf("ошибка JS-клика: %w", err)
	}
	return nil
}

func (e *Element) HasAttribute(name string) (bool, error) {
	res, err := e.h.Evaluate("(el, name) => el.hasAttribute(name)", name)
	if err != nil {
		return false, err
	}
	has, _ := res.(bool)
	return has, nil
}
