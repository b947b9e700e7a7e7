// Package browsertest - сессия на статических HTML-страницах для тестов
// компонентов без живого браузера.
//
// Поведение кликов задается атрибутами разметки:
//
//	data-goto="route"          клик загружает страницу route
//	data-action="submit"       клик вызывает Session.Submit с введенными значениями
//	data-click="intercepted"   обычный клик падает, DispatchClick работает
//	data-click="broken"        оба клика падают
package browsertest

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hrmScraper/internal/dom"
	"hrmScraper/internal/locator"
)

var (
	ErrIntercepted = errors.New("click intercepted")
	ErrBroken      = errors.New("element is not clickable")
)

type Session struct {
	// Routes сопоставляет URL или имя маршрута с HTML.
	Routes map[string]string
	// Submit получает значения полей по атрибуту name и возвращает маршрут.
	Submit func(values map[string]string) string

	doc    *dom.Document
	url    string
	values map[string]string
	closed bool

	Navigations    []string
	Clicks         int
	DispatchClicks int
	Scrolls        int
	Screenshots    []string
}

func New(routes map[string]string, start string) (*Session, error) {
	s := &Session{Routes: routes, values: map[string]string{}}
	if err := s.Load(start); err != nil {
		return nil, err
	}
	return s, nil
}

// Load показывает страницу маршрута без учета навигации.
func (s *Session) Load(route string) error {
	src, ok := s.Routes[route]
	if !ok {
		return fmt.Errorf("маршрут %q не найден", route)
	}
	doc, err := dom.ParseString(src)
	if err != nil {
		return err
	}
	s.doc = doc
	s.url = route
	return nil
}

func (s *Session) QueryAll(selector string) ([]locator.Element, error) {
	found, err := s.doc.Find(selector)
	if err != nil {
		return nil, err
	}
	return s.wrap(found), nil
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Navigations = append(s.Navigations, url)
	s.values = map[string]string{}
	return s.Load(url)
}

func (s *Session) Fill(ctx context.Context, selector, value string) error {
	el, err := s.first(selector)
	if err != nil {
		return err
	}
	name, _ := el.Attribute("name")
	if name == "" {
		name = selector
	}
	s.values[name] = value
	el.SetAttribute("value", value)
	return nil
}

func (s *Session) Click(ctx context.Context, selector string) error {
	el, err := s.first(selector)
	if err != nil {
		return err
	}
	return (&Element{el: el, s: s}).Click()
}

func (s *Session) Screenshot(ctx context.Context, path string) error {
	content, err := s.doc.HTML()
	if err != nil {
		return err
	}
	s.Screenshots = append(s.Screenshots, path)
	return os.WriteFile(path, []byte(content), 0o644)
}

func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.doc.HTML()
}

func (s *Session) URL() string {
	return s.url
}

func (s *Session) Close() error {
	s.closed = true
	return nil
}

func (s *Session) Closed() bool {
	return s.closed
}

// Values возвращает значения, введенные через Fill после последней навигации.
func (s *Session) Values() map[string]string {
	return s.values
}

func (s *Session) first(selector string) (*dom.Element, error) {
	found, err := s.doc.Find(selector)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("элемент %s не найден", selector)
	}
	return found[0], nil
}

func (s *Session) wrap(found []*dom.Element) []locator.Element {
	out := make([]locator.Element, len(found))
	for i, el := range found {
		out[i] = &Element{el: el, s: s}
	}
	return out
}

// Element - элемент страницы, клик по которому меняет состояние сессии.
type Element struct {
	el *dom.Element
	s  *Session
}

func (e *Element) QueryAll(selector string) ([]locator.Element, error) {
	found, err := e.el.Find(selector)
	if err != nil {
		return nil, err
	}
	return e.s.wrap(found), nil
}

func (e *Element) Text() (string, error) {
	return e.el.Text()
}

func (e *Element) Attribute(name string) (string, error) {
	return e.el.Attribute(name)
}

func (e *Element) HasAttribute(name string) (bool, error) {
	return e.el.HasAttribute(name)
}

func (e *Element) ScrollIntoView() error {
	e.s.Scrolls++
	return nil
}

func (e *Element) Click() error {
	switch mode, _ := e.el.Attribute("data-click"); mode {
	case "intercepted":
		return ErrIntercepted
	case "broken":
		return ErrBroken
	}
	e.s.Clicks++
	return e.activate()
}

func (e *Element) DispatchClick() error {
	if mode, _ := e.el.Attribute("data-click"); mode == "broken" {
		return ErrBroken
	}
	e.s.DispatchClicks++
	return e.activate()
}

func (e *Element) activate() error {
	if route, _ := e.el.Attribute("data-goto"); route != "" {
		return e.s.Load(route)
	}
	if action, _ := e.el.Attribute("data-action"); action == "submit" && e.s.Submit != nil {
		values := e.s.values
		e.s.values = map[string]string{}
		return e.s.Load(e.s.Submit(values))
	}
	return nil
}
