// Package dom предоставляет статические HTML-документы на goquery, совместимые
// с locator.Scope. Используется для офлайн-извлечения из сохраненных страниц
// и как основа тестовой сессии.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"hrmScraper/internal/locator"
)

// Document - разобранная HTML-страница.
type Document struct {
	doc *goquery.Document
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) QueryAll(selector string) ([]locator.Element, error) {
	return queryAll(d.doc.Selection, selector)
}

// Find возвращает элементы в виде *Element, без приведения к интерфейсу.
func (d *Document) Find(selector string) ([]*Element, error) {
	return find(d.doc.Selection, selector)
}

// HTML возвращает текущую разметку документа.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Element - узел статического документа.
type Element struct {
	sel *goquery.Selection
}

func (e *Element) QueryAll(selector string) ([]locator.Element, error) {
	return queryAll(e.sel, selector)
}

func (e *Element) Find(selector string) ([]*Element, error) {
	return find(e.sel, selector)
}

// Text приближает innerText: блочные элементы и <br> дают перевод строки,
// пробелы внутри строки схлопываются, пустые строки отбрасываются.
func (e *Element) Text() (string, error) {
	var b strings.Builder
	for _, n := range e.sel.Nodes {
		renderText(&b, n)
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = locator.NormalizeSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (e *Element) Attribute(name string) (string, error) {
	v, _ := e.sel.Attr(name)
	return v, nil
}

func (e *Element) HasAttribute(name string) (bool, error) {
	_, ok := e.sel.Attr(name)
	return ok, nil
}

// SetAttribute меняет атрибут на месте; нужен тестовой сессии для значений полей ввода.
func (e *Element) SetAttribute(name, value string) {
	e.sel.SetAttr(name, value)
}

func find(s *goquery.Selection, selector string) ([]*Element, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("невалидный селектор %q: %w", selector, err)
	}

	found := s.FindMatcher(m)
	out := make([]*Element, 0, found.Length())
	found.Each(func(_ int, sel *goquery.Selection) {
		out = append(out, &Element{sel: sel})
	})
	return out, nil
}

func queryAll(s *goquery.Selection, selector string) ([]locator.Element, error) {
	found, err := find(s, selector)
	if err != nil {
		return nil, err
	}
	out := make([]locator.Element, len(found))
	for i, el := range found {
		out[i] = el
	}
	return out, nil
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "dd": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "li": true, "main": true, "nav": true, "ol": true, "p": true,
	"section": true, "table": true, "tr": true, "ul": true,
}

func renderText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "template", "head":
			return
		case "br":
			b.WriteString("\n")
			return
		case "td", "th":
			b.WriteString("\t")
		}
	}

	block := n.Type == html.ElementNode && blockTags[n.Data]
	if block {
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(b, c)
	}
	if block {
		b.WriteString("\n")
	}
}
