// Package locator ищет элементы по упорядоченной цепочке кандидатов.
// Первый кандидат, давший хотя бы один элемент, выигрывает; результаты разных
// кандидатов не объединяются.
package locator

import (
	"fmt"
	"strings"
)

// Scope - область поиска: вся страница или отдельный элемент (строка таблицы).
type Scope interface {
	QueryAll(selector string) ([]Element, error)
}

// Element - найденный узел DOM. Text возвращает отрисованный текст (innerText).
// Attribute возвращает "" для отсутствующего атрибута.
type Element interface {
	Scope
	Text() (string, error)
	Attribute(name string) (string, error)
}

// Matcher - одна стратегия поиска из цепочки.
type Matcher interface {
	Find(scope Scope) ([]Element, error)
	String() string
}

// Resolve возвращает элементы первого сработавшего кандидата или nil.
func Resolve(scope Scope, candidates []Matcher) []Element {
	elems, _ := ResolveWith(scope, candidates)
	return elems
}

// ResolveWith дополнительно возвращает сработавший кандидат.
// Ошибка запроса считается промахом, пробуется следующий кандидат.
func ResolveWith(scope Scope, candidates []Matcher) ([]Element, Matcher) {
	if scope == nil {
		return nil, nil
	}
	for _, c := range candidates {
		elems, err := c.Find(scope)
		if err != nil {
			continue
		}
		if len(elems) > 0 {
			return elems, c
		}
	}
	return nil, nil
}

// ResolveFirst возвращает первый элемент первого сработавшего кандидата.
func ResolveFirst(scope Scope, candidates []Matcher) (Element, Matcher, bool) {
	elems, m := ResolveWith(scope, candidates)
	if len(elems) == 0 {
		return nil, nil, false
	}
	return elems[0], m, true
}

// ByAttr - точное совпадение атрибута: tag[name='value'].
type ByAttr struct {
	Tag    string
	Name   string
	Value  string
	Within string
}

func (m ByAttr) selector() string {
	return scoped(m.Within, m.Tag+attrEquals(m.Name, m.Value), false)
}

func (m ByAttr) Find(scope Scope) ([]Element, error) {
	return scope.QueryAll(m.selector())
}

func (m ByAttr) String() string { return "attr " + m.selector() }

// ByRole - структурный атрибут role: div[role='row'].
type ByRole struct {
	Tag    string
	Role   string
	Within string
}

func (m ByRole) selector() string {
	return scoped(m.Within, m.Tag+attrEquals("role", m.Role), false)
}

func (m ByRole) Find(scope Scope) ([]Element, error) {
	return scope.QueryAll(m.selector())
}

func (m ByRole) String() string { return "role " + m.selector() }

// ByClass - вхождение классов. Substring=true ищет подстроку в атрибуте class
// вместо целого токена. Child ограничивает поиск прямыми потомками Within.
// Has требует наличия потомка, подходящего под селектор.
type ByClass struct {
	Tag       string
	Classes   []string
	Within    string
	Child     bool
	Substring bool
	Has       string
}

func (m ByClass) selector() string {
	var b strings.Builder
	b.WriteString(m.Tag)
	for _, c := range m.Classes {
		if m.Substring {
			b.WriteString("[class*='" + quote(c) + "']")
		} else {
			b.WriteString("." + c)
		}
	}
	if m.Has != "" {
		b.WriteString(":has(" + m.Has + ")")
	}
	return scoped(m.Within, b.String(), m.Child)
}

func (m ByClass) Find(scope Scope) ([]Element, error) {
	return scope.QueryAll(m.selector())
}

func (m ByClass) String() string { return "class " + m.selector() }

// ByText - элементы Tag, нормализованный текст которых точно равен Text.
type ByText struct {
	Tag    string
	Text   string
	Within string
}

func (m ByText) Find(scope Scope) ([]Element, error) {
	tag := m.Tag
	if tag == "" {
		tag = "*"
	}
	elems, err := scope.QueryAll(scoped(m.Within, tag, false))
	if err != nil {
		return nil, err
	}

	want := NormalizeSpace(m.Text)
	var out []Element
	for _, el := range elems {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if NormalizeSpace(text) == want {
			out = append(out, el)
		}
	}
	return out, nil
}

func (m ByText) String() string {
	return fmt.Sprintf("text %s=%q", scoped(m.Within, m.Tag, false), m.Text)
}

// ByCSS - произвольный CSS-селектор.
type ByCSS struct {
	Selector string
}

func (m ByCSS) Find(scope Scope) ([]Element, error) {
	return scope.QueryAll(m.Selector)
}

func (m ByCSS) String() string { return "css " + m.Selector }

// NormalizeSpace схлопывает пробельные последовательности и обрезает края.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func attrEquals(name, value string) string {
	return "[" + name + "='" + quote(value) + "']"
}

func scoped(within, sel string, child bool) string {
	if within == "" {
		return sel
	}
	if sel == "" {
		return within
	}
	if child {
		return within + " > " + sel
	}
	return within + " " + sel
}

func quote(v string) string {
	return strings.ReplaceAll(v, "'", `\'`)
}
