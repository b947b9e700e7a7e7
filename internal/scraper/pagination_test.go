package scraper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmScraper/internal/browser/browsertest"
	"hrmScraper/internal/dom"
)

func TestIsDisabled(t *testing.T) {
	tests := []struct {
		class, disabled, aria string
		want                  bool
	}{
		{"oxd-pagination-page-item oxd-pagination-next", "", "", false},
		{"oxd-pagination-page-item oxd-pagination-page-item--disabled", "", "", true},
		{"btn DISABLED", "", "", true},
		{"btn", "true", "", true},
		{"btn", "disabled", "", true},
		{"btn", "", "true", true},
		{"btn", "", "false", false},
		{"btn", "false", "true", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDisabled(tt.class, tt.disabled, tt.aria), "%+v", tt)
	}
}

func TestPaginator_WalkVisitsExactlyNPages(t *testing.T) {
	lastModes := map[string]browsertest.LastPage{
		"disabled class": browsertest.LastPageDisabled,
		"absent":         browsertest.LastPageAbsent,
		"aria-disabled":  browsertest.LastPageAria,
		"boolean attr":   browsertest.LastPageBoolean,
	}

	for name, mode := range lastModes {
		for n := 1; n <= 3; n++ {
			t.Run(name, func(t *testing.T) {
				pages := make([][]browsertest.Row, n)
				for i := range pages {
					pages[i] = []browsertest.Row{row("user", "ESS", "Name", "Enabled")}
				}
				site := testSite(pages...)
				site.Last = mode
				s := openSite(t, site)
				require.NoError(t, s.Load(browsertest.PageRoute(1)))

				p := NewPaginator(s, nopLog(), 0, 0)
				visited := 1
				for p.Advance(t.Context()) {
					visited++
					require.LessOrEqual(t, visited, n, "walked past the last page")
				}

				assert.Equal(t, n, visited)
				assert.Equal(t, browsertest.PageRoute(n), s.URL())
			})
		}
	}
}

func TestPaginator_InterceptedClickFallsBackOnce(t *testing.T) {
	site := testSite([]browsertest.Row{row("a", "ESS", "A", "Enabled")}, []browsertest.Row{row("b", "ESS", "B", "Enabled")})
	site.NextClick = "intercepted"
	s := openSite(t, site)
	require.NoError(t, s.Load(browsertest.PageRoute(1)))

	p := NewPaginator(s, nopLog(), 0, 0)
	assert.True(t, p.Advance(t.Context()))
	assert.Equal(t, browsertest.PageRoute(2), s.URL())
	assert.Equal(t, 1, s.DispatchClicks)
	assert.Equal(t, 1, s.Scrolls)
}

func TestPaginator_BrokenClickEndsPagination(t *testing.T) {
	site := testSite([]browsertest.Row{row("a", "ESS", "A", "Enabled")}, []browsertest.Row{row("b", "ESS", "B", "Enabled")})
	site.NextClick = "broken"
	s := openSite(t, site)
	require.NoError(t, s.Load(browsertest.PageRoute(1)))

	p := NewPaginator(s, nopLog(), 0, 0)
	assert.False(t, p.Advance(t.Context()))
	assert.Equal(t, browsertest.PageRoute(1), s.URL())
}

func TestPaginator_FirstFoundNotFirstEnabled(t *testing.T) {
	// первый кандидат находит неактивную кнопку; активная кнопка "Next"
	// подходит только под последний кандидат и не должна использоваться
	doc, err := dom.ParseString(`<nav>
  <button class="oxd-pagination-page-item oxd-pagination-next oxd-pagination-page-item--disabled"></button>
  <button data-goto="elsewhere">Next</button>
</nav>`)
	require.NoError(t, err)

	p := NewPaginator(doc, nopLog(), 0, 0)
	assert.False(t, p.Advance(t.Context()))
}

func TestPaginator_StaticElementIsNotClickable(t *testing.T) {
	doc, err := dom.ParseString(`<button aria-label="Go to next page">&gt;</button>`)
	require.NoError(t, err)

	p := NewPaginator(doc, nopLog(), 0, 0)
	assert.False(t, p.Advance(t.Context()))
}

func TestPaginator_CancelledContext(t *testing.T) {
	site := testSite([]browsertest.Row{row("a", "ESS", "A", "Enabled")}, []browsertest.Row{row("b", "ESS", "B", "Enabled")})
	s := openSite(t, site)
	require.NoError(t, s.Load(browsertest.PageRoute(1)))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	p := NewPaginator(s, nopLog(), time.Millisecond, 0)
	assert.False(t, p.Advance(ctx))
}
