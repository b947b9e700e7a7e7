package browsertest

import (
	"fmt"
	"html"
	"strings"
)

// Row - строка таблицы System Users в фикстуре.
type Row struct {
	Username string
	Role     string
	Employee string
	Status   string
}

// LastPage задает вид кнопки Next на последней странице.
type LastPage int

const (
	LastPageDisabled LastPage = iota // класс --disabled
	LastPageAbsent                   // кнопки нет
	LastPageAria                     // aria-disabled="true"
	LastPageBoolean                  // <button disabled>
)

// Site - разметка, повторяющая структуру демо OrangeHRM.
type Site struct {
	LoginURL string
	Username string
	Password string
	Pages    [][]Row
	Last     LastPage
	// NextClick проставляется кнопке Next как data-click (intercepted, broken).
	NextClick string
	// SilentRejection убирает сообщение об ошибке при неверном пароле.
	SilentRejection bool
}

const (
	RouteDashboard = "dashboard"
	RouteRejected  = "rejected"
	RouteRequired  = "required"
)

func PageRoute(n int) string {
	return fmt.Sprintf("users-%d", n)
}

// Session собирает маршруты сайта и открывает страницу входа.
func (site Site) Session() (*Session, error) {
	routes := map[string]string{
		site.LoginURL:  LoginPage(""),
		RouteDashboard: site.layout("<h6>Dashboard</h6>"),
		RouteRejected:  LoginPage(site.rejection()),
		RouteRequired:  RequiredPage(),
	}
	for i := range site.Pages {
		routes[PageRoute(i+1)] = site.usersPage(i)
	}

	s, err := New(routes, site.LoginURL)
	if err != nil {
		return nil, err
	}
	s.Submit = func(values map[string]string) string {
		user, pass := values["username"], values["password"]
		switch {
		case user == "" || pass == "":
			return RouteRequired
		case user == site.Username && pass == site.Password:
			return RouteDashboard
		default:
			return RouteRejected
		}
	}
	return s, nil
}

func (site Site) rejection() string {
	if site.SilentRejection {
		return ""
	}
	return `<div role="alert" class="oxd-alert oxd-alert--error"><div class="oxd-alert-content">` +
		`<i class="oxd-icon bi-exclamation-circle"></i>` +
		`<p class="oxd-text oxd-text--p oxd-alert-content-text">Invalid credentials</p></div></div>`
}

func LoginPage(banner string) string {
	return loginPage(banner, "", "")
}

func RequiredPage() string {
	msg := `<span class="oxd-text oxd-text--span oxd-input-field-error-message oxd-input-group__message">Required</span>`
	return loginPage("", msg, msg)
}

func loginPage(banner, userErr, passErr string) string {
	return `<html><body><div class="orangehrm-login-container"><h5>Login</h5>` + banner + `
<form class="oxd-form">
  <div class="oxd-input-group"><label>Username</label><input class="oxd-input" name="username" placeholder="Username">` + userErr + `</div>
  <div class="oxd-input-group"><label>Password</label><input class="oxd-input" type="password" name="password" placeholder="Password">` + passErr + `</div>
  <button type="submit" class="oxd-button oxd-button--main" data-action="submit"> Login </button>
</form></div></body></html>`
}

func (site Site) layout(content string) string {
	return `<html><body>
<aside class="oxd-sidepanel"><nav><ul class="oxd-main-menu">
  <li><a class="oxd-main-menu-item" href="#" data-goto="` + PageRoute(1) + `"><span class="oxd-text oxd-main-menu-item--name" data-goto="` + PageRoute(1) + `">Admin</span></a></li>
  <li><a class="oxd-main-menu-item" href="#" data-goto="` + RouteDashboard + `"><span class="oxd-text oxd-main-menu-item--name">Dashboard</span></a></li>
</ul></nav></aside>
<header class="oxd-topbar"><span class="oxd-userdropdown-tab"><p class="oxd-userdropdown-name">Paul Collings</p></span>
  <ul class="oxd-dropdown-menu"><li><a role="menuitem" class="oxd-userdropdown-link" data-goto="` + html.EscapeString(site.LoginURL) + `">Logout</a></li></ul>
</header>
<main>` + content + `</main></body></html>`
}

func (site Site) usersPage(i int) string {
	var b strings.Builder
	b.WriteString(`<div class="orangehrm-container"><div role="table" class="oxd-table">
<div role="rowgroup" class="oxd-table-header"><div role="row" class="oxd-table-header-row">
  <div role="columnheader" class="oxd-table-header-cell"><input type="checkbox"></div>
  <div role="columnheader" class="oxd-table-header-cell">Username</div>
  <div role="columnheader" class="oxd-table-header-cell">User Role</div>
  <div role="columnheader" class="oxd-table-header-cell">Employee Name</div>
  <div role="columnheader" class="oxd-table-header-cell">Status</div>
  <div role="columnheader" class="oxd-table-header-cell">Actions</div>
</div></div>
<div role="rowgroup" class="oxd-table-body">`)
	for _, r := range site.Pages[i] {
		b.WriteString(`
<div class="oxd-table-card"><div role="row" class="oxd-table-row oxd-table-row--with-border">
  <div role="cell" class="oxd-table-cell oxd-padding-cell"><div class="oxd-checkbox-wrapper"><input type="checkbox"></div></div>`)
		for _, v := range []string{r.Username, r.Role, r.Employee, r.Status} {
			fmt.Fprintf(&b, "\n  <div role=\"cell\" class=\"oxd-table-cell oxd-padding-cell\"><div>%s</div></div>", html.EscapeString(v))
		}
		b.WriteString(`
  <div role="cell" class="oxd-table-cell oxd-padding-cell"><div class="oxd-table-cell-actions"><button class="oxd-icon-button"><i class="oxd-icon bi-trash"></i></button></div></div>
</div></div>`)
	}
	b.WriteString("\n</div></div>\n")
	b.WriteString(site.pagination(i))
	b.WriteString("</div>")
	return site.layout(b.String())
}

func (site Site) pagination(i int) string {
	last := i == len(site.Pages)-1
	click := ""
	if site.NextClick != "" {
		click = fmt.Sprintf(` data-click="%s"`, site.NextClick)
	}

	var next string
	switch {
	case !last:
		next = fmt.Sprintf(`<button class="oxd-pagination-page-item oxd-pagination-next" data-goto="%s"%s><i class="oxd-icon bi-arrow-right"></i></button>`, PageRoute(i+2), click)
	case site.Last == LastPageDisabled:
		next = `<button class="oxd-pagination-page-item oxd-pagination-next oxd-pagination-page-item--disabled"><i class="oxd-icon bi-arrow-right"></i></button>`
	case site.Last == LastPageAria:
		next = `<button class="oxd-pagination-page-item oxd-pagination-next" aria-disabled="true"><i class="oxd-icon bi-arrow-right"></i></button>`
	case site.Last == LastPageBoolean:
		next = `<button class="oxd-pagination-page-item oxd-pagination-next" disabled><i class="oxd-icon bi-arrow-right"></i></button>`
	}

	return fmt.Sprintf(`<nav aria-label="Pagination Navigation"><ul class="oxd-pagination__ul">
  <li><button class="oxd-pagination-page-item oxd-pagination-page-item--page oxd-pagination-page-item--selected">%d</button></li>
  <li>%s</li>
</ul></nav>`, i+1, next)
}
