package scraper

import "hrmScraper/internal/locator"

// Селекторы OrangeHRM. Порядок в цепочках значим.
const (
	usernameInput = "input[name='username']"
	passwordInput = "input[name='password']"
	submitButton  = "button[type='submit']"

	fieldErrorSelector = "span.oxd-input-field-error-message"

	mainMenu     = "ul.oxd-main-menu"
	menuItemName = "span.oxd-main-menu-item--name"
)

var (
	dashboardMarker = []locator.Matcher{
		locator.ByText{Tag: menuItemName, Text: "Dashboard", Within: mainMenu},
		locator.ByText{Tag: "span", Text: "Dashboard", Within: mainMenu},
	}

	adminMenu = []locator.Matcher{
		locator.ByText{Tag: menuItemName, Text: "Admin", Within: mainMenu},
		locator.ByText{Tag: "span", Text: "Admin", Within: mainMenu},
	}

	tableMarker = []locator.Matcher{
		locator.ByRole{Tag: "div", Role: "table"},
	}

	loginForm = []locator.Matcher{
		locator.ByAttr{Tag: "input", Name: "name", Value: "username"},
	}

	rowCandidates = []locator.Matcher{
		locator.ByRole{Tag: "div", Role: "row", Within: "div[role='table']"},
		locator.ByClass{Tag: "div", Classes: []string{"oxd-table-card"}, Within: "div.oxd-table-body", Child: true},
		locator.ByClass{Tag: "div", Classes: []string{"oxd-table-row"}, Within: "div.oxd-table-body"},
	}

	cellCandidates = []locator.Matcher{
		locator.ByRole{Tag: "div", Role: "cell"},
		locator.ByClass{Classes: []string{"oxd-table-cell"}},
		locator.ByClass{Tag: "div", Classes: []string{"oxd-table-cell"}, Substring: true},
	}

	nextCandidates = []locator.Matcher{
		locator.ByClass{Tag: "button", Classes: []string{"oxd-pagination-page-item", "oxd-pagination-next"}, Substring: true},
		locator.ByClass{Tag: "button", Classes: []string{"oxd-pagination-page-item"}, Substring: true, Has: "i[class*='arrow-right']"},
		locator.ByAttr{Tag: "button", Name: "aria-label", Value: "Go to next page"},
		locator.ByCSS{Selector: "button.oxd-pagination-page-item.oxd-pagination-next"},
		locator.ByText{Tag: "button", Text: "Next"},
	}

	alertMessage = []locator.Matcher{
		locator.ByClass{Tag: "p", Classes: []string{"oxd-text"}, Within: "div[role='alert']", Substring: true},
		locator.ByCSS{Selector: "div[role='alert'] p"},
	}

	userDropdown = []locator.Matcher{
		locator.ByClass{Tag: "p", Classes: []string{"oxd-userdropdown-name"}},
	}

	logoutLink = []locator.Matcher{
		locator.ByText{Tag: "a", Text: "Logout", Within: "ul.oxd-dropdown-menu"},
	}
)
