package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hrmScraper/internal/locator"
)

// Session - единственная браузерная сессия, которую компоненты получают явно.
// Реализации: browser.PlaywrightBrowser (живой браузер) и browsertest.Session.
type Session interface {
	locator.Scope
	Navigate(ctx context.Context, url string) error
	Fill(ctx context.Context, selector, value string) error
	Click(ctx context.Context, selector string) error
	Screenshot(ctx context.Context, path string) error
	URL() string
}

// Actionable - элемент, по которому можно кликнуть. DispatchClick - обходной
// клик через DOM, когда обычный перехвачен другим элементом.
type Actionable interface {
	ScrollIntoView() error
	Click() error
	DispatchClick() error
}

type Credentials struct {
	Username string
	Password string
}

// LoginStatus детализирует исход входа для тех, кому недостаточно bool.
type LoginStatus int

const (
	LoginOK LoginStatus = iota
	LoginRejected
	LoginTimeout
)

func (s LoginStatus) String() string {
	switch s {
	case LoginOK:
		return "ok"
	case LoginRejected:
		return "rejected"
	case LoginTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

var ErrNotActionable = errors.New("элемент не поддерживает клик")

// Controller открывает страницу входа, логинится и переходит к списку пользователей.
type Controller struct {
	sess Session
	log  *zap.Logger
	opts Options
}

func NewController(sess Session, log *zap.Logger, opts Options) *Controller {
	return &Controller{sess: sess, log: log, opts: opts.withDefaults()}
}

// Login возвращает true, если маркер Dashboard появился за LoginTimeout.
// Неверные учетные данные, медленная страница и отсутствие маркера дают false.
// Ошибка возвращается, только если не удалось дойти до формы входа.
func (c *Controller) Login(ctx context.Context, creds Credentials) (bool, error) {
	status, err := c.LoginDetailed(ctx, creds)
	if err != nil {
		return false, err
	}
	return status == LoginOK, nil
}

func (c *Controller) LoginDetailed(ctx context.Context, creds Credentials) (LoginStatus, error) {
	if err := c.submitLogin(ctx, creds); err != nil {
		return LoginTimeout, err
	}

	if _, ok := WaitFor(ctx, c.sess, dashboardMarker, c.opts.LoginTimeout, c.opts.Poll); ok {
		c.log.Info("Вход выполнен", zap.String("user", creds.Username))
		return LoginOK, nil
	}

	if msg := c.ErrorMessage(ctx, 0); msg != "" {
		c.log.Info("Вход отклонен", zap.String("user", creds.Username), zap.String("message", msg))
		return LoginRejected, nil
	}

	c.log.Info("Маркер Dashboard не появился", zap.String("user", creds.Username), zap.Duration("timeout", c.opts.LoginTimeout))
	return LoginTimeout, nil
}

func (c *Controller) submitLogin(ctx context.Context, creds Credentials) error {
	if err := c.sess.Navigate(ctx, c.opts.LoginURL); err != nil {
		return fmt.Errorf("ошибка открытия страницы входа: %w", err)
	}

	if _, ok := WaitFor(ctx, c.sess, loginForm, c.opts.PageTimeout, c.opts.Poll); !ok {
		return fmt.Errorf("форма входа не появилась за %v", c.opts.PageTimeout)
	}

	if err := c.sess.Fill(ctx, usernameInput, creds.Username); err != nil {
		return fmt.Errorf("ошибка ввода имени пользователя: %w", err)
	}
	if err := c.sess.Fill(ctx, passwordInput, creds.Password); err != nil {
		return fmt.Errorf("ошибка ввода пароля: %w", err)
	}
	if err := c.sess.Click(ctx, submitButton); err != nil {
		return fmt.Errorf("ошибка отправки формы входа: %w", err)
	}
	return nil
}

// LoggedIn проверяет наличие маркера Dashboard без ожидания.
func (c *Controller) LoggedIn() bool {
	return len(locator.Resolve(c.sess, dashboardMarker)) > 0
}

// OpenUserList переходит в Admin -> System Users и ждет таблицу.
func (c *Controller) OpenUserList(ctx context.Context) error {
	el, ok := WaitFor(ctx, c.sess, adminMenu, c.opts.PageTimeout, c.opts.Poll)
	if !ok {
		return fmt.Errorf("пункт меню Admin не найден")
	}
	if err := click(el); err != nil {
		return fmt.Errorf("ошибка клика по Admin: %w", err)
	}

	if _, ok := WaitFor(ctx, c.sess, tableMarker, c.opts.PageTimeout, c.opts.Poll); !ok {
		return fmt.Errorf("таблица пользователей не появилась за %v", c.opts.PageTimeout)
	}
	return sleep(ctx, c.opts.SettleDelay)
}

// Logout выходит через меню пользователя и ждет форму входа.
func (c *Controller) Logout(ctx context.Context) error {
	dropdown, ok := WaitFor(ctx, c.sess, userDropdown, c.opts.PageTimeout, c.opts.Poll)
	if !ok {
		return fmt.Errorf("меню пользователя не найдено")
	}
	if err := click(dropdown); err != nil {
		return fmt.Errorf("ошибка открытия меню пользователя: %w", err)
	}

	link, ok := WaitFor(ctx, c.sess, logoutLink, c.opts.PageTimeout, c.opts.Poll)
	if !ok {
		return fmt.Errorf("ссылка Logout не найдена")
	}
	if err := click(link); err != nil {
		return fmt.Errorf("ошибка клика по Logout: %w", err)
	}

	if _, ok := WaitFor(ctx, c.sess, loginForm, c.opts.PageTimeout, c.opts.Poll); !ok {
		return fmt.Errorf("форма входа не появилась после выхода")
	}
	return nil
}

// ErrorMessage ищет сначала общий alert (с ожиданием до timeout), затем
// ошибки валидации полей, объединенные через ", ". Пустая строка - ничего нет.
func (c *Controller) ErrorMessage(ctx context.Context, timeout time.Duration) string {
	if el, ok := WaitFor(ctx, c.sess, alertMessage, timeout, c.opts.Poll); ok {
		if text, err := el.Text(); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				return text
			}
		}
	}

	fieldErrors, err := c.sess.QueryAll(fieldErrorSelector)
	if err != nil {
		return ""
	}
	var parts []string
	for _, el := range fieldErrors {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, ", ")
}

func click(el locator.Element) error {
	a, ok := el.(Actionable)
	if !ok {
		return ErrNotActionable
	}
	return a.Click()
}
