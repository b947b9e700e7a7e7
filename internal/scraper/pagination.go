package scraper

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"hrmScraper/internal/locator"
)

// Paginator переходит на следующую страницу таблицы.
type Paginator struct {
	scope       locator.Scope
	log         *zap.Logger
	clickDelay  time.Duration
	settleDelay time.Duration
}

func NewPaginator(scope locator.Scope, log *zap.Logger, clickDelay, settleDelay time.Duration) *Paginator {
	return &Paginator{scope: scope, log: log, clickDelay: clickDelay, settleDelay: settleDelay}
}

// Advance возвращает true, если клик по Next прошел и страница сменилась.
// Берется первый найденный кандидат, даже если он неактивен.
func (p *Paginator) Advance(ctx context.Context) bool {
	next, m, ok := locator.ResolveFirst(p.scope, nextCandidates)
	if !ok {
		p.log.Info("Кнопка Next не найдена, последняя страница")
		return false
	}

	class, _ := next.Attribute("class")
	disabled := booleanAttr(next, "disabled")
	ariaDisabled, _ := next.Attribute("aria-disabled")
	if IsDisabled(class, disabled, ariaDisabled) {
		p.log.Info("Кнопка Next неактивна, последняя страница", zap.Stringer("locator", m))
		return false
	}

	a, ok := next.(Actionable)
	if !ok {
		p.log.Warn("Кнопка Next не поддерживает клик", zap.Stringer("locator", m))
		return false
	}

	if err := a.ScrollIntoView(); err != nil {
		p.log.Debug("Ошибка прокрутки к Next", zap.Error(err))
	}
	if err := sleep(ctx, p.clickDelay); err != nil {
		return false
	}

	if err := a.Click(); err != nil {
		p.log.Debug("Клик по Next перехвачен, пробуем JS-клик", zap.Error(err))
		if err := a.DispatchClick(); err != nil {
			p.log.Warn("Не удалось кликнуть Next, остановка пагинации", zap.Error(err))
			return false
		}
	}

	return sleep(ctx, p.settleDelay) == nil
}

// IsDisabled: класс содержит "disabled" или атрибут disabled/aria-disabled
// равен "true" либо "disabled".
func IsDisabled(class, disabled, ariaDisabled string) bool {
	if strings.Contains(strings.ToLower(class), "disabled") {
		return true
	}
	attr := disabled
	if attr == "" {
		attr = ariaDisabled
	}
	switch strings.ToLower(attr) {
	case "true", "disabled":
		return true
	}
	return false
}

// AttributeChecker отличает отсутствующий атрибут от пустого.
type AttributeChecker interface {
	HasAttribute(name string) (bool, error)
}

// booleanAttr возвращает значение атрибута, а для булевого атрибута без
// значения (<button disabled>) - "true".
func booleanAttr(el locator.Element, name string) string {
	v, _ := el.Attribute(name)
	if v != "" {
		return v
	}
	if c, ok := el.(AttributeChecker); ok {
		if has, err := c.HasAttribute(name); err == nil && has {
			return "true"
		}
	}
	return ""
}
