package scraper

import (
	"context"
	"time"

	"hrmScraper/internal/locator"
)

const defaultPoll = 250 * time.Millisecond

// WaitFor опрашивает scope, пока цепочка кандидатов не даст элемент или не
// истечет timeout. timeout <= 0 означает одну попытку без ожидания.
func WaitFor(ctx context.Context, scope locator.Scope, candidates []locator.Matcher, timeout, poll time.Duration) (locator.Element, bool) {
	if poll <= 0 {
		poll = defaultPoll
	}
	deadline := time.Now().Add(timeout)

	for {
		if el, _, ok := locator.ResolveFirst(scope, candidates); ok {
			return el, true
		}
		if timeout <= 0 || !time.Now().Before(deadline) {
			return nil, false
		}

		wait := poll
		if left := time.Until(deadline); left < wait {
			wait = left
		}
		select {
		case <-ctx.Done():
			return nil, false
		case <-time.After(wait):
		}
	}
}

// sleep - задержка стабилизации, прерываемая отменой контекста.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
