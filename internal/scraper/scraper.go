// Package scraper логинится в OrangeHRM, обходит постраничную таблицу
// Admin -> System Users и собирает дедуплицированные записи пользователей.
package scraper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Result - итог одного прогона.
type Result struct {
	Raw        []Record
	Records    []Record
	Pages      int
	StartedAt  time.Time
	FinishedAt time.Time
}

type Scraper struct {
	sess       Session
	log        *zap.Logger
	opts       Options
	controller *Controller
}

func New(sess Session, log *zap.Logger, opts Options) *Scraper {
	opts = opts.withDefaults()
	return &Scraper{
		sess:       sess,
		log:        log,
		opts:       opts,
		controller: NewController(sess, log, opts),
	}
}

func (s *Scraper) Controller() *Controller {
	return s.controller
}

// Run выполняет вход, открывает список пользователей, обходит все страницы и
// дедуплицирует записи. Пустой результат не считается ошибкой.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	res := &Result{StartedAt: time.Now()}

	ok, err := s.controller.Login(ctx, s.opts.Credentials)
	if err != nil {
		return nil, WrapStage(StageLogin, err)
	}
	if !ok {
		return nil, WrapStage(StageLogin, ErrLoginFailed)
	}

	if err := s.controller.OpenUserList(ctx); err != nil {
		return nil, WrapStage(StageNavigate, err)
	}

	res.Raw, res.Pages = s.Walk(ctx)
	if err := ctx.Err(); err != nil {
		return nil, WrapStage(StageExtract, err)
	}

	res.Records = Dedupe(res.Raw)
	res.FinishedAt = time.Now()

	s.log.Info("Обход завершен",
		zap.Int("pages", res.Pages),
		zap.Int("raw", len(res.Raw)),
		zap.Int("deduplicated", len(res.Records)),
		zap.Duration("duration", res.FinishedAt.Sub(res.StartedAt)))

	return res, nil
}

// Walk извлекает текущую страницу и переходит дальше, пока Next доступна.
// Возвращает все записи в порядке обхода и число посещенных страниц.
func (s *Scraper) Walk(ctx context.Context) ([]Record, int) {
	walker := NewWalker(s.sess, s.log, s.opts.PageTimeout, s.opts.Poll)
	pager := NewPaginator(s.sess, s.log, s.opts.ClickDelay, s.opts.SettleDelay)

	var all []Record
	page := 0
	for {
		page++
		records := walker.ExtractPage(ctx)
		all = append(all, records...)
		s.log.Info("Страница обработана", zap.Int("page", page), zap.Int("rows", len(records)))

		if ctx.Err() != nil {
			break
		}
		if s.opts.MaxPages > 0 && page >= s.opts.MaxPages {
			s.log.Warn("Достигнут лимит страниц", zap.Int("max_pages", s.opts.MaxPages))
			break
		}
		if !pager.Advance(ctx) {
			break
		}
	}
	return all, page
}
