package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hrmScraper/internal/locator"
)

// Walker извлекает записи с текущей страницы таблицы.
type Walker struct {
	scope       locator.Scope
	log         *zap.Logger
	pageTimeout time.Duration
	poll        time.Duration
}

func NewWalker(scope locator.Scope, log *zap.Logger, pageTimeout, poll time.Duration) *Walker {
	return &Walker{scope: scope, log: log, pageTimeout: pageTimeout, poll: poll}
}

// ExtractPage ждет строки не дольше pageTimeout и разбирает все, что нашлось.
// Таймаут и ошибки отдельных строк не прерывают обход.
func (w *Walker) ExtractPage(ctx context.Context) []Record {
	if _, ok := WaitFor(ctx, w.scope, rowCandidates, w.pageTimeout, w.poll); !ok {
		w.log.Warn("Строки таблицы не найдены, продолжаем с пустой страницей", zap.Duration("timeout", w.pageTimeout))
	}

	rows, m := locator.ResolveWith(w.scope, rowCandidates)
	if m != nil {
		w.log.Debug("Строки найдены", zap.Stringer("locator", m), zap.Int("rows", len(rows)))
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, ok, err := extractRow(row)
		if err != nil {
			w.log.Warn("Не удалось разобрать строку", zap.Int("row", i), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// extractRow возвращает ok=false для строки заголовков.
func extractRow(row locator.Element) (Record, bool, error) {
	text, err := row.Text()
	if err != nil {
		return Record{}, false, fmt.Errorf("ошибка чтения текста строки: %w", err)
	}
	if IsHeaderRow(text) {
		return Record{}, false, nil
	}

	var cells []string
	for _, cell := range locator.Resolve(row, cellCandidates) {
		t, err := cell.Text()
		if err != nil {
			return Record{}, false, fmt.Errorf("ошибка чтения ячейки: %w", err)
		}
		// чекбоксы и кнопки действий дают пустые ячейки
		if t = strings.TrimSpace(t); t != "" {
			cells = append(cells, t)
		}
	}

	if len(cells) == 0 {
		cells = SplitLines(text)
	}

	return RecordFromCells(cells), true, nil
}
