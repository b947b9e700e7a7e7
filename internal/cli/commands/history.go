package commands

import (
	"go.uber.org/zap"

	"hrmScraper/internal/database"
	"hrmScraper/internal/output"
	"hrmScraper/internal/scraper"
)

// history пишет прогоны в БД; без репозитория ничего не делает.
type history struct {
	repo *database.RunRepository
	log  *zap.Logger
}

func (h history) start(command string) uint {
	if h.repo == nil {
		return 0
	}
	run := database.ScrapeRun{Command: command}
	if err := h.repo.CreateRun(&run); err != nil {
		h.log.Warn("Не удалось записать прогон в БД", zap.Error(err))
		return 0
	}
	return run.ID
}

func (h history) finish(id uint, res *scraper.Result, files output.Files, runErr error) {
	if h.repo == nil || id == 0 {
		return
	}
	if res != nil && runErr == nil {
		if err := h.repo.SaveRecords(id, res.Records); err != nil {
			h.log.Warn("Не удалось сохранить записи в БД", zap.Uint("run", id), zap.Error(err))
		}
	}
	if err := h.repo.FinishRun(id, database.SummaryOf(res, files.CSV, files.JSON, runErr)); err != nil {
		h.log.Warn("Не удалось обновить прогон в БД", zap.Uint("run", id), zap.Error(err))
	}
}
