package database

import (
	"time"

	"gorm.io/gorm"

	"hrmScraper/internal/sanitizer"
	"hrmScraper/internal/scraper"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) CreateRun(run *ScrapeRun) error {
	if run.Status == "" {
		run.Status = RunRunning
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	return r.db.Create(run).Error
}

// RunSummary - итог прогона для FinishRun. Err == nil означает успех.
type RunSummary struct {
	Pages       int
	RawCount    int
	RecordCount int
	CSVPath     string
	JSONPath    string
	Err         error
}

// SummaryOf собирает RunSummary из результата обхода.
func SummaryOf(res *scraper.Result, csvPath, jsonPath string, err error) RunSummary {
	sum := RunSummary{CSVPath: csvPath, JSONPath: jsonPath, Err: err}
	if res != nil {
		sum.Pages = res.Pages
		sum.RawCount = len(res.Raw)
		sum.RecordCount = len(res.Records)
	}
	return sum
}

func (r *RunRepository) FinishRun(id uint, sum RunSummary) error {
	status, errText := RunCompleted, ""
	if sum.Err != nil {
		status, errText = RunFailed, sanitizer.Sanitize(sum.Err.Error())
	}
	return r.db.Model(&ScrapeRun{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"error":        errText,
			"finished_at":  time.Now(),
			"pages":        sum.Pages,
			"raw_count":    sum.RawCount,
			"record_count": sum.RecordCount,
			"csv_path":     sum.CSVPath,
			"json_path":    sum.JSONPath,
		}).Error
}

func (r *RunRepository) SaveRecords(runID uint, records []scraper.Record) error {
	rows := ToUserRecords(runID, records)
	if len(rows) == 0 {
		return nil
	}
	return r.db.CreateInBatches(rows, 100).Error
}

func (r *RunRepository) GetRun(id uint) (*ScrapeRun, error) {
	var run ScrapeRun
	if err := r.db.First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) ListRuns(limit, offset int) ([]ScrapeRun, error) {
	var runs []ScrapeRun
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *RunRepository) GetRecords(runID uint) ([]UserRecord, error) {
	var rows []UserRecord
	if err := r.db.Where("run_id = ?", runID).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func ToUserRecords(runID uint, records []scraper.Record) []UserRecord {
	rows := make([]UserRecord, len(records))
	for i, rec := range records {
		rows[i] = UserRecord{
			RunID:        runID,
			Position:     i,
			Username:     rec.Username,
			UserRole:     rec.UserRole,
			EmployeeName: rec.EmployeeName,
			Status:       rec.Status,
		}
	}
	return rows
}

// Records переводит сохраненные строки обратно в записи.
func Records(rows []UserRecord) []scraper.Record {
	out := make([]scraper.Record, len(rows))
	for i, row := range rows {
		out[i] = scraper.Record{
			Username:     row.Username,
			UserRole:     row.UserRole,
			EmployeeName: row.EmployeeName,
			Status:       row.Status,
		}
	}
	return out
}
