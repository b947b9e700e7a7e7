// Package database хранит историю прогонов скрапера в PostgreSQL через GORM.
package database

import "time"

const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// ScrapeRun - один запуск скрапера (scrape или extract).
// Статусы: running, completed, failed. Pages, RawCount и RecordCount -
// посещенные страницы и записи до и после дедупликации.
type ScrapeRun struct {
	ID          uint       `gorm:"primaryKey"`
	Command     string     `gorm:"type:varchar(32);not null"`
	Status      string     `gorm:"type:varchar(32);not null;default:'running'"`
	Pages       int        `gorm:"not null;default:0"`
	RawCount    int        `gorm:"not null;default:0"`
	RecordCount int        `gorm:"not null;default:0"`
	CSVPath     string     `gorm:"column:csv_path;type:text"`
	JSONPath    string     `gorm:"column:json_path;type:text"`
	Error       string     `gorm:"type:text"`
	StartedAt   time.Time  `gorm:"not null"`
	FinishedAt  *time.Time `gorm:"column:finished_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

// UserRecord - запись System Users, сохраненная в рамках прогона.
// Position - порядок после дедупликации.
type UserRecord struct {
	ID           uint      `gorm:"primaryKey"`
	RunID        uint      `gorm:"index;not null"`
	Position     int       `gorm:"not null"`
	Username     string    `gorm:"type:text;not null"`
	UserRole     string    `gorm:"type:text"`
	EmployeeName string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(32)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
