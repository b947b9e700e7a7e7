package database

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hrmScraper/internal/config"
)

type Database struct {
	DB *gorm.DB
}

func New(cfg *config.Cfg, log *zap.Logger) (*Database, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg.Database)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к PostgreSQL: %w", err)
	}

	log.Info("Подключение к БД установлено",
		zap.String("host", cfg.Database.Host),
		zap.String("db", cfg.Database.Name))

	return &Database{DB: db}, nil
}

func (d *Database) Close(log *zap.Logger) {
	sqlDB, err := d.DB.DB()
	if err != nil {
		log.Warn("Не удалось получить соединение БД", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("Ошибка закрытия БД", zap.Error(err))
	}
}

// DSN - строка подключения в формате key=value для драйвера gorm.
func DSN(db config.Database) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode)
}

// URL - строка подключения для golang-migrate.
func URL(db config.Database) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Host + ":" + db.Port,
		Path:     "/" + db.Name,
		RawQuery: url.Values{"sslmode": {db.SSLMode}}.Encode(),
	}
	return u.String()
}
