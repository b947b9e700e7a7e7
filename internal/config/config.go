package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultLoginURL = "https://opensource-demo.orangehrmlive.com/web/index.php/auth/login"
	DefaultUsername = "Admin"
	DefaultPassword = "admin123"
)

type Cfg struct {
	Target     Target
	Browser    Browser
	Scrape     Scrape
	Output     Output
	Scenario   Scenario
	Database   Database
	Migrations Migrations
	Logger     Logger
}

type Target struct {
	LoginURL string
	Username string
	Password string
}

type Browser struct {
	Engine       string // chromium, firefox, webkit
	Display      string
	Headless     bool
	BrowsersPath string
	SlowMo       time.Duration
	Timeout      time.Duration
}

// Scrape задает границы ожиданий и задержки стабилизации.
type Scrape struct {
	PageTimeout  time.Duration // ожидание таблицы и строк
	LoginTimeout time.Duration // ожидание маркера Dashboard, короче PageTimeout
	ClickDelay   time.Duration // пауза после прокрутки к кнопке Next
	SettleDelay  time.Duration // пауза после перехода на следующую страницу
	MaxPages     int           // 0 - без ограничения
}

// Naming: "fixed" перезаписывает файлы, "timestamp" добавляет метку времени.
type Output struct {
	Dir    string
	Prefix string
	Naming string
}

type Scenario struct {
	DataPath     string
	ArtifactsDir string
}

type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// Enabled сообщает, настроена ли база для истории запусков.
func (d Database) Enabled() bool {
	return d.Host != "" && d.Name != ""
}

type Migrations struct {
	Path string
}

type Logger struct {
	Env   string
	Level string
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		Target: Target{
			LoginURL: env("HRM_LOGIN_URL", DefaultLoginURL),
			Username: env("HRM_USERNAME", DefaultUsername),
			Password: env("HRM_PASSWORD", DefaultPassword),
		},
		Browser: Browser{
			Engine:       env("PW_BROWSER", "chromium"),
			Display:      os.Getenv("DISPLAY"),
			Headless:     envBoolDefault("PW_HEADLESS", true),
			BrowsersPath: env("PLAYWRIGHT_BROWSERS_PATH", ""),
			SlowMo:       envDuration("PW_SLOWMO", 0),
			Timeout:      envDuration("PW_TIMEOUT", 30*time.Second),
		},
		Scrape: Scrape{
			PageTimeout:  envDuration("SCRAPE_PAGE_TIMEOUT", 20*time.Second),
			LoginTimeout: envDuration("SCRAPE_LOGIN_TIMEOUT", 5*time.Second),
			ClickDelay:   envDuration("SCRAPE_CLICK_DELAY", 200*time.Millisecond),
			SettleDelay:  envDuration("SCRAPE_SETTLE_DELAY", 1200*time.Millisecond),
			MaxPages:     envInt("SCRAPE_MAX_PAGES", 0),
		},
		Output: Output{
			Dir:    env("OUTPUT_DIR", "."),
			Prefix: env("OUTPUT_PREFIX", "orangehrm_users"),
			Naming: env("OUTPUT_NAMING", "fixed"),
		},
		Scenario: Scenario{
			DataPath:     env("SCENARIO_DATA", "data/users.json"),
			ArtifactsDir: env("SCENARIO_ARTIFACTS", "artifacts"),
		},
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     env("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
		Migrations: Migrations{
			Path: env("MIGRATIONS_PATH", "file://migrations"),
		},
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}

func envBoolDefault(key string, defaultValue bool) bool {
	if os.Getenv(key) == "" {
		return defaultValue
	}
	return envBool(key)
}

// envDuration принимает "1.5s", "200ms" и т.п.; голое число трактуется как миллисекунды.
func envDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Millisecond
	}
	return defaultValue
}
