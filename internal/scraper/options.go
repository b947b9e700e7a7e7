package scraper

import (
	"time"

	"hrmScraper/internal/config"
)

// Options - цель, учетные данные и границы ожиданий одного прогона.
type Options struct {
	LoginURL     string
	Credentials  Credentials
	PageTimeout  time.Duration
	LoginTimeout time.Duration
	ClickDelay   time.Duration
	SettleDelay  time.Duration
	MaxPages     int
	Poll         time.Duration
}

func OptionsFromConfig(cfg *config.Cfg) Options {
	return Options{
		LoginURL: cfg.Target.LoginURL,
		Credentials: Credentials{
			Username: cfg.Target.Username,
			Password: cfg.Target.Password,
		},
		PageTimeout:  cfg.Scrape.PageTimeout,
		LoginTimeout: cfg.Scrape.LoginTimeout,
		ClickDelay:   cfg.Scrape.ClickDelay,
		SettleDelay:  cfg.Scrape.SettleDelay,
		MaxPages:     cfg.Scrape.MaxPages,
	}
}

func (o Options) withDefaults() Options {
	if o.LoginURL == "" {
		o.LoginURL = config.DefaultLoginURL
	}
	if o.PageTimeout == 0 {
		o.PageTimeout = 20 * time.Second
	}
	if o.LoginTimeout == 0 {
		o.LoginTimeout = 5 * time.Second
	}
	if o.Poll == 0 {
		o.Poll = defaultPoll
	}
	return o
}
