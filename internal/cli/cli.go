// Package cli собирает команды hrm-scraper на cobra.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hrmScraper/internal/cli/commands"
	"hrmScraper/internal/config"
	"hrmScraper/internal/database"
	"hrmScraper/internal/logger"
	"hrmScraper/internal/migrations"
	"hrmScraper/internal/scenario"
)

var ErrDatabaseDisabled = errors.New("БД не настроена: задайте DB_HOST и DB_NAME")

type CLI struct {
	cfg  *config.Cfg
	log  *logger.Zap
	out  io.Writer
	open scenario.OpenFunc
	root *cobra.Command
}

func New(cfg *config.Cfg, log *logger.Zap) *CLI {
	c := &CLI{
		cfg:  cfg,
		log:  log,
		out:  os.Stdout,
		open: commands.LaunchFunc(cfg.Browser, log.Logger),
	}
	c.root = c.rootCommand()
	return c
}

// WithSession подменяет открытие браузера; используется в тестах.
func (c *CLI) WithSession(open scenario.OpenFunc) *CLI {
	c.open = open
	return c
}

func (c *CLI) WithOutput(out io.Writer) *CLI {
	c.out = out
	c.root.SetOut(out)
	c.root.SetErr(out)
	return c
}

func (c *CLI) Execute(ctx context.Context, args ...string) error {
	if args != nil {
		c.root.SetArgs(args)
	}
	return c.root.ExecuteContext(ctx)
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hrm-scraper",
		Short:         "Выгрузка списка пользователей OrangeHRM в CSV и JSON",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, closeDB, err := c.repository(false)
			if err != nil {
				return err
			}
			defer closeDB()
			return commands.NewScrapeHandler(c.cfg, c.log.Logger, c.open, repo, c.out).Run(cmd.Context())
		},
	}

	root.AddCommand(
		c.scenariosCommand(),
		c.extractCommand(),
		c.runsCommand(),
		c.showCommand(),
		c.installCommand(),
	)
	return root
}

func (c *CLI) scenariosCommand() *cobra.Command {
	var dataPath, artifactsDir string
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Прогнать позитивные и негативные сценарии входа",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.NewScenarioHandler(c.cfg, c.log.Logger, c.open, c.out).
				Run(cmd.Context(), dataPath, artifactsDir)
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", c.cfg.Scenario.DataPath, "файл учетных записей (JSON или YAML)")
	cmd.Flags().StringVar(&artifactsDir, "artifacts", c.cfg.Scenario.ArtifactsDir, "каталог артефактов")
	return cmd
}

func (c *CLI) extractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <page.html>...",
		Short: "Извлечь записи из сохраненных страниц System Users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := c.repository(false)
			if err != nil {
				return err
			}
			defer closeDB()
			return commands.NewExtractHandler(c.cfg, c.log.Logger, repo, c.out).Run(cmd.Context(), args)
		},
	}
}

func (c *CLI) runsCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Список сохраненных прогонов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, closeDB, err := c.repository(true)
			if err != nil {
				return err
			}
			defer closeDB()
			return commands.NewShowHandler(repo, c.log.Logger, c.out).List(limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "сколько прогонов показать")
	return cmd
}

func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Детали прогона и его записи",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := c.repository(true)
			if err != nil {
				return err
			}
			defer closeDB()
			return commands.NewShowHandler(repo, c.log.Logger, c.out).Show(args[0])
		},
	}
}

func (c *CLI) installCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Установить драйвер и браузер playwright",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return commands.NewBrowserHandler(c.cfg.Browser, c.out).Install()
		},
	}
}

// repository применяет миграции и подключается к БД. Без настроенной БД
// возвращает nil-репозиторий либо ErrDatabaseDisabled, если БД обязательна.
func (c *CLI) repository(required bool) (*database.RunRepository, func(), error) {
	noop := func() {}
	if !c.cfg.Database.Enabled() {
		if required {
			return nil, noop, ErrDatabaseDisabled
		}
		return nil, noop, nil
	}

	if err := migrations.Run(c.cfg, c.log.Logger); err != nil {
		return nil, noop, err
	}
	db, err := database.New(c.cfg, c.log.Logger)
	if err != nil {
		if required {
			return nil, noop, err
		}
		c.log.Warn("История прогонов отключена", zap.Error(err))
		return nil, noop, nil
	}
	return database.NewRunRepository(db.DB), func() { db.Close(c.log.Logger) }, nil
}
