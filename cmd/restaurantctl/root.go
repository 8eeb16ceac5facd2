package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

// env общее окружение подкоманд: конфигурация, логгер и подключение к БД
type env struct {
	cfg *config.Config
	log *logger.Logger
	db  *sql.DB
}

func (e *env) executor() *dbmetrics.DB {
	return dbmetrics.Wrap(e.db, nil)
}

func (e *env) close() {
	if e.db != nil {
		e.db.Close()
	}
}

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "restaurantctl",
		Short:         "Operator tool for SMC-RestaurantService: migrations and opening hours checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to the TOML config")

	// Подключение откладываем до запуска подкоманды, чтобы --help работал без БД
	open := func() (*env, error) {
		return openEnv(configPath)
	}

	root.AddCommand(newMigrateCmd(open))
	root.AddCommand(newAvailabilityCmd(open))
	root.AddCommand(newOpeningHoursCmd(open))

	return root
}

func openEnv(configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	// Логи CLI пишем в stderr, stdout остается под результат команды
	log := logger.NewWithWriter(os.Stderr, cfg.Logs.Level)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s:%d/%s: %w", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, err)
	}

	return &env{cfg: cfg, log: log, db: db}, nil
}
