package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/hookworks/hookd/pkg/config"
	"github.com/hookworks/hookd/pkg/gateway/api"
	"github.com/hookworks/hookd/pkg/gateway/delivery"
	"github.com/hookworks/hookd/pkg/gateway/manager"
	"github.com/hookworks/hookd/pkg/gateway/verifier"
	"github.com/hookworks/hookd/pkg/util"
	"github.com/sirupsen/logrus"
)

const appName string = "hookd"

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the ingest and management servers"`
	Worker struct {
	} `cmd:"" help:"Run the outbound delivery worker"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"existingfile" default:"config.yaml"`
}

type Config struct {
	Database util.PostgresDatabaseConfig `yaml:"database"`
	Server   struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Manager struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		AdminSecret string `yaml:"admin_secret"`
	} `yaml:"manager"`
	Verifier verifier.Config `yaml:"verifier"`
	Delivery struct {
		CheckInterval int `yaml:"check_interval"`
		BatchSize     int `yaml:"batch_size"`
		Timeout       int `yaml:"timeout"`
		MaxAttempts   int `yaml:"max_attempts"`
		LeaseSeconds  int `yaml:"lease_seconds"`
		MaxPerSecond  int `yaml:"max_per_second"`
		Workers       int `yaml:"workers"`
	} `yaml:"delivery"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

type App struct{}

func (a *App) Run() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "worker":
		a.runWorker(cli)
	case "migrate":
		a.runMigrate(cli)
	default:
	}
}

func (a *App) loadConfig(cli CLI) Config {
	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}
	return appConfig
}

func (a *App) initExporter(ctx context.Context, endpoint string) func() {
	if endpoint == "" {
		return func() {}
	}
	exporter, err := otlp_util.InitExporter(
		otlp_util.WithContext(ctx),
		otlp_util.WithEndPoint(endpoint),
		otlp_util.WithServiceName(appName),
		otlp_util.WithInSecure(),
		otlp_util.WithErrorHandler(func(err error) {
			logrus.Warnf("OTLP error: %v", err)
		}),
	)
	if err != nil {
		logrus.Errorf("failed to initialize OTLP exporter: %v", err)
		os.Exit(128)
	}
	return func() { _ = exporter.Shutdown(ctx) }
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()
	appConfig := a.loadConfig(cli)

	shutdownExporter := a.initExporter(ctx, appConfig.OTLPEndpoint)
	defer shutdownExporter()

	apiConfig := api.APIConfig{
		Database:     appConfig.Database,
		LocalAddress: net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port)),
		Verifier:     appConfig.Verifier,
	}
	apiServer, err := api.NewAPIWithConfig(apiConfig)
	if err != nil {
		logrus.Errorf("failed to create API server: %v", err)
		os.Exit(128)
	}

	managerConfig := manager.ManagerConfig{
		Database:     appConfig.Database,
		LocalAddress: net.JoinHostPort(appConfig.Manager.Host, strconv.Itoa(appConfig.Manager.Port)),
		AdminSecret:  appConfig.Manager.AdminSecret,
		Verifier:     appConfig.Verifier,
	}
	managerServer, err := manager.NewManagerWithConfig(managerConfig)
	if err != nil {
		logrus.Errorf("failed to create Manager server: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		if err := apiServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		if err := managerServer.Run(); err != nil {
			logrus.Errorf("failed to run Manager server: %v", err)
			os.Exit(1)
		}
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}
	if err := managerServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close Manager server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
}

func (a *App) runWorker(cli CLI) {
	ctx := context.Background()
	appConfig := a.loadConfig(cli)

	shutdownExporter := a.initExporter(ctx, appConfig.OTLPEndpoint)
	defer shutdownExporter()

	schedulerConfig := delivery.Config{
		Database:      appConfig.Database,
		CheckInterval: appConfig.Delivery.CheckInterval,
		BatchSize:     appConfig.Delivery.BatchSize,
		Timeout:       appConfig.Delivery.Timeout,
		MaxAttempts:   appConfig.Delivery.MaxAttempts,
		LeaseSeconds:  appConfig.Delivery.LeaseSeconds,
		MaxPerSecond:  appConfig.Delivery.MaxPerSecond,
		Workers:       appConfig.Delivery.Workers,
	}
	scheduler, err := delivery.NewSchedulerWithConfig(schedulerConfig)
	if err != nil {
		logrus.Errorf("failed to create delivery scheduler: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()
		scheduler.Run(ctx)
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	wg.Wait()
	logrus.Info("delivery worker stopped")
}

func (a *App) runMigrate(cli CLI) {
	appConfig := a.loadConfig(cli)

	// set up the logger
	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing
		}
	})

	// setup database connection
	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	// create the database if it doesn't exist
	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	// run the migrations
	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
}
