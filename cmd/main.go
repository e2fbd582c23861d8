package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "controlling_heating/docs"
	"controlling_heating/internal/alert"
	"controlling_heating/internal/config"
	"controlling_heating/internal/engine"
	"controlling_heating/internal/handlers"
	"controlling_heating/internal/logger"
	"controlling_heating/internal/metrics"
	"controlling_heating/internal/models"
	"controlling_heating/internal/registry"
	"controlling_heating/internal/relay"
	"controlling_heating/internal/repository"
	"controlling_heating/internal/repository/db"
	"controlling_heating/internal/schedule"
	"controlling_heating/internal/sensor"
	"controlling_heating/internal/server"
	"controlling_heating/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title           Heating controller API
// @version         1.0
// @description     Schedules and drives home heating relays.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	configPath := flag.String("config", os.Getenv("HEATING_CONFIG"), "path to config.yml (default configs/config.yml)")
	flag.Parse()

	// load config.yml
	watcher, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	cfg := watcher.Config()

	// init logger
	log := logger.Get(cfg.Log.Level)

	// open DB
	conn, err := openDB(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	alerts, closeAlerts := buildAlerts(cfg.Alerts, log)
	defer closeAlerts()

	reg := registry.New(
		engineFactory(watcher, repos, alerts, metrics.New(prometheus.DefaultRegisterer), log),
		repos.Systems,
		log,
	)
	services := service.NewService(repos, reg, service.Options{
		SigningKey:     cfg.Auth.SigningKey,
		TokenTTL:       cfg.Auth.TokenTTL,
		Limits:         schedule.Limits{MinTarget: cfg.Heating.TargetMin, MaxTarget: cfg.Heating.TargetMax},
		DefaultAdvance: time.Duration(cfg.Heating.DefaultAdvanceMinutes) * time.Minute,
		Log:            log,
	})
	apiHandler := handlers.NewHandler(services, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// resume systems that were running before the last shutdown
	if err := reg.RestoreActivated(ctx); err != nil {
		log.Errorw("restore_activated_failed", "err", err)
	}

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("http_listening", "port", cfg.Port)
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		reloadOnHangup(gctx, watcher, log)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(srv, reg, log)
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server_exited", "err", err)
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		path = "app.db"
	}
	return db.InitDB(path)
}

// buildAlerts always logs alerts and adds Slack and MQTT when configured.
func buildAlerts(cfg config.AlertsConfig, log *logger.Logger) (*alert.Async, func()) {
	sinks := alert.Sinks{alert.Log{Logger: log}}
	var mqtt *alert.MQTT
	if cfg.Slack.WebhookURL != "" {
		sinks = append(sinks, alert.Slack{WebhookURL: cfg.Slack.WebhookURL, Username: "heating"})
	}
	if cfg.MQTT.Broker != "" {
		m, err := alert.NewMQTT(cfg.MQTT.Broker, cfg.MQTT.ClientID, cfg.MQTT.Topic)
		if err != nil {
			log.Errorw("mqtt_alerts_disabled", "broker", cfg.MQTT.Broker, "err", err)
		} else {
			mqtt = m
			sinks = append(sinks, m)
		}
	}
	async := alert.NewAsync(sinks, log)
	return async, func() {
		async.Wait()
		if mqtt != nil {
			_ = mqtt.Close()
		}
	}
}

// engineFactory reads the heating settings at creation time, so a reload
// applies to engines started afterwards.
func engineFactory(w *config.Watcher, repos *repository.Repository, alerts alert.Sink, m *metrics.Metrics, log *logger.Logger) registry.Factory {
	return func(sys models.HeatingSystem) (*engine.Engine, error) {
		h := w.Config().Heating
		loc, err := h.Location()
		if err != nil {
			return nil, err
		}
		open := relay.NewOpener(relay.Options{Chip: h.GPIOChip, PinOnState: h.PinOnState, Fake: h.FakeRelay})
		r, err := open(sys)
		if err != nil {
			return nil, err
		}
		return engine.New(sys, engine.Params{
			Threshold:       h.Threshold,
			MinimumTemp:     h.MinimumTemp,
			AdvanceTarget:   h.AdvanceTarget,
			LoopInterval:    h.LoopInterval,
			AdvanceInterval: h.AdvanceInterval,
			Location:        loc,
		}, engine.Deps{
			Sensor:  sensor.NewHTTPGateway(h.SensorTimeout),
			Relay:   r,
			Periods: repos.Periods,
			Program: repos.Systems,
			Events:  repos.Events,
			Alerts:  alerts,
			Metrics: m,
			Log:     log,
		}), nil
	}
}

// reloadOnHangup re-reads the config file on SIGHUP until ctx is done.
func reloadOnHangup(ctx context.Context, w *config.Watcher, log *logger.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			cfg, err := w.Reload()
			if err != nil {
				log.Errorw("config_reload_failed", "err", err)
				continue
			}
			log.SetLevel(cfg.Log.Level)
			log.Infow("config_reloaded", "log_level", cfg.Log.Level)
		}
	}
}

// shutdown drains HTTP and switches every relay off. Activation flags are kept
// so the same systems resume on the next start.
func shutdown(srv *server.Server, reg *registry.Registry, log *logger.Logger) error {
	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	reg.StopAll()
	return err
}
