package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"

	_ "saunactl/docs"
	"saunactl/internal/control"
	"saunactl/internal/display"
	"saunactl/internal/handlers"
	"saunactl/internal/hw"
	"saunactl/internal/logger"
	"saunactl/internal/metrics"
	"saunactl/internal/mqtt"
	"saunactl/internal/repository"
	"saunactl/internal/server"
	"saunactl/internal/service"
)

// @title        Sauna Controller API
// @version      1.0
// @description  Remote command and status surface of a single-appliance sauna controller.

func main() {
	cfgErr := loadConfig()

	log := logger.Get(viper.GetString("log_level"))
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// open DB for the event log
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// hardware boundary: real GPIO/w1 or fakes, per config
	sensor, panel, relay, closeHW, err := buildHardware(log)
	if err != nil {
		log.Fatalw("failed to init hardware", "err", err)
	}
	defer closeHW()

	// wire dependencies
	repos := repository.NewRepository(db)
	recorder := service.NewRecorder(repos.EventRepo, log)

	loop := control.NewLoop(control.Deps{
		Sensor:  sensor,
		Panel:   panel,
		Relay:   relay,
		Display: display.NewConsole(log, localAddress),
		Events:  recorder,
		Log:     log,
		Tick:    viper.GetDuration("loop.tick"),
	})
	services := service.NewService(loop, repos)

	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics.NewCollector(loop.Snapshot))
	apiHandler := handlers.NewHandler(services, log, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go recorder.Run(ctx)
	go loop.Run(ctx)
	startTelemetry(ctx, loop, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("log_level", logger.InfoLevel)
	viper.SetDefault("port", "8080")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "sauna.db")
		dbPath = "sauna.db"
	}
	return repository.InitDB(dbPath)
}

// buildHardware returns the sensor, panel and relay implementations selected
// by hardware.mode, plus a cleanup func releasing any kernel resources.
func buildHardware(log *logger.Logger) (hw.TempSensor, hw.Panel, hw.Relay, func(), error) {
	if viper.GetString("hardware.mode") != "gpio" {
		log.Infow("running with fake hardware; set hardware.mode: gpio for the real thing")
		return &hw.FakeSensor{TempF: 72.0}, &hw.FakePanel{}, &hw.FakeRelay{}, func() {}, nil
	}

	sensor, err := hw.NewW1Sensor(viper.GetString("hardware.sensor_id"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	relay, err := hw.NewGPIORelay(pin("hardware.pins.relay", hw.DefaultPinRelay))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	panel, err := hw.NewGPIOPanel(
		pin("hardware.pins.encoder_a", hw.DefaultPinEncoderA),
		pin("hardware.pins.encoder_b", hw.DefaultPinEncoderB),
		pin("hardware.pins.button", hw.DefaultPinButton),
	)
	if err != nil {
		_ = relay.Close()
		return nil, nil, nil, nil, err
	}
	closeHW := func() {
		if err := panel.Close(); err != nil {
			log.Errorw("close panel", "err", err)
		}
		if err := relay.Close(); err != nil {
			log.Errorw("close relay", "err", err)
		}
	}
	return sensor, panel, relay, closeHW, nil
}

func pin(key string, def int) int {
	if v := viper.GetInt(key); v > 0 {
		return v
	}
	return def
}

// startTelemetry connects the optional MQTT publisher when a broker is
// configured.
func startTelemetry(ctx context.Context, loop *control.Loop, log *logger.Logger) {
	broker := viper.GetString("mqtt.broker")
	if broker == "" {
		return
	}
	pub, err := mqtt.NewRealPublisher(broker, viper.GetString("mqtt.topic"))
	if err != nil {
		log.Errorw("mqtt disabled, broker unreachable", "err", err, "broker", broker)
		return
	}
	interval := viper.GetDuration("mqtt.interval")
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		defer func() { _ = pub.Close() }()
		mqtt.Run(ctx, pub, loop.Snapshot, interval, log)
	}()
}

// localAddress feeds the "IP" menu entry: hostname stands in for the SSID
// (association is handled outside the controller).
func localAddress() (string, string) {
	host, _ := os.Hostname()
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return host, "unknown"
	}
	defer conn.Close()
	return host, conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down...")

	// stop the loop, recorder and telemetry goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
