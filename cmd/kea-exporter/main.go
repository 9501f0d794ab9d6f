// kea-exporter exposes the statistics of ISC Kea DHCP servers as
// Prometheus metrics, reading them over the local control channel.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/common/version"

	"github.com/kea-exporter/kea-exporter/internal/config"
	"github.com/kea-exporter/kea-exporter/internal/exporter"
	"github.com/kea-exporter/kea-exporter/internal/keactrl"
	"github.com/kea-exporter/kea-exporter/internal/logging"
	"github.com/kea-exporter/kea-exporter/internal/metrics"
	"github.com/kea-exporter/kea-exporter/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	listen := flag.String("listen", "", "listen address, overrides the config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Print("kea_exporter"))
		return
	}

	cfg, err := loadConfig(*configPath, *listen, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	// Diagnostics go to stderr, never mixed with metric output.
	logger := logging.Setup(cfg.Server.LogLevel, os.Stderr)
	logger.Info("kea-exporter starting", "targets", len(cfg.Targets), "listen", cfg.Server.ListenAddress)

	if len(cfg.Targets) == 0 {
		fmt.Fprintln(os.Stderr, "FATAL: no Kea control sockets configured")
		os.Exit(1)
	}

	// An unreachable control socket at startup is fatal.
	instances := make([]*exporter.Instance, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		client := keactrl.NewClient(target.Socket, target.QueryTimeout())
		if err := client.Check(); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
			os.Exit(1)
		}
		instances = append(instances, exporter.NewInstance(client))
	}

	catalog4, err := exporter.NewCatalog(exporter.FamilyDHCP4)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
	catalog6, err := exporter.NewCatalog(exporter.FamilyDHCP6)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(versioncollector.NewCollector("kea_exporter"))

	sink := exporter.NewPromSink(registry, catalog4, catalog6)
	mon := metrics.New(registry)
	mon.MonitoredTargets.Set(float64(len(instances)))

	translator := exporter.NewTranslator([]*exporter.Catalog{catalog4, catalog6}, sink, instances, logger, mon)

	// Run one cycle eagerly so unsupported configurations abort at startup
	// instead of on the first scrape.
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = translator.Update(startupCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	fatalCh := make(chan error, 1)
	srv := server.New(cfg.Server, logger, registry, translator, func(err error) {
		select {
		case fatalCh <- err:
		default:
		}
	})

	ln, err := srv.Listen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-fatalCh:
		logger.Error("fatal configuration error", "error", err)
		exitCode = 1
	case err := <-serveErr:
		if err != nil {
			logger.Error("metrics server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	cancel()

	os.Exit(exitCode)
}

// loadConfig assembles the effective configuration from the optional config
// file, flag overrides, and positional socket path arguments.
func loadConfig(path, listen string, sockets []string) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if listen != "" {
		cfg.Server.ListenAddress = listen
	}
	for _, socket := range sockets {
		cfg.Targets = append(cfg.Targets, config.TargetConfig{
			Socket:  socket,
			Timeout: config.DefaultQueryTimeout.String(),
		})
	}
	return cfg, nil
}
