package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/0x0FACED/go-dbscan/pkg/config"
	"github.com/0x0FACED/go-dbscan/pkg/dataset"
	"github.com/0x0FACED/go-dbscan/pkg/dbscan"
	"github.com/0x0FACED/go-dbscan/pkg/logger"
	"github.com/0x0FACED/go-dbscan/pkg/metrics"
	"github.com/0x0FACED/go-dbscan/pkg/present"

	"go.uber.org/zap"
)

// текстовый режим: один прогон, результат в out, логи в stderr
func runText(cfg *config.Config, out io.Writer, log *logger.ZapLogger) error {
	return run(cfg, out, log, present.WriteText)
}

func run(cfg *config.Config, out io.Writer, log *logger.ZapLogger, render present.Presenter) error {
	points, err := dataset.FromConfig(cfg.Dataset, nil)()
	if err != nil {
		return err
	}

	res, err := dbscan.Scan(points, cfg.Clustering.Epsilon, cfg.Clustering.MinPoints, log)
	if err != nil {
		return err
	}

	return render(out, res)
}

func runWeb(cfg *config.Config, log *logger.ZapLogger) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(cfg, metrics.NewCollector("dbscan")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Сервер запущен", zap.String("addr", cfg.Server.Addr))
	return srv.ListenAndServe()
}

func main() {
	configPath := flag.String("config", "config.yaml", "путь к YAML-конфигу")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка конфигурации:", err)
		os.Exit(1)
	}

	log := logger.NewWithOutput(os.Stderr)
	defer log.Sync()

	if cfg.Mode == config.ModeText {
		err = runText(cfg, os.Stdout, log)
	} else {
		err = runWeb(cfg, log)
	}
	if err != nil {
		log.Error("Завершение с ошибкой", zap.Error(err))
		os.Exit(1)
	}
}
