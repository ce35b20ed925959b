package main

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-dbscan/pkg/config"
	"github.com/0x0FACED/go-dbscan/pkg/dataset"
	"github.com/0x0FACED/go-dbscan/pkg/dbscan"
	"github.com/0x0FACED/go-dbscan/pkg/logger"
	"github.com/0x0FACED/go-dbscan/pkg/metrics"
	"github.com/0x0FACED/go-dbscan/pkg/present"
	"github.com/0x0FACED/go-dbscan/static"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// O(n²) на запрос, поэтому размер набора из формы ограничен
const maxFormPoints = 20000

type server struct {
	cfg     *config.Config
	metrics *metrics.Collector
}

func newRouter(cfg *config.Config, m *metrics.Collector) chi.Router {
	s := &server{cfg: cfg, metrics: m}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.diagramHandler)
	r.Post("/", s.diagramHandler)
	r.Get("/health", healthCheck)
	r.Handle("/metrics", m.Handler())

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

// параметры одного построения, по умолчанию берутся из конфига
type formParams struct {
	dataset config.Dataset
	epsilon float64
	minPts  int
}

func (s *server) parseParams(r *http.Request, log *logger.ZapLogger) formParams {
	p := formParams{
		dataset: s.cfg.Dataset,
		epsilon: s.cfg.Clustering.Epsilon,
		minPts:  s.cfg.Clustering.MinPoints,
	}
	// в вебе набор только генерируется
	if p.dataset.Kind == config.DatasetCSV {
		p.dataset.Kind = config.DatasetRandom
	}

	if r.Method != http.MethodPost {
		return p
	}
	if err := r.ParseForm(); err != nil {
		log.Warn("[http] Не удалось разобрать форму", zap.Error(err))
		return p
	}

	p.dataset.Points = formInt(r, "points", p.dataset.Points, log)
	p.dataset.Min = formFloat(r, "min", p.dataset.Min, log)
	p.dataset.Max = formFloat(r, "max", p.dataset.Max, log)
	p.dataset.Decimals = formInt(r, "decimals", p.dataset.Decimals, log)
	p.epsilon = formFloat(r, "epsilon", p.epsilon, log)
	p.minPts = formInt(r, "minpts", p.minPts, log)

	if p.dataset.Points > maxFormPoints {
		log.Warn("[http] Слишком много точек, обрезаем", zap.Int("points", p.dataset.Points), zap.Int("max", maxFormPoints))
		p.dataset.Points = maxFormPoints
	}

	switch kind := r.FormValue("dataset"); kind {
	case config.DatasetRandom, config.DatasetGrid:
		p.dataset.Kind = kind
	case "":
	default:
		log.Warn("[http] Неизвестный набор, оставляем по умолчанию", zap.String("dataset", kind))
	}

	// форма обходит проверку конфига, поэтому диапазон проверяем здесь (NaN тоже отсекается)
	if !(p.dataset.Max > p.dataset.Min) {
		log.Warn("[http] Пустой диапазон координат, берем по умолчанию",
			zap.Float64("min", p.dataset.Min), zap.Float64("max", p.dataset.Max))
		p.dataset.Min, p.dataset.Max = s.cfg.Dataset.Min, s.cfg.Dataset.Max
	}

	// сетка должна лечь в [min, max] по обеим осям
	if p.dataset.Kind == config.DatasetGrid && p.dataset.Max > p.dataset.Min {
		p.dataset.Width = p.dataset.Max - p.dataset.Min
		p.dataset.Height = p.dataset.Max - p.dataset.Min
	}

	return p
}

func formInt(r *http.Request, name string, def int, log *logger.ZapLogger) int {
	raw := r.FormValue(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("[http] Некорректное значение, берем по умолчанию", zap.String("field", name), zap.String("value", raw), zap.Int("default", def))
		return def
	}
	return v
}

func formFloat(r *http.Request, name string, def float64, log *logger.ZapLogger) float64 {
	raw := r.FormValue(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn("[http] Некорректное значение, берем по умолчанию", zap.String("field", name), zap.String("value", raw), zap.Float64("default", def))
		return def
	}
	return v
}

// http обработчик страницы с графиком и формой для ввода данных
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	log := logger.New()
	defer log.ClearLogs()

	params := s.parseParams(r, log)

	points, err := dataset.FromConfig(params.dataset, nil)()
	if err != nil {
		log.Error("[http] Не удалось получить точки", zap.Error(err))
		s.metrics.ObserveFailure()
		writePage(w, http.StatusInternalServerError, nil, err, log)
		return
	}

	start := time.Now()
	res, err := dbscan.Scan(points, params.epsilon, params.minPts, log)
	if err != nil {
		s.metrics.ObserveFailure()
		writePage(w, http.StatusBadRequest, nil, err, log)
		return
	}
	s.metrics.ObserveRun(res, time.Since(start))

	writePage(w, http.StatusOK, res, nil, log)
}

func writePage(w http.ResponseWriter, status int, res *dbscan.Result, runErr error, log *logger.ZapLogger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	fmt.Fprintln(w, static.Part1)

	if runErr != nil {
		fmt.Fprintf(w, "<p class=\"error\">%s</p>\n", html.EscapeString(runErr.Error()))
	}
	if res != nil {
		title := fmt.Sprintf("DBSCAN: кластеров %d, шум %d", len(res.Clusters), len(res.Noise))
		if err := present.ScatterPresenter(title)(w, res); err != nil {
			log.Error("[http] Ошибка рендеринга графика", zap.Error(err))
		}
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	for _, l := range log.Logs {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, static.Part3)
}
