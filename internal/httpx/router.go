package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rupam1998/clarity-ai-app/internal/engine"
	"github.com/rupam1998/clarity-ai-app/internal/store"
	"github.com/rupam1998/clarity-ai-app/internal/utils"
)

type router struct {
	log     *slog.Logger
	eng     *engine.Engine
	reports *store.ReportStore
	metrics *utils.HTTPMetrics
}

func NewRouter(log *slog.Logger, eng *engine.Engine, reports *store.ReportStore, m *utils.HTTPMetrics) http.Handler {
	rt := &router{log: log, eng: eng, reports: reports, metrics: m}

	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	if m != nil {
		mux.Use(utils.Metrics(m))
	}

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/analyze", rt.analyze)
	mux.Get("/reports/{id}", rt.report)

	return mux
}

func (rt *router) analyze(w http.ResponseWriter, r *http.Request) {
	var req engine.Request
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	result, err := rt.eng.Analyze(r.Context(), req)
	if err != nil {
		// the engine only errors on contract violations, never on bad data
		rt.log.Warn("analyze rejected", slog.String("rid", utils.RID(r.Context())), slog.String("err", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result.ReportID = uuid.NewString()
	rt.reports.Put(result.ReportID, result)
	if rt.metrics != nil {
		rt.metrics.AnalysesTotal.Inc()
		rt.metrics.KeywordsAnalyzed.Add(float64(result.Stats.TotalUnits))
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *router) report(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, ok := rt.reports.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
