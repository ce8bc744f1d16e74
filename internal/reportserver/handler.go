// Package reportserver hosts the HTML report and the results database over
// HTTP so a browser can inspect finished runs.
package reportserver

import (
	"errors"
	"io"
	"net/http"

	"ragcheck/internal/report"
)

// NewHandler builds the HTTP handler for serving the report and DuckDB file.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.OutputDir == "" {
		return nil, errors.New("reportserver: output dir is required")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", serveReport(cfg.OutputDir))
	if cfg.DBPath != "" {
		mux.Handle("/data/db.duckdb", serveDatabase(cfg.DBPath))
	}
	return mux, nil
}

// serveReport renders the report from the stored runs on every request, so a
// page reload reflects newly finished runs.
func serveReport(outputDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		runs, err := report.LoadAllRuns(outputDir)
		if err != nil {
			http.Error(w, "load runs: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, report.BuildReportHTML(runs))
	}
}

// serveDatabase serves the DuckDB file from disk for browser-side processing.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}
