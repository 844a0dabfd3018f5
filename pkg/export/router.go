package export

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gilrrei/timer3/pkg/timer"
)

// Router builds the HTTP surface: /metrics for Prometheus scrapes, /report
// for the plain-text table and /report.csv for the hierarchical CSV.
func Router(tm *timer.Timer) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", NewExporter(tm)).Methods("GET")
	r.HandleFunc("/report", handleReport(tm)).Methods("GET")
	r.HandleFunc("/report.csv", handleCSV(tm)).Methods("GET")
	return r
}

func handleReport(tm *timer.Timer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := tm.Report()
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, timer.ErrNoRecords) {
				status = http.StatusServiceUnavailable
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, out)
	}
}

func handleCSV(tm *timer.Timer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tm.Len() == 0 {
			http.Error(w, timer.ErrNoRecords.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=timings.csv")
		if err := tm.WriteCSV(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
