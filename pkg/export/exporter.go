// Package export serves timing reports and Prometheus metrics over HTTP.
package export

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/gilrrei/timer3/pkg/hostinfo"
	"github.com/gilrrei/timer3/pkg/timer"
)

// Exporter exposes a timer's record log as Prometheus metrics
type Exporter struct {
	tm    *timer.Timer
	host  hostinfo.Info
	start time.Time
}

// NewExporter creates an exporter over tm. Host facts are sampled once at
// construction.
func NewExporter(tm *timer.Timer) *Exporter {
	return &Exporter{
		tm:    tm,
		host:  hostinfo.Collect(),
		start: time.Now(),
	}
}

// ServeHTTP serves Prometheus-compatible metrics at /metrics
func (e *Exporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	records := e.tm.Records()
	depths := make([]int, len(records))
	for i, rec := range records {
		depths[i] = rec.Depth
	}

	fmt.Fprintf(w, "# HELP timer3_uptime_seconds Time since the exporter started\n")
	fmt.Fprintf(w, "# TYPE timer3_uptime_seconds gauge\n")
	fmt.Fprintf(w, "timer3_uptime_seconds %d\n", int64(time.Since(e.start).Seconds()))

	fmt.Fprintf(w, "\n# HELP timer3_regions_total Number of completed timed regions\n")
	fmt.Fprintf(w, "# TYPE timer3_regions_total gauge\n")
	fmt.Fprintf(w, "timer3_regions_total %d\n", len(records))

	fmt.Fprintf(w, "\n# HELP timer3_max_depth Deepest recorded nesting level\n")
	fmt.Fprintf(w, "# TYPE timer3_max_depth gauge\n")
	fmt.Fprintf(w, "timer3_max_depth %d\n", e.tm.MaxDepth())

	if len(records) > 0 {
		fmt.Fprintf(w, "\n# HELP timer3_region_seconds Wall-clock duration per timed region, rank follows call order\n")
		fmt.Fprintf(w, "# TYPE timer3_region_seconds gauge\n")
		for rank, idx := range timer.SortByCallOrder(depths) {
			rec := records[idx]
			fmt.Fprintf(w, "timer3_region_seconds{region=%q,depth=\"%d\",rank=\"%d\"} %g\n",
				rec.Name, rec.Depth, rank, rec.Seconds)
		}
	}

	fmt.Fprintf(w, "\n# HELP timer3_host_logical_cores Logical CPU cores on the host\n")
	fmt.Fprintf(w, "# TYPE timer3_host_logical_cores gauge\n")
	fmt.Fprintf(w, "timer3_host_logical_cores %d\n", e.host.LogicalCores)

	if e.host.MemTotal > 0 {
		fmt.Fprintf(w, "\n# HELP timer3_host_memory_bytes Host memory by kind\n")
		fmt.Fprintf(w, "# TYPE timer3_host_memory_bytes gauge\n")
		fmt.Fprintf(w, "timer3_host_memory_bytes{kind=\"total\"} %d\n", e.host.MemTotal)
		fmt.Fprintf(w, "timer3_host_memory_bytes{kind=\"used\"} %d\n", e.host.MemUsed)
	}

	// Append Go runtime metrics from the default registry.
	metricFamilies, err := promclient.DefaultGatherer.Gather()
	if err != nil {
		fmt.Fprintf(w, "# Error gathering Prometheus metrics: %v\n", err)
		return
	}
	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			continue
		}
	}
	fmt.Fprintf(w, "\n")
	w.Write(buf.Bytes())
}
