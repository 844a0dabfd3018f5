package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gilrrei/timer3/pkg/export"
	"github.com/gilrrei/timer3/pkg/logging"
	"github.com/gilrrei/timer3/pkg/timer"
	"github.com/gilrrei/timer3/pkg/workload"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve <workload.yaml>",
	Short: "Run a workload and serve its timing report over HTTP",
	Long: `Execute a YAML-described workload once, then serve the recorded timings:
/metrics in Prometheus text format, /report as a plain-text table and
/report.csv as the hierarchical CSV export.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default :9090)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	wl, err := workload.Load(args[0])
	if err != nil {
		return err
	}

	tm := timer.New()
	wl.Run(tm, logger.Sink(logging.DEBUG))
	logger.Info("Workload finished", map[string]interface{}{
		"workload": wl.Name,
		"regions":  tm.Len(),
	})

	addr := listenAddr
	if addr == "" {
		addr = viper.GetString("listen")
	}
	if addr == "" {
		addr = ":9090"
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: export.Router(tm),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("Serving timing report", map[string]interface{}{"addr": addr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
