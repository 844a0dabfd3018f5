package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gilrrei/timer3/pkg/hostinfo"
	"github.com/gilrrei/timer3/pkg/logging"
	"github.com/gilrrei/timer3/pkg/timer"
	"github.com/gilrrei/timer3/pkg/workload"
)

var (
	csvPath string
	quiet   bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <workload.yaml>",
	Short: "Run a workload and print the timing table",
	Long: `Execute a YAML-described workload under the timer, reconstruct the call
hierarchy from the recorded log and print it as a table. With --csv the
hierarchy is additionally exported as a CSV file.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&csvPath, "csv", "", "also export the timing hierarchy to this CSV file")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress per-scope start/finish log messages")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	wl, err := workload.Load(args[0])
	if err != nil {
		return err
	}

	host := hostinfo.Collect()
	logger.Info("Running workload", map[string]interface{}{
		"workload": wl.Name,
		"cpu":      host.CPUModel,
		"cores":    host.LogicalCores,
	})

	tm := timer.New()
	var sink timer.LogFunc
	if !quiet {
		sink = logger.Sink(logging.DEBUG)
	}
	wl.Run(tm, sink)

	report, err := tm.Report()
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Print(report)

	if csvPath != "" {
		if err := tm.ExportCSV(csvPath); err != nil {
			return fmt.Errorf("failed to export csv: %w", err)
		}
		logger.Info("Exported timing csv", map[string]interface{}{"path": csvPath})
	}

	return nil
}
