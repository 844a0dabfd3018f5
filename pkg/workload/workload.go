// Package workload runs YAML-described synthetic workloads under a timer so
// timing reports can be produced without instrumenting real code.
package workload

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gilrrei/timer3/pkg/timer"
)

// Duration wraps time.Duration with YAML decoding of strings like "5ms".
type Duration struct {
	time.Duration
}

// UnmarshalYAML decodes a duration string
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// Step is one timed region: it burns Busy of wall-clock time, then runs its
// nested steps inside the same scope.
type Step struct {
	Name  string   `yaml:"name"`
	Busy  Duration `yaml:"busy,omitempty"`
	Steps []Step   `yaml:"steps,omitempty"`
}

// Workload is a named tree of steps.
type Workload struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads and parses a workload definition file.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload %s: %w", path, err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workload %s: %w", path, err)
	}
	return w, nil
}

// Parse decodes and validates a workload definition.
func Parse(data []byte) (*Workload, error) {
	var w Workload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("invalid workload yaml: %w", err)
	}
	if w.Name == "" {
		return nil, fmt.Errorf("workload has no name")
	}
	if len(w.Steps) == 0 {
		return nil, fmt.Errorf("workload %q has no steps", w.Name)
	}
	if err := validateSteps(w.Steps); err != nil {
		return nil, err
	}
	return &w, nil
}

func validateSteps(steps []Step) error {
	for _, s := range steps {
		if s.Name == "" {
			return fmt.Errorf("workload step has no name")
		}
		if err := validateSteps(s.Steps); err != nil {
			return err
		}
	}
	return nil
}

// Run executes every step depth-first under tm, producing a well-nested
// record log. logFn may be nil.
func (w *Workload) Run(tm *timer.Timer, logFn timer.LogFunc) {
	for _, s := range w.Steps {
		runStep(tm, s, logFn)
	}
}

func runStep(tm *timer.Timer, s Step, logFn timer.LogFunc) {
	sc := tm.Time(s.Name, logFn)
	defer sc.End()

	if s.Busy.Duration > 0 {
		time.Sleep(s.Busy.Duration)
	}
	for _, child := range s.Steps {
		runStep(tm, child, logFn)
	}
}
