// Package report turns colony results into JSON documents and a plain-text
// convergence summary.
//
// Non-finite numbers (an absent TSP tour has cost +Inf) are encoded as JSON
// null, so every document stays valid JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/continuous"
	"github.com/katalvlaran/antcolony/convergence"
	"github.com/katalvlaran/antcolony/tsp"
)

// Run modes.
const (
	ModeTSP      = "tsp"
	ModeSchwefel = "schwefel"
)

// Float is a float64 that encodes NaN and ±Inf as null.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(v)
}

// Floats converts a slice for encoding.
func Floats(vs []float64) []Float {
	if vs == nil {
		return nil
	}
	out := make([]Float, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}

	return out
}

// Document is any report that can be saved under its run identity.
type Document interface {
	RunMode() string
	RunID() string
}

// Run identifies one execution.
type Run struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"createdAt"`
	ElapsedMs int64     `json:"elapsedMs"`
}

func newRun(mode string, elapsed time.Duration) Run {
	return Run{
		ID:        uuid.New().String(),
		Mode:      mode,
		CreatedAt: time.Now().UTC(),
		ElapsedMs: elapsed.Milliseconds(),
	}
}

// RunMode returns the run mode.
func (r Run) RunMode() string { return r.Mode }

// RunID returns the run identifier.
func (r Run) RunID() string { return r.ID }

// Sample is one point of the sampled convergence curve.
type Sample struct {
	Iteration int   `json:"iteration"`
	Value     Float `json:"value"`
}

// Summary mirrors convergence.Summary for encoding.
type Summary struct {
	Initial       Float    `json:"initial"`
	Final         Float    `json:"final"`
	Improvement   Float    `json:"improvement"`
	BestIteration int      `json:"bestIteration"`
	BestValue     Float    `json:"bestValue"`
	Samples       []Sample `json:"samples"`
}

func newSummary(h convergence.History) Summary {
	s := h.Summarize()
	out := Summary{
		Initial:       Float(s.Initial),
		Final:         Float(s.Final),
		Improvement:   Float(s.Improvement),
		BestIteration: s.BestIteration,
		BestValue:     Float(s.BestValue),
		Samples:       make([]Sample, len(s.Samples)),
	}
	for i, p := range s.Samples {
		out.Samples[i] = Sample{Iteration: p.Iteration, Value: Float(p.Value)}
	}

	return out
}

// TSPReport documents one TSP run.
type TSPReport struct {
	Run
	Params  config.TSP `json:"params"`
	Found   bool       `json:"found"`
	Route   []string   `json:"route"`
	Cost    Float      `json:"cost"`
	History []Float    `json:"history"`
	Summary Summary    `json:"summary"`
}

// NewTSP builds the report for res.
func NewTSP(res tsp.Result[string], params config.TSP, elapsed time.Duration) *TSPReport {
	return &TSPReport{
		Run:     newRun(ModeTSP, elapsed),
		Params:  params,
		Found:   res.Found,
		Route:   res.Route,
		Cost:    Float(res.Cost),
		History: Floats(res.History),
		Summary: newSummary(res.History),
	}
}

// ContinuousReport documents one Schwefel run.
type ContinuousReport struct {
	Run
	Params  config.Schwefel `json:"params"`
	Best    []Float         `json:"best"`
	Cost    Float           `json:"cost"`
	History []Float         `json:"history"`
	Summary Summary         `json:"summary"`
}

// NewContinuous builds the report for res.
func NewContinuous(res continuous.Result, params config.Schwefel, elapsed time.Duration) *ContinuousReport {
	return &ContinuousReport{
		Run:     newRun(ModeSchwefel, elapsed),
		Params:  params,
		Best:    Floats(res.X),
		Cost:    Float(res.Cost),
		History: Floats(res.History),
		Summary: newSummary(res.History),
	}
}

// Batch documents repeated independent runs of one mode.
type Batch struct {
	Run
	Costs      []Float `json:"costs"`
	Runs       int     `json:"runs"`
	Infeasible int     `json:"infeasible"`
	Mean       Float   `json:"mean"`
	StdDev     Float   `json:"stdDev"`
	Min        Float   `json:"min"`
	Max        Float   `json:"max"`
}

// NewBatch aggregates the best costs of several runs.
func NewBatch(mode string, costs []float64, elapsed time.Duration) *Batch {
	s := convergence.Aggregate(costs)

	return &Batch{
		Run:        newRun(mode, elapsed),
		Costs:      Floats(costs),
		Runs:       s.Runs,
		Infeasible: s.Infeasible,
		Mean:       Float(s.Mean),
		StdDev:     Float(s.StdDev),
		Min:        Float(s.Min),
		Max:        Float(s.Max),
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// FileName returns the file name Save uses for doc.
func FileName(doc Document) string {
	return fmt.Sprintf("aco_%s_%s.json", doc.RunMode(), doc.RunID())
}

// Save writes doc into dir (created if needed) and returns the file path.
func Save(dir string, doc Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create %q: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(doc))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create %q: %w", path, err)
	}
	if err = WriteJSON(f, doc); err != nil {
		f.Close()
		return "", fmt.Errorf("report: write %q: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("report: close %q: %w", path, err)
	}

	return path, nil
}
