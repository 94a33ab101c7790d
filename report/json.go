package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/polynizer/fretpath/voicing"
)

// jsonReport is the document written by JSON.
type jsonReport struct {
	Song    string    `json:"song,omitempty"`
	Dropped []string  `json:"dropped,omitempty"`
	Runs    []jsonRun `json:"runs"`
}

// jsonRun carries costs as pointers: a run without solution has a +Inf cost,
// which JSON cannot represent, and is written as null.
type jsonRun struct {
	Algorithm string       `json:"algorithm"`
	Title     string       `json:"title"`
	Solved    bool         `json:"solved"`
	Cost      *float64     `json:"cost"`
	SqrtCost  *float64     `json:"sqrt_cost"`
	ElapsedMS float64      `json:"elapsed_ms"`
	Error     string       `json:"error,omitempty"`
	Path      voicing.Path `json:"path,omitempty"`
	Checks    []Check      `json:"checks,omitempty"`
	Matched   *int         `json:"matched,omitempty"`
}

// JSON writes runs to w as one indented JSON document.
func JSON(w io.Writer, runs []voicing.Run, opts Options) error {
	doc := jsonReport{
		Song:    opts.Song,
		Dropped: opts.Dropped,
		Runs:    make([]jsonRun, len(runs)),
	}
	for i, r := range runs {
		jr := jsonRun{
			Algorithm: r.Algorithm.String(),
			Title:     r.Algorithm.Title(),
			Solved:    r.Err == nil && r.Result.Solved(),
			ElapsedMS: ms(r),
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		if jr.Solved && !math.IsInf(r.Result.Cost, 0) && !math.IsNaN(r.Result.Cost) {
			cost, sqrt := r.Result.Cost, math.Sqrt(r.Result.Cost)
			jr.Cost, jr.SqrtCost = &cost, &sqrt
			jr.Path = r.Result.Path
			if opts.Reference != nil {
				jr.Checks = Verify(r.Result.Path, opts.Reference, opts.Tolerance)
				matched := Matched(jr.Checks)
				jr.Matched = &matched
			}
		}
		doc.Runs[i] = jr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
