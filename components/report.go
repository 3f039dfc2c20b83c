package components

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/maps/treemap"
)

// Report holds scenario results ordered by name.
type Report struct {
	results *treemap.Map
}

func newReport(results []*Result) *Report {
	r := &Report{results: treemap.NewWithStringComparator()}
	for _, res := range results {
		if res != nil {
			r.results.Put(res.Name, res)
		}
	}
	return r
}

// Results returns every result in name order.
func (r *Report) Results() []*Result {
	out := make([]*Result, 0, r.results.Size())
	for _, v := range r.results.Values() {
		out = append(out, v.(*Result))
	}
	return out
}

func (r *Report) Get(name string) (*Result, bool) {
	v, ok := r.results.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Result), true
}

// Failed counts scenarios that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results() {
		if !res.OK() {
			n++
		}
	}
	return n
}

func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	for _, res := range r.Results() {
		status := "ok"
		if !res.OK() {
			status = "FAIL"
		}
		if err := write("%-4s %s (%s, %d steps)\n", status, res.Name, res.Kind, res.Steps); err != nil {
			return total, err
		}
		if res.Err != nil {
			if err := write("     setup: %v\n", res.Err); err != nil {
				return total, err
			}
		}
		for _, f := range res.Failures {
			if err := write("     %s\n", f); err != nil {
				return total, err
			}
		}
	}

	err := write("%d scenarios, %d failed\n", r.results.Size(), r.Failed())
	return total, err
}
