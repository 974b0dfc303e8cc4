package analyzer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Outcome is the result of analysing one grammar of a batch. Exactly one
// of Result and Err is set.
type Outcome struct {
	Name   string
	Result *Result
	Err    error
}

// Batch loads and analyses grammars from a source, in parallel. If names is
// empty, all grammars of the source are analysed. Outcomes are returned in
// the order of names.
//
// Errors of a single grammar (not found, malformed, …) are reported in its
// outcome and do not affect the others. If ctx is cancelled, grammars not yet
// analysed get the context's error as outcome. An error is returned only if
// the names of the source cannot be listed.
func Batch(ctx context.Context, src Source, names []string, opts ...Option) ([]Outcome, error) {
	if len(names) == 0 {
		var err error
		if names, err = src.Names(); err != nil {
			return nil, err
		}
	}
	o := collect(opts)
	outcomes := make([]Outcome, len(names))
	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup
	for i, name := range names {
		outcomes[i].Name = name
		select {
		case <-ctx.Done():
			outcomes[i].Err = fmt.Errorf("%s: %w", name, ctx.Err())
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(out *Outcome) {
			defer func() { <-sem; wg.Done() }()
			if err := ctx.Err(); err != nil {
				out.Err = fmt.Errorf("%s: %w", out.Name, err)
				return
			}
			out.Result, out.Err = load(src, out.Name, opts)
		}(&outcomes[i])
	}
	wg.Wait()
	return outcomes, nil
}

func load(src Source, name string, opts []Option) (*Result, error) {
	text, err := src.Load(name)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	return Analyze(name, text, opts...)
}

// Summary concatenates the text blocks of a batch of outcomes, with an
// error line for each grammar which could not be analysed and a warning
// line for each grammar which is not LL(1).
func Summary(outcomes []Outcome) string {
	var b strings.Builder
	for i, out := range outcomes {
		if i > 0 {
			b.WriteByte('\n')
		}
		if out.Err != nil {
			fmt.Fprintf(&b, "=== %s ===\nerror: %v\n", out.Name, out.Err)
			continue
		}
		b.WriteString(out.Result.Text())
		if w := out.Result.Warning(); w != nil {
			fmt.Fprintf(&b, "warning: %v\n", w)
		}
	}
	return b.String()
}
