package quad

import (
	"io"
	"log/slog"
	"sync"
)

// A Job owns a parsed program together with integration bounds and a
// subdivision count, and approximates the definite integral of the program
// over the bounds by three quadrature rules. The program is shared and
// read-only; any number of jobs may hold the same one. A Job is not safe for
// concurrent use.
type Job struct {
	prog  *Program
	lower float64
	upper float64
	n     int

	workers int
	log     *slog.Logger
	notes   []string
}

// JobOption is an option used when creating a job.
type JobOption func(*Job)

// WithLogger sets the handler that receives configuration warnings (swapped
// bounds, clamped or rounded subdivision counts). The default discards them;
// they remain inspectable through Notes either way.
func WithLogger(h slog.Handler) JobOption {
	return func(j *Job) {
		j.log = slog.New(h)
	}
}

// Parallel sets the number of workers that evaluate sample points. The
// summation order is deterministic for a given worker count, though the
// least-significant bits of a result may differ between worker counts. The
// default is 1, fully serial.
func Parallel(workers int) JobOption {
	return func(j *Job) {
		if workers < 1 {
			workers = 1
		}
		j.workers = workers
	}
}

// NewJob creates a job integrating prog from lower to upper with n
// subdivisions. Bounds given in descending order are swapped, and n is
// raised to 1 if it is smaller; both adjustments are recorded as notes
// rather than failing the job.
func NewJob(prog *Program, lower, upper float64, n int, opts ...JobOption) *Job {
	j := &Job{
		prog:    prog,
		lower:   lower,
		upper:   upper,
		n:       n,
		workers: 1,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(j)
	}
	if j.lower > j.upper {
		j.lower, j.upper = j.upper, j.lower
		j.note("bounds swapped", "lower", j.lower, "upper", j.upper)
	}
	if j.n < 1 {
		j.note("subdivisions raised to 1", "given", j.n)
		j.n = 1
	}
	return j
}

// note records a non-fatal configuration adjustment.
func (j *Job) note(msg string, args ...any) {
	j.notes = append(j.notes, msg)
	j.log.Warn(msg, args...)
}

// Bounds returns the normalized integration bounds, lower no greater than
// upper.
func (j *Job) Bounds() (lower, upper float64) {
	return j.lower, j.upper
}

// Subdivisions returns the normalized subdivision count.
func (j *Job) Subdivisions() int {
	return j.n
}

// Notes returns the adjustments made while configuring or running the job.
func (j *Job) Notes() []string {
	return append([]string(nil), j.notes...)
}

// Trapezoid approximates the integral by the trapezoidal rule: the endpoint
// samples weighted by one half plus the interior samples, all scaled by the
// step width.
func (j *Job) Trapezoid() (float64, error) {
	n := j.n
	h := (j.upper - j.lower) / float64(n)
	s, err := j.sum(n+1, func(i int) (float64, error) {
		y, err := j.prog.Eval(j.point(i, n, h))
		if err != nil {
			return 0, err
		}
		if i == 0 || i == n {
			y *= 0.5
		}
		return y, nil
	})
	if err != nil {
		return 0, err
	}
	return h * s, nil
}

// Simpson approximates the integral by Simpson's rule. The rule requires an
// even partition count, so an odd subdivision count is rounded up by one;
// the adjustment is recorded as a note.
func (j *Job) Simpson() (float64, error) {
	n := j.n
	if n%2 != 0 {
		n++
		j.note("subdivisions rounded up to even for Simpson's rule", "n", n)
	}
	h := (j.upper - j.lower) / float64(n)
	s, err := j.sum(n+1, func(i int) (float64, error) {
		y, err := j.prog.Eval(j.point(i, n, h))
		if err != nil {
			return 0, err
		}
		switch {
		case i == 0 || i == n:
			return y, nil
		case i%2 == 1:
			return 4 * y, nil
		default:
			return 2 * y, nil
		}
	})
	if err != nil {
		return 0, err
	}
	return h / 3 * s, nil
}

// Midpoint approximates the integral by the midpoint rule, sampling the
// center of each subdivision.
func (j *Job) Midpoint() (float64, error) {
	h := (j.upper - j.lower) / float64(j.n)
	s, err := j.sum(j.n, func(i int) (float64, error) {
		return j.prog.Eval(j.lower + (float64(i)+0.5)*h)
	})
	if err != nil {
		return 0, err
	}
	return h * s, nil
}

// point is the i'th of n+1 equally spaced sample points. The endpoints are
// the exact bounds rather than accumulated steps.
func (j *Job) point(i, n int, h float64) float64 {
	switch i {
	case 0:
		return j.lower
	case n:
		return j.upper
	}
	return j.lower + float64(i)*h
}

// sum accumulates term(i) for i in [0, n), stopping at the first error in
// index order. With more than one worker the index range splits into
// contiguous chunks whose partial sums combine in chunk order, keeping the
// accumulation order deterministic for a given worker count; the error
// surfaced is still the one at the lowest index.
func (j *Job) sum(n int, term func(i int) (float64, error)) (float64, error) {
	if j.workers < 2 || n < 2*j.workers {
		var s float64
		for i := 0; i < n; i++ {
			y, err := term(i)
			if err != nil {
				return 0, err
			}
			s += y
		}
		return s, nil
	}
	type part struct {
		sum float64
		at  int
		err error
	}
	parts := make([]part, j.workers)
	var wg sync.WaitGroup
	for w := range parts {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			p := &parts[w]
			for i := w * n / j.workers; i < (w+1)*n/j.workers; i++ {
				y, err := term(i)
				if err != nil {
					p.at, p.err = i, err
					return
				}
				p.sum += y
			}
		}(w)
	}
	wg.Wait()
	var first error
	at := n
	for w := range parts {
		if parts[w].err != nil && parts[w].at < at {
			at, first = parts[w].at, parts[w].err
		}
	}
	if first != nil {
		return 0, first
	}
	var s float64
	for w := range parts {
		s += parts[w].sum
	}
	return s, nil
}

// Result is the outcome of one quadrature method.
type Result struct {
	Value float64
	Err   error
}

// Summary holds the outcome of every quadrature method for one job. The
// methods fail independently: an evaluation error in one leaves the others'
// results intact.
type Summary struct {
	Trapezoid Result
	Simpson   Result
	Midpoint  Result
}

// All runs the three quadrature methods and collects their outcomes.
func (j *Job) All() Summary {
	var s Summary
	s.Trapezoid.Value, s.Trapezoid.Err = j.Trapezoid()
	s.Simpson.Value, s.Simpson.Err = j.Simpson()
	s.Midpoint.Value, s.Midpoint.Err = j.Midpoint()
	return s
}

// Sample is the value of the integrand at one probed point.
type Sample struct {
	X   float64
	Y   float64
	Err error
}

// Probe evaluates the integrand at each given point. A point outside the
// integrand's domain reports its error in place without aborting the rest.
func (j *Job) Probe(xs ...float64) []Sample {
	samples := make([]Sample, len(xs))
	for i, x := range xs {
		y, err := j.prog.Eval(x)
		samples[i] = Sample{X: x, Y: y, Err: err}
	}
	return samples
}
