package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/integrality/quad"
)

func main() {
	log.SetFlags(0)
	var (
		lower, upper float64
		n, workers   int
		echo         bool
		verb         string
		at           []float64
	)
	flag.Float64Var(&lower, "lower", 0, "lower integration bound")
	flag.Float64Var(&upper, "upper", 1, "upper integration bound (swapped if below lower)")
	flag.IntVar(&n, "n", 1000, "number of subdivisions")
	flag.IntVar(&workers, "workers", 1, "workers evaluating sample points")
	flag.BoolVar(&echo, "echo", false, "print postfix programs")
	flag.StringVar(&verb, "fmt", "%.10g", "result formatting string")
	flag.Func("at", "probe f at a point before integrating (any number of times)", func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return err
		}
		at = append(at, v)
		return nil
	})
	flag.Parse()

	warnings := slog.NewTextHandler(os.Stderr, nil)

	exprs := flag.Args()
	if len(exprs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if s := strings.TrimSpace(sc.Text()); s != "" {
				exprs = append(exprs, s)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	for _, src := range exprs {
		prog, err := quad.ParseString(src)
		if err != nil {
			log.Fatal(err)
		}
		if echo {
			fmt.Printf("%s : %s\n", src, prog)
		}
		job := quad.NewJob(prog, lower, upper, n, quad.WithLogger(warnings), quad.Parallel(workers))
		for _, s := range job.Probe(at...) {
			if s.Err != nil {
				fmt.Printf("f(%g) = error: %v\n", s.X, s.Err)
				continue
			}
			fmt.Printf("f(%g) = "+verb+"\n", s.X, s.Y)
		}
		lo, hi := job.Bounds()
		fmt.Printf("f(x) = %s over [%g, %g] with %d subdivisions\n", src, lo, hi, job.Subdivisions())
		sum := job.All()
		report("trapezoidal", sum.Trapezoid, verb)
		report("Simpson", sum.Simpson, verb)
		report("midpoint", sum.Midpoint, verb)
	}
}

func report(name string, r quad.Result, verb string) {
	if r.Err != nil {
		fmt.Printf("%-12s error: %v\n", name+":", r.Err)
		return
	}
	fmt.Printf("%-12s "+verb+"\n", name+":", r.Value)
}
