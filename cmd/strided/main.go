// Package main provides the strided CLI.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/strided/kernel"
	"github.com/born-ml/strided/ndarray"
	"github.com/born-ml/strided/ops"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("strided %s\n", version)
		return
	case "demo":
		err = runDemo(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "strided: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("strided - element-wise kernels over strided N-dimensional views")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Walk through strided, reversed and broadcast views")
	fmt.Println("  bench      Time a kernel over a chosen shape and layout")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log view descriptors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := newLogger(*verbose)

	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	strided, err := ndarray.New(buf, ndarray.Shape{5}, []int{2}, 1, ndarray.RowMajor)
	if err != nil {
		return err
	}
	log.Debug("view", "name", "strided", "desc", strided.String())
	doubled, err := ops.MulScalar(strided, 2)
	if err != nil {
		return err
	}
	fmt.Printf("every 2nd from 1, doubled: %v\n", doubled.Values())

	reversed, err := ndarray.New(buf, ndarray.Shape{3}, []int{-2}, 4, ndarray.RowMajor)
	if err != nil {
		return err
	}
	log.Debug("view", "name", "reversed", "desc", reversed.String())
	fmt.Printf("reversed by stride -2:     %v\n", reversed.Values())

	m, err := ndarray.FromSlice(buf[:6], ndarray.Shape{2, 3}, ndarray.RowMajor)
	if err != nil {
		return err
	}
	row, err := ndarray.FromSlice([]float64{100, 200, 300}, ndarray.Shape{3}, ndarray.RowMajor)
	if err != nil {
		return err
	}
	sum, err := ops.Add(m, row)
	if err != nil {
		return err
	}
	fmt.Printf("[2 3] + broadcast [3]:     %v\n", sum.Values())

	out, err := ndarray.Zeros[string](ndarray.Shape{2, 3}, ndarray.RowMajor)
	if err != nil {
		return err
	}
	err = kernel.Map(m, out, func(v float64, idx []int, _ any) string {
		return fmt.Sprintf("%v=%g", idx, v)
	})
	if err != nil {
		return err
	}
	fmt.Printf("indexed map:               %v\n", out.Values())
	return nil
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	shapeFlag := fs.String("shape", "512,512", "comma-separated dimensions")
	orderFlag := fs.String("order", "row", "input memory order: row or col")
	op := fs.String("op", "unary", "kernel: unary, binary or map")
	iters := fs.Int("n", 20, "iterations")
	par := fs.Bool("parallel", false, "use the parallel kernels (unary and binary only)")
	coalesce := fs.Bool("coalesce", true, "merge contiguous loop levels")
	verbose := fs.Bool("v", false, "log each iteration")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := newLogger(*verbose)

	shape, err := parseShape(*shapeFlag)
	if err != nil {
		return err
	}
	order := ndarray.RowMajor
	switch *orderFlag {
	case "row":
	case "col":
		order = ndarray.ColumnMajor
	default:
		return fmt.Errorf("unknown order %q", *orderFlag)
	}

	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = float64(i)
	}
	x, err := ndarray.FromSlice(data, shape, order)
	if err != nil {
		return err
	}
	y, err := ndarray.Zeros[float64](shape, ndarray.RowMajor)
	if err != nil {
		return err
	}

	opts := kernel.DefaultOptions()
	opts.Coalesce = *coalesce
	cfg := kernel.DefaultParallelConfig()
	run, err := benchFunc(*op, *par, cfg, opts, x, y)
	if err != nil {
		return err
	}

	log.Info("bench", "op", *op, "shape", []int(shape), "order", order.String(),
		"parallel", *par, "coalesce", *coalesce, "workers", cfg.NumWorkers)

	var total time.Duration
	for i := 0; i < *iters; i++ {
		start := time.Now()
		if err := run(); err != nil {
			return err
		}
		elapsed := time.Since(start)
		total += elapsed
		log.Debug("iteration", "i", i, "elapsed", elapsed)
	}

	if *iters > 0 {
		per := total / time.Duration(*iters)
		nsPerElem := float64(per.Nanoseconds()) / float64(max(shape.NumElements(), 1))
		fmt.Printf("%s %v: %v/op, %.2f ns/element\n", *op, []int(shape), per, nsPerElem)
	}
	return nil
}

func benchFunc(
	op string, par bool, cfg kernel.ParallelConfig, opts kernel.Options,
	x, y *ndarray.View[float64, float64],
) (func() error, error) {
	double := func(v float64) float64 { return v * 2 }
	add := func(a, b float64) float64 { return a + b }

	switch {
	case op == "unary" && par:
		return func() error { return kernel.ParallelUnary(cfg, opts, x, y, double) }, nil
	case op == "unary":
		return func() error { return kernel.UnaryWith(opts, x, y, double) }, nil
	case op == "binary" && par:
		return func() error { return kernel.ParallelBinary(cfg, opts, x, x, y, add) }, nil
	case op == "binary":
		return func() error { return kernel.BinaryWith(opts, x, x, y, add) }, nil
	case op == "map":
		return func() error {
			return kernel.MapWith(opts, x, y, func(v float64, idx []int, _ any) float64 {
				return v + float64(len(idx))
			})
		}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

func parseShape(s string) (ndarray.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return ndarray.Shape{}, nil
	}
	parts := strings.Split(s, ",")
	shape := make(ndarray.Shape, len(parts))
	for i, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s, err)
		}
		if dim < 0 {
			return nil, fmt.Errorf("shape %q: negative dimension %d", s, dim)
		}
		shape[i] = dim
	}
	return shape, nil
}
