// Package main provides the tensorview CLI, which builds a tensor from
// command-line values and prints elements, slices and reshapes of it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/arotem3/TensorView/tensor"
)

const version = "v0.1.0"

func main() {
	ctx := context.Background()

	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	if err := run(ctx, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "TensorView %s - zero-copy multidimensional views\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  show       Build a tensor and print elements, slices and reshapes")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Run 'tensorview show -h' for show flags.")
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	log := klog.FromContext(ctx)

	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "TensorView %s\n", version)
		return nil
	case "show":
		opts, err := parseShowFlags(args[1:])
		if err != nil {
			return err
		}
		log.V(1).Info("Building tensor", "shape", opts.shape, "values", len(opts.values), "mode", opts.mode)
		return show(ctx, opts, stdout)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type showOptions struct {
	shape   []int
	values  []float64
	at      []int
	slice   []tensor.Arg
	reshape []int
	mode    tensor.Mode
}

func parseShowFlags(args []string) (*showOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	shapeFlag := fs.String("shape", "", "comma-separated extents, axis 0 first (required)")
	valuesFlag := fs.String("values", "", "comma-separated elements in storage order; default 1, 2, 3, ...")
	atFlag := fs.String("at", "", "comma-separated multi-index of one element to print")
	sliceFlag := fs.String("slice", "", "comma-separated slice arguments: i, :, b:e or b:e:s")
	reshapeFlag := fs.String("reshape", "", "comma-separated extents to reshape to before printing")
	fast := fs.Bool("fast", false, "disable bounds checking")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &showOptions{mode: tensor.Strict}
	if *fast {
		opts.mode = tensor.Fast
	}

	var err error
	if *shapeFlag == "" {
		return nil, fmt.Errorf("-shape is required")
	}
	if opts.shape, err = parseInts(*shapeFlag); err != nil {
		return nil, fmt.Errorf("parsing -shape: %w", err)
	}
	if *valuesFlag != "" {
		if opts.values, err = parseFloats(*valuesFlag); err != nil {
			return nil, fmt.Errorf("parsing -values: %w", err)
		}
	}
	if *atFlag != "" {
		if opts.at, err = parseInts(*atFlag); err != nil {
			return nil, fmt.Errorf("parsing -at: %w", err)
		}
	}
	if *sliceFlag != "" {
		if opts.slice, err = parseSlice(*sliceFlag); err != nil {
			return nil, fmt.Errorf("parsing -slice: %w", err)
		}
	}
	if *reshapeFlag != "" {
		if opts.reshape, err = parseInts(*reshapeFlag); err != nil {
			return nil, fmt.Errorf("parsing -reshape: %w", err)
		}
	}
	return opts, nil
}

func show(ctx context.Context, opts *showOptions, stdout io.Writer) error {
	log := klog.FromContext(ctx)

	t, err := tensor.NewWith(tensor.Config[float64]{Mode: opts.mode}, opts.shape...)
	if err != nil {
		return fmt.Errorf("creating tensor: %w", err)
	}
	if opts.values == nil {
		for pos := range t.Data() {
			t.Data()[pos] = float64(pos + 1)
		}
	} else {
		if len(opts.values) != t.Size() {
			return fmt.Errorf("shape %v needs %d values, got %d", opts.shape, t.Size(), len(opts.values))
		}
		copy(t.Data(), opts.values)
	}

	if opts.reshape != nil {
		if err := t.Reshape(opts.reshape...); err != nil {
			return fmt.Errorf("reshaping: %w", err)
		}
		log.V(1).Info("Reshaped tensor", "extents", t.Extents())
	}
	fmt.Fprintf(stdout, "tensor %v\n", t)

	if opts.at != nil {
		v, err := t.TryAt(opts.at...)
		if err != nil {
			return fmt.Errorf("reading element %v: %w", opts.at, err)
		}
		fmt.Fprintf(stdout, "at %v = %v\n", opts.at, v)
	}

	if opts.slice != nil {
		sub, err := t.TrySlice(opts.slice...)
		if err != nil {
			return fmt.Errorf("slicing: %w", err)
		}
		log.V(1).Info("Sliced tensor", "args", opts.slice, "strides", sub.Strides())
		fmt.Fprintf(stdout, "slice %v\n", sub)
	}
	return nil
}
