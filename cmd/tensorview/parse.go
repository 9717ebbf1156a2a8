package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arotem3/TensorView/tensor"
)

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseSlice parses one slicing argument per comma-separated field:
// "i" selects index i, ":" the whole axis, "b:e" and "b:e:s" a range.
func parseSlice(s string) ([]tensor.Arg, error) {
	fields := strings.Split(s, ",")
	out := make([]tensor.Arg, len(fields))
	for i, f := range fields {
		arg, err := parseArg(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = arg
	}
	return out, nil
}

func parseArg(f string) (tensor.Arg, error) {
	if f == ":" {
		return tensor.All, nil
	}
	parts := strings.Split(f, ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad slice argument %q: %w", f, err)
		}
		nums[i] = v
	}
	switch len(nums) {
	case 1:
		return tensor.Idx(nums[0]), nil
	case 2:
		return tensor.Span(nums[0], nums[1]), nil
	case 3:
		return tensor.Step(nums[0], nums[1], nums[2]), nil
	}
	return nil, fmt.Errorf("bad slice argument %q: want i, :, b:e or b:e:s", f)
}
