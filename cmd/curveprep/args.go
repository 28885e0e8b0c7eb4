package main

import (
	"flag"
	"fmt"
	"os"
)

// argument is one flag with its validation rule.
type argument interface {
	check(set map[string]bool) error
}

type pathArg struct {
	name      string
	mandatory bool
	value     *string
}

func (a pathArg) check(set map[string]bool) error {
	if !set[a.name] {
		if a.mandatory {
			return fmt.Errorf("argument -%s was not provided", a.name)
		}

		return nil
	}

	info, err := os.Stat(*a.value)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("argument -%s should be the path of an existing file", a.name)
	}

	return nil
}

type stringArg struct {
	name      string
	mandatory bool
	value     *string
}

func (a stringArg) check(set map[string]bool) error {
	if a.mandatory && (!set[a.name] || *a.value == "") {
		return fmt.Errorf("argument -%s was not provided", a.name)
	}

	return nil
}

type intArg struct {
	name      string
	mandatory bool
	floor     *int
	ceiling   *int
	value     *int
}

func (a intArg) check(set map[string]bool) error {
	if !set[a.name] {
		if a.mandatory {
			return fmt.Errorf("argument -%s was not provided", a.name)
		}

		return nil
	}

	v := *a.value

	switch {
	case a.floor != nil && a.ceiling != nil && (v < *a.floor || v > *a.ceiling):
		return fmt.Errorf("argument -%s should be an integer value in the following range [%d,%d]", a.name, *a.floor, *a.ceiling)
	case a.floor != nil && v < *a.floor:
		return fmt.Errorf("argument -%s should be an integer value greater than or equal to %d", a.name, *a.floor)
	case a.ceiling != nil && v > *a.ceiling:
		return fmt.Errorf("argument -%s should be an integer value less than or equal to %d", a.name, *a.ceiling)
	}

	return nil
}

type floatArg struct {
	name      string
	mandatory bool
	floor     *float64
	ceiling   *float64
	value     *float64
}

func (a floatArg) check(set map[string]bool) error {
	if !set[a.name] {
		if a.mandatory {
			return fmt.Errorf("argument -%s was not provided", a.name)
		}

		return nil
	}

	v := *a.value

	switch {
	case a.floor != nil && a.ceiling != nil && (v < *a.floor || v > *a.ceiling):
		return fmt.Errorf("argument -%s should be a real number in the following range [%g,%g]", a.name, *a.floor, *a.ceiling)
	case a.floor != nil && v < *a.floor:
		return fmt.Errorf("argument -%s should be a real number greater than or equal to %g", a.name, *a.floor)
	case a.ceiling != nil && v > *a.ceiling:
		return fmt.Errorf("argument -%s should be a real number less than or equal to %g", a.name, *a.ceiling)
	}

	return nil
}

// boolArg only checks presence; flag parsing already rejects bad values.
type boolArg struct {
	name      string
	mandatory bool
	value     *bool
}

func (a boolArg) check(set map[string]bool) error {
	if a.mandatory && !set[a.name] {
		return fmt.Errorf("argument -%s was not provided", a.name)
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}

// parseArgs parses args into fs and validates every argument.
func parseArgs(fs *flag.FlagSet, args []string, arguments ...argument) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	for _, a := range arguments {
		if err := a.check(set); err != nil {
			return err
		}
	}

	return nil
}
