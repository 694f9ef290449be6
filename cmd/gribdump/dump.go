package main

import (
	"fmt"

	"github.com/scorix/grib2/decode"
	"github.com/scorix/grib2/spec"
)

func dumpValues(view spec.SubmessageView) error {
	dec, err := decode.NewDecoder(view)
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	values, err := dec.Values()
	if err != nil {
		return fmt.Errorf("decoding values: %w", err)
	}

	n := 0
	for v := range values {
		fmt.Printf("%g ", v)
		n++
		if n%10 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
	return nil
}
