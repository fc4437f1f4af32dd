// Command classify runs a single package classification from the command line.
// It is a thin shell around the domain classifier: it parses four positional
// numeric arguments, prints the handling category on stdout and exits 0, or
// prints a diagnostic on stderr and exits 1.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/wms-platform/intake-classification-service/internal/domain"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 4 {
		fmt.Fprintf(os.Stderr, "classify: expected 4 arguments, got %d\n\n", len(args))
		usage()
		os.Exit(1)
	}

	fields := []string{"width", "height", "length", "mass"}
	values := make([]float64, len(fields))
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			// Route the raw argument through the measurement coercion so the
			// diagnostic matches what the API reports for the same input.
			_, coerceErr := domain.CoerceMeasurement(fields[i], arg)
			fmt.Fprintf(os.Stderr, "classify: %v\n", coerceErr)
			os.Exit(1)
		}
		values[i] = value
	}

	decision, err := domain.Classify(domain.PackageSpec{
		Width:  values[0],
		Height: values[1],
		Length: values[2],
		Mass:   values[3],
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(decision.Category)
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: classify <width> <height> <length> <mass>

Classifies a package by its measurements. Dimensions are in centimeters,
mass is in kilograms. Prints STANDARD, SPECIAL or REJECTED.

Example:
  classify 120 80 100 18.5
`)
}
