package main

import (
	"strings"

	"github.com/d2verb/fmtsize"
	"github.com/posener/complete"
)

// formatPredictor implements complete.Predictor for --format values.
type formatPredictor struct{}

// newFormatPredictor returns a predictor for registered format names.
func newFormatPredictor() complete.Predictor {
	return formatPredictor{}
}

// Predict implements complete.Predictor interface.
func (formatPredictor) Predict(args complete.Args) []string {
	return completeFormats(args.Last)
}

// completeFormats returns format names starting with partial, ignoring case.
func completeFormats(partial string) []string {
	partial = strings.ToLower(partial)
	var results []string
	for _, name := range fmtsize.Names() {
		if strings.HasPrefix(name, partial) {
			results = append(results, name)
		}
	}
	return results
}
