package graphjson

import (
	_ "embed"

	"github.com/katalvlaran/antcolony/tsp"
)

// referenceJSON is the 18-city road network used by the reference
// experiment. Its optimal tour from city "1" costs 398.
//
//go:embed reference.json
var referenceJSON []byte

// Reference returns a fresh copy of the built-in 18-city graph.
func Reference() (*tsp.Graph[string], error) {
	return Parse(referenceJSON)
}
