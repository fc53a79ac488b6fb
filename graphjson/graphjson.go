// Package graphjson reads TSP adjacency documents of the form
//
//	{"city": {"neighbor": distance, ...}, ...}
//
// into a tsp.Graph[string]. Cities are indexed in document order: first
// every top-level key, then any neighbor that appears only inside a row.
package graphjson

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/antcolony/tsp"
)

// Sentinel errors for malformed documents.
var (
	// ErrInvalidJSON is returned for input that is not valid JSON.
	ErrInvalidJSON = errors.New("graphjson: invalid JSON")

	// ErrNotObject is returned when the document or a row is not an object.
	ErrNotObject = errors.New("graphjson: expected a JSON object")

	// ErrBadDistance is returned for a distance that is not a JSON number.
	ErrBadDistance = errors.New("graphjson: distance must be a number")
)

// Parse decodes an adjacency document.
func Parse(data []byte) (*tsp.Graph[string], error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	return FromResult(gjson.ParseBytes(data))
}

// Load reads and decodes the adjacency document at path.
func Load(path string) (*tsp.Graph[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphjson: read %q: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("graphjson: %q: %w", path, err)
	}

	return g, nil
}

// FromResult builds a graph from an already parsed adjacency object, such
// as a field of a larger request document.
func FromResult(doc gjson.Result) (*tsp.Graph[string], error) {
	if !doc.IsObject() {
		return nil, ErrNotObject
	}

	g := tsp.NewGraph[string]()
	var err error
	doc.ForEach(func(city, row gjson.Result) bool {
		if !row.IsObject() {
			err = fmt.Errorf("%w: row %q", ErrNotObject, city.String())
			return false
		}
		g.AddCity(city.String())
		return true
	})
	if err != nil {
		return nil, err
	}

	doc.ForEach(func(city, row gjson.Result) bool {
		row.ForEach(func(neighbor, dist gjson.Result) bool {
			if dist.Type != gjson.Number {
				err = fmt.Errorf("%w: %q→%q is %s", ErrBadDistance, city.String(), neighbor.String(), dist.Type)
				return false
			}
			err = g.AddEdge(city.String(), neighbor.String(), dist.Float())
			return err == nil
		})
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}
