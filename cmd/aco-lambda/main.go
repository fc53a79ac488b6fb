// Command aco-lambda serves colony runs behind an AWS Lambda function URL.
//
// The request body is JSON:
//
//	{"mode": "tsp", "graph": {...}, "tsp": {"iterations": 50}}
//	{"mode": "schwefel", "schwefel": {"dimension": 3}}
//
// Omitted parameters keep the aco defaults; an omitted graph selects the
// built-in 18-city graph. The response is the run report.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/experiment"
	"github.com/katalvlaran/antcolony/graphjson"
	"github.com/katalvlaran/antcolony/report"
	"github.com/katalvlaran/antcolony/tsp"
)

// maxWork bounds ants × iterations (× cities or dimension) per request.
const maxWork = 50_000_000

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type runRequest struct {
	Mode     string           `json:"mode"`
	Graph    json.RawMessage  `json:"graph"`
	TSP      *config.TSP      `json:"tsp"`
	Schwefel *config.Schwefel `json:"schwefel"`
}

var logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	defaults := config.Default()
	req := runRequest{TSP: &defaults.TSP, Schwefel: &defaults.Schwefel}
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	// A JSON null clears the section pointer.
	cfg := config.Default()
	if req.TSP != nil {
		cfg.TSP = *req.TSP
	}
	if req.Schwefel != nil {
		cfg.Schwefel = *req.Schwefel
	}
	if err := cfg.Validate(); err != nil {
		return errResp(400, err.Error())
	}

	var (
		doc any
		err error
	)
	switch req.Mode {
	case report.ModeTSP:
		doc, err = runTSP(ctx, req.Graph, cfg.TSP)
	case report.ModeSchwefel:
		doc, err = runSchwefel(ctx, cfg.Schwefel)
	case "":
		return errResp(400, "missing mode")
	default:
		return errResp(400, fmt.Sprintf("unknown mode %q", req.Mode))
	}
	if err != nil {
		var re requestError
		if errors.As(err, &re) {
			return errResp(400, re.Error())
		}
		return errResp(500, err.Error())
	}

	var buf bytes.Buffer
	if err = report.WriteJSON(&buf, doc); err != nil {
		return errResp(500, err.Error())
	}

	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: buf.String()}, nil
}

// requestError marks failures caused by the request content.
type requestError struct{ err error }

func (e requestError) Error() string { return e.err.Error() }

func runTSP(ctx context.Context, raw json.RawMessage, p config.TSP) (*report.TSPReport, error) {
	var (
		g   *tsp.Graph[string]
		err error
	)
	if len(raw) == 0 || string(raw) == "null" {
		g, err = graphjson.Reference()
	} else {
		g, err = graphjson.Parse(raw)
	}
	if err != nil {
		return nil, requestError{err}
	}
	if g.Len() == 0 {
		return nil, requestError{tsp.ErrEmptyGraph}
	}

	ants := p.Ants
	if ants == 0 {
		ants = 10 * g.Len()
	}
	if err = checkWork(ants, p.Iterations, g.Len()); err != nil {
		return nil, err
	}
	if p.Start != "" {
		if _, ok := g.Index(p.Start); !ok {
			return nil, requestError{fmt.Errorf("%w: %q", tsp.ErrUnknownCity, p.Start)}
		}
	}

	return experiment.TSP(ctx, g, p, logger)
}

func runSchwefel(ctx context.Context, p config.Schwefel) (*report.ContinuousReport, error) {
	if err := checkWork(p.Ants, p.Iterations, p.Dimension); err != nil {
		return nil, err
	}

	return experiment.Schwefel(ctx, p, logger)
}

// checkWork rejects runs whose factors multiply past maxWork. Each factor
// is divided out of the remaining budget, so the product never overflows.
func checkWork(factors ...int) error {
	budget := maxWork
	for _, f := range factors {
		if f <= 0 {
			continue
		}
		if f > budget {
			return requestError{fmt.Errorf("run too large: %v exceeds %d steps", factors, maxWork)}
		}
		budget /= f
	}

	return nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
