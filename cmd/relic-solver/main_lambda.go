//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/caarlos0/env/v11"

	"relic-optimizer/internal/solver"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// The request body is the same document the CLI reads, plus an optional
// "top" field bounding how many builds come back in the response.
type solveResponse struct {
	Builds []solver.BuildResult `json:"builds"`
	Count  int                  `json:"count"`
	TimeMs int64                `json:"timeMs"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	cfg := solver.DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return errResp(500, "config: "+err.Error())
	}

	req := solver.ParseRequest(body)
	if len(req.Relics) == 0 {
		return errResp(400, "missing items field")
	}

	start := time.Now()
	results, err := solver.Solve(req, cfg)
	if err != nil {
		return errResp(500, err.Error())
	}

	top := 50
	var topField struct {
		Top int `json:"top"`
	}
	if json.Unmarshal([]byte(body), &topField) == nil && topField.Top > 0 {
		top = topField.Top
	}
	count := len(results)
	if len(results) > top {
		results = results[:top]
	}

	respJSON, _ := json.Marshal(solveResponse{
		Builds: results,
		Count:  count,
		TimeMs: time.Since(start).Milliseconds(),
	})
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
