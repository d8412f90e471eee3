/*
Copyright 2026 the FakeRESTApi Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package contract

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxErrorBody caps how much of an undecodable body is quoted in errors.
const maxErrorBody = 512

// Options configure a Verifier.
type Options struct {
	// BaseURL is the service root all endpoints resolve against.
	BaseURL string
	// Client executes requests, defaults to NewHTTPClient(DefaultClientConfig()).
	Client Doer
	// Logger receives request and verdict logs, defaults to discarding.
	Logger *slog.Logger
	// Headers are added to every request.
	Headers http.Header
	// LogResponses logs every response body, failing responses are
	// always logged.
	LogResponses bool
}

// Verifier executes requests and evaluates expectations against responses.
// It holds no per-request state and may be shared by concurrent test cases.
type Verifier struct {
	baseURL      string
	client       Doer
	logger       *slog.Logger
	headers      http.Header
	logResponses bool
}

// New creates a verifier.
func New(options Options) (*Verifier, error) {
	if _, err := joinURL(options.BaseURL, ""); err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	client := options.Client
	if client == nil {
		client = NewHTTPClient(DefaultClientConfig())
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Verifier{
		baseURL:      options.BaseURL,
		client:       client,
		logger:       logger,
		headers:      options.Headers.Clone(),
		logResponses: options.LogResponses,
	}, nil
}

// BaseURL returns the configured service root.
func (v *Verifier) BaseURL() string {
	return v.baseURL
}

// createTraceParent creates a W3C traceparent header value so a failing
// request can be found in the target's logs.
func createTraceParent() string {
	traceID := uuid.New()

	spanID := make([]byte, 8)
	_, _ = rand.Read(spanID)

	return fmt.Sprintf("00-%s-%s-01", hex.EncodeToString(traceID[:]), hex.EncodeToString(spanID))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func encodePayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return p, nil
	case []byte:
		return p, nil
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("%w: marshaling payload: %w", ErrRequest, err)
		}

		return data, nil
	}
}

func (v *Verifier) newRequest(ctx context.Context, spec *RequestSpec) (*http.Request, []byte, error) {
	path, err := spec.Endpoint.Resolve(spec.Params)
	if err != nil {
		return nil, nil, err
	}

	base := v.baseURL
	if spec.Endpoint.BaseURL != "" {
		base = spec.Endpoint.BaseURL
	}

	u, err := joinURL(base, path)
	if err != nil {
		return nil, nil, err
	}

	payload, err := encodePayload(spec.Payload)
	if err != nil {
		return nil, nil, err
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, spec.Endpoint.Method, u.String(), body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: creating request: %w", ErrRequest, err)
	}

	request.Header.Set("Accept", "application/json")

	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	for key, values := range v.headers {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	for key, values := range spec.Headers {
		request.Header.Del(key)

		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	traceParent := createTraceParent()
	request.Header.Set("Traceparent", traceParent)
	request.Header.Set("Tracestate", "fakerestapi-tests=contract")

	return request, payload, nil
}

func requiresJSON(expectations []Expectation) bool {
	for _, e := range expectations {
		if e.RequiresJSON() {
			return true
		}
	}

	return false
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}

	return string(body)
}

// Verify issues the request and evaluates every expectation in order.
// Transport and decode failures are returned as errors wrapping ErrTransport
// and ErrDecode respectively, expectation mismatches are reported in the
// result's verdicts.
func (v *Verifier) Verify(ctx context.Context, spec *RequestSpec, expectations ...Expectation) (*Result, error) {
	request, payload, err := v.newRequest(ctx, spec)
	if err != nil {
		return nil, err
	}

	log := v.logger.With("method", request.Method, "url", request.URL.String(), "trace_id", extractTraceID(request.Header.Get("Traceparent")))

	log.Debug("sending request", "curl", Curl(request, payload))

	start := time.Now()
	httpResponse, err := v.client.Do(request)
	duration := time.Since(start)

	if err != nil {
		log.Error("http request failed", "duration", duration, "error", err, "curl", Curl(request, payload))

		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, request.Method, request.URL.Redacted(), err)
	}

	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		log.Error("reading response body failed", "status", httpResponse.StatusCode, "duration", duration, "error", err)

		return nil, fmt.Errorf("%w: reading response body of %s %s: %w", ErrTransport, request.Method, request.URL.Redacted(), err)
	}

	response := &Response{
		Request:    request,
		StatusCode: httpResponse.StatusCode,
		Header:     httpResponse.Header,
		Body:       body,
		Duration:   duration,
	}

	if requiresJSON(expectations) && !response.ValidJSON() {
		log.Error("response body is not valid JSON", "status", response.StatusCode, "body", string(body), "curl", Curl(request, payload))

		return nil, fmt.Errorf("%w: %s %s returned status %d with body %q", ErrDecode, request.Method, request.URL.Redacted(), response.StatusCode, truncate(body))
	}

	verdicts := make(VerdictList, 0, len(expectations))

	for _, expectation := range expectations {
		verdicts = append(verdicts, expectation.Evaluate(response))
	}

	v.logVerdicts(log, response, verdicts, payload)

	return &Result{
		Response: response,
		Verdicts: verdicts,
	}, nil
}

func (v *Verifier) logVerdicts(log *slog.Logger, response *Response, verdicts VerdictList, payload []byte) {
	log = log.With("status", response.StatusCode, "duration", response.Duration)

	for _, verdict := range verdicts {
		switch verdict.Outcome {
		case Warned:
			log.Warn("contract warning", "expectation", verdict.Expectation, "reason", verdict.Reason, "actual", verdict.Actual)
		case Failed:
			log.Error("expectation failed", "expectation", verdict.Expectation, "expected", verdict.Expected, "actual", verdict.Actual, "error", verdict.Err)
		case Passed:
		}
	}

	failed := len(verdicts.Failed())

	switch {
	case failed > 0:
		log.Error("verification failed", "summary", verdicts.Summary(), "body", string(response.Body), "curl", Curl(response.Request, payload))
	case v.logResponses:
		log.Info("verified", "summary", verdicts.Summary(), "body", string(response.Body))
	default:
		log.Info("verified", "summary", verdicts.Summary())
	}
}
