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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/lmittmann/tint"
	"github.com/onsi/ginkgo/v2"

	"github.com/kocovskae/fakerestapi-tests/pkg/contract"
	"github.com/kocovskae/fakerestapi-tests/pkg/fakerestapi"
)

type APIClient struct {
	config    *TestConfig
	verifier  *contract.Verifier
	schema    *contract.Schema
	logger    *slog.Logger
	endpoints *fakerestapi.Endpoints
}

// NewLogger creates a human readable logger writing to w.
func NewLogger(config *TestConfig, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if config.DebugLogging || config.LogRequests {
		level = slog.LevelDebug
	}

	_, reporterConfig := ginkgo.GinkgoConfiguration()

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    reporterConfig.NoColor,
		TimeFormat: time.TimeOnly,
	}))
}

// NewAPIClientWithConfig creates a client logging to the Ginkgo writer.
func NewAPIClientWithConfig(ctx context.Context, config *TestConfig) (*APIClient, error) {
	return NewAPIClientWithLogger(ctx, config, NewLogger(config, ginkgo.GinkgoWriter))
}

// NewAPIClientWithLogger creates a client with an explicit logger.
func NewAPIClientWithLogger(ctx context.Context, config *TestConfig, logger *slog.Logger) (*APIClient, error) {
	clientConfig := contract.DefaultClientConfig()
	clientConfig.Timeout = config.RequestTimeout
	clientConfig.ResponseHeaderTimeout = config.RequestTimeout

	verifier, err := contract.New(contract.Options{
		BaseURL:      config.BaseURL,
		Client:       contract.NewHTTPClient(clientConfig),
		Logger:       logger,
		LogResponses: config.LogResponses,
	})
	if err != nil {
		return nil, fmt.Errorf("creating verifier: %w", err)
	}

	client := &APIClient{
		config:    config,
		verifier:  verifier,
		logger:    logger,
		endpoints: fakerestapi.NewEndpoints(),
	}

	if config.ValidateSchema {
		schema, err := fakerestapi.Schema(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading schema: %w", err)
		}

		client.schema = schema
	}

	return client, nil
}

func (c *APIClient) Config() *TestConfig {
	return c.config
}

func (c *APIClient) Endpoints() *fakerestapi.Endpoints {
	return c.endpoints
}

func (c *APIClient) Logger() *slog.Logger {
	return c.logger
}

// Verify sends the request and evaluates the expectations.  When schema
// validation is enabled every response is additionally checked against the
// documented schema.
func (c *APIClient) Verify(ctx context.Context, spec *contract.RequestSpec, expectations ...contract.Expectation) (*contract.Result, error) {
	if c.schema != nil {
		expectations = append(slices.Clip(expectations), contract.MatchesSchema(c.schema))
	}

	result, err := c.verifier.Verify(ctx, spec, expectations...)
	if err != nil {
		return nil, fmt.Errorf("verifying %s: %w", spec.Endpoint, err)
	}

	return result, nil
}

// Request starts a request for the endpoint.
func (c *APIClient) Request(endpoint contract.Endpoint) *contract.RequestSpec {
	return contract.NewRequest(endpoint)
}
