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

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kocovskae/fakerestapi-tests/pkg/fakerestapi"
)

var ErrConfiguration = errors.New("invalid configuration")

type TestConfig struct {
	BaseURL         string        `yaml:"baseURL"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"`
	SkipIntegration bool          `yaml:"skipIntegration"`
	DebugLogging    bool          `yaml:"debugLogging"`
	LogRequests     bool          `yaml:"logRequests"`
	LogResponses    bool          `yaml:"logResponses"`
	ValidateSchema  bool          `yaml:"validateSchema"`
}

// DefaultTestConfig targets the public demo service.
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:        fakerestapi.DefaultBaseURL,
		RequestTimeout: 30 * time.Second,
		ValidateSchema: true,
	}
}

// envPaths are searched for a .env file, relative to the suite being run.
//
//nolint:gochecknoglobals
var envPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"../../../.env",
}

// LoadTestConfig loads configuration from defaults, an optional YAML file named
// by CONTRACT_CONFIG_FILE, then environment variables and .env files.  Later
// sources take precedence.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := DefaultTestConfig()

	if path := os.Getenv("CONTRACT_CONFIG_FILE"); path != "" {
		if err := loadConfigFile(path, config); err != nil {
			return nil, err
		}
	}

	if err := applyEnvironment(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadConfigFile(path string, config *TestConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrConfiguration, path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrConfiguration, path, err)
	}

	return nil
}

func applyEnvironment(config *TestConfig) error {
	var errs []error

	if value := os.Getenv("API_BASE_URL"); value != "" {
		config.BaseURL = value
	}

	getDuration("REQUEST_TIMEOUT", &config.RequestTimeout, &errs)
	getBool("SKIP_INTEGRATION", &config.SkipIntegration, &errs)
	getBool("DEBUG_LOGGING", &config.DebugLogging, &errs)
	getBool("LOG_REQUESTS", &config.LogRequests, &errs)
	getBool("LOG_RESPONSES", &config.LogResponses, &errs)
	getBool("VALIDATE_SCHEMA", &config.ValidateSchema, &errs)

	return errors.Join(errs...)
}

// getDuration overrides a duration from environment variable if set.
func getDuration(key string, value *time.Duration, errs *[]error) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}

	duration, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s: %w", ErrConfiguration, key, err))
		return
	}

	*value = duration
}

// getBool overrides a boolean from environment variable if set.
func getBool(key string, value *bool, errs *[]error) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s: %w", ErrConfiguration, key, err))
		return
	}

	*value = b
}

func loadEnvFile() {
	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Does not override variables already set in the environment.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// Validate checks the configuration is usable.
func (c *TestConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: API_BASE_URL: %w", ErrConfiguration, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: API_BASE_URL %q is not an absolute http(s) URL", ErrConfiguration, c.BaseURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrConfiguration)
	}

	return nil
}
