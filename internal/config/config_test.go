package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig(t *testing.T) {
	testCases := []struct {
		TestName       string
		Env            map[string]string
		Args           []string
		ExpectedConfig Config
		ExpectedRest   []string
		ExpectedError  bool
	}{
		{
			TestName: "Success. Defaults from environment #1",
			Env: map[string]string{
				"API_BASE_URL":  "http://api.local",
				"STORAGE_PATH":  "/tmp/calc.db",
				"RESULTS_LIMIT": "25",
			},
			Args: []string{"profile"},
			ExpectedConfig: Config{
				Client: ClientConfig{
					APIBaseURL:      "http://api.local",
					RequestTimeout:  10 * time.Second,
					BreakerFailures: 5,
				},
				LogLevel:     "warn",
				StoragePath:  "/tmp/calc.db",
				ResultsLimit: 25,
			},
			ExpectedRest: []string{"profile"},
		},
		{
			TestName: "Success. Flags override environment #2",
			Env: map[string]string{
				"API_BASE_URL": "http://api.local",
				"STORAGE_PATH": "/tmp/calc.db",
			},
			Args: []string{"-a", "http://other", "--timeout", "3s", "-l", "debug", "records", "--skip", "10"},
			ExpectedConfig: Config{
				Client: ClientConfig{
					APIBaseURL:      "http://other",
					RequestTimeout:  3 * time.Second,
					BreakerFailures: 5,
				},
				LogLevel:     "debug",
				StoragePath:  "/tmp/calc.db",
				ResultsLimit: DefaultResultsLimit,
			},
			ExpectedRest: []string{"records", "--skip", "10"},
		},
		{
			TestName:      "Error. Invalid timeout #3",
			Env:           map[string]string{"REQUEST_TIMEOUT": "soon"},
			ExpectedError: true,
		},
		{
			TestName:      "Error. Non positive limit #4",
			Args:          []string{"--limit", "0"},
			ExpectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			for k, v := range tc.Env {
				t.Setenv(k, v)
			}
			cfg, rest, err := ParseConfig(tc.Args)
			if tc.ExpectedError {
				if err == nil {
					t.Errorf("Expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedConfig, cfg); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.ExpectedRest, rest); diff != "" {
				t.Errorf("Rest args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfig_DefaultStoragePath(t *testing.T) {
	t.Setenv("STORAGE_PATH", "")
	cfg, _, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if cfg.StoragePath != DefaultStoragePath() {
		t.Errorf("Expected storage path: '%v', got: '%v'", DefaultStoragePath(), cfg.StoragePath)
	}
}
