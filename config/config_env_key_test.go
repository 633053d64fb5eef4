package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"report": map[string]any{
			"topN":             10,
			"defaultRangeDays": 30,
		},
		"retry": map[string]any{
			"maxAttempts": 3,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REPORT_TOPN", want: "report.topN"},
		{envKey: "REPORT_DEFAULTRANGEDAYS", want: "report.defaultRangeDays"},
		{envKey: "RETRY_MAXATTEMPTS", want: "retry.maxAttempts"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Report.Strategy != defaultReportStrategy {
		t.Fatalf("strategy = %q, want %q", cfg.Report.Strategy, defaultReportStrategy)
	}
	if cfg.Report.TopN != defaultReportTopN {
		t.Fatalf("topN = %d, want %d", cfg.Report.TopN, defaultReportTopN)
	}
	if cfg.Report.DefaultRangeDays != defaultReportRangeDays {
		t.Fatalf("defaultRangeDays = %d, want %d", cfg.Report.DefaultRangeDays, defaultReportRangeDays)
	}
	if cfg.Retry.MaxAttempts != defaultRetryMaxAttempts {
		t.Fatalf("maxAttempts = %d, want %d", cfg.Retry.MaxAttempts, defaultRetryMaxAttempts)
	}
	if cfg.Store.QueryTimeout != defaultStoreQueryTimeout {
		t.Fatalf("queryTimeout = %v, want %v", cfg.Store.QueryTimeout, defaultStoreQueryTimeout)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Report: &ReportConfig{Strategy: "scan", TopN: 5, DefaultRangeDays: 7},
	}
	applyDefaults(cfg)

	if cfg.Report.Strategy != "scan" {
		t.Fatalf("strategy = %q, want %q", cfg.Report.Strategy, "scan")
	}
	if cfg.Report.TopN != 5 || cfg.Report.DefaultRangeDays != 7 {
		t.Fatalf("report config overwritten: %+v", cfg.Report)
	}
}
