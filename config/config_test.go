package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("OBJECTION_TEST_KEY", "sk-test")
	viper.AutomaticEnv()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"literal", "plain-key", "plain-key"},
		{"env reference", "${OBJECTION_TEST_KEY}", "sk-test"},
		{"unset reference", "${OBJECTION_TEST_MISSING}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandEnvVar(tt.value); got != tt.want {
				t.Errorf("expandEnvVar(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "anthropic", Enabled: true, Priority: 1, APIKey: "k", Model: "claude-3-5-sonnet-20241022"},
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-2.5-flash"},
			}},
		},
		{
			name:    "empty",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "anthropic", Enabled: true, Priority: 1, APIKey: "k"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "anthropic", Enabled: true, Priority: 1, APIKey: "k", Model: "a"},
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "b"},
			}},
			wantErr: true,
		},
		{
			name: "none enabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "anthropic", Priority: 1, APIKey: "k", Model: "a"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" https://a.example , ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("splitList() = %v", got)
	}
	if splitList("") != nil {
		t.Errorf("splitList(\"\") should be nil")
	}
}
