package config

import (
	"strings"
	"testing"
)

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("WORKDAYS_TEST_VALUE", "expanded")

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"no variables", "plain", "plain", false},
		{"braced variable", "${WORKDAYS_TEST_VALUE}", "expanded", false},
		{"inline", "prefix-${WORKDAYS_TEST_VALUE}-suffix", "prefix-expanded-suffix", false},
		{"escaped dollar", "cost: $$5", "cost: $5", false},
		{"missing variable", "${WORKDAYS_TEST_ABSENT}", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandEnvStrict(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ExpandEnvStrict() succeeded, want error")
				}
				if !strings.Contains(err.Error(), "WORKDAYS_TEST_ABSENT") {
					t.Errorf("error %v does not name the missing variable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExpandEnvStrict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandEnvStrict() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandEnvStrictMultipleMissing(t *testing.T) {
	_, err := ExpandEnvStrict("${WORKDAYS_TEST_AA} ${WORKDAYS_TEST_BB}")
	if err == nil {
		t.Fatal("ExpandEnvStrict() succeeded, want error")
	}
	// Missing variables are reported sorted.
	if !strings.Contains(err.Error(), "WORKDAYS_TEST_AA, WORKDAYS_TEST_BB") {
		t.Errorf("error = %v, want both variables in order", err)
	}
}
