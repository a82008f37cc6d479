package config

import "testing"

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected zero config to validate, got %v", err)
	}
}

func TestValidateRejectsNegativeWorkers(t *testing.T) {
	cfg := &Config{Analyze: AnalyzeConfig{Workers: -1}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative workers")
	}
}

func TestValidateGitRef(t *testing.T) {
	for _, ref := range []string{"", "HEAD", "main", "--all"} {
		cfg := &Config{Git: GitConfig{Ref: ref}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected ref %q to validate, got %v", ref, err)
		}
	}
	cfg := &Config{Git: GitConfig{Ref: "--force"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for option-like ref")
	}
}

func TestValidateRejectsBlankIgnorePages(t *testing.T) {
	cfg := &Config{PDF: PDFConfig{IgnorePages: []string{" "}}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for blank ignore_pages entry")
	}
}
