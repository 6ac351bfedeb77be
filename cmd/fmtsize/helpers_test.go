package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/d2verb/fmtsize"
	"github.com/d2verb/fmtsize/internal/ui"
	"github.com/fatih/color"
)

// setupOutput disables color and captures ui output for the test.
func setupOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	ui.Output = &buf
	t.Cleanup(func() {
		color.NoColor = false
		ui.Output = os.Stdout
	})
	return &buf
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("failed to create home: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"1048576", 1_048_576, false},
		{"492_752_310", 492_752_310, false},
		{" 42 ", 42, false},
		{"18446744073709551615", 18446744073709551615, false},
		{"18446744073709551616", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"10MB", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSize(tt.input)
			if tt.wantErr {
				if exitCode(err) != exitInvalidSize {
					t.Fatalf("parseSize(%q) error = %v, want invalid size", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGlobalsOpen(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		flag       string
		wantFormat fmtsize.Format
		wantCode   int
	}{
		{"defaults", "", "", fmtsize.Conventional{}, exitSuccess},
		{"config file", "format: decimal\n", "", fmtsize.Decimal{}, exitSuccess},
		{"flag overrides config", "format: decimal\n", "conventional", fmtsize.Conventional{}, exitSuccess},
		{"unknown flag value", "", "si", nil, exitUnknownFormat},
		{"unknown config value", "format: si\n", "", nil, exitUnknownFormat},
		{"flag overrides invalid config format", "format: si\n", "decimal", fmtsize.Decimal{}, exitSuccess},
		{"broken config", "format: [\n", "", nil, exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			home := filepath.Join(t.TempDir(), "home")
			if tt.config != "" {
				writeConfig(t, home, tt.config)
			}
			g := &Globals{Home: home, Format: tt.flag}

			// Act
			s, err := g.open()

			// Assert
			if code := exitCode(err); code != tt.wantCode {
				t.Fatalf("open() error = %v (code %d), want code %d", err, code, tt.wantCode)
			}
			if err != nil {
				return
			}
			defer s.Close()
			if s.format != tt.wantFormat {
				t.Errorf("format = %v, want %v", s.format, tt.wantFormat)
			}
			if _, err := os.Stat(s.paths.Logs); err != nil {
				t.Errorf("logs directory not created: %v", err)
			}
		})
	}
}

func TestSizeRow(t *testing.T) {
	row := sizeRow("x", 1_000_000, fmtsize.Decimal{})

	if row.Label != "x" || row.Size != "1.00 MB" || row.Unit != "MB" {
		t.Errorf("sizeRow() = %+v", row)
	}
}
