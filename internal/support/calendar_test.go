package support

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadBusinessHours(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hours.yaml")
	content := `timezone: Europe/London
work_hours:
  start: "09:30"
  end: "17:30"
holidays:
  - 2016-01-01
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	hours, err := LoadBusinessHours(path)
	if err != nil {
		t.Fatalf("LoadBusinessHours: %v", err)
	}

	open := time.Date(2016, time.December, 12, 9, 30, 0, 0, time.UTC)
	if !hours.Contains(open) {
		t.Error("expected opening instant inside window")
	}
	holiday := time.Date(2016, time.January, 1, 12, 0, 0, 0, time.UTC)
	if hours.Contains(holiday) {
		t.Error("expected bank holiday outside window")
	}
}

func TestLoadBusinessHoursMissingFile(t *testing.T) {
	if _, err := LoadBusinessHours(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBusinessHoursBadTimezone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.yaml")
	if err := os.WriteFile(path, []byte("timezone: Nowhere/Invalid\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadBusinessHours(path); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
