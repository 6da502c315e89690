package util

import (
	"bytes"
	"strings"
	"testing"
)

func withLogState(t *testing.T) *bytes.Buffer {
	t.Helper()
	level, categories := GLOBAL_LOG_LEVEL, GLOBAL_LOG_CATEGORIES
	buffer := &bytes.Buffer{}
	SetLogOutput(buffer)
	t.Cleanup(func() {
		SetLogOutput(nil)
		SetLogLevel(level)
		SetLogCategories(categories)
	})
	return buffer
}

func TestLogLevelFilters(t *testing.T) {
	buffer := withLogState(t)
	SetLogLevel(LogLevelWarning)
	SetLogCategories(LogVoxel | LogGame)

	LogVoxelDebug("[Test] hidden debug")
	LogVoxelInfo("[Test] hidden info")
	LogVoxelError("[Test] shown error")
	LogGameWarning("[Test] shown warning")

	out := buffer.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered lines were written: %q", out)
	}
	if !strings.Contains(out, "shown error") || !strings.Contains(out, "shown warning") {
		t.Errorf("expected lines missing: %q", out)
	}
}

func TestLogCategoryFilters(t *testing.T) {
	buffer := withLogState(t)
	SetLogLevel(LogLevelDebug)
	SetLogCategories(LogIO)

	LogVoxelInfo("[Test] voxel")
	LogIOInfo("[Test] io")

	if got := strings.TrimSpace(buffer.String()); got != "[Test] io" {
		t.Errorf("got %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"error": LogLevelError,
		"WARN":  LogLevelWarning,
		"":      LogLevelInfo,
		"debug": LogLevelDebug,
	}
	for name, want := range cases {
		got, ok := ParseLogLevel(name)
		if !ok || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseLogLevel("verbose"); ok {
		t.Error("unknown level accepted")
	}
}

func TestParseLogCategories(t *testing.T) {
	got, unknown := ParseLogCategories([]string{"voxel", " IO ", "network"})
	if got != LogVoxel|LogIO {
		t.Errorf("got %b", got)
	}
	if len(unknown) != 1 || unknown[0] != "network" {
		t.Errorf("unknown = %v", unknown)
	}
	all, _ := ParseLogCategories([]string{"all"})
	if all != LogVoxel|LogIO|LogGame|LogSystem {
		t.Errorf("all = %b", all)
	}
}
