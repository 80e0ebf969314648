package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeSourceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ist")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestCheckCommandReportsNoDiagnosticsForCleanSource(t *testing.T) {
	path := writeSourceFile(t, "let a = 1;\nreturn a;")
	var out bytes.Buffer
	checkCmd.SetOut(&out)
	checkCmd.SetArgs([]string{path})
	if err := checkCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "no diagnostics\n" {
		t.Fatalf("output = %q, want %q", got, "no diagnostics\n")
	}
}

func TestTokenizeCommandPrettyListsEveryToken(t *testing.T) {
	path := writeSourceFile(t, "let a = 1;")
	var out bytes.Buffer
	tokenizeCmd.SetOut(&out)
	tokenizeCmd.SetArgs([]string{path})
	if err := tokenizeCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("expected tokenize output")
	}
}

func TestParseCommandTextDumpsModule(t *testing.T) {
	path := writeSourceFile(t, "let a = 1;\nreturn a;")
	var out bytes.Buffer
	parseCmd.SetOut(&out)
	parseCmd.SetArgs([]string{path})
	if err := parseCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("expected parse dump output")
	}
}
