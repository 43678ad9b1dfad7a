package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPlayReportsSetupErrors(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "visits.db")

	tests := []struct {
		name string
		args []string
		err  string
	}{
		{"unknown scheme", []string{"play", "--db", db, "--controls", "warp"}, `unknown control scheme "warp"`},
		{"missing config", []string{"play", "--db", db, "--config", filepath.Join(dir, "absent.yaml")}, "loading config"},
		{"bad config for serve", []string{"serve", "--db", db, "--config", filepath.Join(dir, "absent.yaml")}, "loading config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() {
				flagControls = ""
				flagConfig = ""
			})
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			if err == nil {
				t.Fatalf("Execute(%v) succeeded, expected an error", tt.args)
			}
			if !strings.Contains(err.Error(), tt.err) {
				t.Errorf("Execute(%v) error = %q, expected it to mention %q", tt.args, err, tt.err)
			}
		})
	}
}
