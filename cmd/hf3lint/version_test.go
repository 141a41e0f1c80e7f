package main

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version = "1.2.3-test"
	GitCommit = "abc123"

	cmd, out, _ := testCommand()
	versionCmd.Run(cmd, nil)

	for _, want := range []string{"hf3lint 1.2.3-test", "Git Commit: abc123", runtime.Version()} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q does not contain %q", out.String(), want)
		}
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range completionCmd.ValidArgs {
		t.Run(shell, func(t *testing.T) {
			cmd, out, _ := testCommand()
			if err := completionCmd.RunE(cmd, []string{shell}); err != nil {
				t.Fatalf("completion %s error = %v", shell, err)
			}
			if out.Len() == 0 {
				t.Errorf("completion %s produced no script", shell)
			}
		})
	}

	cmd, _, _ := testCommand()
	if err := completionCmd.RunE(cmd, []string{"tcsh"}); err == nil {
		t.Error("completion accepted an unsupported shell")
	}
}
