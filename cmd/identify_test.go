package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestIdentifyCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	identifyCmd, _, err := cmd.Find([]string{"identify"})
	if err != nil {
		t.Fatalf("Failed to find identify command: %v", err)
	}

	for _, flag := range []string{"client-key", "format"} {
		if identifyCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected %s flag to be registered", flag)
		}
	}
}

func TestIdentifyCommandRequiresFile(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"identify"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when no file argument is given")
	}
}

func TestIdentifyCommandMissingFile(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"identify", "--client-key", "key", "/nonexistent/song.mp3"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error for nonexistent file")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected not-found error, got %v", err)
	}
}
