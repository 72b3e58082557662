package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func resetFlags(t *testing.T) {
	t.Helper()
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("failed to reset flag %s: %v", f.Name, err)
		}
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListVoices(t *testing.T) {
	out, err := execute(t, "--list-voices")
	if err != nil {
		t.Fatalf("list-voices failed: %v", err)
	}

	for _, want := range []string{
		"Popular Voice Options:",
		"ava",
		"en-US-AvaNeural",
		"christopher",
		"en-US-ChristopherNeural",
		"https://learn.microsoft.com",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list-voices output missing %q:\n%s", want, out)
		}
	}
}

func TestListVoices_RejectsOtherFlags(t *testing.T) {
	_, err := execute(t, "--list-voices", "-v", "emma")
	if err == nil {
		t.Fatal("expected error combining --list-voices with --voice")
	}
	if !strings.Contains(err.Error(), "--voice") {
		t.Errorf("error should name the conflicting flag, got: %v", err)
	}
}

func TestListVoices_RejectsPlayFlag(t *testing.T) {
	if _, err := execute(t, "--list-voices", "--play"); err == nil {
		t.Fatal("expected error combining --list-voices with --play")
	}
}

func TestNoModeSelected(t *testing.T) {
	if _, err := execute(t); err == nil {
		t.Fatal("expected error when no input mode is given")
	}
}

func TestTextAndFileMutuallyExclusive(t *testing.T) {
	if _, err := execute(t, "-t", "hi", "-f", "input.txt"); err == nil {
		t.Fatal("expected error combining --text and --file")
	}
}

func TestMissingCredentials(t *testing.T) {
	os.Unsetenv("SPEECH_KEY")
	os.Unsetenv("SPEECH_REGION")

	_, err := execute(t, "-t", "hello")
	if err == nil {
		t.Fatal("expected configuration error without credentials")
	}
	if !strings.Contains(err.Error(), "SPEECH_KEY") {
		t.Errorf("error should mention missing credentials, got: %v", err)
	}
}
