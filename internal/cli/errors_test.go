package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Tests for sentinel errors
// ---------------------------------------------------------------------------

var cliSentinels = []struct {
	name     string
	err      error
	contains string
}{
	{"ErrURLMissing", ErrURLMissing, "ADOBECONNECT_URL"},
	{"ErrCredentialsMissing", ErrCredentialsMissing, "ADOBECONNECT_PASSWORD"},
	{"ErrFileNotFound", ErrFileNotFound, "not found"},
	{"ErrInvalidTime", ErrInvalidTime, "time"},
	{"ErrInvalidDuration", ErrInvalidDuration, "duration"},
	{"ErrInvalidPermission", ErrInvalidPermission, "permission"},
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	for i, a := range cliSentinels {
		for j, b := range cliSentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s should not match %s", a.name, b.name)
			}
		}
	}
}

func TestSentinelErrors_CanBeWrapped(t *testing.T) {
	t.Parallel()

	for _, tt := range cliSentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("wrapped error should match sentinel via errors.Is")
			}
		})
	}
}

func TestSentinelErrors_HaveMeaningfulMessages(t *testing.T) {
	t.Parallel()

	for _, tt := range cliSentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if msg := tt.err.Error(); !strings.Contains(msg, tt.contains) {
				t.Errorf("%s = %q, want it to mention %q", tt.name, msg, tt.contains)
			}
		})
	}
}
