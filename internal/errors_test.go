package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestInvalidBackupError(t *testing.T) {
	cause := errors.New("boom")
	err := &InvalidBackupError{Reason: "unsupported version 2", Err: cause}

	if !strings.Contains(err.Error(), "invalid backup") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(err.Error(), "unsupported version 2") {
		t.Errorf("Error() = %q, missing reason", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap does not expose the cause")
	}

	// Reason-only errors must render without a trailing cause.
	bare := &InvalidBackupError{Reason: "missing version"}
	if strings.Contains(bare.Error(), "<nil>") {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("locked")
	err := &StorageError{Op: "write", Key: "s1", Err: cause}

	if !strings.Contains(err.Error(), "write") || !strings.Contains(err.Error(), "s1") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap does not expose the cause")
	}

	keyless := &StorageError{Op: "open", Err: cause}
	if strings.Contains(keyless.Error(), "  ") {
		t.Errorf("Error() = %q, double space without key", keyless.Error())
	}
}

func TestTemplateError(t *testing.T) {
	cause := errors.New("parse failed")
	err := &TemplateError{Path: "/tmp/t.yaml", Err: cause}

	if !strings.Contains(err.Error(), "/tmp/t.yaml") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap does not expose the cause")
	}
}
