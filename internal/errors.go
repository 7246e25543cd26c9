package internal

import "fmt"

// InvalidBackupError reports a structurally malformed backup snapshot:
// unparseable payload, wrong version, or a sessions field that is not a
// sequence. Import raises it before anything is written.
type InvalidBackupError struct {
	Reason string
	Err    error
}

func (e *InvalidBackupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid backup: %s", e.Reason)
}

func (e *InvalidBackupError) Unwrap() error {
	return e.Err
}

// StorageError reports a failed session store operation.
type StorageError struct {
	Op  string // "open", "read", "write", "delete"
	Key string // session id, empty for whole-store operations
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TemplateError reports a failure loading the workout template catalog.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error: %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
