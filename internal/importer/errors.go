package importer

import "fmt"

// MissingColumnError fails a whole sheet: without the expected column the
// row records cannot be mapped. The orchestrator skips the sheet and moves on.
type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("sheet %q is missing expected column %q", e.Sheet, e.Column)
}

// RowError marks a single row that cannot form a valid entity. The row is
// skipped; the rest of the batch continues.
type RowError struct {
	Sheet  string
	Row    int // 1-based data row within the sheet (blank rows excluded)
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d: %s", e.Sheet, e.Row, e.Reason)
}

// BatchCommitError reports a persistence-layer rejection of a sheet's batch.
// The whole batch was rolled back; nothing from the sheet was committed.
type BatchCommitError struct {
	Sheet string
	Err   error
}

func (e *BatchCommitError) Error() string {
	return fmt.Sprintf("sheet %q batch was rolled back: %v", e.Sheet, e.Err)
}

func (e *BatchCommitError) Unwrap() error { return e.Err }
