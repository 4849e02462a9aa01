package report

import "errors"

// ErrUnmatchedExit means an exit record arrived with no open entry for the
// same employee, date and shift. The ledger only produces such data when it
// has been tampered with or partially written, so aggregation refuses to
// guess and fails instead.
var ErrUnmatchedExit = errors.New("exit record without a matching open entry")
