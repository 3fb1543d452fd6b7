package diag

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fail panics with a stack-annotated error naming the call site that
// triggered a recorder usage error (see spec §7: these are programming
// errors with a single fatal channel, not recoverable control flow).
//
// skip is the number of stack frames to climb past Fail itself to find the
// offending call site; callers typically pass 1 to blame their own caller.
func Fail(skip int, format string, args ...interface{}) {
	site := Here(skip + 1)
	msg := fmt.Sprintf(format, args...)
	panic(errors.WithStack(fmt.Errorf("%s: %s", site, msg)))
}
