package cli

import (
	"fmt"
	"os"

	"github.com/sfta-dev/sfta/internal/apperr"
)

// LoadSource reads the fault-tree source file at path. Errors here are
// command-level (ExitUsageError), not analysis errors: the file simply
// could not be read.
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", WrapExitError(ExitUsageError, fmt.Sprintf("reading %s", path), err)
	}
	return string(data), nil
}

// classifyError extracts a taxonomy code and source line from err, for
// errors raised by internal/parser or internal/compiler. Any other
// error (I/O, flag misuse) is reported under a generic code.
func classifyError(err error) (code string, line int) {
	if ae, ok := err.(*apperr.Error); ok {
		return string(ae.Kind), ae.Line()
	}
	return "Error", 0
}
