//go:build !release

package assert

import (
	"fmt"

	"github.com/bloeys/teapot/logging"
)

// T panics with the formatted message when check is false.
// Builds with the 'release' tag compile this away.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	if len(args) == 0 {
		logging.ErrLog.Panicln("Assert failed: " + msg)
	}

	logging.ErrLog.Panicln("Assert failed: " + fmt.Sprintf(msg, args...))
}
