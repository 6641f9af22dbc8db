package host

import (
	"io"
	"os"
)

// resetSequence undoes what New turns on, plus anything a half-finished
// frame may have left: motion and button mouse reporting, SGR mouse mode,
// hidden cursor, alternate screen, attributes and disabled autowrap
const resetSequence = "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" +
	"\x1b[?25h" +
	"\x1b[?1049l" +
	"\x1b[0m" +
	"\x1b[?7h"

// EmergencyReset restores a usable terminal when the host could not be closed,
// typically from a recovered panic outside Run
func EmergencyReset(w io.Writer) error {
	_, err := io.WriteString(w, resetSequence)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences do not restore termios; best effort after a crash
	resetTerminalMode()
	return err
}
