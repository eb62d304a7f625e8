package display

import (
	"fmt"
	"os"

	"github.com/backmassage/capfirst/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  ___           ___ _         _
 / __|__ _ _ __| __(_)_ _ ___| |_
| (__/ _`+"`"+` | '_ \ _|| | '_(_-<  _|
 \___\__,_| .__/_| |_|_| /__/\__|
          |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
