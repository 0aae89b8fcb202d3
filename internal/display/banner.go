package display

import (
	"fmt"
	"io"

	"github.com/backmassage/camswap/internal/term"
)

const banner = `  ___ __ _ _ __ ___  _____      ____ _ _ __
 / __/ _` + "`" + ` | '_ ` + "`" + ` _ \/ __\ \ /\ / / _` + "`" + ` | '_ \
| (_| (_| | | | | | \__ \\ V  V / (_| | |_) |
 \___\__,_|_| |_| |_|___/ \_/\_/ \__,_| .__/
                                      |_|`

// PrintBanner writes the ASCII art banner to w in the accent color.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Accent.Render(banner))
}
