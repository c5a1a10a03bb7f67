// Package colorize implements terminal syntax highlighting of listings.
package colorize

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/retroenv/lc3disasm/internal/options"
)

// noColorEnv disables highlighting in auto mode when set.
const noColorEnv = "NO_COLOR"

// Enabled returns whether output written to out should be highlighted for
// the given color mode.
func Enabled(mode string, out io.Writer) bool {
	switch mode {
	case options.ColorAlways:
		return true
	case options.ColorNever:
		return false
	}

	if os.Getenv(noColorEnv) != "" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return IsTerminal(file.Fd())
}

// Highlight writes the highlighted listing to the writer. The listing is
// written unchanged if no assembly lexer is available.
func Highlight(w io.Writer, listing string) error {
	lexer := assemblyLexer()
	if lexer == nil {
		if _, err := io.WriteString(w, listing); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	iterator, err := lexer.Tokenise(nil, listing)
	if err != nil {
		return fmt.Errorf("tokenising listing: %w", err)
	}

	if err := terminalFormatter().Format(w, listingStyle(), iterator); err != nil {
		return fmt.Errorf("formatting listing: %w", err)
	}
	return nil
}

// assemblyLexer returns the first available assembly lexer that handles
// ';' line comments.
func assemblyLexer() chroma.Lexer {
	for _, name := range []string{"nasm", "gas", "armasm"} {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

func listingStyle() *chroma.Style {
	for _, name := range []string{styleName, "dracula", "monokai"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

func terminalFormatter() chroma.Formatter {
	for _, name := range []string{"terminal16m", "terminal256"} {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}
