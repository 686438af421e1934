package lesson

import (
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes section output with English number formatting.
type Printer struct {
	w       io.Writer
	msg     *message.Printer
	heading *color.Color
}

// NewPrinter returns a Printer writing to w. Headings are colored only
// when colorize is set.
func NewPrinter(w io.Writer, colorize bool) *Printer {
	heading := color.New(color.FgCyan, color.Bold)
	if colorize {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	return &Printer{
		w:       w,
		msg:     message.NewPrinter(language.English),
		heading: heading,
	}
}

func (p *Printer) Println(a ...any) {
	p.msg.Fprintln(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	p.msg.Fprintf(p.w, format, a...)
}

// Heading prints a section title framed as "== title ==".
func (p *Printer) Heading(title string) {
	p.heading.Fprintln(p.w, "== "+title+" ==")
}
