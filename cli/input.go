package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"finbook"
)

// Prompter acquires validated values from an interactive input source.
// Every method keeps re-prompting, printing an error for each bad attempt,
// until a conforming value is supplied; callers never see an invalid value.
// End of input terminates the program, which is the only way out of a
// prompt loop besides a valid value.
type Prompter struct {
	in   *bufio.Scanner
	out  io.Writer
	file *os.File // underlying terminal, when there is one, for masked input
	exit func(code int)
}

// NewPrompter returns a prompter reading lines from in and writing
// prompts and error messages to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:   bufio.NewScanner(in),
		out:  out,
		exit: os.Exit,
	}
	if f, ok := in.(*os.File); ok {
		p.file = f
	}
	return p
}

// line prints the prompt and reads the next line, trimmed.
func (p *Prompter) line(prompt string) string {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		p.exit(0)
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// NonEmpty prompts until a non-empty line is entered.
func (p *Prompter) NonEmpty(prompt string) string {
	for {
		if s := p.line(prompt); s != "" {
			return s
		}
		fmt.Fprintln(p.out, "This field cannot be empty!")
	}
}

// PositiveAmount prompts until a strictly positive monetary amount is entered.
func (p *Prompter) PositiveAmount(prompt string) finbook.Amount {
	for {
		value, err := decimal.NewFromString(p.NonEmpty(prompt))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number format!")
			continue
		}
		if a := finbook.A(value); a.IsPositive() {
			return a
		}
		fmt.Fprintln(p.out, "Value must be positive!")
	}
}

// Date prompts until a parseable date is entered.
func (p *Prompter) Date(prompt string) finbook.Date {
	for {
		d, err := finbook.ParseDate(p.NonEmpty(prompt))
		if err == nil {
			return d
		}
		fmt.Fprintln(p.out, "Invalid date format! Use YYYY-MM-DD")
	}
}

// FutureDate prompts until a date strictly after today is entered.
func (p *Prompter) FutureDate(prompt string) finbook.Date {
	for {
		d := p.Date(prompt)
		if d.After(finbook.Today()) {
			return d
		}
		fmt.Fprintln(p.out, "Date must be in the future!")
	}
}

// DateAfter prompts until a date strictly after the given date is entered.
func (p *Prompter) DateAfter(prompt string, after finbook.Date) finbook.Date {
	for {
		d := p.Date(prompt)
		if d.After(after) {
			return d
		}
		fmt.Fprintf(p.out, "Date must be after %s!\n", after)
	}
}

// Clock prompts until a parseable time of day is entered.
func (p *Prompter) Clock(prompt string) finbook.Clock {
	for {
		c, err := finbook.ParseClock(p.NonEmpty(prompt))
		if err == nil {
			return c
		}
		fmt.Fprintln(p.out, "Invalid time format! Use HH:MM")
	}
}

// Email prompts until a plausible email address is entered.
func (p *Prompter) Email(prompt string) string {
	for {
		s := p.NonEmpty(prompt)
		if finbook.ValidEmail(s) {
			return s
		}
		fmt.Fprintln(p.out, "Invalid email format!")
	}
}

// BoundedString prompts until a string with length in [min, max] is entered.
func (p *Prompter) BoundedString(prompt string, min, max int) string {
	for {
		s := p.NonEmpty(prompt)
		if finbook.ValidLength(s, min, max) {
			return s
		}
		fmt.Fprintf(p.out, "Must be %d-%d characters!\n", min, max)
	}
}

// Password prompts for a non-empty password. On a real terminal the input
// is read masked; otherwise it falls back to a plain line read so that
// pipes and tests keep working.
func (p *Prompter) Password(prompt string) string {
	if p.file == nil || !term.IsTerminal(int(p.file.Fd())) {
		return p.NonEmpty(prompt)
	}
	for {
		fmt.Fprint(p.out, prompt)
		raw, err := term.ReadPassword(int(p.file.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			p.exit(0)
			return ""
		}
		if s := strings.TrimSpace(string(raw)); s != "" {
			return s
		}
		fmt.Fprintln(p.out, "This field cannot be empty!")
	}
}
