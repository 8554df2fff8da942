package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive input line by line and renders the text UI.
// Read methods keep asking until the input parses; they only return an error
// when the input stream ends.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wires a prompter to the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ReadLine prints the prompt and returns the next trimmed line.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ReadInt keeps prompting until the line parses as an integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			p.Error("Invalid number format. Please enter a valid integer.")
			continue
		}
		return value, nil
	}
}

// ReadInt64 keeps prompting until the line parses as an id.
func (p *Prompter) ReadInt64(prompt string) (int64, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			p.Error("Invalid number format. Please enter a valid integer.")
			continue
		}
		return value, nil
	}
}

// ReadIntInRange keeps prompting until the value falls inside [min, max].
func (p *Prompter) ReadIntInRange(prompt string, min, max int) (int, error) {
	for {
		value, err := p.ReadInt(prompt)
		if err != nil {
			return 0, err
		}
		if value >= min && value <= max {
			return value, nil
		}
		p.Error(fmt.Sprintf("Please enter a number between %d and %d.", min, max))
	}
}

// ReadBool keeps prompting until the answer is yes/y or no/n.
func (p *Prompter) ReadBool(prompt string) (bool, error) {
	for {
		line, err := p.ReadLine(prompt + " (yes/no): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		p.Error("Please enter 'yes' or 'no'.")
	}
}

// Header prints a bannered section title.
func (p *Prompter) Header(title string) {
	bar := strings.Repeat("=", 60)
	fmt.Fprintf(p.out, "\n%s\n  %s\n%s\n", bar, title, bar)
}

// SubHeader prints a minor section title.
func (p *Prompter) SubHeader(title string) {
	fmt.Fprintf(p.out, "\n--- %s ---\n", title)
}

// Separator prints a horizontal rule.
func (p *Prompter) Separator() {
	fmt.Fprintln(p.out, strings.Repeat("-", 60))
}

// Success prints a success line.
func (p *Prompter) Success(message string) {
	fmt.Fprintf(p.out, "[SUCCESS] %s\n", message)
}

// Error prints an error line.
func (p *Prompter) Error(message string) {
	fmt.Fprintf(p.out, "[ERROR] %s\n", message)
}

// Info prints an informational line.
func (p *Prompter) Info(message string) {
	fmt.Fprintf(p.out, "[INFO] %s\n", message)
}

// Printf writes formatted output.
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line.
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}
