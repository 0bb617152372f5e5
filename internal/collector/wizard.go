package collector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Wizard asks every question on a terminal and fills a Form
type Wizard struct {
	collector *Collector
	reader    *bufio.Reader
	out       io.Writer
}

// NewWizard creates a wizard reading answers from in and writing prompts to out
func NewWizard(c *Collector, in io.Reader, out io.Writer) *Wizard {
	return &Wizard{collector: c, reader: bufio.NewReader(in), out: out}
}

// Run walks all sections in order
func (w *Wizard) Run() (Form, error) {
	var f Form
	for _, section := range w.collector.Sections() {
		fmt.Fprintln(w.out, sectionStyle.Render(section.Title))
		for _, q := range section.Questions {
			values, err := w.ask(q)
			if err != nil {
				return f, err
			}
			f.Set(q.Key, values...)
		}
	}
	return f, nil
}

func (w *Wizard) ask(q Question) ([]string, error) {
	label := q.Label
	if q.Required {
		label += "*"
	}

	if q.IsChoice() {
		fmt.Fprintln(w.out, promptStyle.Render(label))
		for i, opt := range q.Options {
			fmt.Fprintf(w.out, "  %d. %s\n", i+1, opt)
		}
	}

	for {
		switch q.Kind {
		case KindText, KindLongText:
			if q.Placeholder != "" {
				fmt.Fprintf(w.out, "%s %s: ", promptStyle.Render(label), hintStyle.Render("("+q.Placeholder+")"))
			} else {
				fmt.Fprintf(w.out, "%s: ", promptStyle.Render(label))
			}
		case KindMulti:
			fmt.Fprint(w.out, hintStyle.Render("Numbers separated by commas, Enter for none")+"> ")
		default:
			fmt.Fprint(w.out, hintStyle.Render(defaultHint(q))+"> ")
		}

		line, err := w.readLine()
		if err != nil {
			return nil, err
		}

		switch q.Kind {
		case KindText, KindLongText:
			if line == "" && q.Required {
				fmt.Fprintln(w.out, "This field is required")
				continue
			}
			return []string{line}, nil

		case KindMulti:
			picked, ok := pickMany(q.Options, line)
			if !ok {
				fmt.Fprintln(w.out, "Invalid selection")
				continue
			}
			return picked, nil

		default:
			if line == "" {
				if q.Required {
					fmt.Fprintln(w.out, "This field is required")
					continue
				}
				return []string{q.Default}, nil
			}
			picked, ok := pickOne(q.Options, line)
			if !ok {
				fmt.Fprintln(w.out, "Invalid selection")
				continue
			}
			return []string{picked}, nil
		}
	}
}

// readLine returns the trimmed next line. A final line without a newline is
// accepted; running out of input altogether is an error.
func (w *Wizard) readLine() (string, error) {
	line, err := w.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func defaultHint(q Question) string {
	if q.Default == "" {
		if q.Required {
			return "Number"
		}
		return "Number, Enter to skip"
	}
	return fmt.Sprintf("Number, Enter for %q", q.Default)
}

func pickOne(opts []string, input string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(opts) {
		return "", false
	}
	return opts[n-1], true
}

func pickMany(opts []string, input string) ([]string, bool) {
	picked := []string{}
	if strings.TrimSpace(input) == "" {
		return picked, true
	}
	for _, part := range strings.Split(input, ",") {
		opt, ok := pickOne(opts, part)
		if !ok {
			return nil, false
		}
		picked = append(picked, opt)
	}
	return picked, true
}
