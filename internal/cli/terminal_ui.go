package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/net/html"

	"github.com/at-ishikawa/fancyword/internal/editor"
)

// TerminalUI shows choice lists, popups and status messages on a terminal.
type TerminalUI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	underline    *color.Color
	yellow       *color.Color
}

func NewTerminalUI(stdin io.Reader, stdout io.Writer) *TerminalUI {
	return &TerminalUI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		underline:    color.New(color.Underline),
		yellow:       color.New(color.FgYellow),
	}
}

// ShowChoiceList prints the items and asks for a number until it gets a valid
// one. An empty answer, q, or the end of input cancels.
func (ui *TerminalUI) ShowChoiceList(ctx context.Context, items []string) (int, error) {
	for _, item := range items {
		if _, err := fmt.Fprintf(ui.stdoutWriter, "  %s\n", item); err != nil {
			return editor.CancelledIndex, fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return editor.CancelledIndex, err
		}
		if _, err := ui.bold.Fprintf(ui.stdoutWriter, "Choose a word [1-%d] (empty or q to cancel): ", len(items)); err != nil {
			return editor.CancelledIndex, fmt.Errorf("bold.Fprintf > %w", err)
		}

		input, err := ui.stdinReader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return editor.CancelledIndex, fmt.Errorf("stdinReader.ReadString > %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" || strings.EqualFold(input, "q") {
			return editor.CancelledIndex, nil
		}

		choice, convErr := strconv.Atoi(input)
		if convErr == nil && choice >= 1 && choice <= len(items) {
			return choice - 1, nil
		}
		if errors.Is(err, io.EOF) {
			return editor.CancelledIndex, nil
		}
		if _, err := fmt.Fprintf(ui.stdoutWriter, "%q is not a number between 1 and %d\n", input, len(items)); err != nil {
			return editor.CancelledIndex, fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
}

// ShowPopup renders the popup body. <u> is underlined and <br> breaks the line.
func (ui *TerminalUI) ShowPopup(_ context.Context, body string) error {
	tokenizer := html.NewTokenizer(strings.NewReader(body))
	underlined := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return fmt.Errorf("tokenizer.Next > %w", err)
			}
			if _, err := fmt.Fprintln(ui.stdoutWriter); err != nil {
				return fmt.Errorf("fmt.Fprintln > %w", err)
			}
			return nil
		case html.TextToken:
			text := string(tokenizer.Text())
			var err error
			if underlined > 0 {
				_, err = ui.underline.Fprint(ui.stdoutWriter, text)
			} else {
				_, err = fmt.Fprint(ui.stdoutWriter, text)
			}
			if err != nil {
				return fmt.Errorf("fmt.Fprint > %w", err)
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "br":
				if _, err := fmt.Fprintln(ui.stdoutWriter); err != nil {
					return fmt.Errorf("fmt.Fprintln > %w", err)
				}
			case "u":
				underlined++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "u" && underlined > 0 {
				underlined--
			}
		}
	}
}

func (ui *TerminalUI) ShowStatus(message string) {
	_, _ = ui.yellow.Fprintln(ui.stdoutWriter, message)
}
