package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const timeLayout = "2006-01-02 15:04"

func validateFormat(format string) error {
	switch format {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTable(cmd *cobra.Command) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	return t
}

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// flexWidth is the space left for one free-text column once the fixed
// columns and roughly three characters of border per column are taken.
func flexWidth(fixed []int, minWidth int) int {
	width := getTerminalWidth() - len(fixed)*3 - 3
	for _, w := range fixed {
		width -= w
	}
	if width < minWidth {
		return minWidth
	}
	return width
}

func maxWidth(values []string, floor, ceiling int) int {
	width := floor
	for _, v := range values {
		if w := runewidth.StringWidth(v); w > width {
			width = w
		}
	}
	if width > ceiling {
		return ceiling
	}
	return width
}

// truncate shortens s to fit maxWidth cells, accounting for wide characters.
func truncate(s string, maxWidth int) string {
	return runewidth.Truncate(strings.TrimSpace(s), maxWidth, "...")
}

// confirm asks a y/N question on stderr and reports whether the answer was y.
func confirm(cmd *cobra.Command, message string) (bool, error) {
	fmt.Fprint(cmd.ErrOrStderr(), message)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "y", nil
}
