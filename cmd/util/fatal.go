package util

import (
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var red = color.New(color.FgRed)

const errorPrefix = "Error: "

var Fatal = fatalError

func fatalError(cmd *cobra.Command, err error, code int) {
	PrintErr(cmd, err)
	os.Exit(code)
}

// PrintErr writes err to the command's stderr with a red prefix, wrapped to
// the terminal width and indented under the prefix.
func PrintErr(cmd *cobra.Command, err error) {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return
	}

	terminalWidth, _, termErr := term.GetSize(int(os.Stderr.Fd()))
	if termErr != nil || terminalWidth <= len(errorPrefix) {
		log.Debug().Err(termErr).Msg("Failed to get terminal size")
		terminalWidth = math.MaxInt32
	}
	errorWidth := uint(terminalWidth - len(errorPrefix))

	w := cmd.ErrOrStderr()
	red.Fprint(w, errorPrefix)
	for i, line := range strings.Split(wordwrap.WrapString(msg, errorWidth), "\n") {
		if i > 0 {
			cmd.PrintErr(strings.Repeat(" ", len(errorPrefix)))
		}
		cmd.PrintErrln(line)
	}
}
