package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sse-maker/linked-list/internal/logger"
	"github.com/sse-maker/linked-list/internal/session"
)

func init() {
	rootCmd.AddCommand(newShellCmd())
}

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Read list commands from stdin, one per line",
		Long: `The shell command keeps one list for the whole session and applies each
line read from stdin to it. "help" lists the commands, "quit" or "exit" ends
the session.

Example:
  listctl shell
  printf 'append 1 2 3\nreverse\nprint\n' | listctl shell -q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	return cmd
}

func runShell(in io.Reader, out io.Writer) error {
	state := session.NewState()
	scanner := bufio.NewScanner(in)
	scanner.Split(session.SplitMessages)

	prompt := func() {
		if !quiet {
			fmt.Fprint(out, "> ")
		}
	}

	prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			prompt()
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, strings.Join(session.Names(), " "))
			prompt()
			continue
		}

		reply, err := session.RunCommand(state, scanner.Bytes())
		if err != nil {
			logger.L.Debug("command failed", "command", line, "error", err)
			fmt.Fprintln(out, styled(emptyStyle, session.FormatText(err)))
		} else {
			fmt.Fprintln(out, session.FormatText(reply))
		}
		if verbose {
			fmt.Fprintln(out, renderChain(state.List().ToSlice()))
		}
		prompt()
	}
	return scanner.Err()
}
