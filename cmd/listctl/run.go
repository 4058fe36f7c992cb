package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sse-maker/linked-list/internal/logger"
	"github.com/sse-maker/linked-list/internal/session"
)

var runKeepGoing bool

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVarP(&runKeepGoing, "keep-going", "k", false, "Continue after a failing command")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command>...",
		Short: "Apply list commands to a fresh list",
		Long: `The run command applies each argument as one list command to a fresh,
empty list and prints every reply. The final list is shown at the end.

Commands:
  append v...   prepend v...   insert pos v   delete pos   clear
  reverse       print          count          sum          get pos
  last          prev pos       ping           echo msg

Example:
  listctl run "append 5 3 8" "delete 2" print
  listctl run "insert 1 10" "insert 2 20" reverse print --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

type runReply struct {
	Command string `json:"command"`
	Reply   any    `json:"reply,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runRun(args []string) error {
	state := session.NewState()
	replies := make([]runReply, 0, len(args))
	var failed error

	for _, line := range args {
		printVerbose("> %s\n", line)
		reply, err := session.RunCommand(state, []byte(line))
		if err != nil {
			logger.L.Debug("command failed", "command", line, "error", err)
			replies = append(replies, runReply{Command: line, Error: err.Error()})
			if !jsonOut {
				printInfo("%s\n", styled(emptyStyle, session.FormatText(err)))
			}
			if failed == nil {
				failed = fmt.Errorf("command %q failed: %w", line, err)
			}
			if !runKeepGoing {
				break
			}
			continue
		}
		replies = append(replies, runReply{Command: line, Reply: reply})
		if !jsonOut {
			printInfo("%s\n", session.FormatText(reply))
		}
	}

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"replies": replies,
			"list":    state.List().ToSlice(),
		}); err != nil {
			return err
		}
		return failed
	}
	printVerbose("%s\n", renderChain(state.List().ToSlice()))
	return failed
}
