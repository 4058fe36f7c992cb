package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sse-maker/linked-list/internal/logger"
	"github.com/sse-maker/linked-list/pkg/lists"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the two-node list 10 -> 20, reverse it and release it",
		Long: `The demo command links a node holding 10 at the front of an empty list,
links a node holding 20 after it, prints the values one per line, reverses
the list in place and finally releases every node.

Example:
  listctl demo
  listctl demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

type demoResult struct {
	Values   []int `json:"values"`
	Reversed []int `json:"reversed"`
	Count    int   `json:"count"`
	Sum      int   `json:"sum"`
	Released int   `json:"released"`
}

func runDemo() error {
	var head *lists.Node

	first := lists.NewNode(10)
	head, err := lists.Insert(head, nil, first)
	if err != nil {
		return fmt.Errorf("failed to insert first node: %w", err)
	}
	second := lists.NewNode(20)
	head, err = lists.Insert(head, first, second)
	if err != nil {
		return fmt.Errorf("failed to insert second node: %w", err)
	}
	logger.L.Debug("demo list built", "count", lists.Count(head))

	res := demoResult{
		Values: lists.ToSlice(head),
		Count:  lists.Count(head),
		Sum:    lists.Sum(head),
	}

	if !jsonOut && !quiet {
		if err := lists.Print(os.Stdout, head); err != nil {
			return err
		}
	}
	printVerbose("%s\n", renderChain(res.Values))

	head, err = lists.Reverse(head)
	if err != nil {
		return fmt.Errorf("failed to reverse: %w", err)
	}
	res.Reversed = lists.ToSlice(head)

	head = lists.DeleteAll(head)
	for _, n := range []*lists.Node{first, second} {
		if n.Released() {
			res.Released++
		}
	}
	logger.L.Debug("demo list released", "released", res.Released, "empty", head == nil)

	if jsonOut {
		return printJSON(res)
	}
	printInfo("reversed: %s\n", renderChain(res.Reversed))
	printInfo("count: %d, sum: %d, released: %d\n", res.Count, res.Sum, res.Released)
	return nil
}
