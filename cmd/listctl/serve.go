package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sse-maker/linked-list/internal/session"
)

var serveAddr string

func init() {
	cmd := newServeCmd()
	cmd.Flags().StringVar(&serveAddr, "addr", ":7379", "Address to listen on, e.g. :7379")
	rootCmd.AddCommand(cmd)
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one list over TCP",
		Long: `The serve command holds a single list in memory and answers commands sent
over TCP as RESP arrays of bulk strings or as inline text lines. Requests from
all connections are applied one at a time, in arrival order.

Example:
  listctl serve --addr :7379
  printf 'append 10 20\r\nprint\r\n' | nc localhost 7379`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
	return cmd
}

func runServe(ctx context.Context) error {
	s := session.NewServer(serveAddr)
	s.Ready = func(addr string) {
		printInfo("Serving list on %s\n", addr)
	}

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return s.Start()
}
