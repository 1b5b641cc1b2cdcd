package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-queue/pkg/logger"
	"github.com/huynhanx03/go-queue/pkg/script"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

type app struct {
	configPath string
	kind       string

	cfg      settings.Config
	log      *zap.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "queuectl",
		Short:         "Exercise FIFO queue implementations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags().Changed("kind"))
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config")
	root.PersistentFlags().StringVar(&a.kind, "kind", "", "queue implementation: slice or ring")

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Offer 4, 7, 10, drain, offer 10 and print the size at each checkpoint",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				defer a.close()
				return a.demo(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "repl",
			Short: "Read queue commands line by line until EOF or \"end\"",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				defer a.close()
				return a.repl(cmd)
			},
		},
	)
	return root
}

func (a *app) setup(kindOverride bool) error {
	cfg, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}
	if kindOverride {
		k, err := queue.ParseKind(a.kind)
		if err != nil {
			return err
		}
		cfg.Queue.Kind = string(k)
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closeLog = cfg, log, closeLog
	return nil
}

// close flushes the logger and releases its file, on success and error alike.
func (a *app) close() {
	if a.closeLog == nil {
		return
	}
	if err := a.closeLog(); err != nil {
		fmt.Fprintln(os.Stderr, "queuectl: close log:", err)
	}
	a.closeLog = nil
}

func newQueue[T any](cfg settings.Queue) (queue.Queue[T], error) {
	kind, err := queue.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	return queue.New[T](kind, cfg.InitialCapacity)
}

func (a *app) demo(w io.Writer) error {
	q, err := newQueue[int](a.cfg.Queue)
	if err != nil {
		return err
	}

	q.Offer(4)
	q.Offer(7)
	q.Offer(10)
	if _, err := fmt.Fprintf(w, "queue size: %d\n", q.Len()); err != nil {
		return errors.Wrap(err, "write demo output")
	}

	q.Poll()
	q.Poll()
	q.Poll()
	q.Offer(10)
	if _, err := fmt.Fprintf(w, "queue size: %d\n", q.Len()); err != nil {
		return errors.Wrap(err, "write demo output")
	}

	a.log.Info("demo finished", zap.String("kind", a.cfg.Queue.Kind), zap.Int("size", q.Len()))
	return nil
}

func (a *app) repl(cmd *cobra.Command) error {
	q, err := newQueue[string](a.cfg.Queue)
	if err != nil {
		return err
	}

	n, err := script.NewRunner(q, a.log).Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	a.log.Info("repl finished", zap.Int("commands", n), zap.Int("size", q.Len()), zap.Error(err))
	return err
}
