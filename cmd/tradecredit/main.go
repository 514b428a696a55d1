package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/tradecredit/internal/app"
	"github.com/fsdevblog/tradecredit/internal/config"
	"github.com/fsdevblog/tradecredit/internal/logger"
	"github.com/fsdevblog/tradecredit/internal/transport/sweeper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	l := logger.New(os.Stdout)

	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(l).ExecuteContext(notifyCtx); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			return
		}
		l.WithError(err).Error("exiting")
		stop()
		os.Exit(1) //nolint:gocritic
	}
}

func newRootCmd(l *logrus.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "tradecredit",
		Short:         "Trade credit backend for suppliers, retailers and fintech partners",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, relay and overdue sweep",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, l)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Move pending dues past their due date to overdue once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, l)
			if err != nil {
				return err
			}
			swept, err := a.Sweep(cmd.Context())
			if errors.Is(err, sweeper.ErrLockNotObtained) {
				l.Info("sweep is already running on another instance")
				return nil
			}
			if err != nil {
				return err //nolint:wrapcheck
			}
			l.WithField("swept", swept).Info("sweep finished")
			return nil
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, l)
			if err != nil {
				return err
			}
			if err = a.Migrate(); err != nil {
				return err //nolint:wrapcheck
			}
			l.Info("migrations applied")
			return nil
		},
	}

	root.AddCommand(serveCmd, sweepCmd, migrateCmd)
	// без подкоманды запускается сервер.
	root.RunE = serveCmd.RunE
	return root
}

func newApp(cmd *cobra.Command, l *logrus.Logger) (*app.App, error) {
	conf, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if err = logger.SetLevel(l, conf.LogLevel); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return app.New(conf, l), nil
}
