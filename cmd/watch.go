package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"

	"github.com/cwel/waybarctl/internal/bar"
	"github.com/cwel/waybarctl/internal/watch"
)

var watchDaemonize bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Supervise the bar process",
	Long:  "Keep the bar running: poll its liveness and respawn it when it dies, and reload it when the theme or installed configuration changes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		if watchDaemonize {
			os.MkdirAll(e.paths.RunDir, 0700)
			cntxt := &daemon.Context{
				PidFileName: filepath.Join(e.paths.RunDir, "watch.pid"),
				PidFilePerm: 0644,
				LogFileName: e.paths.LogFile,
				LogFilePerm: 0640,
				Umask:       027,
			}

			d, err := cntxt.Reborn()
			if err != nil {
				return fmt.Errorf("daemonize: %w", err)
			}
			if d != nil {
				// Parent process - supervisor started successfully
				return nil
			}
			defer cntxt.Release()
		}

		ctx, cancel := context.WithCancel(context.Background())
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return watch.Run(ctx, watch.Options{
			Interval: time.Duration(e.cfg.Watch.IntervalSeconds) * time.Second,
			Paths:    e.paths,
			Bar:      bar.New(e.cfg.Bar.Process),
		})
	},
}

func init() {
	watchCmd.Flags().BoolVarP(&watchDaemonize, "daemon", "d", false, "Detach and run in the background")
	rootCmd.AddCommand(watchCmd)
}
