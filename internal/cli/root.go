// Package cli implements the telemetryctl commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/telemetry"
	"github.com/hupe1980/telemetry/config"
	"github.com/hupe1980/telemetry/recorder"
)

var (
	rec         *recorder.Recorder
	storeCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "telemetryctl",
	Short:         "Record analytics sessions and events into a local store",
	Long:          "Drives the session recorder from the shell. The session survives between invocations because the token is restored from the configured store.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := cfg.Log.Logger().WithComponent("telemetryctl")
		s, closer, err := config.OpenStore(cmd.Context(), cfg.Store)
		if err != nil {
			return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
		}
		storeCloser = closer

		sdk, err := telemetry.New(func(o *telemetry.Options) {
			o.APIKey = cfg.APIKey
			o.Store = s
			o.Logger = logger
			o.RecorderOptions = append(o.RecorderOptions, func(o *recorder.Options) { o.RestoreSession = true })
		})
		if err != nil {
			return err
		}
		rec = sdk.NewRecorder()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func closeStore() error {
	if storeCloser == nil {
		return nil
	}
	err := storeCloser.Close()
	storeCloser = nil
	rec = nil
	return err
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = closeStore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
