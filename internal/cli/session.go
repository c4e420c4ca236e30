package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/telemetry/core"
)

func init() {
	rootCmd.AddCommand(startCmd, endCmd, statusCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new session, discarding the previous session's events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := rec.StartSession(); err != nil {
			return err
		}
		sid, _ := rec.SessionID()
		fmt.Fprintf(cmd.OutOrStdout(), "Session started: %s\n", sid)
		return nil
	},
}

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active session; recorded events stay readable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sid, _ := rec.SessionID()
		if err := rec.EndSession(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session ended: %s\n", sid)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session and number of recorded events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := rec.Snapshot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if sid, ok := rec.SessionID(); ok {
			fmt.Fprintf(out, "Session: %s (active)\n", sid)
		} else {
			fmt.Fprintln(out, "Session: none")
		}
		if !doc.Valid() {
			fmt.Fprintln(out, "Events: unreadable document (next event starts a fresh one)")
			return nil
		}
		fmt.Fprintf(out, "Events: %d\n", doc.Len())
		for _, name := range doc.Names() {
			ts, _ := doc.Field(name, core.TimestampField)
			fmt.Fprintf(out, "  %s  %d\n", name, ts.Int())
		}
		return nil
	},
}
