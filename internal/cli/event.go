package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var eventProps []string

func init() {
	rootCmd.AddCommand(eventCmd)
	eventCmd.Flags().StringArrayVarP(&eventProps, "prop", "p", nil, "Event property as key=value (repeatable; bool/int/float values are typed)")
}

var eventCmd = &cobra.Command{
	Use:   "event <name>",
	Short: "Record an event in the active session",
	Long:  "Records an event under <name>. A later event with the same name replaces the earlier one.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := parseProps(eventProps)
		if err != nil {
			return err
		}
		if err := rec.AddEvent(args[0], props); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %q\n", args[0])
		return nil
	},
}

// parseProps turns key=value pairs into a property map. Later keys win.
func parseProps(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	props := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid property %q: expected key=value", p)
		}
		props[k] = inferValue(v)
	}
	return props, nil
}

func inferValue(v string) any {
	if v == "true" || v == "false" {
		return v == "true"
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
