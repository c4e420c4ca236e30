package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/telemetry/core"
)

var (
	dumpFormat string
	dumpQuery  string
)

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "Output format: json or yaml")
	dumpCmd.Flags().StringVarP(&dumpQuery, "query", "q", "", "gjson path evaluated against the document (e.g. Login.user)")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the recorded event document",
	Long:  "Prints the event document of the active or most recent session. Available after the session has ended.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := rec.Snapshot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if dumpQuery != "" {
			res := doc.Query(dumpQuery)
			if !res.Exists() {
				return fmt.Errorf("no match for %q", dumpQuery)
			}
			if res.IsObject() || res.IsArray() {
				fmt.Fprintln(out, res.Raw)
			} else {
				fmt.Fprintln(out, res.String())
			}
			return nil
		}

		switch dumpFormat {
		case "json":
			fmt.Fprintln(out, doc.String())
		case "yaml":
			coll, err := doc.Decode()
			if err != nil {
				return fmt.Errorf("decode document: %w", err)
			}
			b, err := yaml.Marshal(plainValue(coll))
			if err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			fmt.Fprint(out, string(b))
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", dumpFormat)
		}
		return nil
	},
}

// plainValue replaces json.Number with int64 or float64 so yaml emits
// numbers instead of quoted strings.
func plainValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case core.EventCollection:
		out := make(map[string]any, len(t))
		for k, rec := range t {
			out[k] = plainValue(rec)
		}
		return out
	case core.EventRecord:
		return plainValue(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}
