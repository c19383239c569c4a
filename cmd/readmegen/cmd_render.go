package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var (
	renderOut     string
	renderPreview bool
)

var renderCmd = &cobra.Command{
	Use:   "render <profile.json>",
	Short: "Write README.md from a JSON file of field values",
	Long: "Reads a JSON object of field names to string values, either at the top level\n" +
		"or under a \"profile\" key. Every key present counts as a touched field.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := readProfile(args[0])
		if err != nil {
			return err
		}

		session := newSession()
		names := make([]string, 0, len(fields))
		for k := range fields {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			session.SetField(k, fields[k])
		}
		session.Close()

		return generate(cmd.Context(), session, renderOut, renderPreview)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output directory (default from config)")
	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "render the README in the terminal after writing it")
}

func readProfile(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if nested, ok := m["profile"]; ok {
		m = nil
		if err := json.Unmarshal(nested, &m); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
	}

	out := make(map[string]string, len(m))
	for k, raw := range m {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("field %q: expected a string", k)
		}
		out[k] = v
	}
	return out, nil
}
