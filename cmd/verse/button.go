package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/verse-ds/verse/button"
)

func newButtonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "button",
		Short: "Resolve the classes of a button",
		Long: `Resolve the class list and slots of a Verse button from its props.

Props come from flags, or with --from from a YAML or JSON file holding a list
of button specs:

  - variant: ghost
    size: lg
    class: px-xs
  - variant: danger
    loading: true`,
		Example: `  verse button --variant secondary --size lg --class "rounded-pill"
  verse button --from buttons.yaml --json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runButton,
	}

	f := cmd.Flags()
	f.String("variant", "primary", "Variant: primary|secondary|default|text|link|ghost|danger|success|gradient")
	f.String("size", "md", "Size: sm|md|lg|xl")
	f.Bool("full-width", false, "Stretch to the container width")
	f.Bool("disabled", false, "Disable the button")
	f.Bool("loading", false, "Show the spinner and disable the button")
	f.Bool("leading-icon", false, "Render an icon before the label")
	f.Bool("trailing-icon", false, "Render an icon after the label")
	f.String("class", "", "Extra classes, overriding conflicting ones")
	f.String("from", "", "Read a list of button specs from a YAML or JSON file")
	f.Bool("json", false, "Print the full resolution as JSON")
	return cmd
}

func runButton(cmd *cobra.Command, _ []string) error {
	specs, err := buttonSpecs(cmd)
	if err != nil {
		return err
	}

	resolved := make([]button.Resolved, 0, len(specs))
	for i, spec := range specs {
		props, err := spec.Props()
		if err != nil {
			if len(specs) > 1 {
				return fmt.Errorf("button %d: %w", i+1, err)
			}
			return err
		}
		resolved = append(resolved, button.Resolve(props))
	}

	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(out, resolved, len(specs) == 1)
	}

	for _, r := range resolved {
		fmt.Fprintln(out, r.Class)
	}
	return nil
}

// buttonSpecs reads specs from --from, or builds one from the flags.
func buttonSpecs(cmd *cobra.Command) ([]button.Spec, error) {
	f := cmd.Flags()

	if path, _ := f.GetString("from"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading button specs: %w", err)
		}
		// YAML is a superset of JSON, so one decoder reads both.
		var specs []button.Spec
		if err := yaml.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if len(specs) == 0 {
			return nil, fmt.Errorf("%s holds no button specs", path)
		}
		return specs, nil
	}

	spec := button.Spec{}
	spec.Variant, _ = f.GetString("variant")
	spec.Size, _ = f.GetString("size")
	spec.FullWidth, _ = f.GetBool("full-width")
	spec.Disabled, _ = f.GetBool("disabled")
	spec.Loading, _ = f.GetBool("loading")
	spec.LeadingIcon, _ = f.GetBool("leading-icon")
	spec.TrailingIcon, _ = f.GetBool("trailing-icon")
	spec.Class, _ = f.GetString("class")
	return []button.Spec{spec}, nil
}

// writeJSON prints v indented; a single-element slice prints as its element.
func writeJSON[T any](w io.Writer, v []T, single bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if single && len(v) == 1 {
		return enc.Encode(v[0])
	}
	return enc.Encode(v)
}
