package preset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output format for the preset.
type Format string

const (
	FormatJSON Format = "json"
	FormatJS   Format = "js"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCSS  Format = "css"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatJS, FormatYAML, FormatTOML, FormatCSS}
}

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	if name == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown preset format %q (valid: json, js, yaml, toml, css)", name)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

const generatedHeader = "Code generated by verse. DO NOT EDIT."

// Marshal encodes the preset in the given format.
func (p *Preset) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the preset to w in the given format.
func (p *Preset) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return p.writeJSON(w)
	case FormatJS:
		return p.writeJS(w)
	case FormatYAML:
		return p.writeYAML(w)
	case FormatTOML:
		return p.writeTOML(w)
	case FormatCSS:
		return WriteCSS(w)
	default:
		return fmt.Errorf("unknown preset format %q", f)
	}
}

func (p *Preset) writeJSON(w io.Writer) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// writeJS writes an ES module whose default export is the preset, ready for
// the framework's "presets" option.
func (p *Preset) writeJS(w io.Writer) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode js: %w", err)
	}
	_, err = fmt.Fprintf(w, "// %s\n\n/** @type {import('tailwindcss').Config} */\nconst versePreset = %s;\n\nexport default versePreset;\n",
		generatedHeader, data)
	return err
}

func (p *Preset) writeYAML(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n", generatedHeader); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// writeTOML goes through a generic document: TOML tables carry no order, and
// the encoder sorts map keys for stable output.
func (p *Preset) writeTOML(w io.Writer) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}

	if _, err := fmt.Fprintf(w, "# %s\n", generatedHeader); err != nil {
		return err
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}
