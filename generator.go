package verse

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/verse-ds/verse/preset"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	log := config.Logger
	result := &GenerateResult{}

	formats := config.Formats
	if len(formats) == 0 {
		formats = []preset.Format{preset.FormatJSON}
	}
	basename := config.Basename
	if basename == "" {
		basename = DefaultBasename
	}

	// 1. Build the preset
	p := preset.New()
	if len(config.Content) > 0 {
		p.Content = append([]string(nil), config.Content...)
	}
	result.TokensExported = countTokens(p)
	log.Debug().Int("tokens", result.TokensExported).Msg("built preset")

	// 2. Prepare the output directory
	if !config.Check {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	// 3. Encode and write each format
	for _, f := range formats {
		data, err := p.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f, err)
		}

		path := filepath.Join(config.OutputDir, basename+f.Ext())
		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		switch {
		case err == nil && bytes.Equal(current, data):
			result.FilesUnchanged = append(result.FilesUnchanged, path)
			log.Debug().Str("file", path).Msg("up to date")
		case config.Check:
			result.FilesStale = append(result.FilesStale, path)
			log.Debug().Str("file", path).Msg("stale")
		default:
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", path, err)
			}
			result.FilesWritten = append(result.FilesWritten, path)
			log.Debug().Str("file", path).Int("bytes", len(data)).Msg("wrote")
		}
	}

	// 4. Report stale outputs in check mode
	if len(result.FilesStale) > 0 {
		return result, fmt.Errorf("%w: %d of %d files", ErrStale, len(result.FilesStale), len(formats))
	}

	return result, nil
}

// countTokens counts the theme entries a preset exports.
func countTokens(p *preset.Preset) int {
	ext := p.Theme.Extend
	return len(ext.Colors) +
		len(ext.FontFamily) +
		len(ext.FontSize) +
		len(ext.Spacing) +
		len(ext.BorderRadius) +
		len(ext.BoxShadow) +
		len(ext.BackgroundImage) +
		len(ext.Animation) +
		len(ext.Keyframes)
}
