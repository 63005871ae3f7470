// Package verse generates the Verse design system's style-framework preset
// from its design tokens.
//
// The tokens live in package tokens, the button class resolver in package
// button, and the utility-class override merge in package twmerge. This
// package writes the preset built by package preset to disk:
//
//	result, err := verse.Generate(verse.Config{
//		OutputDir: "web/styles",
//		Formats:   []preset.Format{preset.FormatJS, preset.FormatCSS},
//		Content:   []string{"./web/**/*.templ"},
//	})
//
// With Check set nothing is written and ErrStale reports outputs that differ
// from what would be generated, for use in CI.
//
// # CLI Tool
//
// The verse command wraps generation, class linting, theme auditing and the
// resolver. Install with:
//
//	go install github.com/verse-ds/verse/cmd/verse@latest
package verse

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/verse-ds/verse/preset"
)

// DefaultBasename names generated files when Config.Basename is empty.
const DefaultBasename = "verse-preset"

// ErrStale is returned in check mode when a generated file is missing or
// out of date.
var ErrStale = errors.New("generated files are out of date")

// Config holds generator configuration
type Config struct {
	OutputDir string          // "web/styles"
	Basename  string          // File name without extension (default: verse-preset)
	Formats   []preset.Format // Formats to write (default: json)
	Content   []string        // Preset content globs for the style framework
	Check     bool            // Compare instead of writing
	Logger    zerolog.Logger
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesWritten   []string // Files created or updated
	FilesUnchanged []string // Files already up to date
	FilesStale     []string // Check mode: files that would change
	TokensExported int      // Theme entries in the preset
}
