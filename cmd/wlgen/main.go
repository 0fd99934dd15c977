// Command wlgen generates Go protocol bindings from Wayland protocol XML.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Chugach-UI/denali/codegen"
	"github.com/Chugach-UI/denali/protocol"
)

var (
	outDir    string
	pkgName   string
	overwrite bool
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "wlgen <protocol.xml>...",
	Short: "Generate Go bindings from Wayland protocol XML",
	Long: `wlgen parses one or more Wayland protocol XML files and emits a
typed Go binding per file: a *proxy.Proxy-backed struct per interface, one
method per request, and an event dispatcher with On<Event> callbacks.

Files on the blocklist (superseded draft protocols such as
xdg-shell-unstable-v5.xml) are skipped even when named explicitly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for generated files")
	rootCmd.Flags().StringVarP(&pkgName, "package", "p", "wl", "package name for generated files")
	rootCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing generated files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("wlgen: invalid --log-level %q: %w", logLevel, err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	var generated int
	for _, path := range args {
		if protocol.Blocklist[filepath.Base(path)] {
			log.Info().Str("file", path).Msg("skipping blocklisted protocol")
			continue
		}
		p, err := protocol.ParseFile(path)
		if err != nil {
			return fmt.Errorf("wlgen: %w", err)
		}
		out, err := codegen.GenerateFile(pkgName, outDir, p, overwrite)
		if err != nil {
			return fmt.Errorf("wlgen: %w", err)
		}
		log.Info().Str("protocol", p.Name).Str("output", out).Msg("generated")
		generated++
	}
	if generated == 0 {
		log.Warn().Msg("no protocols generated")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
