// Package cli wires the command-line surface to the synthesis pipeline.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lexiqai/tts-cli/internal/azuretts"
	"github.com/lexiqai/tts-cli/internal/config"
	"github.com/lexiqai/tts-cli/internal/observability"
	"github.com/lexiqai/tts-cli/internal/player"
	"github.com/lexiqai/tts-cli/internal/voices"
)

var (
	flagText       string
	flagFile       string
	flagListVoices bool
	flagVoice      string
	flagOutput     string
	flagOutputDir  string
	flagPrefix     string
	flagPlay       bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ttscli",
	Short: "Azure text-to-speech from the command line",
	Long: `ttscli sends text to the Azure Speech service and saves the synthesized
audio as WAV files, or plays it through the default speaker.

Examples:
  ttscli -t 'Hello world' -o output.wav
  ttscli -f sentences.txt -v emma -d ./audio_output
  ttscli --list-voices`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagText, "text", "t", "", "Text to synthesize")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Text file containing sentences (one per line)")
	rootCmd.Flags().BoolVar(&flagListVoices, "list-voices", false, "List available voice options")
	rootCmd.Flags().StringVarP(&flagVoice, "voice", "v", "ava", `Voice name (popular name like "ava" or full Azure voice name)`)
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output audio file (for single text synthesis)")
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "d", "./output", "Output directory for multiple files")
	rootCmd.Flags().StringVar(&flagPrefix, "prefix", voices.DefaultPrefix, "Filename prefix for multiple files (defaults to the voice name)")
	rootCmd.Flags().BoolVar(&flagPlay, "play", false, "Play audio through default speaker instead of saving to file")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")

	rootCmd.MarkFlagsMutuallyExclusive("text", "file", "list-voices")
	rootCmd.MarkFlagsOneRequired("text", "file", "list-voices")
}

// Execute runs the CLI and returns the process exit code: 0 on success,
// 1 on any failure or interrupt.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, _ []string) error {
	if flagListVoices {
		if err := ensureListVoicesAlone(cmd); err != nil {
			return err
		}
		printVoices(cmd.OutOrStdout())
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	observability.InitLogger(level, cfg.LogPretty)
	logger := observability.WithRunID(observability.NewRunID())

	voice := voices.Resolve(flagVoice, cfg.DefaultVoice)
	prefix := flagPrefix
	if prefix == voices.DefaultPrefix {
		prefix = voices.DerivePrefix(flagVoice)
	}

	logger.Debug().
		Str("voice", voice).
		Str("prefix", prefix).
		Str("region", cfg.SpeechRegion).
		Bool("play", flagPlay).
		Msg("session resolved")

	r := &runner{
		synth:     azuretts.NewClient(cfg.SpeechKey, cfg.SpeechRegion),
		speaker:   player.New(),
		logger:    logger,
		out:       cmd.OutOrStdout(),
		voice:     voice,
		prefix:    prefix,
		output:    flagOutput,
		outputDir: flagOutputDir,
		play:      flagPlay,
	}

	if cmd.Flags().Changed("text") {
		return r.runText(cmd.Context(), flagText)
	}
	return r.runFile(cmd.Context(), flagFile)
}

// ensureListVoicesAlone rejects --list-voices combined with any other
// explicitly set flag. Listing never touches config or the network, so
// other flags would be silently ignored otherwise.
func ensureListVoicesAlone(cmd *cobra.Command) error {
	var extra []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name != "list-voices" {
			extra = append(extra, "--"+f.Name)
		}
	})
	if len(extra) > 0 {
		return fmt.Errorf("--list-voices cannot be combined with %s", strings.Join(extra, ", "))
	}
	return nil
}

func printVoices(w io.Writer) {
	fmt.Fprintln(w, "\nPopular Voice Options:")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	for _, name := range voices.Names() {
		full, _ := voices.FullID(name)
		fmt.Fprintf(w, "%-10s -> %s\n", name, full)
	}
	fmt.Fprintln(w, "\nFor complete list, visit:")
	fmt.Fprintln(w, voices.DocsURL)
}
