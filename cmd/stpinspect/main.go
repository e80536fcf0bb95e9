package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/steinlib"
	"github.com/npillmayer/steinlib/parser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracing keys of all packages of this module
var traceKeys = []string{
	"steinlib.cmd",
	"steinlib.parser",
	"steinlib.section",
	"steinlib.grammar",
	"steinlib.scanner",
	"steinlib.handler",
}

var rootCmd = &cobra.Command{
	Use:   "stpinspect",
	Short: "Inspect STEINLIB files",
	Long:  "stpinspect parses Steiner tree problem instances in STEINLIB format and displays their structure.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initTracing(viper.GetString("trace"))
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().Bool("trace-lines", false, "Trace every content line (needs trace level Debug)")

	_ = viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	_ = viper.BindPFlag("trace_lines", rootCmd.PersistentFlags().Lookup("trace-lines"))
}

func initConfig() {
	viper.SetEnvPrefix("STPINSPECT")
	viper.AutomaticEnv()
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tlevel)
	}
	tracer().Infof("Trace level is %s", level)
}

// parserOptions collects parser options from the configuration.
func parserOptions(source string) []parser.Option {
	return []parser.Option{
		parser.WithSourceName(source),
		parser.TraceLines(viper.GetBool("trace_lines")),
	}
}

// parseFile parses a STEINLIB file with callbacks from h.
func parseFile(filename string, h steinlib.Handler) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	_, err = parser.ParseReader(f, h, parserOptions(filename)...)
	return err
}
