// Command crcsum computes cyclic redundancy checks over files or standard
// input. It knows the common published variants by name and accepts custom
// parameters for everything else.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// checkMessage is the conventional input whose CRC is a variant's check value.
const checkMessage = "123456789"

var (
	logDebug bool

	rootCmd = &cobra.Command{
		Use:   "crcsum",
		Short: "Compute cyclic redundancy checks",
		Long: `crcsum computes configurable cyclic redundancy checks over files or
standard input, either for a named catalog variant or for custom parameters.`,
		PersistentPreRun: configureLogger,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&logDebug, "log-debug", "d", false, "Enable debug logs")

	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(selftestCmd)
}

func configureLogger(*cobra.Command, []string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.StampMicro,
	})

	if logDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// hexWidth returns the number of hex digits needed for a check value of the
// given bit width, rounded up to whole bytes.
func hexWidth(width int) int {
	return (width + 7) / 8 * 2
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
