// Command tpx is a small command-line front end for the TranslatePlus API.
//
// Credentials are read from the TRANSLATEPLUS_API_KEY environment variable
// (a .env file in the working directory is honored) or the --api-key flag.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	translateplus "github.com/translateplus/client-go"
)

var (
	flagAPIKey  string
	flagBaseURL string
	flagTimeout time.Duration
	flagVerbose bool

	flagSource string
	flagTarget string
)

var rootCmd = &cobra.Command{
	Use:           "tpx",
	Short:         "TranslatePlus command-line client",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (defaults to TRANSLATEPLUS_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log retries and request classification")

	rootCmd.AddCommand(translateCmd, batchCmd, detectCmd, languagesCmd, accountCmd, i18nCmd)
}

// newClient builds an SDK client from flags and environment.
func newClient() (*translateplus.Client, error) {
	logger := zerolog.Nop()
	if flagVerbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	opts := []translateplus.Option{translateplus.WithLogger(logger)}
	if flagBaseURL != "" {
		opts = append(opts, translateplus.WithBaseURL(flagBaseURL))
	}
	if flagTimeout > 0 {
		opts = append(opts, translateplus.WithTimeout(flagTimeout))
	}

	if flagAPIKey != "" {
		return translateplus.New(flagAPIKey, opts...)
	}
	return translateplus.NewFromEnv(opts...)
}

func main() {
	// Not an error if missing; the environment may carry the key directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
