package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sebamiro/luxrpc"
	"github.com/sebamiro/luxrpc/cmd/luxrpc/flags"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stellar/go/support/errors"
	"github.com/stellar/go/support/log"
)

var (
	logger  = log.DefaultLogger
	verbose bool
)

// RootCmd is the root command for luxrpc. It is called once in the main
// function.
var RootCmd = &cobra.Command{
	Use:          "luxrpc",
	Short:        "Query a Lux node over JSON-RPC",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is not an error.
		_ = godotenv.Load()

		level, err := logrus.ParseLevel(viper.GetString(flags.Log_Level))
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	viper.SetEnvPrefix("LUXRPC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	pf := RootCmd.PersistentFlags()
	pf.String(flags.Endpoint, "http://127.0.0.1:9650", "node endpoint, e.g. 127.0.0.1:9650 or https://api.lux.network")
	pf.String(flags.Log_Level, "warn", "level of logging, can be trace, debug, info, warn or error")
	pf.Uint64(flags.Retries, 0, "retries of calls failing with a retryable error")
	if err := viper.BindPFlags(pf); err != nil {
		panic(err)
	}

	RootCmd.AddCommand(
		InfoCmd,
		PlatformCmd,
		HealthCmd,
		VersionCmd,
	)
}

func newClient(endpoint string) luxrpc.Client {
	c := luxrpc.NewClient(endpoint)
	c.Logger = logger.WithField("endpoint", endpoint)
	return c
}

func client() luxrpc.Client {
	return newClient(viper.GetString(flags.Endpoint))
}

// run executes op under the retry policy and prints its result.
func run[T any](cmd *cobra.Command, op func() (T, error)) error {
	res, err := luxrpc.Retry(viper.GetUint64(flags.Retries), op)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
