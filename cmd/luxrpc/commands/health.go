package commands

import (
	"github.com/sebamiro/luxrpc"
	"github.com/sebamiro/luxrpc/cmd/luxrpc/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stellar/go/support/errors"
	"golang.org/x/sync/errgroup"
)

type healthReport struct {
	Endpoint string                 `json:"endpoint"`
	Health   *luxrpc.HealthResponse `json:"health,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// HealthCmd probes one or more nodes concurrently.
var HealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of one or more nodes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		liveness, _ := cmd.Flags().GetBool(flags.Health_Liveness)
		endpoints, _ := cmd.Flags().GetStringSlice(flags.Health_Endpoints)
		if len(endpoints) == 0 {
			endpoints = []string{viper.GetString(flags.Endpoint)}
		}

		reports := make([]healthReport, len(endpoints))
		var g errgroup.Group
		for i, endpoint := range endpoints {
			g.Go(func() error {
				reports[i].Endpoint = endpoint
				res := <-newClient(endpoint).SpawnCheck(liveness)
				if res.Err != nil {
					reports[i].Error = res.Err.Error()
					return errors.Wrapf(res.Err, "%s", endpoint)
				}
				reports[i].Health = res.Response
				if !res.Response.Healthy {
					return errors.Errorf("%s: node reported unhealthy", endpoint)
				}
				return nil
			})
		}
		err := g.Wait()
		if perr := printJSON(cmd.OutOrStdout(), reports); perr != nil {
			return perr
		}
		return err
	},
}

func init() {
	HealthCmd.Flags().Bool(flags.Health_Liveness, false, "only check liveness")
	HealthCmd.Flags().StringSlice(flags.Health_Endpoints, nil, "endpoints to probe, --endpoint when empty")
}
