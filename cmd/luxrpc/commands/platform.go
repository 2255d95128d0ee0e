package commands

import (
	"github.com/sebamiro/luxrpc"
	"github.com/sebamiro/luxrpc/cmd/luxrpc/flags"
	"github.com/spf13/cobra"
)

// PlatformCmd groups the calls of the P-Chain API.
var PlatformCmd = &cobra.Command{
	Use:     "p",
	Aliases: []string{"platform"},
	Short:   "Query the P-Chain API",
}

var validatorsCmd = &cobra.Command{
	Use:   "validators",
	Short: "List the current validators of the primary network or of a subnet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client()
		subnet, _ := cmd.Flags().GetString(flags.Validators_Subnet)
		if subnet == "" {
			return run(cmd, c.GetPrimaryNetworkValidators)
		}
		return run(cmd, func() (*luxrpc.GetCurrentValidatorsResponse, error) {
			return c.GetSubnetValidators(subnet)
		})
	},
}

func init() {
	validatorsCmd.Flags().String(flags.Validators_Subnet, "", "subnet id, the primary network when empty")

	PlatformCmd.AddCommand(
		&cobra.Command{
			Use:   "height",
			Short: "Show the height of the last accepted block",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetHeight)
			},
		},
		&cobra.Command{
			Use:   "balance ADDRESS",
			Short: "Show the balance of a P-Chain address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client()
				return run(cmd, func() (*luxrpc.GetBalanceResponse, error) {
					return c.GetBalance(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "utxos ADDRESS",
			Short: "List the UTXOs of a P-Chain address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client()
				return run(cmd, func() (*luxrpc.GetUTXOsResponse, error) {
					return c.GetUTXOs(args[0])
				})
			},
		},
		validatorsCmd,
		&cobra.Command{
			Use:   "subnets [ID...]",
			Short: "List subnets, all of them when no id is given",
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				c := client()
				return run(cmd, func() (*luxrpc.GetSubnetsResponse, error) {
					return c.GetSubnets(ids)
				})
			},
		},
		&cobra.Command{
			Use:   "blockchains",
			Short: "List the blockchains of the network",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetBlockchains)
			},
		},
		&cobra.Command{
			Use:   "blockchain-status ID",
			Short: "Show the status of a blockchain",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := luxrpc.ParseID(args[0])
				if err != nil {
					return err
				}
				c := client()
				return run(cmd, func() (*luxrpc.GetBlockchainStatusResponse, error) {
					return c.GetBlockchainStatus(id)
				})
			},
		},
		&cobra.Command{
			Use:   "tx TXID",
			Short: "Show a transaction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client()
				return run(cmd, func() (*luxrpc.GetTxResponse, error) {
					return c.GetTx(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "tx-status TXID",
			Short: "Show the status of a transaction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client()
				return run(cmd, func() (*luxrpc.GetTxStatusResponse, error) {
					return c.GetTxStatus(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "issue-tx HEX",
			Short: "Issue a signed transaction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client()
				// Never retried, the node may have accepted the first attempt.
				res, err := c.IssueTx(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			},
		},
	)
}

func parseIDs(args []string) ([]luxrpc.ID, error) {
	ids := make([]luxrpc.ID, 0, len(args))
	for _, arg := range args {
		id, err := luxrpc.ParseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
