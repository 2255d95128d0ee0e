package commands

import (
	"github.com/sebamiro/luxrpc"
	"github.com/spf13/cobra"
)

// InfoCmd groups the calls of the info API.
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Query the info API",
}

func init() {
	InfoCmd.AddCommand(
		&cobra.Command{
			Use:   "network-name",
			Short: "Show the name of the network the node runs on",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetNetworkName)
			},
		},
		&cobra.Command{
			Use:   "network-id",
			Short: "Show the id of the network the node runs on",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetNetworkID)
			},
		},
		&cobra.Command{
			Use:   "blockchain-id ALIAS",
			Short: "Show the id of a chain given its alias",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client()
				return run(cmd, func() (*luxrpc.GetBlockchainIDResponse, error) {
					return c.GetBlockchainID(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "node-id",
			Short: "Show the node id and its proof of possession",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetNodeID)
			},
		},
		&cobra.Command{
			Use:   "node-version",
			Short: "Show the node version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetNodeVersion)
			},
		},
		&cobra.Command{
			Use:   "vms",
			Short: "List the virtual machines installed on the node",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetVMs)
			},
		},
		&cobra.Command{
			Use:   "bootstrapped",
			Short: "Show whether the node finished bootstrapping",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().IsBootstrapped)
			},
		},
		&cobra.Command{
			Use:   "tx-fee",
			Short: "Show the transaction fees of the network",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, client().GetTxFee)
			},
		},
		&cobra.Command{
			Use:   "peers [NODEID...]",
			Short: "List the peers of the node",
			RunE: func(cmd *cobra.Command, args []string) error {
				ids := make([]luxrpc.NodeID, 0, len(args))
				for _, arg := range args {
					id, err := luxrpc.ParseNodeID(arg)
					if err != nil {
						return err
					}
					ids = append(ids, id)
				}
				c := client()
				return run(cmd, func() (*luxrpc.PeersResponse, error) {
					return c.Peers(ids)
				})
			},
		},
	)
}
