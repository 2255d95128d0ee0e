package luxrpc

import (
	"github.com/sebamiro/luxrpc/internal/rpc"
	"github.com/sebamiro/luxrpc/internal/urls"
)

type GetNetworkNameResult struct {
	NetworkName string `json:"networkName"`
}

type GetNetworkNameResponse = rpc.Response[GetNetworkNameResult]

// GetNetworkName returns the name of the network the node runs on.
// https://docs.lux.network/build/node-apis/info/#infogetnetworkname
func (c Client) GetNetworkName() (*GetNetworkNameResponse, error) {
	req := rpc.NewRequest(InfoGetNetworkName)
	return call[GetNetworkNameResult](c, urls.InfoPath, &req)
}

type GetNetworkIDResult struct {
	NetworkID uint32 `json:"networkID,string"`
}

type GetNetworkIDResponse = rpc.Response[GetNetworkIDResult]

// GetNetworkID returns the id of the network the node runs on.
func (c Client) GetNetworkID() (*GetNetworkIDResponse, error) {
	req := rpc.NewRequest(InfoGetNetworkID)
	return call[GetNetworkIDResult](c, urls.InfoPath, &req)
}

type GetBlockchainIDResult struct {
	BlockchainID string `json:"blockchainID"`
}

type GetBlockchainIDResponse = rpc.Response[GetBlockchainIDResult]

// GetBlockchainID returns the id of the chain known by alias, e.g. "X" or "C".
func (c Client) GetBlockchainID(alias string) (*GetBlockchainIDResponse, error) {
	req := rpc.NewRequestWithParams(InfoGetBlockchainID, map[string]string{"alias": alias})
	return call[GetBlockchainIDResult](c, urls.InfoPath, &req)
}

type GetNodeIDResult struct {
	NodeID  string             `json:"nodeID"`
	NodePOP *ProofOfPossession `json:"nodePOP,omitempty"`
}

type GetNodeIDResponse = rpc.Response[GetNodeIDResult]

// GetNodeID returns the node id and its BLS proof of possession. The
// response's NodePOP.Pubkey is filled with the decompressed public key; the
// call fails when the node sent no proof of possession.
func (c Client) GetNodeID() (*GetNodeIDResponse, error) {
	req := rpc.NewRequest(InfoGetNodeID)
	resp, err := call[GetNodeIDResult](c, urls.InfoPath, &req)
	if err != nil {
		return nil, err
	}
	return withPubkey(resp)
}

type GetNodeVersionResult struct {
	Version            string            `json:"version"`
	DatabaseVersion    string            `json:"databaseVersion"`
	RPCProtocolVersion string            `json:"rpcProtocolVersion,omitempty"`
	GitCommit          string            `json:"gitCommit"`
	VMVersions         map[string]string `json:"vmVersions"`
}

type GetNodeVersionResponse = rpc.Response[GetNodeVersionResult]

func (c Client) GetNodeVersion() (*GetNodeVersionResponse, error) {
	req := rpc.NewRequest(InfoGetNodeVersion)
	return call[GetNodeVersionResult](c, urls.InfoPath, &req)
}

type GetVMsResult struct {
	VMs map[string][]string `json:"vms"`
}

type GetVMsResponse = rpc.Response[GetVMsResult]

// GetVMs returns the virtual machines installed on the node with their aliases.
func (c Client) GetVMs() (*GetVMsResponse, error) {
	req := rpc.NewRequest(InfoGetVMs)
	return call[GetVMsResult](c, urls.InfoPath, &req)
}

type IsBootstrappedResult struct {
	IsBootstrapped bool `json:"isBootstrapped"`
}

type IsBootstrappedResponse = rpc.Response[IsBootstrappedResult]

func (c Client) IsBootstrapped() (*IsBootstrappedResponse, error) {
	req := rpc.NewRequest(InfoIsBootstrapped)
	return call[IsBootstrappedResult](c, urls.InfoPath, &req)
}

// GetTxFeeResult amounts are in nano LUX.
type GetTxFeeResult struct {
	TxFee                         uint64 `json:"txFee,string"`
	CreateAssetTxFee              uint64 `json:"createAssetTxFee,string"`
	CreateSubnetTxFee             uint64 `json:"createSubnetTxFee,string"`
	TransformSubnetTxFee          uint64 `json:"transformSubnetTxFee,string"`
	CreateBlockchainTxFee         uint64 `json:"createBlockchainTxFee,string"`
	AddPrimaryNetworkValidatorFee uint64 `json:"addPrimaryNetworkValidatorFee,string"`
	AddPrimaryNetworkDelegatorFee uint64 `json:"addPrimaryNetworkDelegatorFee,string"`
	AddSubnetValidatorFee         uint64 `json:"addSubnetValidatorFee,string"`
	AddSubnetDelegatorFee         uint64 `json:"addSubnetDelegatorFee,string"`
}

type GetTxFeeResponse = rpc.Response[GetTxFeeResult]

func (c Client) GetTxFee() (*GetTxFeeResponse, error) {
	req := rpc.NewRequest(InfoGetTxFee)
	return call[GetTxFeeResult](c, urls.InfoPath, &req)
}

type Peer struct {
	IP             string   `json:"ip"`
	PublicIP       string   `json:"publicIP"`
	NodeID         string   `json:"nodeID"`
	Version        string   `json:"version"`
	LastSent       string   `json:"lastSent"`
	LastReceived   string   `json:"lastReceived"`
	ObservedUptime uint32   `json:"observedUptime,string"`
	TrackedSubnets []string `json:"trackedSubnets"`
	Benched        []string `json:"benched"`
}

type PeersResult struct {
	NumPeers uint64 `json:"numPeers,string"`
	Peers    []Peer `json:"peers"`
}

type PeersResponse = rpc.Response[PeersResult]

// Peers returns the peers of the node, restricted to nodeIDs when not empty.
func (c Client) Peers(nodeIDs []NodeID) (*PeersResponse, error) {
	ids := make([]string, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		ids = append(ids, id.String())
	}
	req := rpc.NewRequestWithParams(InfoPeers, map[string][]string{"nodeIDs": ids})
	return call[PeersResult](c, urls.InfoPath, &req)
}
