package luxrpc

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sebamiro/luxrpc/internal/rpc"
	"github.com/sebamiro/luxrpc/internal/urls"
)

type IssueTxParams struct {
	Tx       string `json:"tx"`
	Encoding string `json:"encoding"`
}

type IssueTxResult struct {
	TxID string `json:"txID"`
}

type IssueTxResponse = rpc.Response[IssueTxResult]

// IssueTx issues a signed, hex encoded transaction to the P-Chain.
// https://docs.lux.network/build/node-apis/p-chain/#platformissuetx
func (c Client) IssueTx(tx string) (*IssueTxResponse, error) {
	if !strings.HasPrefix(tx, "0x") {
		tx = "0x" + tx
	}
	req := rpc.NewRequestWithParams(PlatformIssueTx, IssueTxParams{Tx: tx, Encoding: "hex"})
	return call[IssueTxResult](c, urls.PlatformPath, &req)
}

// GetTxResult Tx is the JSON representation of the transaction.
type GetTxResult struct {
	Tx       json.RawMessage `json:"tx"`
	Encoding string          `json:"encoding"`
}

type GetTxResponse = rpc.Response[GetTxResult]

func (c Client) GetTx(txID string) (*GetTxResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetTx, map[string]string{
		"txID":     txID,
		"encoding": "json",
	})
	return call[GetTxResult](c, urls.PlatformPath, &req)
}

// Transaction statuses reported by platform.getTxStatus
const (
	TxStatusCommitted  = "Committed"
	TxStatusAborted    = "Aborted"
	TxStatusProcessing = "Processing"
	TxStatusDropped    = "Dropped"
	TxStatusUnknown    = "Unknown"
)

type GetTxStatusResult struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type GetTxStatusResponse = rpc.Response[GetTxStatusResult]

func (c Client) GetTxStatus(txID string) (*GetTxStatusResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetTxStatus, map[string]string{"txID": txID})
	return call[GetTxStatusResult](c, urls.PlatformPath, &req)
}

// WaitTxStatus polls GetTxStatus until the transaction is no longer
// processing or unknown, sleeping attempt*interval between polls. The error
// is retryable when the status was still undecided after maxAttempts.
func (c Client) WaitTxStatus(txID string, maxAttempts int, interval time.Duration) (*GetTxStatusResponse, error) {
	for i := 0; i < maxAttempts; i++ {
		res, err := c.GetTxStatus(txID)
		if err != nil {
			return nil, err
		}
		if err := res.Err(); err != nil {
			return nil, rpc.WrapOther(err, "failed to get tx status", false)
		}
		if res.Result != nil && res.Result.Status != TxStatusProcessing && res.Result.Status != TxStatusUnknown {
			return res, nil
		}
		time.Sleep(time.Duration(i) * interval)
	}
	return nil, &rpc.Error{
		Kind:      rpc.KindOther,
		Retryable: true,
		Err:       errTxUndecided,
	}
}

type GetHeightResult struct {
	Height uint64 `json:"height,string"`
}

type GetHeightResponse = rpc.Response[GetHeightResult]

func (c Client) GetHeight() (*GetHeightResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetHeight, map[string]string{})
	return call[GetHeightResult](c, urls.PlatformPath, &req)
}

type UTXOID struct {
	TxID        string `json:"txID"`
	OutputIndex uint32 `json:"outputIndex"`
}

// GetBalanceResult amounts are in nano LUX.
type GetBalanceResult struct {
	Balance            uint64   `json:"balance,string"`
	Unlocked           uint64   `json:"unlocked,string"`
	LockedStakeable    uint64   `json:"lockedStakeable,string"`
	LockedNotStakeable uint64   `json:"lockedNotStakeable,string"`
	UTXOIDs            []UTXOID `json:"utxoIDs"`
}

type GetBalanceResponse = rpc.Response[GetBalanceResult]

// GetBalance returns the balance of a P-Chain address such as "P-lux1...".
func (c Client) GetBalance(paddr string) (*GetBalanceResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetBalance, map[string][]string{"addresses": {paddr}})
	return call[GetBalanceResult](c, urls.PlatformPath, &req)
}

type GetUTXOsParams struct {
	Addresses []string `json:"addresses"`
	Limit     uint32   `json:"limit"`
	Encoding  string   `json:"encoding"`
}

type EndIndex struct {
	Address string `json:"address"`
	UTXO    string `json:"utxo"`
}

// GetUTXOsResult UTXOs are hex encoded.
type GetUTXOsResult struct {
	NumFetched uint32   `json:"numFetched,string"`
	UTXOs      []string `json:"utxos"`
	EndIndex   EndIndex `json:"endIndex"`
	Encoding   string   `json:"encoding"`
}

type GetUTXOsResponse = rpc.Response[GetUTXOsResult]

// GetUTXOs returns up to 100 UTXOs referencing paddr.
func (c Client) GetUTXOs(paddr string) (*GetUTXOsResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetUTXOs, GetUTXOsParams{
		Addresses: []string{paddr},
		Limit:     100,
		Encoding:  "hex",
	})
	return call[GetUTXOsResult](c, urls.PlatformPath, &req)
}

type Owner struct {
	Locktime  uint64   `json:"locktime,string"`
	Threshold uint32   `json:"threshold,string"`
	Addresses []string `json:"addresses"`
}

type Delegator struct {
	TxID            string `json:"txID"`
	StartTime       uint64 `json:"startTime,string"`
	EndTime         uint64 `json:"endTime,string"`
	StakeAmount     uint64 `json:"stakeAmount,string"`
	NodeID          string `json:"nodeID"`
	RewardOwner     *Owner `json:"rewardOwner,omitempty"`
	PotentialReward uint64 `json:"potentialReward,string"`
}

type Validator struct {
	TxID                   string             `json:"txID"`
	StartTime              uint64             `json:"startTime,string"`
	EndTime                uint64             `json:"endTime,string"`
	Weight                 uint64             `json:"weight,string"`
	StakeAmount            uint64             `json:"stakeAmount,string"`
	NodeID                 string             `json:"nodeID"`
	ValidationRewardOwner  *Owner             `json:"validationRewardOwner,omitempty"`
	DelegationRewardOwner  *Owner             `json:"delegationRewardOwner,omitempty"`
	PotentialReward        uint64             `json:"potentialReward,string"`
	AccruedDelegateeReward uint64             `json:"accruedDelegateeReward,string"`
	DelegationFee          string             `json:"delegationFee"`
	Uptime                 string             `json:"uptime"`
	Connected              bool               `json:"connected"`
	Signer                 *ProofOfPossession `json:"signer,omitempty"`
	DelegatorCount         uint64             `json:"delegatorCount,string"`
	DelegatorWeight        uint64             `json:"delegatorWeight,string"`
	Delegators             []Delegator        `json:"delegators"`
}

type GetCurrentValidatorsResult struct {
	Validators []Validator `json:"validators"`
}

type GetCurrentValidatorsResponse = rpc.Response[GetCurrentValidatorsResult]

// GetPrimaryNetworkValidators returns the current validators of the primary network.
func (c Client) GetPrimaryNetworkValidators() (*GetCurrentValidatorsResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetCurrentValidators, map[string]string{})
	return call[GetCurrentValidatorsResult](c, urls.PlatformPath, &req)
}

// GetSubnetValidators returns the current validators of subnetID.
func (c Client) GetSubnetValidators(subnetID string) (*GetCurrentValidatorsResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetCurrentValidators, map[string]string{"subnetID": subnetID})
	return call[GetCurrentValidatorsResult](c, urls.PlatformPath, &req)
}

type Subnet struct {
	ID          string   `json:"id"`
	ControlKeys []string `json:"controlKeys"`
	Threshold   uint32   `json:"threshold,string"`
}

type GetSubnetsResult struct {
	Subnets []Subnet `json:"subnets"`
}

type GetSubnetsResponse = rpc.Response[GetSubnetsResult]

// GetSubnets returns the subnets with the given ids, or all of them when ids
// is empty.
func (c Client) GetSubnets(ids []ID) (*GetSubnetsResponse, error) {
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, id.String())
	}
	req := rpc.NewRequestWithParams(PlatformGetSubnets, map[string][]string{"ids": s})
	return call[GetSubnetsResult](c, urls.PlatformPath, &req)
}

type Blockchain struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SubnetID string `json:"subnetID"`
	VMID     string `json:"vmID"`
}

type GetBlockchainsResult struct {
	Blockchains []Blockchain `json:"blockchains"`
}

type GetBlockchainsResponse = rpc.Response[GetBlockchainsResult]

func (c Client) GetBlockchains() (*GetBlockchainsResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetBlockchains, map[string]string{})
	return call[GetBlockchainsResult](c, urls.PlatformPath, &req)
}

type GetBlockchainStatusResult struct {
	Status string `json:"status"`
}

type GetBlockchainStatusResponse = rpc.Response[GetBlockchainStatusResult]

func (c Client) GetBlockchainStatus(blockchainID ID) (*GetBlockchainStatusResponse, error) {
	req := rpc.NewRequestWithParams(PlatformGetBlockchainStatus, map[string]string{"blockchainID": blockchainID.String()})
	return call[GetBlockchainStatusResult](c, urls.PlatformPath, &req)
}
