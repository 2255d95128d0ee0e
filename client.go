package luxrpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sebamiro/luxrpc/internal/rpc"
	"github.com/sebamiro/luxrpc/internal/urls"
)

// Client wrapper of rpc.Client bound to a node endpoint such as
// "http://127.0.0.1:9650", "127.0.0.1:9650" or "https://node.example".
// The endpoint's path is ignored, every call is routed to its API family.
type Client struct {
	rpc.Client
	Endpoint string
}

// NewClient returns a Client for endpoint using the shared transport.
func NewClient(endpoint string) Client {
	return Client{Endpoint: endpoint}
}

// Methods
const (
	InfoGetNetworkName  = "info.getNetworkName"
	InfoGetNetworkID    = "info.getNetworkID"
	InfoGetBlockchainID = "info.getBlockchainID"
	InfoGetNodeID       = "info.getNodeID"
	InfoGetNodeVersion  = "info.getNodeVersion"
	InfoGetVMs          = "info.getVMs"
	InfoIsBootstrapped  = "info.isBootstrapped"
	InfoGetTxFee        = "info.getTxFee"
	InfoPeers           = "info.peers"

	PlatformIssueTx              = "platform.issueTx"
	PlatformGetTx                = "platform.getTx"
	PlatformGetTxStatus          = "platform.getTxStatus"
	PlatformGetHeight            = "platform.getHeight"
	PlatformGetBalance           = "platform.getBalance"
	PlatformGetUTXOs             = "platform.getUTXOs"
	PlatformGetCurrentValidators = "platform.getCurrentValidators"
	PlatformGetSubnets           = "platform.getSubnets"
	PlatformGetBlockchains       = "platform.getBlockchains"
	PlatformGetBlockchainStatus  = "platform.getBlockchainStatus"
)

// ResponseError is the error object of a JSON-RPC response.
type ResponseError = rpc.ResponseError

// Metrics holds the collectors a Client reports to when set.
type Metrics = rpc.Metrics

// NewMetrics registers the client collectors on registry, or on the default
// registerer when registry is nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	return rpc.NewMetricsWithRegistry(registry)
}

// resolve renders the client endpoint for an API family.
func (c Client) resolve(family string) (string, error) {
	u, err := urls.Resolve(c.Endpoint, family)
	if err != nil {
		return "", rpc.WrapOther(err, "failed to parse endpoint", false)
	}
	return u, nil
}

// CallResult executes a call against an API family and decodes the whole
// response envelope into result.
func (c Client) CallResult(family string, req rpc.Envelope, result interface{}) error {
	u, err := c.resolve(family)
	if err != nil {
		return err
	}
	return c.Call(u, req, result)
}

func call[T any](c Client, family string, req rpc.Envelope) (*rpc.Response[T], error) {
	var resp rpc.Response[T]
	if err := c.CallResult(family, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
