package luxrpc

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sebamiro/luxrpc/internal/rpc"
	"github.com/sebamiro/luxrpc/internal/urls"
)

type HealthCheckError struct {
	Message string `json:"message"`
}

// HealthCheckResult is the outcome of one named check run by the node.
type HealthCheckResult struct {
	Message            json.RawMessage   `json:"message,omitempty"`
	Error              *HealthCheckError `json:"error,omitempty"`
	Timestamp          time.Time         `json:"timestamp"`
	Duration           time.Duration     `json:"duration"`
	ContiguousFailures int64             `json:"contiguousFailures"`
	TimeOfFirstFailure *time.Time        `json:"timeOfFirstFailure"`
}

// HealthResponse is the body of /ext/health and /ext/health/liveness. The
// node answers 503 with the same body when it is unhealthy.
type HealthResponse struct {
	Checks  map[string]HealthCheckResult `json:"checks"`
	Healthy bool                         `json:"healthy"`
}

func healthPath(liveness bool) string {
	if liveness {
		return urls.LivenessPath
	}
	return urls.HealthPath
}

// CheckHealth fetches the node health report, or only its liveness report.
// https://docs.lux.network/build/node-apis/health
func (c Client) CheckHealth(liveness bool) (*HealthResponse, error) {
	u, err := c.resolve(healthPath(liveness))
	if err != nil {
		return nil, err
	}
	var resp HealthResponse
	if err := c.Fetch(u, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type HealthResult struct {
	Response *HealthResponse
	Err      error
}

// SpawnCheck runs CheckHealth in its own goroutine. The channel receives
// exactly one HealthResult and is then closed.
func (c Client) SpawnCheck(liveness bool) <-chan HealthResult {
	out := make(chan HealthResult, 1)
	go func() {
		defer close(out)
		resp, err := c.CheckHealth(liveness)
		out <- HealthResult{Response: resp, Err: err}
	}()
	return out
}

// HealthCheck returns the raw liveness report of the node.
func (c Client) HealthCheck() ([]byte, error) {
	u, err := c.resolve(urls.LivenessPath)
	if err != nil {
		return nil, err
	}
	reply, err := c.Dispatch(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if reply.Status != http.StatusOK {
		return reply.Body, &rpc.Error{
			Kind:      rpc.KindAPI,
			Retryable: true,
			Err:       errUnhealthy,
		}
	}
	return reply.Body, nil
}
