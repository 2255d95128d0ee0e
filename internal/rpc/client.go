package rpc

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptrace"
	"sync"
	"time"

	"github.com/stellar/go/support/log"
)

const (
	// UserAgent identifies this client to the node.
	UserAgent = "luxrpc"
	// Timeout bounds a whole call, from connect to the last body byte.
	Timeout = 15 * time.Second
)

var (
	defaultHTTP     *http.Client
	defaultHTTPOnce sync.Once
)

// NewHTTPClient returns a pooled HTTP client with the node transport policy:
// a 15 second timeout and no certificate verification, since nodes commonly
// serve self-signed or internal certificates.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	return &http.Client{
		Timeout:   Timeout,
		Transport: transport,
	}
}

// DefaultHTTP returns the client shared by every Client without its own HTTP.
func DefaultHTTP() *http.Client {
	defaultHTTPOnce.Do(func() {
		defaultHTTP = NewHTTPClient()
	})
	return defaultHTTP
}

// Client implements remote calls to a node
type Client struct {
	HTTP      HTTP
	UserAgent string
	Logger    *log.Entry
	Metrics   *Metrics
	// IDs, when set, replaces the constant request id.
	IDs *IDGenerator
}

// Reply is the raw outcome of a dispatched request.
type Reply struct {
	Status int
	Body   []byte
}

func (c Client) http() HTTP {
	if c.HTTP == nil {
		return DefaultHTTP()
	}
	return c.HTTP
}

func (c Client) logger() *log.Entry {
	if c.Logger == nil {
		return log.DefaultLogger
	}
	return c.Logger
}

func (c Client) userAgent() string {
	if c.UserAgent == "" {
		return UserAgent
	}
	return c.UserAgent
}

// Call encodes req, posts it to url and decodes the response into result.
func (c Client) Call(url string, req Envelope, result any) error {
	if c.IDs != nil {
		req.SetID(c.IDs.Next())
	}
	body, err := req.Encode()
	if err != nil {
		return WrapOther(err, "failed to encode request", false)
	}
	reply, err := c.roundTrip(req.Name(), http.MethodPost, url, body)
	if err != nil {
		return err
	}
	return c.decode(req.Name(), reply, result)
}

// Fetch issues a GET to url and decodes the body into result.
func (c Client) Fetch(url string, result any) error {
	reply, err := c.roundTrip("", http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.decode(http.MethodGet, reply, result)
}

// Dispatch sends one request and returns the raw reply. A nil body sends no
// payload; otherwise the body is marked as JSON.
func (c Client) Dispatch(verb, url string, body []byte) (Reply, error) {
	return c.roundTrip("", verb, url, body)
}

func (c Client) roundTrip(label, verb, url string, body []byte) (Reply, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(verb, url, reader)
	if err != nil {
		c.Metrics.observe(verb, OutcomeBuildError, 0)
		return Reply{}, WrapOther(err, "failed to build request", false)
	}
	if label == "" {
		label = verb + " " + req.URL.Path
	}

	logger := c.logger().WithFields(log.F{"method": label, "url": url})
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), connTrace(logger)))
	req.Header.Set("User-Agent", c.userAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Info("calling node")
	start := time.Now()
	resp, err := c.http().Do(req)
	if err != nil {
		c.Metrics.observe(label, OutcomeSendError, time.Since(start))
		return Reply{}, WrapAPI(err, "failed to send request", IsRetryableNetError(err))
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Metrics.observe(label, OutcomeReadError, time.Since(start))
		return Reply{}, WrapOther(err, "failed to read response body", IsRetryableNetError(err))
	}
	c.Metrics.observe(label, OutcomeOK, time.Since(start))
	return Reply{Status: resp.StatusCode, Body: out}, nil
}

func (c Client) decode(label string, reply Reply, result any) error {
	if err := json.Unmarshal(reply.Body, result); err != nil {
		c.Metrics.observe(label, OutcomeDecodeError, 0)
		return WrapOther(err, "failed to decode response", isRetryableStatus(reply.Status))
	}
	return nil
}

// connTrace logs connection level events at debug level.
func connTrace(logger *log.Entry) *httptrace.ClientTrace {
	return &httptrace.ClientTrace{
		DNSDone: func(info httptrace.DNSDoneInfo) {
			logger.WithField("addrs", info.Addrs).Debug("dns resolved")
		},
		ConnectDone: func(network, addr string, err error) {
			logger.WithFields(log.F{"network": network, "addr": addr, "err": err}).Debug("connected")
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			logger.WithFields(log.F{"tls_version": state.Version, "err": err}).Debug("tls handshake done")
		},
		GotConn: func(info httptrace.GotConnInfo) {
			logger.WithFields(log.F{"reused": info.Reused, "idle": info.WasIdle}).Debug("got connection")
		},
	}
}
