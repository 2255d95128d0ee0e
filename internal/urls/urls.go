package urls

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/stellar/go/support/errors"
)

// API family paths exposed by a node
const (
	InfoPath     = "/ext/info"
	PlatformPath = "/ext/P"
	HealthPath   = "/ext/health"
	LivenessPath = "/ext/health/liveness"
)

const defaultScheme = "http"

// ErrNoHost is returned when no host can be extracted from an endpoint.
var ErrNoHost = errors.New("endpoint has no host")

// Endpoint is a node address split into its parts. Scheme is empty and Port
// is zero when the raw string did not carry them.
type Endpoint struct {
	Scheme     string
	Host       string
	Port       uint16
	Path       string
	ChainAlias string
}

// Parse splits raw into scheme, host, port, path and chain alias.
// Accepted forms include "host", "host:port", "scheme://host:port/path"
// and "http://host:9650/ext/bc/C/rpc" (chain alias "C").
func Parse(raw string) (Endpoint, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Endpoint{}, ErrNoHost
	}

	scheme := ""
	if i := strings.Index(s, "://"); i >= 0 {
		scheme = s[:i]
	} else {
		s = defaultScheme + "://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return Endpoint{}, errors.Wrapf(err, "invalid endpoint %q", raw)
	}
	host := u.Hostname()
	if host == "" {
		return Endpoint{}, errors.Wrapf(ErrNoHost, "invalid endpoint %q", raw)
	}

	e := Endpoint{
		Scheme:     scheme,
		Host:       host,
		Path:       u.Path,
		ChainAlias: chainAlias(u.Path),
	}
	if p := u.Port(); p != "" {
		port, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Endpoint{}, errors.Wrapf(err, "invalid port in endpoint %q", raw)
		}
		e.Port = uint16(port)
	}
	return e, nil
}

// chainAlias returns "C" for paths like "/ext/bc/C/rpc".
func chainAlias(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 3 && parts[0] == "ext" && parts[1] == "bc" {
		return parts[2]
	}
	return ""
}

// URL renders the endpoint for an API family. The endpoint's own path is
// never used, only suffix.
func (e Endpoint) URL(suffix string) string {
	scheme := e.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}

	host := e.Host
	if e.Port != 0 {
		host = net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return scheme + "://" + host + "/" + strings.TrimLeft(suffix, "/")
}

// Resolve parses raw and renders it for the API family at suffix.
func Resolve(raw, suffix string) (string, error) {
	e, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return e.URL(suffix), nil
}
