package gridclient

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/tlsconfig"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/cloudfoundry/bosh-utils/httpclient"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

const (
	requestTimeout = 30 * time.Second

	maxKeepAliveConnections = 20
	maxConnections          = 50
)

// Options configure transport security for the grid API client.
// Certificate verification is on unless InsecureSkipVerify is set
// explicitly.
type Options struct {
	CACertPath         string
	InsecureSkipVerify bool
}

// Client issues basic-auth requests against the grid WAPI endpoint.
type Client struct {
	client   *httpclient.HTTPClient
	username string
	password string
}

func New(username, password string, opts Options, logger boshlog.Logger) (*Client, error) {
	tlsConfig, err := buildTLSConfig(opts)
	if err != nil {
		return nil, bosherr.WrapError(err, "Building grid TLS configuration")
	}

	transport := &http.Transport{
		TLSClientConfig:     tlsConfig,
		MaxIdleConns:        maxKeepAliveConnections,
		MaxIdleConnsPerHost: maxKeepAliveConnections,
		MaxConnsPerHost:     maxConnections,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
	}

	return &Client{
		client:   httpclient.NewHTTPClient(client, logger),
		username: username,
		password: password,
	}, nil
}

func (c *Client) Get(endpoint string) (*http.Response, error) {
	return c.client.GetCustomized(endpoint, func(req *http.Request) {
		req.SetBasicAuth(c.username, c.password)
	})
}

func buildTLSConfig(opts Options) (*tls.Config, error) {
	if opts.InsecureSkipVerify {
		return &tls.Config{InsecureSkipVerify: true}, nil //nolint:gosec
	}

	clientOpts := []tlsconfig.ClientOption{}

	if opts.CACertPath != "" {
		caCert, err := os.ReadFile(opts.CACertPath)
		if err != nil {
			return nil, err
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, bosherr.Errorf("No certificates parsed from '%s'", opts.CACertPath)
		}

		clientOpts = append(clientOpts, tlsconfig.WithAuthority(caCertPool))
	}

	return tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
	).Client(clientOpts...)
}
