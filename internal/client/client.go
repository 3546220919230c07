// Package client owns the gRPC connection to the table service and the
// per-call metadata that authenticates requests.
package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/mtiwari1/tableloader/internal/config"
	pb "github.com/mtiwari1/tableloader/proto"
)

// Metadata keys attached to every call.
const (
	ClientIDKey      = "client-id"
	AuthorizationKey = "authorization"
	RequestIDKey     = "x-request-id"
)

// Client bundles the table service stub with the credentials used to call it.
type Client struct {
	conn     *grpc.ClientConn
	tables   pb.TableServiceClient
	clientID string
	apiKey   string
	logger   *slog.Logger
}

// Option customizes a Client built by NewFromConn.
type Option func(*Client)

// WithClientID sets the client-id metadata value.
func WithClientID(id string) Option {
	return func(c *Client) { c.clientID = id }
}

// WithAPIKey sets the bearer token sent in the authorization header.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New dials the configured endpoint. The returned Client owns the connection
// and must be closed.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	creds, err := transportCredentials(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(cfg.Endpoint, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("connect to table service %s: %w", cfg.Endpoint, err)
	}

	c := NewFromConn(conn, WithClientID(cfg.ClientID), WithAPIKey(cfg.APIKey), WithLogger(logger))
	c.conn = conn
	c.logger.Debug("table service client created",
		slog.String("endpoint", cfg.Endpoint),
		slog.Bool("insecure", cfg.Insecure),
	)
	return c, nil
}

// NewFromConn wraps an existing connection. The caller keeps ownership of cc.
func NewFromConn(cc grpc.ClientConnInterface, opts ...Option) *Client {
	c := &Client{
		tables: pb.NewTableServiceClient(cc),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TableStub returns the table service stub.
func (c *Client) TableStub() pb.TableServiceClient {
	return c.tables
}

// Metadata builds the outgoing headers for one call. A new value, with a new
// request id, is returned every time.
func (c *Client) Metadata() metadata.MD {
	md := metadata.Pairs(RequestIDKey, uuid.New().String())
	if c.clientID != "" {
		md.Set(ClientIDKey, c.clientID)
	}
	if c.apiKey != "" {
		md.Set(AuthorizationKey, "Bearer "+c.apiKey)
	}
	return md
}

// Close releases the connection if this Client dialed it.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("close table service connection: %w", err)
	}
	return nil
}

func transportCredentials(cfg *config.Config) (credentials.TransportCredentials, error) {
	if cfg.Insecure {
		return insecure.NewCredentials(), nil
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	if cfg.TLSSkipVerify {
		tlsConfig.InsecureSkipVerify = true
	}
	if cfg.TLSCACert != "" {
		caCert, err := os.ReadFile(cfg.TLSCACert)
		if err != nil {
			return nil, fmt.Errorf("read CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.New("parse CA certificate: no PEM certificates found")
		}
		tlsConfig.RootCAs = pool
	}
	return credentials.NewTLS(tlsConfig), nil
}
