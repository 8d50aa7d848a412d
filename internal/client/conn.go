// Package client talks to the feed server on behalf of the CLI.
package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/gophfeed/internal/api/grpc/middleware"
	"github.com/dtroode/gophfeed/internal/logger"
)

// Credentials holds the access token attached to outgoing calls.
type Credentials struct {
	mu          sync.RWMutex
	accessToken string
}

// AccessToken returns the current access token, empty when signed out.
func (c *Credentials) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Credentials) set(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// DialOptions configures the server connection.
type DialOptions struct {
	Address string
	TLS     bool
	// TLSConfig overrides the default TLS configuration when TLS is set.
	TLSConfig *tls.Config
}

// Dial creates a client connection that sends the access token held by creds
// as a bearer token on every call.
func Dial(opts DialOptions, creds *Credentials, l *logger.Logger, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	transport := insecure.NewCredentials()
	if opts.TLS {
		cfg := opts.TLSConfig
		if cfg == nil {
			cfg = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		transport = credentials.NewTLS(cfg)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(transport),
		grpc.WithChainUnaryInterceptor(
			bearerInterceptor(creds),
			middleware.NewClientLogging(l),
		),
	}, extra...)

	conn, err := grpc.NewClient(opts.Address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", opts.Address, err)
	}
	return conn, nil
}

func bearerInterceptor(creds *Credentials) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if token := creds.AccessToken(); token != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
