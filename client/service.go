package client

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/eventsgateway/client-go/metrics"
	pb "github.com/eventsgateway/client-go/protos"
)

// Service manages the gRPC connection to the eventsgateway server.
type Service struct {
	ctx      context.Context
	cancel   context.CancelFunc
	conn     *grpc.ClientConn
	endpoint string
	withCert string
	timeout  time.Duration
	registry *metrics.Registry
}

// ServiceConfig for the forwarder connection service.
type ServiceConfig struct {
	Endpoint string
	CertFile string
	Timeout  time.Duration
	Registry *metrics.Registry
}

// NewService sets up a new eventsgateway RPC connection service.
func NewService(ctx context.Context, cfg *ServiceConfig) *Service {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:      ctx,
		cancel:   cancel,
		endpoint: cfg.Endpoint,
		withCert: cfg.CertFile,
		timeout:  cfg.Timeout,
		registry: cfg.Registry,
	}
}

// Start dials the grpc connection.
func (s *Service) Start() error {
	log.WithField("endpoint", s.endpoint).Info("Starting service")
	var dialOpt grpc.DialOption
	if s.withCert != "" {
		creds, err := credentials.NewClientTLSFromFile(s.withCert, "")
		if err != nil {
			return errors.Wrap(err, "could not get valid credentials")
		}
		dialOpt = grpc.WithTransportCredentials(creds)
	} else {
		dialOpt = grpc.WithInsecure()
		log.Warn("You are using an insecure gRPC connection to the eventsgateway server")
	}
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(s.ctx, s.timeout)
		defer cancel()
	}
	conn, err := grpc.DialContext(
		ctx,
		s.endpoint,
		dialOpt,
		grpc.WithUnaryInterceptor(s.registry.UnaryClientInterceptor()),
	)
	if err != nil {
		return errors.Wrapf(err, "could not dial eventsgateway server at %s", s.endpoint)
	}
	s.conn = conn
	return nil
}

// Stop the dialed connection.
func (s *Service) Stop() error {
	log.Info("Stopping service")
	s.cancel()
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// GRPCForwarderClient returns the proto RPC interface.
func (s *Service) GRPCForwarderClient() pb.GRPCForwarderClient {
	return pb.NewGRPCForwarderClient(s.conn)
}
