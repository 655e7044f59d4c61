// Package client forwards application events to an eventsgateway server over
// gRPC, recording latency and outcome metrics for every call.
package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/eventsgateway/client-go/metrics"
	pb "github.com/eventsgateway/client-go/protos"
)

var log = logrus.WithField("prefix", "eventsgateway-client")

// Route is the full gRPC method name of the forwarder call. Every emitted
// series carries it as the route tag.
const Route = "/eventsgateway.GRPCForwarder/SendEvent"

// Client sends events to a topic on the eventsgateway server.
type Client struct {
	client   pb.GRPCForwarderClient
	config   *viper.Viper
	logger   logrus.FieldLogger
	topic    string
	hostname string
	registry *metrics.Registry
	service  *Service
	exporter *metrics.Service
	pusher   *metrics.StatsdPusher
}

// Option configures optional pieces of a Client.
type Option func(*Client)

// WithLogger replaces the default logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRegistry makes the client record into a shared metrics registry.
func WithRegistry(registry *metrics.Registry) Option {
	return func(c *Client) { c.registry = registry }
}

// WithGRPCForwarderClient injects the forwarder stub directly, skipping the
// connection dial. Meant for tests and local gateways.
func WithGRPCForwarderClient(forwarder pb.GRPCForwarderClient) Option {
	return func(c *Client) { c.client = forwarder }
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("grpc.timeout", 5*time.Second)
	config.SetDefault("metrics.enabled", false)
	config.SetDefault("metrics.port", 9090)
	config.SetDefault("statsd.enabled", false)
	config.SetDefault("statsd.address", "localhost:8125")
	config.SetDefault("statsd.prefix", "eventsgateway.")
	config.SetDefault("statsd.flushIntervalMs", 5000)
}

// New builds a Client from the given configuration. The topic and the grpc
// server address are required; the host identity defaults to the machine's
// network hostname. Configuration is read once and immutable afterwards.
func New(config *viper.Viper, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, errors.New("no configuration informed")
	}
	setDefaults(config)
	topic := config.GetString("topic")
	if topic == "" {
		return nil, errors.New("no kafka topic informed")
	}
	serverAddress := config.GetString("grpc.serveraddress")
	if serverAddress == "" {
		return nil, errors.New("no grpc server address informed")
	}
	hostname := config.GetString("hostname")
	if hostname == "" {
		hn, err := os.Hostname()
		if err != nil {
			return nil, errors.Wrap(err, "could not resolve hostname")
		}
		hostname = hn
	}

	c := &Client{
		config:   config,
		topic:    topic,
		hostname: hostname,
		logger: log.WithFields(logrus.Fields{
			"topic":         topic,
			"serverAddress": serverAddress,
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = metrics.NewRegistry()
	}
	if c.client == nil {
		c.service = NewService(context.Background(), &ServiceConfig{
			Endpoint: serverAddress,
			CertFile: config.GetString("grpc.certfile"),
			Timeout:  config.GetDuration("grpc.timeout"),
			Registry: c.registry,
		})
		if err := c.service.Start(); err != nil {
			return nil, err
		}
		c.client = c.service.GRPCForwarderClient()
	}
	if config.GetBool("metrics.enabled") {
		c.exporter = metrics.NewService(
			fmt.Sprintf(":%d", config.GetInt("metrics.port")),
			c.registry,
		)
		if err := c.exporter.Start(); err != nil {
			return nil, err
		}
	}
	if config.GetBool("statsd.enabled") {
		pusher, err := metrics.NewStatsdPusher(metrics.StatsdConfig{
			Addr:          config.GetString("statsd.address"),
			Prefix:        config.GetString("statsd.prefix"),
			FlushInterval: time.Duration(config.GetInt("statsd.flushIntervalMs")) * time.Millisecond,
		}, c.registry)
		if err != nil {
			return nil, err
		}
		c.pusher = pusher
		c.pusher.Start()
	}
	c.logger.WithField("hostname", hostname).Info("eventsgateway client configured")
	return c, nil
}

// Send forwards an event with the given name and payload to the configured
// default topic.
func (c *Client) Send(ctx context.Context, name string, props map[string]string) (*pb.SendEventResponse, error) {
	return c.SendToTopic(ctx, name, c.topic, props)
}

// SendToTopic forwards an event to an explicit topic, overriding the default.
// The payload is forwarded verbatim and never interpreted. Exactly one
// latency sample and exactly one outcome increment are recorded per call,
// tagged with the topic actually used; transport errors come back unwrapped.
func (c *Client) SendToTopic(ctx context.Context, name, topic string, props map[string]string) (*pb.SendEventResponse, error) {
	if name == "" {
		return nil, errors.New("no event name informed")
	}
	if topic == "" {
		return nil, errors.New("no kafka topic informed")
	}
	event := &pb.Event{
		Id:        uuid.NewString(),
		Name:      name,
		Topic:     topic,
		Props:     props,
		Timestamp: time.Now().UnixNano() / int64(time.Millisecond),
	}
	l := c.logger.WithFields(logrus.Fields{
		"event": name,
		"topic": topic,
		"id":    event.Id,
	})
	l.Debug("sending event")
	startTime := time.Now()
	res, err := c.client.SendEvent(ctx, event)
	elapsed := time.Since(startTime)
	if err != nil {
		c.registry.IncrFailure(Route, topic, c.hostname, err.Error())
		c.registry.ObserveResponseTime(Route, topic, c.hostname, elapsed)
		l.WithError(err).Debug("could not send event")
		return nil, err
	}
	c.registry.IncrSuccess(Route, topic, c.hostname)
	c.registry.ObserveResponseTime(Route, topic, c.hostname, elapsed)
	l.WithField("elapsed", elapsed).Debug("sent event")
	return res, nil
}

// Hostname returns the host identity carried on the clientHost tag.
func (c *Client) Hostname() string {
	return c.hostname
}

// Topic returns the configured default topic.
func (c *Client) Topic() string {
	return c.topic
}

// Registry returns the metrics registry the client records into.
func (c *Client) Registry() *metrics.Registry {
	return c.registry
}

// MetricsAddr returns the pull exporter's listen address, or an empty string
// when the exporter is disabled.
func (c *Client) MetricsAddr() string {
	if c.exporter == nil {
		return ""
	}
	return c.exporter.Addr()
}

// Close stops the exporters and the gRPC connection.
func (c *Client) Close() error {
	if c.pusher != nil {
		c.pusher.Stop()
	}
	if c.exporter != nil {
		if err := c.exporter.Stop(); err != nil {
			return err
		}
	}
	if c.service != nil {
		return c.service.Stop()
	}
	return nil
}
