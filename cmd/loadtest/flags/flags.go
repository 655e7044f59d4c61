// Package flags contains all configuration runtime flags for the loadtest
// command.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag defines a flag for the path to a yaml config file with
	// the client settings (topic, grpc.serveraddress, metrics, statsd).
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a yaml config file with the client settings.",
	}
	// ServerAddressFlag defines a flag for the eventsgateway grpc server address.
	ServerAddressFlag = &cli.StringFlag{
		Name:  "grpc-server-address",
		Usage: "Address of the eventsgateway grpc server. eg localhost:5000",
		Value: "localhost:5000",
	}
	// TopicFlag defines a flag for the default topic events are sent to.
	TopicFlag = &cli.StringFlag{
		Name:  "topic",
		Usage: "Default topic to send events to.",
		Value: "default-topic",
	}
	// EventNameFlag defines a flag for the name of the events being sent.
	EventNameFlag = &cli.StringFlag{
		Name:  "event-name",
		Usage: "Name of the events being sent.",
		Value: "LoadTestEvent",
	}
	// EventsFlag defines a flag for the total number of events to send.
	EventsFlag = &cli.IntFlag{
		Name:  "events",
		Usage: "Total number of events to send.",
		Value: 1000,
	}
	// ConcurrencyFlag defines a flag for the number of concurrent senders.
	ConcurrencyFlag = &cli.IntFlag{
		Name:  "concurrency",
		Usage: "Number of goroutines sending events concurrently.",
		Value: 10,
	}
	// MetricsPortFlag defines a flag for the port of the /metrics endpoint.
	MetricsPortFlag = &cli.IntFlag{
		Name:  "metrics-port",
		Usage: "Port to serve the prometheus /metrics endpoint on.",
		Value: 9090,
	}
	// VerbosityFlag defines a flag for the logging level.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info, warn, error).",
		Value: "info",
	}
)
