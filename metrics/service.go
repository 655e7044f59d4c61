package metrics

import (
	"context"
	"net"
	"net/http"
	"runtime/debug"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "metrics")

// Service provides the client metrics via the /metrics route. Each scrape
// re-renders the registry's current state; nothing is cached.
type Service struct {
	server     *http.Server
	listener   net.Listener
	failStatus error
}

// NewService sets up a new instance for a given address host:port.
// An empty host will match with any IP so an address like ":9090" is
// perfectly acceptable, and ":0" binds an ephemeral port.
func NewService(addr string, registry *Registry) *Service {
	s := &Service{}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry.Gatherer(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", s.healthzHandler)
	mux.HandleFunc("/goroutinez", s.goroutinezHandler)

	s.server = &http.Server{Addr: addr, Handler: mux}

	return s
}

func (s *Service) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Errorf("Could not write healthz body %v", err)
	}
}

func (s *Service) goroutinezHandler(w http.ResponseWriter, _ *http.Request) {
	stack := debug.Stack()
	// #nosec G104
	w.Write(stack)
	// #nosec G104
	pprof.Lookup("goroutine").WriteTo(w, 2)
}

// Start binds the listen address and begins serving scrapes. A failure to
// bind is returned immediately and is fatal to the exporter.
func (s *Service) Start() error {
	lis, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return errors.Wrapf(err, "could not listen on %s", s.server.Addr)
	}
	s.listener = lis
	log.WithField("endpoint", lis.Addr().String()).Info("Starting service")
	go func() {
		err := s.server.Serve(lis)
		if err != nil && err != http.ErrServerClosed {
			log.Errorf("Could not serve metrics at %s: %v", lis.Addr(), err)
			s.failStatus = err
		}
	}()
	return nil
}

// Addr returns the resolved listen address, useful with ephemeral ports.
func (s *Service) Addr() string {
	if s.listener == nil {
		return s.server.Addr
	}
	return s.listener.Addr().String()
}

// Stop the service gracefully.
func (s *Service) Stop() error {
	log.Info("Stopping service")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Status checks for any service failure conditions.
func (s *Service) Status() error {
	if s.failStatus != nil {
		return s.failStatus
	}
	return nil
}
