package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/pkg/errors"
	dto "github.com/prometheus/client_model/go"
)

// StatsdConfig carries the aggregator address and flush behavior.
type StatsdConfig struct {
	Addr          string
	Prefix        string
	FlushInterval time.Duration
}

// StatsdPusher periodically forwards the registry's counters and gauges to a
// statsd aggregator over UDP. Transmission is fire-and-forget: a daemon that
// is down or dropping packets never surfaces as an error to callers, and the
// flush loop runs independently of call volume.
type StatsdPusher struct {
	client   statsd.ClientInterface
	registry *Registry
	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	// last counter value seen per series, to emit deltas between flushes.
	last map[string]float64
}

// NewStatsdPusher builds a pusher for the given registry. It does not start
// the flush loop.
func NewStatsdPusher(cfg StatsdConfig, registry *Registry) (*StatsdPusher, error) {
	client, err := statsd.New(
		cfg.Addr,
		statsd.WithNamespace(cfg.Prefix),
		statsd.WithoutTelemetry(),
		statsd.WithoutClientSideAggregation(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create statsd client for %s", cfg.Addr)
	}
	interval := cfg.FlushInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &StatsdPusher{
		client:   client,
		registry: registry,
		interval: interval,
		done:     make(chan struct{}),
		last:     map[string]float64{},
	}, nil
}

// Start launches the flush loop.
func (p *StatsdPusher) Start() {
	log.WithField("interval", p.interval).Info("Starting statsd pusher")
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.flush()
			case <-p.done:
				p.flush()
				return
			}
		}
	}()
}

// Stop flushes once more and closes the statsd client.
func (p *StatsdPusher) Stop() {
	p.stopOnce.Do(func() {
		log.Info("Stopping statsd pusher")
		close(p.done)
		p.wg.Wait()
		if err := p.client.Close(); err != nil {
			log.WithError(err).Debug("could not close statsd client")
		}
	})
}

func (p *StatsdPusher) flush() {
	mfs, err := p.registry.Gather()
	if err != nil {
		log.WithError(err).Debug("could not gather metrics for statsd flush")
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			tags := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				tags = append(tags, l.GetName()+":"+l.GetValue())
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				delta := m.GetCounter().GetValue() - p.last[seriesKey(mf.GetName(), tags)]
				p.last[seriesKey(mf.GetName(), tags)] = m.GetCounter().GetValue()
				if delta <= 0 {
					continue
				}
				if err := p.client.Count(mf.GetName(), int64(delta), tags, 1); err != nil {
					log.WithError(err).Debug("could not push counter to statsd")
				}
			case dto.MetricType_GAUGE:
				if err := p.client.Gauge(mf.GetName(), m.GetGauge().GetValue(), tags, 1); err != nil {
					log.WithError(err).Debug("could not push gauge to statsd")
				}
			}
		}
	}
	if err := p.client.Flush(); err != nil {
		log.WithError(err).Debug("could not flush statsd client")
	}
}

func seriesKey(name string, tags []string) string {
	return name + "|" + strings.Join(tags, ",")
}
