// Package main defines a load-test command for the eventsgateway client. It
// fires a configurable number of events at a gateway from concurrent senders
// while serving the client's prometheus metrics for inspection.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/eventsgateway/client-go/client"
	"github.com/eventsgateway/client-go/cmd/loadtest/flags"
)

var log = logrus.WithField("prefix", "loadtest")

var appFlags = []cli.Flag{
	flags.ConfigFileFlag,
	flags.ServerAddressFlag,
	flags.TopicFlag,
	flags.EventNameFlag,
	flags.EventsFlag,
	flags.ConcurrencyFlag,
	flags.MetricsPortFlag,
	flags.VerbosityFlag,
}

func loadConfig(cliCtx *cli.Context) (*viper.Viper, error) {
	config := viper.New()
	if path := cliCtx.String(flags.ConfigFileFlag.Name); path != "" {
		config.SetConfigFile(path)
		if err := config.ReadInConfig(); err != nil {
			return nil, err
		}
		return config, nil
	}
	config.Set("topic", cliCtx.String(flags.TopicFlag.Name))
	config.Set("grpc.serveraddress", cliCtx.String(flags.ServerAddressFlag.Name))
	config.Set("metrics.enabled", true)
	config.Set("metrics.port", cliCtx.Int(flags.MetricsPortFlag.Name))
	return config, nil
}

func startLoadTest(cliCtx *cli.Context) error {
	verbosity := cliCtx.String(flags.VerbosityFlag.Name)
	level, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	config, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	c, err := client.New(config)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Error("could not close client")
		}
	}()

	total := cliCtx.Int(flags.EventsFlag.Name)
	concurrency := cliCtx.Int(flags.ConcurrencyFlag.Name)
	eventName := cliCtx.String(flags.EventNameFlag.Name)
	log.WithFields(logrus.Fields{
		"events":      total,
		"concurrency": concurrency,
		"metrics":     c.MetricsAddr(),
	}).Info("starting load test")

	var sent, failed int64
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(concurrency)
	startTime := time.Now()
	for i := 0; i < concurrency; i++ {
		go func(worker int) {
			defer wg.Done()
			for n := range jobs {
				props := map[string]string{
					"worker":   fmt.Sprintf("%d", worker),
					"sequence": fmt.Sprintf("%d", n),
				}
				if _, err := c.Send(context.Background(), eventName, props); err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}
				atomic.AddInt64(&sent, 1)
			}
		}(i)
	}
	for n := 0; n < total; n++ {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	log.WithFields(logrus.Fields{
		"sent":    atomic.LoadInt64(&sent),
		"failed":  atomic.LoadInt64(&failed),
		"elapsed": time.Since(startTime),
	}).Info("load test finished")

	snapshot, err := c.Registry().Snapshot()
	if err != nil {
		return err
	}
	fmt.Println(snapshot)
	return nil
}

func main() {
	app := cli.App{}
	app.Name = "loadtest"
	app.Usage = "fires events at an eventsgateway server and reports client metrics"
	app.Flags = appFlags
	app.Action = startLoadTest

	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
