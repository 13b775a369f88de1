// Command panel-agent publishes the metrics of the machine it runs on over MQTT,
// for a statuspanel started with -source mqtt.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"

	"github.com/BeatGlow/statuspanel/metrics"
	"github.com/BeatGlow/statuspanel/status"
)

func main() {
	brokerFlag := flag.String("mqtt-broker", "mqtt://localhost:1883", "MQTT broker URL")
	topicFlag := flag.String("mqtt-topic", "statuspanel", "MQTT topic to publish on")
	ifaceFlag := flag.String("iface", "", "Network interface to account (default: all)")
	intervalFlag := flag.Duration("interval", status.DefaultInterval, "Publish interval")
	flag.Parse()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	pub, err := metrics.DialPublisher(dialCtx, *brokerFlag, *topicFlag)
	cancel()
	if err != nil {
		glog.Exitf("fatal: %v", err)
	}
	defer pub.Close()

	src := metrics.NewHost(*ifaceFlag)
	ticker := time.NewTicker(*intervalFlag)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s, err := src.Fetch(ctx)
			if err != nil {
				glog.Warningf("fetch: %v", err)
				continue
			}
			if err = pub.Publish(ctx, s); err != nil {
				glog.Warningf("publish: %v", err)
				continue
			}
			glog.V(1).Infof("published %s", s)
		}
	}
}
