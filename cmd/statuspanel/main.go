// Command statuspanel shows CPU, RAM and network usage on an SSD1306 panel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/golang/glog"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/statuspanel/display"
	"github.com/BeatGlow/statuspanel/metrics"
	"github.com/BeatGlow/statuspanel/status"
)

type bus interface {
	display.Bus
	io.Closer
	fmt.Stringer
}

func main() {
	speed := display.DefaultSPIConfig.Speed

	busFlag := flag.String("bus", "spi", "Bus type (spi or i2c)")
	spiPortFlag := flag.String("spi-port", "", "SPI port name (default: first available)")
	flag.Var(&speed, "spi-speed", "SPI clock")
	dcPinFlag := flag.String("dc", display.DefaultSPIConfig.DC, "Data/Command GPIO pin (DC)")
	csPinFlag := flag.String("cs", "", "Chip select GPIO pin (default: driven by the SPI port)")
	i2cBusFlag := flag.String("i2c-bus", "", "I²C bus name (default: first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(display.DefaultI2CConfig.Addr), "I²C device address")
	settleFlag := flag.Duration("settle", display.DefaultSettle, "Chip select hold time after every byte")
	contrastFlag := flag.Uint("contrast", uint(display.DefaultConfig.Contrast), "Contrast level (0-255)")
	intervalFlag := flag.Duration("interval", status.DefaultInterval, "Refresh interval")
	sourceFlag := flag.String("source", "host", "Metrics source (random, host or mqtt)")
	ifaceFlag := flag.String("iface", "", "Network interface to account (default: all)")
	brokerFlag := flag.String("mqtt-broker", "mqtt://localhost:1883", "MQTT broker URL")
	topicFlag := flag.String("mqtt-topic", "statuspanel", "MQTT topic carrying samples")
	flag.Parse()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		b   bus
		err error
	)
	switch busType := strings.ToLower(*busFlag); busType {
	case "spi":
		b, err = display.OpenSPI(&display.SPIConfig{
			Port:  *spiPortFlag,
			Speed: speed,
			DC:    *dcPinFlag,
			CS:    *csPinFlag,
		})
	case "i2c":
		b, err = display.OpenI2C(&display.I2CConfig{
			Bus:  *i2cBusFlag,
			Addr: uint16(*i2cAddrFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	defer b.Close()
	glog.Infof("using connection: %s", b)

	src, err := openSource(ctx, *sourceFlag, *ifaceFlag, *brokerFlag, *topicFlag)
	if err != nil {
		fatal(err)
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	var (
		tr = display.NewTransport(b, *settleFlag)
		d  = display.NewSSD1306(tr, &display.Config{Contrast: byte(*contrastFlag)})
	)
	glog.Infof("using driver: %s, settle %s", d, tr.Settle())
	d.Initialize()
	if err = tr.Err(); err != nil {
		fatal(err)
	}

	p := status.New(d, src)
	p.Err = tr.Err
	if err = p.Run(ctx, *intervalFlag); err != nil && !errors.Is(err, context.Canceled) {
		glog.Errorf("run: %v", err)
	}

	glog.Info("switching display off")
	d.Show(false)
}

func openSource(ctx context.Context, name, iface, broker, topic string) (metrics.Source, error) {
	switch strings.ToLower(name) {
	case "random":
		return metrics.NewRandom(time.Now().UnixNano()), nil
	case "host":
		return metrics.NewHost(iface), nil
	case "mqtt":
		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return metrics.DialMQTT(dialCtx, broker, topic)
	default:
		return nil, fmt.Errorf("unsupported metrics source %q", name)
	}
}

func fatal(err error) {
	glog.Exitf("fatal: %v", err)
}
