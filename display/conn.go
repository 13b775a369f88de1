package display

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// Conn errors.
var (
	ErrCSPin = errors.New("display: chip select (CS) GPIO pin is invalid")
)

// DefaultSettle is how long the chip select stays asserted after each byte.
//
// The reference panel firmware waits 10ms, far longer than a byte takes at 8MHz.
// Measure against the actual panel before lowering it.
const DefaultSettle = 10 * time.Millisecond

// Bus is the pin level view of the serial link to the controller.
type Bus interface {
	// SelectMode drives the data/command line.
	SelectMode(WordType)

	// AssertSelect pulls chip select low.
	AssertSelect()

	// ReleaseSelect pulls chip select high.
	ReleaseSelect()

	// ShiftByte clocks one byte out, most significant bit first.
	ShiftByte(byte)
}

// Transport writes single bytes over a Bus, holding chip select for the settle
// interval after every transfer.
type Transport struct {
	bus    Bus
	settle time.Duration
	sleep  func(time.Duration)
}

// NewTransport returns a Transport on bus. A zero settle skips the wait.
func NewTransport(bus Bus, settle time.Duration) *Transport {
	return &Transport{
		bus:    bus,
		settle: settle,
		sleep:  time.Sleep,
	}
}

// Settle returns the post transfer wait.
func (t *Transport) Settle() time.Duration {
	return t.settle
}

// SetSettle changes the post transfer wait.
func (t *Transport) SetSettle(settle time.Duration) {
	t.settle = settle
}

// Send implements Writer.
func (t *Transport) Send(value byte, kind WordType) {
	t.bus.SelectMode(kind)
	t.bus.AssertSelect()
	t.bus.ShiftByte(value)
	if t.settle > 0 {
		t.sleep(t.settle)
	}
	t.bus.ReleaseSelect()
}

// Err returns the first error recorded by the bus, if it keeps track of them.
func (t *Transport) Err() error {
	if e, ok := t.bus.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// sticky keeps the first error seen on a bus.
type sticky struct {
	name string
	err  error
}

func (s *sticky) check(err error) {
	if err == nil || s.err != nil {
		return
	}
	glog.Warningf("%s: %v", s.name, err)
	s.err = err
}

// Err returns the first error the bus ran into.
func (s *sticky) Err() error {
	return s.err
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port is the periph SPI port name, empty selects the first one.
	Port string

	// Speed is the bus clock.
	Speed physic.Frequency

	// DC is the data/command GPIO pin name.
	DC string

	// CS is the chip select GPIO pin name. When empty the SPI driver handles CE.
	CS string
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Speed: 8 * physic.MegaHertz,
	DC:    "GPIO24",
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []physic.Frequency{
	500 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
	10 * physic.MegaHertz,
	16 * physic.MegaHertz,
}

// SPI is a 4-wire SPI Bus with a separate data/command pin.
type SPI struct {
	sticky
	c       spi.Conn
	closer  io.Closer
	dc      gpio.PinOut
	dcLevel gpio.Level
	dcValid bool
	cs      gpio.PinOut
}

// OpenSPI opens the SPI port and GPIO pins named in config. A nil config uses
// DefaultSPIConfig. The host drivers must be initialized first.
func OpenSPI(config *SPIConfig) (*SPI, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	var dc, cs gpio.PinOut
	if p := gpioreg.ByName(config.DC); p != nil {
		dc = p
	} else {
		return nil, ErrDCPin
	}
	if config.CS != "" {
		if p := gpioreg.ByName(config.CS); p != nil {
			cs = p
		} else {
			return nil, ErrCSPin
		}
	}

	port, err := spireg.Open(config.Port)
	if err != nil {
		return nil, err
	}

	b, err := NewSPI(port, dc, cs, config.Speed)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	b.closer = port
	return b, nil
}

// NewSPI connects to p in mode 0, 8 bits per word, MSB first. A zero speed uses the
// default; cs may be nil.
func NewSPI(p spi.Port, dc, cs gpio.PinOut, speed physic.Frequency) (*SPI, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	if cs == gpio.INVALID {
		return nil, ErrCSPin
	}

	if speed == 0 {
		speed = DefaultSPIConfig.Speed
	}
	var valid bool
	for _, v := range ValidSPISpeeds {
		if valid = v == speed; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%w %s", ErrSPISpeed, speed)
	}

	c, err := p.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	return &SPI{
		sticky: sticky{name: "display: SPI"},
		c:      c,
		dc:     dc,
		cs:     cs,
	}, nil
}

func (b *SPI) String() string {
	return fmt.Sprintf("SPI %s dc=%s", b.c, b.dc)
}

// Close the SPI port, if OpenSPI opened it.
func (b *SPI) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// SelectMode implements Bus.
func (b *SPI) SelectMode(kind WordType) {
	level := gpio.Level(kind == Data)
	if b.dcValid && b.dcLevel == level {
		return
	}
	if err := b.dc.Out(level); err != nil {
		b.check(err)
		return
	}
	b.dcLevel, b.dcValid = level, true
}

// AssertSelect implements Bus.
func (b *SPI) AssertSelect() {
	if b.cs != nil {
		b.check(b.cs.Out(gpio.Low))
	}
}

// ReleaseSelect implements Bus.
func (b *SPI) ReleaseSelect() {
	if b.cs != nil {
		b.check(b.cs.Out(gpio.High))
	}
}

// ShiftByte implements Bus.
func (b *SPI) ShiftByte(value byte) {
	b.check(b.c.Tx([]byte{value}, nil))
}

// I²C control bytes, replacing the data/command pin.
const (
	i2cControlCommand = 0x00
	i2cControlData    = 0x40
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Bus is the periph I²C bus name, empty selects the first one.
	Bus string

	// Addr is the I²C address.
	Addr uint16
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Addr: 0x3c,
}

// I2C is a Bus for the I²C variant of the panel. Every byte goes out as one
// transaction prefixed with a control byte.
type I2C struct {
	sticky
	dev     *i2c.Dev
	closer  io.Closer
	control byte
	pending []byte
}

// OpenI2C opens the I²C bus named in config. A nil config uses DefaultI2CConfig.
func OpenI2C(config *I2CConfig) (*I2C, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	bus, err := i2creg.Open(config.Bus)
	if err != nil {
		return nil, err
	}

	b := NewI2C(bus, config.Addr)
	b.closer = bus
	return b, nil
}

// NewI2C returns an I2C bus talking to addr.
func NewI2C(bus i2c.Bus, addr uint16) *I2C {
	return &I2C{
		sticky:  sticky{name: "display: I²C"},
		dev:     &i2c.Dev{Bus: bus, Addr: addr},
		pending: make([]byte, 0, 2),
	}
}

func (b *I2C) String() string {
	return fmt.Sprintf("I²C %s", b.dev)
}

// Close the I²C bus, if OpenI2C opened it.
func (b *I2C) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// SelectMode implements Bus.
func (b *I2C) SelectMode(kind WordType) {
	if kind == Data {
		b.control = i2cControlData
	} else {
		b.control = i2cControlCommand
	}
}

// AssertSelect implements Bus.
func (b *I2C) AssertSelect() {
	b.pending = append(b.pending[:0], b.control)
}

// ShiftByte implements Bus.
func (b *I2C) ShiftByte(value byte) {
	b.pending = append(b.pending, value)
}

// ReleaseSelect implements Bus.
func (b *I2C) ReleaseSelect() {
	if len(b.pending) < 2 {
		return
	}
	b.check(b.dev.Tx(b.pending, nil))
	b.pending = b.pending[:0]
}
