package display

// SSD1306 command opcodes.
const (
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA0
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setComScanInc         = 0xC0
	setComScanDec         = 0xC8
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

// Argument values.
const (
	chargePumpEnable     = 0x14
	horizontalAddressing = 0x00
)
