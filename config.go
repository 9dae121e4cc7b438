package lan8720

import (
	"errors"
	"fmt"
)

// NumLEDs is the number of LED outputs of the LAN8720.
const NumLEDs = 4

// GPIO0Mode selects the signal muxed onto GPIO_0.
type GPIO0Mode uint8

const (
	GPIO0RxErr     GPIO0Mode = 0x0 // RX_ER
	GPIO0TxSFD1588 GPIO0Mode = 0x1 // 1588 TX start of frame delimiter
	GPIO0RxSFD1588 GPIO0Mode = 0x2 // 1588 RX start of frame delimiter
	GPIO0WoL       GPIO0Mode = 0x3 // Wake-on-LAN
	GPIO0EnergyDet GPIO0Mode = 0x4 // Energy detect
	GPIO0LED3      GPIO0Mode = 0x6 // LED3
	GPIO0PRBSErr   GPIO0Mode = 0x7 // PRBS errors / loss of sync
	GPIO0Constant0 GPIO0Mode = 0x8 // Constant logic 0
	GPIO0Constant1 GPIO0Mode = 0x9 // Constant logic 1
)

// IsValid reports whether m is one of the nine defined GPIO_0 modes.
func (m GPIO0Mode) IsValid() bool { return m <= 0x9 && m != 0x5 }

// GPIO1Mode selects the signal muxed onto GPIO_1.
type GPIO1Mode uint8

const (
	GPIO1Col       GPIO1Mode = 0x0 // Collision detect
	GPIO1TxSFD1588 GPIO1Mode = 0x1 // 1588 TX start of frame delimiter
	GPIO1RxSFD1588 GPIO1Mode = 0x2 // 1588 RX start of frame delimiter
	GPIO1WoL       GPIO1Mode = 0x3 // Wake-on-LAN
	GPIO1EnergyDet GPIO1Mode = 0x4 // Energy detect
	GPIO1LED3      GPIO1Mode = 0x6 // LED3
	GPIO1PRBSErr   GPIO1Mode = 0x7 // PRBS errors / loss of sync
	GPIO1Constant0 GPIO1Mode = 0x8 // Constant logic 0
	GPIO1Constant1 GPIO1Mode = 0x9 // Constant logic 1
)

// IsValid reports whether m is one of the nine defined GPIO_1 modes.
func (m GPIO1Mode) IsValid() bool { return m <= 0x9 && m != 0x5 }

// LEDMode selects the event an LED output indicates.
type LEDMode uint8

const (
	LEDLinked              LEDMode = 0x0 // link established
	LEDRxTxActivity        LEDMode = 0x1 // RX or TX activity
	LEDTxActivity          LEDMode = 0x2 // TX activity
	LEDRxActivity          LEDMode = 0x3 // RX activity
	LEDCollision           LEDMode = 0x4 // collision detected
	LEDLinked1000BT        LEDMode = 0x5 // 1000BASE-T link
	LEDLinked100BTX        LEDMode = 0x6 // 100BASE-TX link
	LEDLinked10BT          LEDMode = 0x7 // 10BASE-T link
	LEDLinked10100BT       LEDMode = 0x8 // 10/100BASE-T link
	LEDLinked1001000BT     LEDMode = 0x9 // 100/1000BASE-T link
	LEDFullDuplex          LEDMode = 0xa // full duplex
	LEDLinkedBlinkActivity LEDMode = 0xb // link with blink on activity
	LEDRxTxError           LEDMode = 0xd // RX or TX error
	LEDRxError             LEDMode = 0xe // RX error
)

// IsValid reports whether m is one of the fourteen defined LED modes.
func (m LEDMode) IsValid() bool { return m <= 0xe && m != 0xc }

// Config holds the physical layer tuning parameters applied by [Device.Configure].
// Start from [DefaultConfig] and override fields as needed.
type Config struct {
	// TxClkShift and RxClkShift enable the RMII TX and RX clock shift.
	TxClkShift bool
	RxClkShift bool
	// TxDelayPs and RxDelayPs are the clock delays in picoseconds, 0..4000.
	// Delays are programmed in steps of 250ps, rounded up.
	TxDelayPs uint32
	RxDelayPs uint32
	// TxFIFODepth is the transmit FIFO depth in bytes, one of 3, 4, 6 or 8.
	TxFIFODepth uint8
	// IdleCountThreshold is the Viterbi detector idle count threshold. Only the low 4 bits are used.
	IdleCountThreshold uint32
	// ImpedanceMilliOhm is the output impedance, 35000..70000 milli-ohms.
	ImpedanceMilliOhm uint32
	GPIO0             GPIO0Mode
	GPIO1             GPIO1Mode
	LED               [NumLEDs]LEDMode
	// AutoMDIX enables automatic crossover. When false the PHY is forced to MDI.
	AutoMDIX bool
}

// DefaultConfig returns the driver's default configuration.
func DefaultConfig() Config {
	return Config{
		TxClkShift:         true,
		RxClkShift:         true,
		TxDelayPs:          2000,
		RxDelayPs:          2000,
		TxFIFODepth:        4,
		IdleCountThreshold: 4,
		ImpedanceMilliOhm:  50000,
		GPIO0:              GPIO0RxErr,
		GPIO1:              GPIO1Col,
		LED:                [NumLEDs]LEDMode{LEDLinked, LEDLinked1000BT, LEDRxTxActivity, LEDLinked100BTX},
		AutoMDIX:           true,
	}
}

// Validate checks every field of cfg and returns all problems joined.
// It is stricter than [Device.Configure], which truncates GPIO, LED and idle
// threshold values to their register fields instead of rejecting them.
func (cfg *Config) Validate() error {
	var errs []error
	if _, _, err := delaySteps(cfg.TxDelayPs, cfg.RxDelayPs); err != nil {
		errs = append(errs, err)
	}
	if _, err := ImpedanceCode(cfg.ImpedanceMilliOhm); err != nil {
		errs = append(errs, err)
	}
	if _, err := FIFODepthCode(cfg.TxFIFODepth); err != nil {
		errs = append(errs, err)
	}
	if cfg.IdleCountThreshold > vtmcfgIdleThrMask {
		errs = append(errs, fmt.Errorf("%w: idle count threshold %d exceeds %d", ErrInvalidParameter, cfg.IdleCountThreshold, vtmcfgIdleThrMask))
	}
	if !cfg.GPIO0.IsValid() {
		errs = append(errs, fmt.Errorf("%w: undefined GPIO0 mode %d", ErrInvalidParameter, cfg.GPIO0))
	}
	if !cfg.GPIO1.IsValid() {
		errs = append(errs, fmt.Errorf("%w: undefined GPIO1 mode %d", ErrInvalidParameter, cfg.GPIO1))
	}
	for i, m := range cfg.LED {
		if !m.IsValid() {
			errs = append(errs, fmt.Errorf("%w: undefined LED%d mode %d", ErrInvalidParameter, i, m))
		}
	}
	return errors.Join(errs...)
}
