package lan8720

import "fmt"

// DelaySteps converts a clock delay in picoseconds to the 4 bit RMIIDCTL step code.
// Delays round up to the next 250ps step. A zero delay is programmed as the minimum step.
func DelaySteps(delayPs uint32) (uint16, error) {
	if delayPs > MaxDelayPs {
		return 0, fmt.Errorf("%w: delay %dps exceeds %dps", ErrInvalidParameter, delayPs, MaxDelayPs)
	}
	// Treat 0 as 1 so the subtraction below cannot underflow.
	delayPs = max(delayPs, 1)
	steps := (delayPs+DelayStepPs-1)/DelayStepPs - 1
	return uint16(steps) & 0xf, nil
}

// delaySteps validates both delays before converting either so that an invalid
// RX delay cannot leave a TX-only result.
func delaySteps(txDelayPs, rxDelayPs uint32) (tx, rx uint16, err error) {
	if txDelayPs > MaxDelayPs || rxDelayPs > MaxDelayPs {
		return 0, 0, fmt.Errorf("%w: delay tx=%dps rx=%dps exceeds %dps", ErrInvalidParameter, txDelayPs, rxDelayPs, MaxDelayPs)
	}
	tx, _ = DelaySteps(txDelayPs)
	rx, _ = DelaySteps(rxDelayPs)
	return tx, rx, nil
}

// ImpedanceCode converts an output impedance in milli-ohms to the 5 bit IOMUXCFG code.
// The code decreases linearly from 31 at 35 ohms to 0 at 70 ohms, rounded to the nearest step.
func ImpedanceCode(milliOhm uint32) (uint16, error) {
	if milliOhm < MinImpedanceMilliOhm || milliOhm > MaxImpedanceMilliOhm {
		return 0, fmt.Errorf("%w: impedance %dmΩ outside %d..%dmΩ", ErrInvalidParameter, milliOhm, MinImpedanceMilliOhm, MaxImpedanceMilliOhm)
	}
	code := (MaxImpedanceMilliOhm - milliOhm) * iomuxcfgImpedanceMask
	code = (code + impedanceRangeMilliOhm/2) / impedanceRangeMilliOhm
	return uint16(code), nil
}

// FIFODepthCode returns the PHYCR TX FIFO depth field value for a depth in bytes.
func FIFODepthCode(depth uint8) (uint16, error) {
	switch depth {
	case 3:
		return phycrTxFIFODepth3B, nil
	case 4:
		return phycrTxFIFODepth4B, nil
	case 6:
		return phycrTxFIFODepth6B, nil
	case 8:
		return phycrTxFIFODepth8B, nil
	}
	return 0, fmt.Errorf("%w: TX FIFO depth %d not one of 3, 4, 6, 8", ErrInvalidParameter, depth)
}

// ledField packs the four LED select nibbles, LED0 in the lowest nibble.
// Modes wider than 4 bits are truncated.
func ledField(modes [NumLEDs]LEDMode) (v uint16) {
	for i, m := range modes {
		v |= (uint16(m) & ledSelMask) << (ledSelBits * i)
	}
	return v
}

// gpioField packs the GPIO_0 and GPIO_1 mux nibbles. Modes wider than 4 bits are truncated.
func gpioField(gpio0 GPIO0Mode, gpio1 GPIO1Mode) uint16 {
	return (uint16(gpio0)<<gpiomuxGPIO0Pos)&gpiomuxGPIO0Mask | (uint16(gpio1)<<gpiomuxGPIO1Pos)&gpiomuxGPIO1Mask
}
