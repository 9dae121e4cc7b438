package phy

import "errors"

var _ MDIOBus = (*MDIOBitBang)(nil) // compile time guarantee of interface implementation.

var errTurnaround = errors.New("phy: PHY did not drive turnaround low")

// Frame opcodes. Clause 22 frames start with 01, Clause 45 frames with 00.
const (
	c22Read  = 0b10
	c22Write = 0b01
	c45bit   = 1 << 15
	c45Addr  = c45bit | 0b00
	c45Read  = c45bit | 0b11
	c45Write = c45bit | 0b01
)

// MDIOBitBang is a software defined MDIO/MDC management station (STA) for PHY register access.
// Modelled after linux/drivers/net/phy/mdio-bitbang.c. MDC is the clock line and MDIO the data line,
// the callbacks passed to Configure drive them:
//
//	var bus phy.MDIOBitBang
//	bus.Configure(func(outBit bool) {
//		// sendBit: set data, clock high, clock low.
//		pinMDIO.Set(outBit)
//		time.Sleep(mdioDelay)
//		pinMDC.High()
//		time.Sleep(mdioDelay)
//		pinMDC.Low()
//	}, func() bool {
//		// getBit: clock high, clock low, sample.
//		time.Sleep(mdioDelay)
//		pinMDC.High()
//		time.Sleep(mdioDelay)
//		pinMDC.Low()
//		return pinMDIO.Get()
//	}, func(setOut bool) {
//		// setDir: output when writing, input with pull-up when reading.
//		configureMDIO(setOut)
//	})
type MDIOBitBang struct {
	_sendBit func(bit bool)
	_getBit  func() (inputBit bool)
	_setDir  func(output bool)
	// SuppressPreamble skips the 32 bit preamble. Only valid for PHYs that set BMSRNoPreamble.
	SuppressPreamble bool
}

// Configure initializes the MDIO bit-bang interface with the given pin control callbacks.
func (m *MDIOBitBang) Configure(sendBit func(bit bool), getBit func() bool, setDir func(setOut bool)) error {
	if sendBit == nil || getBit == nil || setDir == nil {
		return errors.New("phy: nil MDIO bit-bang callback")
	}
	m._getBit = getBit
	m._sendBit = sendBit
	m._setDir = setDir
	// Setting direction to output releases the bus.
	m._setDir(true)
	return nil
}

// Read reads a PHY register. Uses Clause 45 framing if devAddr is non-zero.
func (m *MDIOBitBang) Read(phyAddr, devAddr uint8, regAddr uint16) (uint16, error) {
	if devAddr != 0 {
		m.c45Address(phyAddr, devAddr, regAddr)
		m.cmd(c45Read, phyAddr, devAddr)
	} else {
		m.cmd(c22Read, phyAddr, uint8(regAddr))
	}
	m._setDir(false)
	// PHY drives the second turnaround bit to zero.
	if m._getBit() {
		// Flush the frame the PHY may still be clocking out.
		for i := 0; i < 32; i++ {
			m._getBit()
		}
		return 0xffff, errTurnaround
	}
	ret := m.getNum(16)
	m._getBit()
	return ret, nil
}

// Write writes a value to a PHY register. Uses Clause 45 framing if devAddr is non-zero.
func (m *MDIOBitBang) Write(phyAddr, devAddr uint8, regAddr, value uint16) error {
	if devAddr != 0 {
		m.c45Address(phyAddr, devAddr, regAddr)
		m.cmd(c45Write, phyAddr, devAddr)
	} else {
		m.cmd(c22Write, phyAddr, uint8(regAddr))
	}
	m.sendTurnaround()
	m.sendNum(value, 16)
	m._setDir(false)
	m._getBit()
	return nil
}

// c45Address sends the Clause 45 address frame that precedes every Clause 45 read or write.
func (m *MDIOBitBang) c45Address(phy, dev uint8, reg uint16) {
	m.cmd(c45Addr, phy, dev)
	m.sendTurnaround()
	m.sendNum(reg, 16)
	m._setDir(false)
	m._getBit()
}

func (m *MDIOBitBang) cmd(op uint16, phy uint8, reg uint8) {
	m._setDir(true)
	if !m.SuppressPreamble {
		for i := 0; i < 32; i++ {
			m._sendBit(true)
		}
	}
	// Start of frame: 01 for Clause 22, 00 for Clause 45.
	m._sendBit(false)
	m._sendBit(op&c45bit == 0)
	m._sendBit((op>>1)&1 != 0)
	m._sendBit(op&1 != 0)
	m.sendNum(uint16(phy), 5)
	m.sendNum(uint16(reg), 5)
}

func (m *MDIOBitBang) sendTurnaround() {
	m._sendBit(true)
	m._sendBit(false)
}

func (m *MDIOBitBang) sendNum(val uint16, bits int) {
	for i := bits - 1; i >= 0; i-- {
		m._sendBit((val>>i)&1 != 0)
	}
}

func (m *MDIOBitBang) getNum(bits int) (ret uint16) {
	for i := 0; i < bits; i++ {
		ret <<= 1
		if m._getBit() {
			ret |= 1
		}
	}
	return ret
}
