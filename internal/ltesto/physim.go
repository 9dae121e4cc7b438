package ltesto

import (
	"errors"
	"fmt"
)

// Indirect MMD access registers and control register functions.
const (
	regMMDCR         = 0x0d
	regMMDDR         = 0x0e
	mmdFuncMask      = 0xc000
	mmdFuncAddr      = 0x0000
	mmdFuncData      = 0x4000
	mmdFuncPostInc   = 0x8000
	mmdFuncPostIncW  = 0xc000
	mmdDevAddrMask   = 0x001f
	unpopulatedValue = 0xffff
)

// ErrInjected is returned by [PHYSim] for transactions selected by its Fail hook.
var ErrInjected = errors.New("ltesto: injected MDIO failure")

// Txn is a single MDIO transaction observed by [PHYSim].
type Txn struct {
	Write   bool
	PHYAddr uint8
	DevAddr uint8
	Reg     uint16
	Value   uint16 // Value written, or value returned by a read.
}

func (t Txn) String() string {
	op := "R"
	if t.Write {
		op = "W"
	}
	if t.DevAddr != 0 {
		return fmt.Sprintf("%s %d.%d:0x%04x=0x%04x", op, t.PHYAddr, t.DevAddr, t.Reg, t.Value)
	}
	return fmt.Sprintf("%s %d:0x%02x=0x%04x", op, t.PHYAddr, t.Reg, t.Value)
}

// PHYSim simulates the register file of a single Clause 22 PHY with an extended
// register space reachable through the MMD indirection registers 13 and 14, or
// directly with Clause 45 framing. It implements the phy.MDIOBus method set
// and records every transaction.
type PHYSim struct {
	Addr uint8
	// Fail, if set, is called before every transaction. A true result fails it
	// with ErrInjected: writes are discarded and reads return 0xffff.
	Fail func(t Txn) bool
	// OnWrite, if set, is called after a successful direct register write.
	// Tests use it to model hardware side effects such as self-clearing bits.
	OnWrite func(sim *PHYSim, reg, value uint16)

	direct [32]uint16
	ext    map[uint32]uint16
	mmdCR  uint16
	// mmdAddr holds the address register of each MMD device.
	mmdAddr [32]uint16
	log     []Txn
}

// NewPHYSim returns a simulated PHY at phyAddr.
func NewPHYSim(phyAddr uint8) *PHYSim {
	return &PHYSim{Addr: phyAddr, ext: make(map[uint32]uint16)}
}

// SetReg sets a direct register without recording a transaction.
func (sim *PHYSim) SetReg(reg, value uint16) { sim.direct[reg&0x1f] = value }

// Reg returns a direct register without recording a transaction.
func (sim *PHYSim) Reg(reg uint16) uint16 { return sim.direct[reg&0x1f] }

// SetExt sets an extended register of MMD device devAddr without recording a transaction.
func (sim *PHYSim) SetExt(devAddr uint8, reg, value uint16) { sim.ext[extKey(devAddr, reg)] = value }

// Ext returns an extended register of MMD device devAddr without recording a transaction.
func (sim *PHYSim) Ext(devAddr uint8, reg uint16) uint16 { return sim.ext[extKey(devAddr, reg)] }

// Log returns the transactions recorded since the last call to ResetLog.
func (sim *PHYSim) Log() []Txn { return sim.log }

// ResetLog clears the transaction log.
func (sim *PHYSim) ResetLog() { sim.log = sim.log[:0] }

// Writes returns only the write transactions of the log.
func (sim *PHYSim) Writes() (writes []Txn) {
	for _, t := range sim.log {
		if t.Write {
			writes = append(writes, t)
		}
	}
	return writes
}

func (sim *PHYSim) Read(phyAddr, devAddr uint8, regAddr uint16) (uint16, error) {
	t := Txn{PHYAddr: phyAddr, DevAddr: devAddr, Reg: regAddr}
	if sim.Fail != nil && sim.Fail(t) {
		return unpopulatedValue, ErrInjected
	}
	switch {
	case phyAddr != sim.Addr:
		t.Value = unpopulatedValue
	case devAddr != 0:
		t.Value = sim.ext[extKey(devAddr, regAddr)]
	case regAddr == regMMDDR:
		t.Value = sim.readMMDData()
	default:
		t.Value = sim.direct[regAddr&0x1f]
	}
	sim.log = append(sim.log, t)
	return t.Value, nil
}

func (sim *PHYSim) Write(phyAddr, devAddr uint8, regAddr, value uint16) error {
	t := Txn{Write: true, PHYAddr: phyAddr, DevAddr: devAddr, Reg: regAddr, Value: value}
	if sim.Fail != nil && sim.Fail(t) {
		return ErrInjected
	}
	sim.log = append(sim.log, t)
	switch {
	case phyAddr != sim.Addr:
	case devAddr != 0:
		sim.ext[extKey(devAddr, regAddr)] = value
	case regAddr == regMMDCR:
		sim.mmdCR = value
		sim.direct[regMMDCR] = value
	case regAddr == regMMDDR:
		sim.writeMMDData(value)
	default:
		sim.direct[regAddr&0x1f] = value
		if sim.OnWrite != nil {
			sim.OnWrite(sim, regAddr, value)
		}
	}
	return nil
}

func (sim *PHYSim) readMMDData() uint16 {
	dev := uint8(sim.mmdCR & mmdDevAddrMask)
	switch sim.mmdCR & mmdFuncMask {
	case mmdFuncAddr:
		return sim.mmdAddr[dev]
	case mmdFuncPostInc:
		v := sim.ext[extKey(dev, sim.mmdAddr[dev])]
		sim.mmdAddr[dev]++
		return v
	default:
		return sim.ext[extKey(dev, sim.mmdAddr[dev])]
	}
}

func (sim *PHYSim) writeMMDData(value uint16) {
	dev := uint8(sim.mmdCR & mmdDevAddrMask)
	switch sim.mmdCR & mmdFuncMask {
	case mmdFuncAddr:
		sim.mmdAddr[dev] = value
	case mmdFuncData:
		sim.ext[extKey(dev, sim.mmdAddr[dev])] = value
	default:
		sim.ext[extKey(dev, sim.mmdAddr[dev])] = value
		sim.mmdAddr[dev]++
	}
}

func extKey(devAddr uint8, reg uint16) uint32 {
	return uint32(devAddr&mmdDevAddrMask)<<16 | uint32(reg)
}
