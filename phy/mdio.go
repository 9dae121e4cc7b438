package phy

import (
	"errors"
	"strconv"
)

// MDIOBus is a HAL for MDIO bus access supporting both Clause 22 and Clause 45 devices.
// Implementations should use devaddr to select the framing:
//   - devaddr=0: Clause 22 framing (devaddr ignored in transaction)
//   - devaddr>=1: Clause 45 framing (PMA/PMD=1, WIS=2, PCS=3, PHY XS=4, DTE XS=5, AN=7)
//
// Register address range: Clause 22 uses 0-31, Clause 45 uses 0-65535.
// Implementations should not retry failed transactions, retry policy belongs to the caller.
type MDIOBus interface {
	// Read reads a 16-bit register from the PHY.
	Read(phyAddr, devAddr uint8, regAddr uint16) (value uint16, err error)
	// Write writes a 16-bit value to a PHY register.
	Write(phyAddr, devAddr uint8, regAddr, value uint16) error
}

// ErrBus is matched by every [BusError] via [errors.Is].
var ErrBus = errors.New("phy: mdio transaction failed")

// BusError is returned when the underlying [MDIOBus] fails a transaction.
type BusError struct {
	Op      string // "read" or "write".
	PHYAddr uint8
	DevAddr uint8
	Reg     uint16
	Err     error
}

func (e *BusError) Error() string {
	buf := make([]byte, 0, 64)
	buf = append(buf, "phy: mdio "...)
	buf = append(buf, e.Op...)
	buf = append(buf, " phy="...)
	buf = strconv.AppendUint(buf, uint64(e.PHYAddr), 10)
	if e.DevAddr != 0 {
		buf = append(buf, " dev="...)
		buf = strconv.AppendUint(buf, uint64(e.DevAddr), 10)
	}
	buf = append(buf, " reg=0x"...)
	buf = strconv.AppendUint(buf, uint64(e.Reg), 16)
	if e.Err != nil {
		buf = append(buf, ": "...)
		buf = append(buf, e.Err.Error()...)
	}
	return string(buf)
}

func (e *BusError) Unwrap() error { return e.Err }

func (e *BusError) Is(target error) bool { return target == ErrBus }
