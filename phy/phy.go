// Package phy provides Ethernet PHY management via MDIO.
// It supports IEEE 802.3 Clause 22 register access, extended (MMD) register access
// through the Clause 22 indirection registers and defines the [Driver] interface
// chip specific drivers expose to the host Ethernet framework.
package phy

// Add more stringers in linecomment mode by adding them to type flag (comma separated).
//go:generate stringer -type=LinkMode,MIIMode -linecomment -output=phy_stringers.go

import (
	"errors"
	"log/slog"
	"time"
)

var (
	errInvalidPHYAddr = errors.New("phy: invalid PHY address")
	errNilBus         = errors.New("phy: nil MDIO bus")
	errShortBuffer    = errors.New("phy: short buffer")
	errNoPHY          = errors.New("phy: no PHY found")
)

// FindClause22PHYs finds all regular non-clause45 PHYs on the MDIO bus and writes their addresses to dst.
// FindClause22PHYs returns error only if unable to find any PHY.
func FindClause22PHYs(mdio MDIOBus, dst []uint8) (n int, err error) {
	const maxAddr = 31
	if len(dst) < maxAddr+1 {
		return -1, errShortBuffer
	} else if mdio == nil {
		return -1, errNilBus
	}
	for addr := uint8(0); addr <= maxAddr; addr++ {
		val, err := mdio.Read(addr, 0, AddrBMSR)
		if err != nil {
			continue
		}
		// An absent PHY leaves MDIO pulled up (all ones) or the MAC reads zeros.
		if val != 0xffff && val != 0x0000 {
			dst[n] = addr
			n++
		}
		time.Sleep(150 * time.Microsecond)
	}
	if n <= 0 {
		err = errNoPHY
	}
	return n, err
}

// Version is the silicon identity of a PHY as decoded from the PHY identifier registers.
type Version struct {
	// OUI holds bits 3..24 of the organizationally unique identifier.
	OUI      uint32
	Model    uint8
	Revision uint8
}

// VersionFromID decodes the PHY identifier registers 2 and 3.
func VersionFromID(id1, id2 uint16) Version {
	return Version{
		OUI:      uint32(id1)<<6 | uint32(id2>>10),
		Model:    uint8(id2>>4) & 0x3f,
		Revision: uint8(id2 & 0xf),
	}
}

// ID returns the identifier register values that encode v. Inverse of [VersionFromID].
func (v Version) ID() (id1, id2 uint16) {
	id1 = uint16(v.OUI >> 6)
	id2 = uint16(v.OUI&0x3f)<<10 | uint16(v.Model&0x3f)<<4 | uint16(v.Revision&0xf)
	return id1, id2
}

// Device is a PHY on an MDIO bus. It performs direct (Clause 22) and extended (MMD)
// register transactions. Device holds no locks: calls on the same Device must be serialized by the caller.
type Device struct {
	mdio    MDIOBus
	log     *slog.Logger
	phyaddr uint8
}

// Configure resets all state of device to be used as a Clause 22 device. Does not do a software reset.
func (phy *Device) Configure(mdio MDIOBus, phyAddr uint8) error {
	if phyAddr > 31 {
		return errInvalidPHYAddr
	} else if mdio == nil {
		return errNilBus
	}
	phy.mdio = mdio
	phy.phyaddr = phyAddr
	return nil
}

// SetLogger sets the logger for register transaction traces. A nil logger disables logging.
func (phy *Device) SetLogger(log *slog.Logger) {
	phy.log = log
}

// PHYAddr returns the PHY address on the MDIO bus (0-31).
func (phy *Device) PHYAddr() uint8 {
	return phy.phyaddr
}

// Read reads direct register regAddr.
func (phy *Device) Read(regAddr uint16) (uint16, error) {
	v, err := phy.mdio.Read(phy.phyaddr, 0, regAddr)
	if err != nil {
		err = &BusError{Op: "read", PHYAddr: phy.phyaddr, Reg: regAddr, Err: err}
		phy.logerr("phy:read", slog.Uint64("reg", uint64(regAddr)), slog.String("err", err.Error()))
		return 0, err
	}
	phy.trace("phy:read", slog.Uint64("reg", uint64(regAddr)), slog.Uint64("val", uint64(v)))
	return v, nil
}

// Write writes value to direct register regAddr.
func (phy *Device) Write(regAddr, value uint16) error {
	err := phy.mdio.Write(phy.phyaddr, 0, regAddr, value)
	if err != nil {
		err = &BusError{Op: "write", PHYAddr: phy.phyaddr, Reg: regAddr, Err: err}
		phy.logerr("phy:write", slog.Uint64("reg", uint64(regAddr)), slog.String("err", err.Error()))
		return err
	}
	phy.trace("phy:write", slog.Uint64("reg", uint64(regAddr)), slog.Uint64("val", uint64(value)))
	return nil
}

// ReadModifyWrite replaces the bits selected by mask in direct register regAddr with those of value.
// Bits outside mask keep their current value. The write is skipped if the read fails.
func (phy *Device) ReadModifyWrite(regAddr, mask, value uint16) error {
	current, err := phy.Read(regAddr)
	if err != nil {
		return err
	}
	return phy.Write(regAddr, Modify(current, mask, value))
}

// Modify returns current with the bits in mask replaced by the corresponding bits of value.
func Modify(current, mask, value uint16) uint16 {
	return (current &^ mask) | (value & mask)
}

// BasicControl reads the Basic Mode Control Register (BMCR, register 0).
func (phy *Device) BasicControl() (BMCR, error) {
	ctl, err := phy.Read(AddrBMCR)
	return BMCR(ctl), err
}

// BasicStatus reads the Basic Mode Status Register (BMSR, register 1).
func (phy *Device) BasicStatus() (BMSR, error) {
	stat, err := phy.Read(AddrBMSR)
	return BMSR(stat), err
}

// EnableAutoNegotiation enables or disables PHY auto-negotiation and verifies the change took effect.
func (phy *Device) EnableAutoNegotiation(b bool) error {
	var set BMCR
	if b {
		set = BMCRANEnable
	}
	err := phy.ReadModifyWrite(AddrBMCR, uint16(BMCRANEnable), uint16(set))
	if err != nil {
		return err
	}
	ctl, err := phy.BasicControl()
	if err != nil {
		return err
	} else if (ctl&BMCRANEnable != 0) != b {
		return errors.New("phy: unable to set auto-negotiation enable bit")
	}
	return nil
}

// ReadVersion reads and decodes the PHY identifier registers.
func (phy *Device) ReadVersion() (Version, error) {
	id1, err := phy.Read(AddrPHYID1)
	if err != nil {
		return Version{}, err
	}
	id2, err := phy.Read(AddrPHYID2)
	if err != nil {
		return Version{}, err
	}
	return VersionFromID(id1, id2), nil
}

// Reset sets the self-clearing BMCR reset bit and returns without waiting.
// Poll [Device.IsResetComplete] to learn when the PHY is out of reset.
func (phy *Device) Reset() error {
	return phy.Write(AddrBMCR, uint16(BMCRReset))
}

// IsResetComplete reports whether the BMCR reset bit has self-cleared.
func (phy *Device) IsResetComplete() (bool, error) {
	ctl, err := phy.BasicControl()
	if err != nil {
		return false, err
	}
	return ctl&BMCRReset == 0, nil
}

// Advertisement reads the current Auto-Negotiation Advertisement Register.
func (phy *Device) Advertisement() (ANAR, error) {
	val, err := phy.Read(AddrANAR)
	return ANAR(val), err
}

// SetAdvertisement writes to the Auto-Negotiation Advertisement Register.
// Does NOT restart auto-negotiation; call RestartAutoNeg() after if needed.
func (phy *Device) SetAdvertisement(ad ANAR) error {
	return phy.Write(AddrANAR, uint16(ad))
}

// LinkPartnerAdvertisement reads what the link partner is advertising (ANLPAR).
func (phy *Device) LinkPartnerAdvertisement() (ANAR, error) {
	val, err := phy.Read(AddrANLPAR)
	return ANAR(val), err
}

// RestartAutoNeg enables auto-negotiation and restarts it.
func (phy *Device) RestartAutoNeg() error {
	set := uint16(BMCRANEnable | BMCRANRestart)
	return phy.ReadModifyWrite(AddrBMCR, set, set)
}

// IsLinkUp returns true if link is established.
func (phy *Device) IsLinkUp() (bool, error) {
	status, err := phy.BasicStatus()
	if err != nil {
		return false, err
	}
	return status.LinkUp(), nil
}

// WaitForLinkWithDeadline waits for link to establish until the deadline.
// If auto-negotiation is enabled (BMCR.ANEnable=1), waits for AN to complete first.
// Returns true if link is up, false if deadline exceeded.
//
// Per IEEE 802.3 BMSR.LinkStatus is latched-low so the first read only clears a stale fault.
func (phy *Device) WaitForLinkWithDeadline(deadline time.Time) (bool, error) {
	const pollInterval = 50 * time.Millisecond
	ctl, err := phy.BasicControl()
	if err != nil {
		return false, err
	} else if ctl&BMCRIsolate != 0 {
		return false, errors.New("phy: isolated from MII")
	} else if ctl&BMCRPowerDown != 0 {
		return false, errors.New("phy: powered down")
	}
	_, _ = phy.BasicStatus()
	anEnabled := ctl&BMCRANEnable != 0
	for time.Now().Before(deadline) {
		status, err := phy.BasicStatus()
		if err != nil {
			return false, err
		}
		if (!anEnabled || status.AutoNegotiationComplete()) && status.LinkUp() {
			return true, nil
		}
		time.Sleep(pollInterval)
	}
	return phy.IsLinkUp()
}

// NegotiatedLink returns the auto-negotiated link mode as the highest common
// ability of our advertisement and the link partner's, per IEEE 802.3 Annex 28B.3.
func (phy *Device) NegotiatedLink() (LinkMode, error) {
	status, err := phy.BasicStatus()
	if err != nil {
		return LinkDown, err
	} else if !status.AutoNegotiationComplete() {
		return LinkDown, errors.New("phy: auto-negotiation not complete")
	}
	anar, err := phy.Advertisement()
	if err != nil {
		return LinkDown, err
	}
	anlpar, err := phy.LinkPartnerAdvertisement()
	if err != nil {
		return LinkDown, err
	}
	return (anar & anlpar).LinkMode(), nil
}

// SetLoopback enables or disables PHY near-end loopback mode (BMCR bit 14).
func (phy *Device) SetLoopback(enable bool) error {
	var set BMCR
	if enable {
		set = BMCRLoopback
	}
	return phy.ReadModifyWrite(AddrBMCR, uint16(BMCRLoopback), uint16(set))
}
