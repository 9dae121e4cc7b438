// Package lan8720 implements a register level driver for the LAN8720 Ethernet PHY.
//
// The driver identifies the PHY, applies a [Config] through an ordered sequence of
// read-modify-write transactions on the direct and extended (MMD) register spaces,
// and drives the software reset handshake. MDIO transport is provided by the host
// as a [phy.MDIOBus]. A Device holds no locks: the host must serialize calls.
package lan8720

//go:generate stringer -type=errGeneric -linecomment -output=stringers.go .

import (
	"fmt"
	"log/slog"

	"github.com/soypat/lan8720/internal"
	"github.com/soypat/lan8720/phy"
)

var _ phy.Driver = (*Device)(nil) // compile time guarantee of interface implementation.

// SupportedVersion is the only silicon identity the driver configures.
var SupportedVersion = phy.Version{
	OUI:      0x0001c1,
	Model:    0x27,
	Revision: 0x0,
}

// Device is a LAN8720 PHY on an MDIO bus.
type Device struct {
	phy phy.Device
	log *slog.Logger
}

// New returns a Device for the PHY at phyAddr on bus. No bus transactions are issued.
func New(bus phy.MDIOBus, phyAddr uint8) (*Device, error) {
	d := &Device{}
	err := d.phy.Configure(bus, phyAddr)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// SetLogger sets the driver logger. Register transactions are logged at trace level.
func (d *Device) SetLogger(log *slog.Logger) {
	d.log = log
	d.phy.SetLogger(log)
}

// PHY returns the generic PHY access of the device for IEEE 802.3 operations
// such as link status and auto-negotiation.
func (d *Device) PHY() *phy.Device { return &d.phy }

// Name returns "lan8720".
func (d *Device) Name() string { return "lan8720" }

// IsPHYSupported reports whether v is exactly [SupportedVersion].
func (d *Device) IsPHYSupported(v phy.Version) bool {
	return v == SupportedVersion
}

// IsMIISupported reports whether the PHY can talk to a MAC over mode.
// The LAN8720 has no RGMII interface.
func (d *Device) IsMIISupported(mode phy.MIIMode) bool {
	switch mode {
	case phy.MIIModeMII, phy.MIIModeRMII:
		return true
	default:
		return false
	}
}

// Identify reads the silicon identity of the PHY and reports whether the driver supports it.
func (d *Device) Identify() (phy.Version, bool, error) {
	v, err := d.phy.ReadVersion()
	if err != nil {
		return v, false, err
	}
	ok := d.IsPHYSupported(v)
	d.debug("lan8720:identify", slog.Uint64("oui", uint64(v.OUI)), slog.Uint64("model", uint64(v.Model)),
		slog.Uint64("rev", uint64(v.Revision)), slog.Bool("supported", ok))
	return v, ok, nil
}

// Configure applies cfg for a MAC connected over mii. Steps run in a fixed order and the
// first failure stops the sequence. Registers written by earlier steps are not rolled back.
func (d *Device) Configure(cfg Config, mii phy.MIIMode) error {
	if !d.IsMIISupported(mii) {
		return fmt.Errorf("%w: %s", ErrUnsupportedMII, mii.String())
	}
	d.debug("lan8720:configure", slog.String("mii", mii.String()))
	err := d.SetMIIMode(mii)
	if err != nil {
		return err
	}
	// Clock shift shares RMIICTL with the MII mode bit; both are masked RMWs.
	err = d.SetClockShift(cfg.TxClkShift, cfg.RxClkShift)
	if err != nil {
		return err
	}
	err = d.SetClockDelay(cfg.TxDelayPs, cfg.RxDelayPs)
	if err != nil {
		return err
	}
	err = d.SetOutputImpedance(cfg.ImpedanceMilliOhm)
	if err != nil {
		return err
	}
	err = d.SetTxFIFODepth(cfg.TxFIFODepth)
	if err != nil {
		return err
	}
	err = d.SetGPIOMux(cfg.GPIO0, cfg.GPIO1)
	if err != nil {
		return err
	}
	err = d.SetLEDModes(cfg.LED)
	if err != nil {
		return err
	}
	err = d.EnableAutoMDIX(cfg.AutoMDIX)
	if err != nil {
		return err
	}
	err = d.SetIdleThreshold(cfg.IdleCountThreshold)
	if err != nil {
		return err
	}
	err = d.SetDSPEqualizer()
	if err != nil {
		return err
	}
	return d.FixFLDStrap()
}

// SetMIIMode sets the RMII enable bit for [phy.MIIModeRMII] and clears it otherwise.
func (d *Device) SetMIIMode(mii phy.MIIMode) error {
	var val uint16
	if mii == phy.MIIModeRMII {
		val = rmiictlRMIIEn
	}
	return d.modifyExt(AddrRMIICTL, rmiictlRMIIEn, val)
}

// SetClockShift enables or disables the TX and RX clock shift.
func (d *Device) SetClockShift(txShift, rxShift bool) error {
	var val uint16
	if txShift {
		val |= rmiictlTxClkDly
	}
	if rxShift {
		val |= rmiictlRxClkDly
	}
	d.debug("lan8720:clock-shift", slog.Bool("tx", txShift), slog.Bool("rx", rxShift))
	return d.modifyExt(AddrRMIICTL, rmiictlShiftMask, val)
}

// SetClockDelay programs the TX and RX clock delays in picoseconds, 0..4000 each.
// Nothing is written if either delay is out of range.
func (d *Device) SetClockDelay(txDelayPs, rxDelayPs uint32) error {
	tx, rx, err := delaySteps(txDelayPs, rxDelayPs)
	if err != nil {
		d.logerr("lan8720:clock-delay", slog.String("err", err.Error()))
		return err
	}
	d.debug("lan8720:clock-delay", slog.Uint64("txps", uint64(txDelayPs)), slog.Uint64("rxps", uint64(rxDelayPs)),
		slog.Uint64("txsteps", uint64(tx)), slog.Uint64("rxsteps", uint64(rx)))
	val := tx<<rmiidctlTxDlyPos | rx<<rmiidctlRxDlyPos
	return d.modifyExt(AddrRMIIDCTL, rmiidctlDelayMask, val)
}

// SetOutputImpedance programs the output impedance in milli-ohms, 35000..70000.
// Nothing is written if the impedance is out of range.
func (d *Device) SetOutputImpedance(milliOhm uint32) error {
	code, err := ImpedanceCode(milliOhm)
	if err != nil {
		d.logerr("lan8720:impedance", slog.String("err", err.Error()))
		return err
	}
	d.debug("lan8720:impedance", slog.Uint64("mohm", uint64(milliOhm)), slog.Uint64("code", uint64(code)))
	return d.modifyExt(AddrIOMUXCFG, iomuxcfgImpedanceMask, code)
}

// SetTxFIFODepth sets the TX FIFO depth in bytes, one of 3, 4, 6 or 8.
// Nothing is written for any other depth.
func (d *Device) SetTxFIFODepth(depth uint8) error {
	code, err := FIFODepthCode(depth)
	if err != nil {
		d.logerr("lan8720:fifo-depth", slog.String("err", err.Error()))
		return err
	}
	d.debug("lan8720:fifo-depth", slog.Uint64("depth", uint64(depth)))
	return d.phy.ReadModifyWrite(AddrPHYCR, phycrTxFIFODepthMask, code)
}

// SetGPIOMux selects the signals output on GPIO_0 and GPIO_1 in a single register update.
// Undefined modes are not rejected, they are truncated to the 4 bit field.
func (d *Device) SetGPIOMux(gpio0 GPIO0Mode, gpio1 GPIO1Mode) error {
	d.debug("lan8720:gpio-mux", slog.Uint64("gpio0", uint64(gpio0)), slog.Uint64("gpio1", uint64(gpio1)))
	return d.modifyExt(AddrGPIOMUXCTRL, gpiomuxGPIO0Mask|gpiomuxGPIO1Mask, gpioField(gpio0, gpio1))
}

// SetLEDModes selects the event shown by each LED, LED0 first, in a single register update.
// Undefined modes are not rejected, they are truncated to the 4 bit field.
func (d *Device) SetLEDModes(modes [NumLEDs]LEDMode) error {
	val := ledField(modes)
	d.debug("lan8720:led-modes", slog.Uint64("val", uint64(val)))
	return d.phy.ReadModifyWrite(AddrLEDCR1, ledcr1Mask, val)
}

// EnableAutoMDIX selects automatic crossover, or forces MDI when enable is false.
// Enabling also turns on robust auto-MDIX.
func (d *Device) EnableAutoMDIX(enable bool) error {
	val := uint16(phycrMDICrossoverMDI)
	if enable {
		val = phycrMDICrossoverAuto
	}
	d.debug("lan8720:auto-mdix", slog.Bool("enable", enable))
	err := d.phy.ReadModifyWrite(AddrPHYCR, phycrMDICrossoverMask, val)
	if err != nil || !enable {
		return err
	}
	return d.phy.ReadModifyWrite(AddrCFG3, cfg3RobustAutoMDIX, cfg3RobustAutoMDIX)
}

// SetIdleThreshold sets the Viterbi detector idle count threshold. Only the low 4 bits are used.
func (d *Device) SetIdleThreshold(threshold uint32) error {
	d.debug("lan8720:idle-threshold", slog.Uint64("threshold", uint64(threshold)))
	return d.modifyExt(AddrVTMCFG, vtmcfgIdleThrMask, uint16(threshold))
}

// SetDSPEqualizer programs the DSP feedforward equalizer with the short cable setting.
func (d *Device) SetDSPEqualizer() error {
	return d.modifyExt(AddrDSPFFECFG, dspffecfgFFEEqMask, dspffecfgFFEEqShortCable)
}

// FixFLDStrap forces the FLD threshold when the FLD strap status bit reads as set.
func (d *Device) FixFLDStrap() error {
	strap, err := d.ReadExt(AddrSTRAPSTS2)
	if err != nil {
		return err
	} else if strap&strapsts2FLDMask == 0 {
		return nil
	}
	d.debug("lan8720:fld-strap-fix")
	return d.modifyExt(AddrFLDTHRCFG, fldthrcfgFLDMask, fldthrcfgFLDValue)
}

// SetLoopback enables or disables loopback. LOOPCR is single purpose and written whole.
func (d *Device) SetLoopback(enable bool) error {
	val := uint16(loopcrNormal)
	if enable {
		val = loopcrLoopback
	}
	d.debug("lan8720:loopback", slog.Bool("enable", enable))
	return d.WriteExt(AddrLOOPCR, val)
}

// Reset triggers a global software reset by setting the self-clearing CTRL reset bit.
// It does not wait: poll [Device.IsResetComplete] with a host side timeout.
func (d *Device) Reset() error {
	d.debug("lan8720:reset")
	return d.phy.ReadModifyWrite(AddrCTRL, ctrlSWReset, ctrlSWReset)
}

// IsResetComplete reports whether the CTRL reset bit has self-cleared.
func (d *Device) IsResetComplete() (bool, error) {
	ctrl, err := d.phy.Read(AddrCTRL)
	if err != nil {
		return false, err
	}
	complete := ctrl&ctrlSWReset == 0
	d.trace("lan8720:reset-poll", slog.Bool("complete", complete))
	return complete, nil
}

// Restart triggers a software restart, which unlike [Device.Reset] keeps register contents.
func (d *Device) Restart() error {
	d.debug("lan8720:restart")
	return d.phy.ReadModifyWrite(AddrCTRL, ctrlSWRestart, ctrlSWRestart)
}

// StartAutoNegotiation writes adv to the advertisement register if non-zero, then enables
// and restarts auto-negotiation.
func (d *Device) StartAutoNegotiation(adv phy.ANAR) error {
	if adv != 0 {
		err := d.phy.SetAdvertisement(adv)
		if err != nil {
			return err
		}
	}
	d.debug("lan8720:autoneg", slog.Uint64("anar", uint64(adv)))
	return d.phy.RestartAutoNeg()
}

// ReadExt reads a vendor extended register.
func (d *Device) ReadExt(regAddr uint16) (uint16, error) {
	return d.phy.ReadMMD(VendorMMD, regAddr)
}

// WriteExt writes a vendor extended register.
func (d *Device) WriteExt(regAddr, value uint16) error {
	return d.phy.WriteMMD(VendorMMD, regAddr, value)
}

func (d *Device) modifyExt(regAddr, mask, value uint16) error {
	return d.phy.ModifyMMD(VendorMMD, regAddr, mask, value)
}

// LogRegisters reads the main control and status registers and logs them at info level.
func (d *Device) LogRegisters() error {
	regs := [...]struct {
		name string
		addr uint16
	}{
		{"bmcr", phy.AddrBMCR},
		{"bmsr", phy.AddrBMSR},
		{"id1", phy.AddrPHYID1},
		{"id2", phy.AddrPHYID2},
		{"phycr", AddrPHYCR},
		{"ctrl", AddrCTRL},
	}
	var attrs [len(regs)]slog.Attr
	for i, reg := range regs {
		v, err := d.phy.Read(reg.addr)
		if err != nil {
			return err
		}
		attrs[i] = internal.SlogHex(reg.name, v)
	}
	d.logattrs(slog.LevelInfo, "lan8720:regs", attrs[:]...)
	return nil
}
