package phy

import "log/slog"

// MMD access control register (register 13) and address/data register (register 14)
// as defined by IEEE 802.3 Clause 22.2.4.3.11. They give Clause 22 PHYs access
// to the extended (MMD) register space.
const (
	AddrMMDCR = 0x0d
	AddrMMDDR = 0x0e

	MMDCRFuncAddr         = 0x0000 // Address register access.
	MMDCRFuncData         = 0x4000 // Data access, no post increment.
	MMDCRFuncDataPostInc  = 0x8000 // Data access, post increment on reads and writes.
	MMDCRFuncDataPostIncW = 0xc000 // Data access, post increment on writes only.
	MMDCRDevAddrMask      = 0x001f
)

// ReadMMD reads register regAddr of MMD device devAddr through the indirect
// access registers. The four transactions are issued in order and the first failure aborts.
func (phy *Device) ReadMMD(devAddr uint8, regAddr uint16) (uint16, error) {
	err := phy.selectMMD(devAddr, regAddr)
	if err != nil {
		return 0, err
	}
	return phy.Read(AddrMMDDR)
}

// WriteMMD writes value to register regAddr of MMD device devAddr through the indirect access registers.
func (phy *Device) WriteMMD(devAddr uint8, regAddr, value uint16) error {
	err := phy.selectMMD(devAddr, regAddr)
	if err != nil {
		return err
	}
	return phy.Write(AddrMMDDR, value)
}

// ModifyMMD replaces the bits selected by mask in register regAddr of MMD device devAddr with those of value.
// The data register is read and written back without re-selecting the address, which is valid
// because the data function is selected without post increment. A failed read writes nothing.
func (phy *Device) ModifyMMD(devAddr uint8, regAddr, mask, value uint16) error {
	err := phy.selectMMD(devAddr, regAddr)
	if err != nil {
		return err
	}
	current, err := phy.Read(AddrMMDDR)
	if err != nil {
		return err
	}
	newValue := Modify(current, mask, value)
	if phy.logenabled(slog.LevelDebug) {
		phy.debug("phy:modify-mmd", slog.Uint64("dev", uint64(devAddr)), slog.Uint64("reg", uint64(regAddr)),
			slog.Uint64("old", uint64(current)), slog.Uint64("new", uint64(newValue)))
	}
	return phy.Write(AddrMMDDR, newValue)
}

// selectMMD performs the first three steps of an indirect access: select the address
// function, write the target register address, then select the data function.
func (phy *Device) selectMMD(devAddr uint8, regAddr uint16) error {
	devad := uint16(devAddr) & MMDCRDevAddrMask
	err := phy.Write(AddrMMDCR, MMDCRFuncAddr|devad)
	if err != nil {
		return err
	}
	err = phy.Write(AddrMMDDR, regAddr)
	if err != nil {
		return err
	}
	return phy.Write(AddrMMDCR, MMDCRFuncData|devad)
}
