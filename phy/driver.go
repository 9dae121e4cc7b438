package phy

// Driver is the interface a chip specific PHY driver exposes to the host Ethernet framework.
// The host checks IsPHYSupported against the identity read from the PHY and IsMIISupported
// against the MAC's interface before applying the driver specific configuration.
// Reset is a trigger: the host polls IsResetComplete with its own timeout.
type Driver interface {
	// Name identifies the driver, i.e: "lan8720".
	Name() string
	IsPHYSupported(v Version) bool
	IsMIISupported(mode MIIMode) bool
	Reset() error
	IsResetComplete() (bool, error)
	// ReadExt reads an extended (MMD) register of the driver's vendor device.
	ReadExt(regAddr uint16) (uint16, error)
	// WriteExt writes an extended (MMD) register of the driver's vendor device.
	WriteExt(regAddr, value uint16) error
}

// MIIMode is the MAC to PHY digital interface.
type MIIMode uint8

const (
	MIIModeUnknown MIIMode = iota // unknown
	MIIModeMII                    // MII
	MIIModeRMII                   // RMII
	MIIModeRGMII                  // RGMII
)
