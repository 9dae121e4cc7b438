package lan8720

type errGeneric uint8

// Errors returned by the driver. Configuration errors wrap ErrInvalidParameter with
// the offending field, test with errors.Is. Bus failures are *phy.BusError values.
const (
	_                   errGeneric = iota // non-initialized err
	ErrInvalidParameter                   // lan8720: invalid parameter
	ErrUnsupportedMII                     // lan8720: unsupported MII mode
	ErrUnsupportedPHY                     // lan8720: unsupported PHY
)

func (err errGeneric) Error() string {
	return err.String()
}
