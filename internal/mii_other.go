//go:build !linux || baremetal

package internal

import "errors"

type MIIBus struct{}

func OpenMIIBus(ifaceName string) (*MIIBus, error) {
	return nil, errors.ErrUnsupported
}

func (bus *MIIBus) PHYAddr() (uint8, error) {
	return 0, errors.ErrUnsupported
}

func (bus *MIIBus) Read(phyAddr, devAddr uint8, regAddr uint16) (uint16, error) {
	return 0, errors.ErrUnsupported
}

func (bus *MIIBus) Write(phyAddr, devAddr uint8, regAddr, value uint16) error {
	return errors.ErrUnsupported
}

func (bus *MIIBus) Close() error {
	return errors.ErrUnsupported
}
