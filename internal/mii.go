//go:build linux && !baremetal

package internal

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MII ioctls from linux/sockios.h.
const (
	siocgmiiphy = 0x8947
	siocgmiireg = 0x8948
	siocsmiireg = 0x8949

	// mdioPHYIDC45 marks a Clause 45 phy_id in mii_ioctl_data, see linux/mdio.h.
	mdioPHYIDC45 = 0x8000
)

// MIIBus reaches the PHYs attached to a Linux network interface's MAC through
// the SIOCGMIIREG/SIOCSMIIREG ioctls. It implements the phy.MDIOBus method set.
type MIIBus struct {
	fd   int
	name string
}

// OpenMIIBus opens an MII bus on the named network interface.
func OpenMIIBus(ifaceName string) (*MIIBus, error) {
	if len(ifaceName) >= unix.IFNAMSIZ {
		return nil, errors.New("interface name too long")
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("mii socket open: %w", err)
	}
	return &MIIBus{fd: fd, name: ifaceName}, nil
}

// PHYAddr returns the address of the PHY the MAC driver is attached to.
func (bus *MIIBus) PHYAddr() (uint8, error) {
	ifr := makemiireq(bus.name)
	err := ioctl(bus.fd, siocgmiiphy, ifr.ptr())
	if err != nil {
		return 0, err
	}
	return uint8(ifr.mii().phyID), nil
}

func (bus *MIIBus) Read(phyAddr, devAddr uint8, regAddr uint16) (uint16, error) {
	ifr := makemiireq(bus.name)
	mii := ifr.mii()
	mii.phyID = miiPHYID(phyAddr, devAddr)
	mii.regNum = regAddr
	err := ioctl(bus.fd, siocgmiireg, ifr.ptr())
	if err != nil {
		return 0, err
	}
	return mii.valOut, nil
}

func (bus *MIIBus) Write(phyAddr, devAddr uint8, regAddr, value uint16) error {
	ifr := makemiireq(bus.name)
	mii := ifr.mii()
	mii.phyID = miiPHYID(phyAddr, devAddr)
	mii.regNum = regAddr
	mii.valIn = value
	return ioctl(bus.fd, siocsmiireg, ifr.ptr())
}

func (bus *MIIBus) Close() error {
	return unix.Close(bus.fd)
}

func miiPHYID(phyAddr, devAddr uint8) uint16 {
	if devAddr == 0 {
		return uint16(phyAddr & 0x1f)
	}
	return mdioPHYIDC45 | uint16(phyAddr&0x1f)<<5 | uint16(devAddr&0x1f)
}

// miireq is struct ifreq with the ifr_ifru union interpreted as struct mii_ioctl_data.
type miireq struct {
	Name [unix.IFNAMSIZ]byte
	Data [24]byte
}

type miiIoctlData struct {
	phyID  uint16
	regNum uint16
	valIn  uint16
	valOut uint16
}

func makemiireq(name string) miireq {
	var ifr miireq
	copy(ifr.Name[:], name)
	return ifr
}

func (ifr *miireq) mii() *miiIoctlData { return (*miiIoctlData)(unsafe.Pointer(&ifr.Data[0])) }

func (ifr *miireq) ptr() unsafe.Pointer { return unsafe.Pointer(ifr) }

func ioctl(fd int, request uintptr, argp unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(argp))
	if errno != 0 {
		return fmt.Errorf("ioctl 0x%x: %w", request, errno)
	}
	return nil
}
