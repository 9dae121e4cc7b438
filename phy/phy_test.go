package phy

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/soypat/lan8720/internal/ltesto"
)

func TestVersionFromID(t *testing.T) {
	v := VersionFromID(0x0007, 0x0670)
	want := Version{OUI: 0x1c1, Model: 0x27, Revision: 0}
	if v != want {
		t.Fatalf("got %+v, want %+v", v, want)
	}
	id1, id2 := v.ID()
	if id1 != 0x0007 || id2 != 0x0670 {
		t.Fatalf("ID()=0x%04x,0x%04x", id1, id2)
	}
	for _, id2 := range []uint16{0x0000, 0x0671, 0xfc0f, 0xffff, 0x03f0} {
		const id1 = 0x1234
		gotid1, gotid2 := VersionFromID(id1, id2).ID()
		if gotid1 != id1 || gotid2 != id2 {
			t.Errorf("round trip 0x%04x,0x%04x -> 0x%04x,0x%04x", id1, id2, gotid1, gotid2)
		}
	}
}

func TestModify(t *testing.T) {
	var tests = []struct {
		cur, mask, val, want uint16
	}{
		{cur: 0xffff, mask: 0x00ff, val: 0x0012, want: 0xff12},
		{cur: 0x0000, mask: 0x00f0, val: 0xffff, want: 0x00f0},
		{cur: 0xabcd, mask: 0x0000, val: 0xffff, want: 0xabcd},
		{cur: 0xabcd, mask: 0xffff, val: 0x1234, want: 0x1234},
	}
	for _, tc := range tests {
		got := Modify(tc.cur, tc.mask, tc.val)
		if got != tc.want {
			t.Errorf("Modify(0x%04x,0x%04x,0x%04x)=0x%04x, want 0x%04x", tc.cur, tc.mask, tc.val, got, tc.want)
		}
	}
}

func newTestDevice(t *testing.T, addr uint8) (*Device, *ltesto.PHYSim) {
	t.Helper()
	sim := ltesto.NewPHYSim(addr)
	var dev Device
	err := dev.Configure(sim, addr)
	if err != nil {
		t.Fatal(err)
	}
	return &dev, sim
}

func TestConfigureArgs(t *testing.T) {
	var dev Device
	if err := dev.Configure(ltesto.NewPHYSim(0), 32); err == nil {
		t.Error("expected error for PHY address 32")
	}
	if err := dev.Configure(nil, 0); err == nil {
		t.Error("expected error for nil bus")
	}
}

func TestMMDSequence(t *testing.T) {
	const devad = 0x1f
	dev, sim := newTestDevice(t, 3)
	err := dev.WriteMMD(devad, 0x172, 0x0055)
	if err != nil {
		t.Fatal(err)
	}
	want := []ltesto.Txn{
		{Write: true, PHYAddr: 3, Reg: AddrMMDCR, Value: MMDCRFuncAddr | devad},
		{Write: true, PHYAddr: 3, Reg: AddrMMDDR, Value: 0x172},
		{Write: true, PHYAddr: 3, Reg: AddrMMDCR, Value: MMDCRFuncData | devad},
		{Write: true, PHYAddr: 3, Reg: AddrMMDDR, Value: 0x0055},
	}
	if got := sim.Log(); !slices.Equal(got, want) {
		t.Fatalf("write sequence:\ngot  %v\nwant %v", got, want)
	}
	if got := sim.Ext(devad, 0x172); got != 0x0055 {
		t.Fatalf("ext register got 0x%04x", got)
	}
	sim.ResetLog()
	v, err := dev.ReadMMD(devad, 0x172)
	if err != nil {
		t.Fatal(err)
	} else if v != 0x0055 {
		t.Fatalf("ReadMMD got 0x%04x", v)
	}
	log := sim.Log()
	if len(log) != 4 || log[3].Write || log[3].Reg != AddrMMDDR {
		t.Fatalf("read sequence: %v", log)
	}
}

func TestModifyMMD(t *testing.T) {
	dev, sim := newTestDevice(t, 0)
	sim.SetExt(7, 0x3c, 0xff00)
	err := dev.ModifyMMD(7, 0x3c, 0x0ff0, 0x0aa0)
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Ext(7, 0x3c); got != 0xfaa0 {
		t.Fatalf("got 0x%04x, want 0xfaa0", got)
	}
	// Only the first select writes the address.
	addrWrites := 0
	for _, txn := range sim.Writes() {
		if txn.Reg == AddrMMDCR && txn.Value&0xc000 == MMDCRFuncAddr {
			addrWrites++
		}
	}
	if addrWrites != 1 {
		t.Errorf("expected a single address select, got %d", addrWrites)
	}
}

func TestBusError(t *testing.T) {
	dev, sim := newTestDevice(t, 2)
	sim.Fail = func(ltesto.Txn) bool { return true }
	_, err := dev.Read(AddrBMSR)
	if !errors.Is(err, ErrBus) {
		t.Fatalf("want ErrBus, got %v", err)
	} else if !errors.Is(err, ltesto.ErrInjected) {
		t.Fatalf("want wrapped cause, got %v", err)
	}
	var busErr *BusError
	if !errors.As(err, &busErr) {
		t.Fatal("expected *BusError")
	} else if busErr.Op != "read" || busErr.PHYAddr != 2 || busErr.Reg != AddrBMSR {
		t.Errorf("unexpected fields %+v", busErr)
	}
	if !strings.Contains(err.Error(), "reg=0x1") {
		t.Errorf("unexpected message %q", err.Error())
	}
	err = dev.ReadModifyWrite(AddrBMCR, 0xffff, 0)
	if !errors.Is(err, ErrBus) {
		t.Fatalf("want ErrBus, got %v", err)
	}
}

func TestReadModifyWriteSkipsWriteOnFailedRead(t *testing.T) {
	dev, sim := newTestDevice(t, 0)
	sim.SetReg(AddrBMCR, 0x1100)
	sim.Fail = func(txn ltesto.Txn) bool { return !txn.Write }
	err := dev.ReadModifyWrite(AddrBMCR, uint16(BMCRLoopback), uint16(BMCRLoopback))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(sim.Writes()) != 0 {
		t.Fatalf("write issued after failed read: %v", sim.Writes())
	}
	if sim.Reg(AddrBMCR) != 0x1100 {
		t.Fatal("register modified")
	}
}

func TestFindClause22PHYs(t *testing.T) {
	sim := ltesto.NewPHYSim(5)
	sim.SetReg(AddrBMSR, 0x7809)
	var addrs [32]uint8
	n, err := FindClause22PHYs(sim, addrs[:])
	if err != nil {
		t.Fatal(err)
	} else if n != 1 || addrs[0] != 5 {
		t.Fatalf("found %v", addrs[:n])
	}
	_, err = FindClause22PHYs(sim, addrs[:8])
	if err == nil {
		t.Fatal("expected short buffer error")
	}
	sim.SetReg(AddrBMSR, 0)
	_, err = FindClause22PHYs(sim, addrs[:])
	if err == nil {
		t.Fatal("expected no PHY error")
	}
}

func TestResetBMCR(t *testing.T) {
	dev, sim := newTestDevice(t, 0)
	sim.OnWrite = func(sim *ltesto.PHYSim, reg, value uint16) {
		if reg == AddrBMCR && value&uint16(BMCRReset) != 0 {
			sim.SetReg(AddrBMCR, 0x3100) // Reset completes immediately with defaults.
		}
	}
	err := dev.Reset()
	if err != nil {
		t.Fatal(err)
	}
	done, err := dev.IsResetComplete()
	if err != nil {
		t.Fatal(err)
	} else if !done {
		t.Fatal("reset should be complete")
	}
}

func TestNegotiatedLink(t *testing.T) {
	dev, sim := newTestDevice(t, 0)
	sim.SetReg(AddrBMSR, uint16(BMSRANComplete|BMSRLinkStatus))
	sim.SetReg(AddrANAR, uint16(NewANAR().WithMaxSpeed(100)))
	sim.SetReg(AddrANLPAR, uint16(NewANAR().WithMaxSpeed(100).FullDuplexOnly()))
	mode, err := dev.NegotiatedLink()
	if err != nil {
		t.Fatal(err)
	} else if mode != Link100FDX {
		t.Fatalf("got %s, want %s", mode, Link100FDX)
	}
	up, err := dev.IsLinkUp()
	if err != nil {
		t.Fatal(err)
	} else if !up {
		t.Fatal("link should be up")
	}
	sim.SetReg(AddrBMSR, 0)
	_, err = dev.NegotiatedLink()
	if err == nil {
		t.Fatal("expected error with auto-negotiation incomplete")
	}
}

func TestANARLinkMode(t *testing.T) {
	var tests = []struct {
		anar ANAR
		want LinkMode
	}{
		{anar: 0, want: LinkDown},
		{anar: ANAR10Half, want: Link10HDX},
		{anar: ANAR10Half | ANAR10Full, want: Link10FDX},
		{anar: ANAR100Half | ANAR10Full, want: Link100HDX},
		{anar: ANAR100BaseT4 | ANAR100Half, want: Link100T4},
		{anar: ANAR100Full | ANAR100BaseT4, want: Link100FDX},
	}
	for _, tc := range tests {
		got := tc.anar.LinkMode()
		if got != tc.want {
			t.Errorf("ANAR 0x%04x: got %s, want %s", uint16(tc.anar), got, tc.want)
		}
	}
	if Link100FDX.SpeedMbps() != 100 || !Link100FDX.IsFullDuplex() {
		t.Error("bad Link100FDX properties")
	}
	if Link10HDX.SpeedMbps() != 10 || Link10HDX.IsFullDuplex() {
		t.Error("bad Link10HDX properties")
	}
	if s := LinkMode(200).String(); s != "LinkMode(200)" {
		t.Errorf("unexpected out of range string %q", s)
	}
	if MIIModeRMII.String() != "RMII" {
		t.Error("bad MIIMode string", MIIModeRMII.String())
	}
}
