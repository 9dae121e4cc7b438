package lan8720

import (
	"errors"
	"testing"
)

func TestDelaySteps(t *testing.T) {
	var tests = []struct {
		ps      uint32
		want    uint16
		wantErr bool
	}{
		{ps: 0, want: 0},
		{ps: 1, want: 0},
		{ps: 250, want: 0},
		{ps: 251, want: 1},
		{ps: 500, want: 1},
		{ps: 1000, want: 3},
		{ps: 2000, want: 7},
		{ps: 3999, want: 15},
		{ps: 4000, want: 15},
		{ps: 4001, wantErr: true},
		{ps: 1 << 31, wantErr: true},
	}
	for _, tc := range tests {
		got, err := DelaySteps(tc.ps)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("DelaySteps(%d) want ErrInvalidParameter, got %v", tc.ps, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("DelaySteps(%d): %v", tc.ps, err)
		} else if got != tc.want {
			t.Errorf("DelaySteps(%d)=%d, want %d", tc.ps, got, tc.want)
		}
	}
}

func TestDelayStepsPair(t *testing.T) {
	tx, rx, err := delaySteps(1000, 250)
	if err != nil {
		t.Fatal(err)
	} else if tx != 3 || rx != 0 {
		t.Errorf("got tx=%d rx=%d, want 3 and 0", tx, rx)
	}
	tx, rx, err = delaySteps(1000, 4001)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want ErrInvalidParameter, got %v", err)
	} else if tx != 0 || rx != 0 {
		t.Errorf("invalid pair must not return partial result, got tx=%d rx=%d", tx, rx)
	}
}

func TestImpedanceCode(t *testing.T) {
	var tests = []struct {
		mohm    uint32
		want    uint16
		wantErr bool
	}{
		{mohm: 35000, want: 31},
		{mohm: 70000, want: 0},
		{mohm: 50000, want: 18},
		{mohm: 52500, want: 16}, // Exactly half way rounds up.
		{mohm: 34999, wantErr: true},
		{mohm: 70001, wantErr: true},
		{mohm: 0, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ImpedanceCode(tc.mohm)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ImpedanceCode(%d) want ErrInvalidParameter, got %v", tc.mohm, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ImpedanceCode(%d): %v", tc.mohm, err)
		} else if got != tc.want {
			t.Errorf("ImpedanceCode(%d)=%d, want %d", tc.mohm, got, tc.want)
		}
	}
	// Code must decrease monotonically with impedance.
	prev := uint16(32)
	for mohm := uint32(MinImpedanceMilliOhm); mohm <= MaxImpedanceMilliOhm; mohm += 100 {
		code, err := ImpedanceCode(mohm)
		if err != nil {
			t.Fatal(err)
		} else if code > prev {
			t.Fatalf("code increased at %dmΩ: %d > %d", mohm, code, prev)
		}
		prev = code
	}
}

func TestFIFODepthCode(t *testing.T) {
	want := map[uint8]uint16{3: 0x0000, 4: 0x4000, 6: 0x8000, 8: 0xc000}
	for depth := uint8(0); depth < 16; depth++ {
		code, err := FIFODepthCode(depth)
		expect, ok := want[depth]
		if !ok {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("depth %d: want ErrInvalidParameter, got %v", depth, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("depth %d: %v", depth, err)
		} else if code != expect {
			t.Errorf("depth %d: got 0x%04x, want 0x%04x", depth, code, expect)
		}
	}
}

func TestFieldPacking(t *testing.T) {
	got := ledField([NumLEDs]LEDMode{LEDLinked, LEDLinked1000BT, LEDRxTxActivity, LEDLinked100BTX})
	if got != 0x6150 {
		t.Errorf("ledField got 0x%04x, want 0x6150", got)
	}
	// Out of range modes are truncated to their nibble and do not bleed into neighbours.
	got = ledField([NumLEDs]LEDMode{0x1f, 0, 0, 0})
	if got != 0x000f {
		t.Errorf("ledField truncation got 0x%04x, want 0x000f", got)
	}
	gpio := gpioField(GPIO0EnergyDet, GPIO1Constant1)
	if gpio != 0x0094 {
		t.Errorf("gpioField got 0x%04x, want 0x0094", gpio)
	}
	gpio = gpioField(0x13, 0)
	if gpio != 0x0003 {
		t.Errorf("gpioField truncation got 0x%04x, want 0x0003", gpio)
	}
}
