package lan8720

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal("default config invalid:", err)
	}
}

func TestConfigValidate(t *testing.T) {
	var tests = []struct {
		name   string
		modify func(*Config)
		substr string
	}{
		{name: "txdelay", modify: func(c *Config) { c.TxDelayPs = 4250 }, substr: "delay"},
		{name: "rxdelay", modify: func(c *Config) { c.RxDelayPs = 5000 }, substr: "delay"},
		{name: "impedance", modify: func(c *Config) { c.ImpedanceMilliOhm = 20000 }, substr: "impedance"},
		{name: "fifo", modify: func(c *Config) { c.TxFIFODepth = 5 }, substr: "FIFO"},
		{name: "idle", modify: func(c *Config) { c.IdleCountThreshold = 16 }, substr: "idle"},
		{name: "gpio0", modify: func(c *Config) { c.GPIO0 = 5 }, substr: "GPIO0"},
		{name: "gpio1", modify: func(c *Config) { c.GPIO1 = 10 }, substr: "GPIO1"},
		{name: "led", modify: func(c *Config) { c.LED[2] = 0xc }, substr: "LED2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("want ErrInvalidParameter, got %v", err)
			} else if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q does not mention %q", err, tc.substr)
			}
		})
	}
}

func TestConfigValidateJoins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TxFIFODepth = 7
	cfg.ImpedanceMilliOhm = 1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "FIFO") || !strings.Contains(msg, "impedance") {
		t.Errorf("expected both problems reported, got %q", msg)
	}
}

func TestModeValidity(t *testing.T) {
	for m := 0; m < 256; m++ {
		wantGPIO := m <= 9 && m != 5
		if got := GPIO0Mode(m).IsValid(); got != wantGPIO {
			t.Errorf("GPIO0Mode(%d).IsValid()=%v", m, got)
		}
		if got := GPIO1Mode(m).IsValid(); got != wantGPIO {
			t.Errorf("GPIO1Mode(%d).IsValid()=%v", m, got)
		}
		wantLED := m <= 0xe && m != 0xc
		if got := LEDMode(m).IsValid(); got != wantLED {
			t.Errorf("LEDMode(%d).IsValid()=%v", m, got)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	for _, err := range []error{ErrInvalidParameter, ErrUnsupportedMII, ErrUnsupportedPHY} {
		if !strings.HasPrefix(err.Error(), "lan8720: ") {
			t.Errorf("unexpected error string %q", err.Error())
		}
	}
}
