package lan8720

// VendorMMD is the MMD device address under which the vendor extended registers are reached.
const VendorMMD = 0x1f

// Vendor specific direct (Clause 22) registers.
const (
	AddrLEDCR1 = 0x18 // LED Control Register 1: one select nibble per LED.
	AddrPHYCR  = 0x1b // PHY Control Register: TX FIFO depth and MDI crossover.
	AddrCFG3   = 0x1e // Configuration Register 3.
	AddrCTRL   = 0x1f // Global Control Register: software reset and restart.
)

// Extended (MMD) registers.
const (
	AddrRMIICTL     = 0x32  // RMII Control Register.
	AddrVTMCFG      = 0x53  // Viterbi Module Configuration Register.
	AddrSTRAPSTS2   = 0x6f  // Strap Status Register 2.
	AddrFLDTHRCFG   = 0x70  // FLD Threshold Configuration Register.
	AddrRMIIDCTL    = 0x86  // RMII Delay Control Register.
	AddrLOOPCR      = 0xfe  // Loopback Configuration Register.
	AddrDSPFFECFG   = 0x12c // DSP Feedforward Equalizer Configuration Register.
	AddrIOMUXCFG    = 0x170 // I/O Mux Configuration Register.
	AddrGPIOMUXCTRL = 0x172 // GPIO Mux Control Register.
)

// LEDCR1 fields. LED n select occupies bits 4n..4n+3.
const (
	ledSelBits = 4
	ledSelMask = 0xf
	// LEDCR1 holds only the four select nibbles.
	ledcr1Mask = 0xffff
)

// PHYCR fields.
const (
	phycrTxFIFODepthMask = 0xc000
	phycrTxFIFODepth3B   = 0x0000
	phycrTxFIFODepth4B   = 0x4000
	phycrTxFIFODepth6B   = 0x8000
	phycrTxFIFODepth8B   = 0xc000

	phycrMDICrossoverMask = 0x0060
	phycrMDICrossoverAuto = 0x0040
	phycrMDICrossoverMDI  = 0x0020
)

const cfg3RobustAutoMDIX = 1 << 9

// CTRL fields.
const (
	ctrlSWReset   = 1 << 15
	ctrlSWRestart = 1 << 14
)

// RMIICTL fields.
const (
	rmiictlRMIIEn    = 1 << 7
	rmiictlTxClkDly  = 1 << 1
	rmiictlRxClkDly  = 1 << 0
	rmiictlShiftMask = rmiictlTxClkDly | rmiictlRxClkDly
)

const vtmcfgIdleThrMask = 0x000f

const (
	dspffecfgFFEEqMask       = 0x03ff
	dspffecfgFFEEqShortCable = 0x0281
)

const (
	strapsts2FLDMask  = 0x0400
	fldthrcfgFLDMask  = 0x0007
	fldthrcfgFLDValue = 1
)

// RMIIDCTL fields. Delay is programmed in steps of 250ps up to 4ns.
const (
	rmiidctlTxDlyPos  = 4
	rmiidctlTxDlyMask = 0x00f0
	rmiidctlRxDlyPos  = 0
	rmiidctlRxDlyMask = 0x000f
	rmiidctlDelayMask = rmiidctlTxDlyMask | rmiidctlRxDlyMask

	MaxDelayPs  = 4000
	DelayStepPs = 250
)

// LOOPCR is dedicated to loopback configuration and is always written whole.
const (
	loopcrLoopback = 0xe720
	loopcrNormal   = 0xe721
)

// IOMUXCFG output impedance field. The raw code is inversely proportional to impedance.
const (
	iomuxcfgImpedanceMask = 0x001f

	MinImpedanceMilliOhm   = 35000
	MaxImpedanceMilliOhm   = 70000
	impedanceRangeMilliOhm = MaxImpedanceMilliOhm - MinImpedanceMilliOhm
)

// GPIOMUXCTRL fields.
const (
	gpiomuxGPIO0Pos  = 0
	gpiomuxGPIO0Mask = 0x000f
	gpiomuxGPIO1Pos  = 4
	gpiomuxGPIO1Mask = 0x00f0
)
