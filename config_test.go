package softfloat

import "testing"

func TestConfigureChangesDefaults(t *testing.T) {
	orig := GetConfig()
	defer Configure(orig)

	cfg := DefaultConfig()
	cfg.DefaultRoundingMode = RoundTowardZero
	Configure(cfg)

	status := NewStatus()
	if status.RoundingMode != RoundTowardZero {
		t.Errorf("NewStatus() after Configure(RoundTowardZero) has RoundingMode %v", status.RoundingMode)
	}
}

func TestConfigureDisablesFastPath(t *testing.T) {
	orig := GetConfig()
	defer Configure(orig)

	cfg := DefaultConfig()
	cfg.EnableHostFastPath = false
	Configure(cfg)

	status := NewStatus()
	status.ExceptionFlags |= FlagInexact
	if fastPathGuard(status) {
		t.Errorf("fastPathGuard returned true with EnableHostFastPath = false")
	}
}

func TestRunSelfTest(t *testing.T) {
	orig := GetConfig()
	defer Configure(orig)

	if err := RunSelfTest(); err != nil {
		t.Errorf("RunSelfTest() = %v, want nil", err)
	}
}
