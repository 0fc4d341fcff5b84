package softfloat

import (
	"fmt"
	"math"
)

// RunSelfTest exercises the host-FPU fast path against the full soft
// path across a small fixed sample, for cmd/softfloat-selftest (spec
// §4.13's "self-test at library startup"). selftestForceSoftFMA already
// guards the one case known to break on hosts with non-IEEE FMA; this
// adds a differential check of Add32 and Add64 (fast path vs soft path)
// over every pair of sample values. Other operations are not compared.
func RunSelfTest() error {
	orig := GetConfig()
	defer Configure(orig)

	selftestForceSoftFMA()
	if forceSoftFMA {
		return fmt.Errorf("softfloat: host FMA failed self-test, fast-path fma disabled")
	}

	samples32 := []float32{1, -1, 0.5, 3.25, 1e30, 1e-30, 123456.75}
	for _, x := range samples32 {
		for _, y := range samples32 {
			if err := check32(x, y); err != nil {
				return err
			}
		}
	}

	samples64 := []float64{1, -1, 0.5, 3.25, 1e300, 1e-300, 123456.75}
	for _, x := range samples64 {
		for _, y := range samples64 {
			if err := check64(x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

func check32(x, y float32) error {
	a, b := F32(math.Float32bits(x)), F32(math.Float32bits(y))

	fastStatus := NewStatus()
	fastStatus.ExceptionFlags |= FlagInexact // tolerate spurious inexact, enables the fast path
	soft := *fastStatus

	cfgFast := *GetConfig()
	cfgFast.EnableHostFastPath = true
	cfgSoft := cfgFast
	cfgSoft.EnableHostFastPath = false

	Configure(&cfgFast)
	fastRes := Add32(a, b, fastStatus)
	Configure(&cfgSoft)
	softRes := Add32(a, b, &soft)
	Configure(&cfgFast)

	if fastRes != softRes {
		return fmt.Errorf("softfloat: fast/soft path disagree on Add32(%v, %v): %#x vs %#x", x, y, uint32(fastRes), uint32(softRes))
	}
	return nil
}

func check64(x, y float64) error {
	a, b := F64(math.Float64bits(x)), F64(math.Float64bits(y))

	fastStatus := NewStatus()
	fastStatus.ExceptionFlags |= FlagInexact
	soft := *fastStatus

	cfgFast := *GetConfig()
	cfgFast.EnableHostFastPath = true
	cfgSoft := cfgFast
	cfgSoft.EnableHostFastPath = false

	Configure(&cfgFast)
	fastRes := Add64(a, b, fastStatus)
	Configure(&cfgSoft)
	softRes := Add64(a, b, &soft)
	Configure(&cfgFast)

	if fastRes != softRes {
		return fmt.Errorf("softfloat: fast/soft path disagree on Add64(%v, %v): %#x vs %#x", x, y, uint64(fastRes), uint64(softRes))
	}
	return nil
}
