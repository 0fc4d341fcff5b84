package softfloat

// compareParts implements spec §4.11's ordering predicate. quiet selects
// between the signaling (any NaN raises Invalid) and quiet (only an
// sNaN raises Invalid) compare entry points.
func compareParts(a, b floatParts, quiet bool, status *Status) Relation {
	if a.class.isNaN() || b.class.isNaN() {
		if !quiet || a.class == classSNaN || b.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return RelUnordered
	}

	if a.class == classZero && b.class == classZero {
		return RelEqual
	}

	if a.sign != b.sign {
		if a.sign {
			return RelLess
		}
		return RelGreater
	}

	mag := compareMagnitude(a, b)
	if mag == 0 {
		return RelEqual
	}
	lt := mag < 0
	if a.sign {
		lt = !lt
	}
	if lt {
		return RelLess
	}
	return RelGreater
}

// minMaxParts implements the minNum/maxNum/minNumMag/maxNumMag family
// (spec §4.11): wantMax selects min vs max, byMag selects magnitude
// ordering over signed ordering, and propagateNaN selects the plain
// min/max variant (any NaN operand poisons the result) over the *Num
// variant (a NaN operand is ignored if the other is not a NaN).
func minMaxParts(a, b floatParts, wantMax, byMag, propagateNaN bool, status *Status) floatParts {
	aNaN, bNaN := a.class.isNaN(), b.class.isNaN()
	if aNaN || bNaN {
		if a.class == classSNaN || b.class == classSNaN {
			status.raise(FlagInvalid)
		}
		if propagateNaN {
			return pickNaN(nil, "minmax", a, b, status)
		}
		if aNaN && bNaN {
			return pickNaN(nil, "minmax", a, b, status)
		}
		if aNaN {
			return b
		}
		return a
	}

	var aLess bool
	if byMag {
		mag := compareMagnitude(a, b)
		aLess = mag < 0 || (mag == 0 && a.sign && !b.sign)
	} else {
		rel := compareParts(a, b, true, status)
		aLess = rel == RelLess || (rel == RelEqual && a.sign && !b.sign)
	}

	if wantMax {
		if aLess {
			return b
		}
		return a
	}
	if aLess {
		return a
	}
	return b
}
