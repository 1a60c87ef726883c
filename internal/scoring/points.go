package scoring

import "github.com/alexanderramin/streakmind/internal/domain"

// Definitions looks up activity definitions by name.
type Definitions interface {
	Activity(name string) (*domain.Activity, bool)
}

// Points computes the integer points for a logged amount. A custom per-unit
// rate on the definition overrides the builtin table. Fractional results are
// truncated toward zero.
func Points(activity string, amount float64, unit domain.Unit, defs Definitions) int {
	if defs != nil {
		if a, ok := defs.Activity(activity); ok && a.HasCustomPoints() {
			return int(*a.CustomPointsPerUnit * amount)
		}
	}
	return BuiltinPoints(activity, amount, unit)
}

// BuiltinPoints applies the default scoring table.
func BuiltinPoints(activity string, amount float64, unit domain.Unit) int {
	switch activity {
	case domain.ActivityCoding:
		switch unit {
		case domain.UnitQuestions:
			return int(amount * 5)
		case domain.UnitMinutes:
			return int(amount / 5)
		}
		return 10
	case domain.ActivityGym:
		return 10
	case domain.ActivitySleep:
		return int(amount)
	case domain.ActivityReading:
		switch unit {
		case domain.UnitPages:
			return int(amount * 2)
		case domain.UnitMinutes:
			return int(amount / 10)
		}
		return 8
	case domain.ActivityMeditation:
		if unit == domain.UnitMinutes {
			return int(amount)
		}
		return 10
	}

	switch unit {
	case domain.UnitMinutes:
		return int(amount / 10)
	case domain.UnitHours:
		return int(amount * 10)
	case domain.UnitPages:
		return int(amount * 2)
	}
	return 5
}
