package events

// ParamBands suggests override parameter ranges for a manual 1-5 severity
// score. Advisory output for config authors; never applied automatically.
type ParamBands struct {
	FactorLow  float64
	FactorHigh float64
	ForceLow   float64
	ForceHigh  float64
	Desc       string
}

// ScoreToParams maps a severity score to suggested factor and force-ratio
// ranges.
func ScoreToParams(score float64) ParamBands {
	switch {
	case score >= 4.5:
		return ParamBands{1.5, 2.0, 0.2, 0.3, "extreme"}
	case score >= 3.5:
		return ParamBands{1.2, 1.5, 0.1, 0.2, "strong"}
	case score >= 2.5:
		return ParamBands{1.1, 1.2, 0.05, 0.1, "moderate"}
	default:
		return ParamBands{1.0, 1.05, 0.0, 0.05, "weak"}
	}
}
