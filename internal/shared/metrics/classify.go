// Package metrics derives display-ready values from raw quote and indicator fields:
// percentage changes, 52-week range positions, bullish/bearish classifications and
// human-readable number strings.
//
// Every function is pure. Nothing here returns an error; numeric edge cases such as
// NaN inputs fall through to the neutral branch, and divisions that can blow up
// (RangePosition, PercentChange) are documented so callers can guard them.
package metrics

// Signal is the outcome of classifying a metric.
type Signal string

const (
	Bullish Signal = "bullish"
	Bearish Signal = "bearish"
	Neutral Signal = "neutral"
)

// Kind selects the threshold policy used by ClassifyByThreshold.
type Kind string

const (
	KindPE    Kind = "pe"
	KindBeta  Kind = "beta"
	KindYield Kind = "yield"
	KindRSI   Kind = "rsi"
	// KindMACD classifies the MACD histogram value (macd - signal).
	KindMACD Kind = "macd"
)

// RSI reading labels.
const (
	LabelOverbought = "Overbought"
	LabelOversold   = "Oversold"
	LabelNeutral    = "Neutral"
)

// RSIReading is the label shown next to an RSI value together with its leaning.
type RSIReading struct {
	Label  string `json:"label"`
	Signal Signal `json:"signal"`
}

// ClassifyByThreshold classifies value with the default thresholds.
func ClassifyByThreshold(value float64, kind Kind) Signal {
	return defaultThresholds.Classify(value, kind)
}

// ClassifyMACD compares a MACD line against its signal line.
func ClassifyMACD(macd, signal float64) Signal {
	return defaultThresholds.Classify(macd-signal, KindMACD)
}

// RSISignal labels an RSI value with the default thresholds.
func RSISignal(rsi float64) RSIReading {
	return defaultThresholds.RSISignal(rsi)
}

// Classify applies the policy for kind. Comparisons are strict, so a value sitting
// exactly on a threshold is neutral. Unknown kinds are neutral.
func (t Thresholds) Classify(value float64, kind Kind) Signal {
	switch kind {
	case KindPE:
		return t.PE.lowIsBullish(value)
	case KindBeta:
		return t.Beta.lowIsBullish(value)
	case KindYield:
		return t.Yield.highIsBullish(value)
	case KindRSI:
		// overbought leans bearish, oversold leans bullish
		return t.RSI.lowIsBullish(value)
	case KindMACD:
		switch {
		case value > 0:
			return Bullish
		case value < 0:
			return Bearish
		}
	}
	return Neutral
}

// RSISignal labels rsi as overbought, oversold or neutral.
func (t Thresholds) RSISignal(rsi float64) RSIReading {
	switch {
	case rsi > t.RSI.High:
		return RSIReading{Label: LabelOverbought, Signal: Bearish}
	case rsi < t.RSI.Low:
		return RSIReading{Label: LabelOversold, Signal: Bullish}
	default:
		return RSIReading{Label: LabelNeutral, Signal: Neutral}
	}
}

func (b Band) lowIsBullish(v float64) Signal {
	switch {
	case v < b.Low:
		return Bullish
	case v > b.High:
		return Bearish
	default:
		return Neutral
	}
}

func (b Band) highIsBullish(v float64) Signal {
	switch {
	case v > b.High:
		return Bullish
	case v < b.Low:
		return Bearish
	default:
		return Neutral
	}
}
