package bladegen

import "math"

// Camber/thickness shape primitives.
//
// A blade cross-section is described by two normalized chordwise
// distributions: a camber envelope γ(x) displacing the mean line and a
// thickness profile τ(x) offsetting the upper/lower surfaces. Both take a
// chordwise sample x∈[0,1] and return values in [0,1].

const distEpsilon = 1e-9

// CamberEnvelope returns the basic normalized camber envelope
//
//	γ(x) = x^α (1-x)^(1-α) / (α^α (1-α)^(1-α))
//
// evaluated elementwise over x. The peak value is 1 at x=alpha and the
// envelope vanishes at x=0 and x=1. alpha is clamped to (0,1) to avoid
// zero-power singularities.
func CamberEnvelope(x []float64, alpha float64) []float64 {
	a := clamp(alpha, distEpsilon, 1-distEpsilon)
	den := math.Pow(a, a)*math.Pow(1-a, 1-a) + distEpsilon
	gamma := make([]float64, len(x))
	for i, xi := range x {
		gamma[i] = math.Pow(xi, a) * math.Pow(1-xi, 1-a) / den
	}
	return gamma
}

// CamberEnvelopeExtended returns the extended camber envelope
//
//	γ(x) = x^(κα) (1-x)^(κ(1-α)) / (α^α (1-α)^(1-α))^κ
//
// kappa > 1 sharpens the peak, kappa < 1 flattens it. kappa = 1 reduces to
// CamberEnvelope.
func CamberEnvelopeExtended(x []float64, alpha, kappa float64) []float64 {
	a := clamp(alpha, distEpsilon, 1-distEpsilon)
	den := math.Pow(math.Pow(a, a)*math.Pow(1-a, 1-a)+distEpsilon, kappa)
	gamma := make([]float64, len(x))
	for i, xi := range x {
		gamma[i] = math.Pow(xi, kappa*a) * math.Pow(1-xi, kappa*(1-a)) / den
	}
	return gamma
}

// ThicknessProfile returns the piecewise thickness distribution τ(x):
// a rising cosine ramp on [0,a] raised to beta, constant 1 on (a,b), and a
// falling cosine on [b,1] raised to beta. a is clamped to [0.1,0.3] and b to
// [0.7,0.9]; if the clamped bounds are inverted they are swapped.
func ThicknessProfile(x []float64, a, b, beta float64) []float64 {
	a = clamp(a, 0.1, 0.3)
	b = clamp(b, 0.7, 0.9)
	if a > b {
		a, b = b, a
	}
	tau := make([]float64, len(x))
	for i, xi := range x {
		switch {
		case xi <= a:
			if a > 0 {
				tau[i] = math.Pow((1-math.Cos(math.Pi*xi/a))/2, beta)
			}
		case xi >= b:
			if b < 1 {
				tau[i] = math.Pow((1+math.Cos(math.Pi*(xi-b)/(1-b)))/2, beta)
			}
		default:
			tau[i] = 1
		}
	}
	return tau
}

// TaperedThicknessProfile is ThicknessProfile attenuated linearly toward the
// trailing edge:
//
//	τ_tap(x) = τ(x) · (1 - taper·x)
//
// taper ∈ [0,1]. Higher values thin the blade tip and prevent excessive
// curling at the trailing edge.
func TaperedThicknessProfile(x []float64, a, b, beta, taper float64) []float64 {
	tau := ThicknessProfile(x, a, b, beta)
	for i, xi := range x {
		tau[i] *= 1 - taper*xi
	}
	return tau
}

// clamp x between lo and hi, assume lo <= hi.
func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(x, lo))
}
