package stats

import "math"

// Classification is the coarse behavior band reported to the aggregation
// service. The band thresholds are contractual; the scalar score weighting
// behind "complex" is not.
type Classification string

const (
	ClassDiesOut   Classification = "dies-out"
	ClassExploding Classification = "exploding"
	ClassChaotic   Classification = "chaotic"
	ClassComplex   Classification = "complex"
	ClassStable    Classification = "stable-periodic"
)

// Band thresholds (contractual, see Classify).
const (
	diesOutPopulation   = 0.05
	explodingPopulation = 0.7
	chaoticEntropy      = 0.7
	chaoticActivity     = 0.5
	complexScore        = 0.6
)

// Score weighting. These are tunables satisfying the band contract, not
// reverse-engineered constants.
const (
	weightEntropy  = 0.55
	weightActivity = 0.25
	weightEntities = 0.20

	activityPivot = 0.25
	entityScale   = 16

	diesOutCap   = 0.15
	explodingCap = 0.45
)

// interestScore blends entropy, an activity balance peaking at moderate
// churn, and entity richness into [0,1]. It is monotonic in entropy; the
// dies-out and exploding population bands cap the result so degenerate runs
// never score as interesting.
func interestScore(population, activity, entropy float64, entityCount int) float64 {
	activityBalance := 1 - math.Abs(activity-activityPivot)/(1-activityPivot)
	if activityBalance < 0 {
		activityBalance = 0
	}
	entityTerm := float64(entityCount) / entityScale
	if entityTerm > 1 {
		entityTerm = 1
	}

	score := weightEntropy*entropy + weightActivity*activityBalance + weightEntities*entityTerm
	switch {
	case population < diesOutPopulation:
		score = math.Min(score, diesOutCap)
	case population > explodingPopulation:
		score = math.Min(score, explodingCap)
	}
	return math.Max(0, math.Min(1, score))
}

// Classify maps a snapshot to its behavior band.
func Classify(s StepStats) Classification {
	switch {
	case s.Population < diesOutPopulation:
		return ClassDiesOut
	case s.Population > explodingPopulation:
		return ClassExploding
	case s.Entropy4 > chaoticEntropy && s.Activity > chaoticActivity:
		return ClassChaotic
	case s.InterestScore > complexScore:
		return ClassComplex
	default:
		return ClassStable
	}
}
