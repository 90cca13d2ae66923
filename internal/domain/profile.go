package domain

// ComfortLevel describes how comfortable a donor is with regular giving.
type ComfortLevel string

const (
	ComfortLow    ComfortLevel = "low"
	ComfortMedium ComfortLevel = "medium"
	ComfortHigh   ComfortLevel = "high"
)

// ParseComfortLevel validates a raw comfort level value.
func ParseComfortLevel(raw string) (ComfortLevel, error) {
	switch ComfortLevel(raw) {
	case ComfortLow, ComfortMedium, ComfortHigh:
		return ComfortLevel(raw), nil
	}
	return "", &ValidationError{Field: "comfort_level", Reason: "unknown value " + raw}
}

// Frequency is the donor's preferred donation cadence.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

// ParseFrequency validates a raw frequency value.
func ParseFrequency(raw string) (Frequency, error) {
	switch Frequency(raw) {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly:
		return Frequency(raw), nil
	}
	return "", &ValidationError{Field: "frequency", Reason: "unknown value " + raw}
}

// PeriodsPerYear returns the number of donation periods in a year.
func (f Frequency) PeriodsPerYear() float64 {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyQuarterly:
		return 4
	default:
		return 12
	}
}

// Divisor converts a monthly base amount into a per-period amount.
func (f Frequency) Divisor() float64 {
	switch f {
	case FrequencyWeekly:
		return 4
	case FrequencyQuarterly:
		return 0.33
	default:
		return 1
	}
}

// PeriodsPerMonth is the average number of donation periods per month.
func (f Frequency) PeriodsPerMonth() float64 {
	switch f {
	case FrequencyWeekly:
		return 4.33
	case FrequencyQuarterly:
		return 0.33
	default:
		return 1
	}
}

// PeriodDays is the nominal number of days between donations.
func (f Frequency) PeriodDays() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyQuarterly:
		return 90
	default:
		return 30
	}
}

// Adverb returns the cadence phrase used in impact descriptions.
func (f Frequency) Adverb() string {
	switch f {
	case FrequencyWeekly:
		return "Every week"
	case FrequencyQuarterly:
		return "Every quarter"
	default:
		return "Every month"
	}
}

// GeoScope is a geographic reach, shared by donor preference and charity scope.
type GeoScope string

const (
	GeoLocal    GeoScope = "local"
	GeoNational GeoScope = "national"
	GeoGlobal   GeoScope = "global"
)

// ParseGeoScope validates a raw geographic scope value.
func ParseGeoScope(raw string) (GeoScope, error) {
	switch GeoScope(raw) {
	case GeoLocal, GeoNational, GeoGlobal:
		return GeoScope(raw), nil
	}
	return "", &ValidationError{Field: "geography", Reason: "unknown value " + raw}
}

// SignalBundle carries features extracted from a donor's free text by an
// external provider. A nil bundle means no text was supplied.
type SignalBundle struct {
	Keywords          []string
	Sentiment         float64
	PersonalityTraits map[string]float64
	EmotionalDrivers  []string
}

// Profile is a donor's stated and inferred preferences. Immutable after
// construction except for the engagement score, which is set exactly once.
type Profile struct {
	Name          string
	Interests     []string
	Causes        []string
	MonthlyIncome float64
	ComfortLevel  ComfortLevel
	Frequency     Frequency
	Geography     GeoScope

	Keywords          []string
	Sentiment         float64
	PersonalityTraits map[string]float64
	EmotionalDrivers  []string

	engagement    float64
	engagementSet bool
}

// SetEngagement records the externally predicted engagement score. Later
// calls are ignored so the score stays stable for the whole pipeline run.
func (p *Profile) SetEngagement(score float64) {
	if p.engagementSet {
		return
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	p.engagement = score
	p.engagementSet = true
}

// Engagement returns the predicted engagement score, zero until predicted.
func (p *Profile) Engagement() float64 {
	return p.engagement
}

// DominantTrait returns the highest-weighted personality trait and its
// weight. Equal weights resolve alphabetically so the result is stable.
func (p *Profile) DominantTrait() (string, float64) {
	name, weight := "", 0.0
	for trait, w := range p.PersonalityTraits {
		if w > weight || (w == weight && name != "" && trait < name) {
			name, weight = trait, w
		}
	}
	return name, weight
}
