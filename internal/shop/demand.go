package shop

import "time"

// hourDemandMultipliers is a sparse stepwise table, not a smooth curve: the
// listed hours carry explicit weights, every other hour falls back to 0.5.
var hourDemandMultipliers = map[int]float64{
	8:  0.3,
	12: 0.8,
	18: 1.0,
	20: 0.5,
}

const (
	defaultHourMultiplier   = 0.5
	weekendDemandMultiplier = 1.3
)

// hourlyDemand derives this hour's customer count from the configured daily
// volume, the time-of-day table, the weekday factor and a ±10% jitter.
func (s *Shop) hourlyDemand() int {
	hourMult, ok := hourDemandMultipliers[s.currentTime.Hour()]
	if !ok {
		hourMult = defaultHourMultiplier
	}

	weekdayMult := 1.0
	weekday := s.currentTime.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		weekdayMult = weekendDemandMultiplier
	}

	jitter := 0.9 + s.rng.Float64()*0.2
	return int(float64(s.config.DailyCustomers) * hourMult * weekdayMult * jitter)
}
