package tracker

import (
	"context"
	"math"
	"time"

	"tableflip.dev/rauchfrei/pkg/entry"
)

const (
	// hoursLostPerCigarette is the commonly cited life-expectancy cost of a
	// single cigarette.
	hoursLostPerCigarette = 0.18

	// fallbackCigarettesPerDay stands in until enough smoking days exist to
	// compute a real average.
	fallbackCigarettesPerDay = 10

	// averageWindowDays is the trailing window for the per-day average.
	averageWindowDays = 30

	// defaultProjectionYears is how far the keep-smoking projection looks
	// ahead when the caller does not say.
	defaultProjectionYears = 10
)

// DailyAverage computes the average cigarettes per smoking day across the
// given history. Only days with a positive count participate; with no such
// days the fallback applies.
func DailyAverage(history []*entry.DailyEntry) int {
	days, total := 0, 0
	for _, e := range history {
		if e.Cigarettes > 0 {
			days++
			total += e.Cigarettes
		}
	}
	if days == 0 {
		return fallbackCigarettesPerDay
	}
	return int(math.Round(float64(total) / float64(days)))
}

// LifeLostDays projects the life expectancy cost, in days, of smoking perDay
// cigarettes for the given number of years.
func LifeLostDays(perDay, years int) int {
	lostHours := float64(perDay) * hoursLostPerCigarette * float64(years) * 365
	return int(math.Round(lostHours / 24))
}

// LifeRegainedPerDay is the life expectancy won back by one clean day at the
// given consumption rate.
func LifeRegainedPerDay(perDay int) time.Duration {
	return time.Duration(float64(perDay) * hoursLostPerCigarette * float64(time.Hour))
}

// Savings summarizes what the current streak has avoided, and what staying a
// smoker would keep costing.
type Savings struct {
	StreakDays        int
	CigarettesPerDay  int
	CigarettesAvoided int
	MoneySaved        float64
	LifeRegained      time.Duration

	// LifeLostDays projects the life expectancy cost of smoking on at the
	// current rate for ProjectionYears more years.
	ProjectionYears int
	LifeLostDays    int
}

// Savings derives the streak payoff from the 30-day consumption average and
// the user's pack settings. projectionYears sizes the keep-smoking
// projection; zero or negative falls back to ten years.
func (s *Service) Savings(ctx context.Context, projectionYears int) Savings {
	if projectionYears <= 0 {
		projectionYears = defaultProjectionYears
	}

	streak := s.Streak(ctx)
	perDay := DailyAverage(s.History(ctx, averageWindowDays, OrderDesc))
	settings := s.Settings(ctx)

	avoided := perDay * streak
	return Savings{
		StreakDays:        streak,
		CigarettesPerDay:  perDay,
		CigarettesAvoided: avoided,
		MoneySaved:        float64(avoided) * settings.PricePerCigarette(),
		LifeRegained:      time.Duration(streak) * LifeRegainedPerDay(perDay),
		ProjectionYears:   projectionYears,
		LifeLostDays:      LifeLostDays(perDay, projectionYears),
	}
}
