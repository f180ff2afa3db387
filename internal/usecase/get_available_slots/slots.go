package get_available_slots

import (
	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/pkg/types"
)

// generateCandidates produces every start time from opening onward at the
// configured granularity. Generation stops at the last start whose full
// duration still fits before closing, so no slot ever overruns close.
func generateCandidates(rule *domain.CalendarRule, durationMinutes, granularityMinutes int) ([]types.TimeString, error) {
	if rule.IsClosed {
		return []types.TimeString{}, nil
	}

	closeMin, err := rule.ClosingTime.Minutes()
	if err != nil {
		return nil, err
	}

	candidates := make([]types.TimeString, 0)
	current := rule.OpeningTime

	for current.IsBefore(rule.ClosingTime) {
		// Compared in minutes so an end past midnight still counts
		// as overrunning close.
		startMin, err := current.Minutes()
		if err != nil {
			return nil, err
		}
		if startMin+durationMinutes > closeMin {
			break
		}

		candidates = append(candidates, current)

		current, err = current.AddMinutes(granularityMinutes)
		if err != nil {
			return nil, err
		}
	}

	return candidates, nil
}

// flagAvailability marks each candidate against the day's blocking
// appointments. A candidate is unavailable when its interval overlaps any
// blocking appointment, or when the clock hour of its start has already
// reached the hourly cap.
func flagAvailability(
	candidates []types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
	hourlyCapacity int,
) ([]Slot, error) {
	startsPerHour := make(map[int]int)
	for _, apt := range appointments {
		hour, err := apt.ScheduledTime.Hour()
		if err != nil {
			continue
		}
		startsPerHour[hour]++
	}

	slots := make([]Slot, 0, len(candidates))
	for _, start := range candidates {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		available := true

		hour, err := start.Hour()
		if err != nil {
			return nil, err
		}
		if startsPerHour[hour] >= hourlyCapacity {
			available = false
		}

		if available {
			overlaps, err := overlapsAny(start, durationMinutes, appointments)
			if err != nil {
				return nil, err
			}
			available = !overlaps
		}

		slots = append(slots, Slot{
			StartTime: start,
			EndTime:   end,
			Available: available,
		})
	}

	return slots, nil
}

// overlapsAny reports whether [start, start+duration) intersects any of the
// appointments. Half-open intervals: back-to-back slots do not overlap.
func overlapsAny(start types.TimeString, durationMinutes int, appointments []*domain.Appointment) (bool, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return false, err
	}
	endMin := startMin + durationMinutes

	for _, apt := range appointments {
		aptStart, aptEnd, err := apt.Interval()
		if err != nil {
			return false, err
		}
		if startMin < aptEnd && aptStart < endMin {
			return true, nil
		}
	}

	return false, nil
}
