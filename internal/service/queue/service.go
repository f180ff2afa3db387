package queue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xsalon/scheduling-service/internal/domain"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	"github.com/xsalon/scheduling-service/internal/service/queue/models"
)

// Service manages the day queue: position assignment, recalculation,
// manual reordering and wait estimates.
type Service struct {
	appointments AppointmentRepository
	txManager    TransactionManager
	policy       domain.SchedulingPolicy
	logger       Logger
}

func NewService(
	appointments AppointmentRepository,
	txManager TransactionManager,
	policy domain.SchedulingPolicy,
	logger Logger,
) *Service {
	return &Service{
		appointments: appointments,
		txManager:    txManager,
		policy:       policy,
		logger:       logger,
	}
}

// AssignPosition appends the appointment to the back of its day queue and
// returns the assigned position. The caller must already hold a serializable
// transaction covering the day.
func (s *Service) AssignPosition(ctx context.Context, apt *domain.Appointment) (int, error) {
	entries, err := s.appointments.GetQueueForDate(ctx, apt.ScheduledDate)
	if err != nil {
		return 0, fmt.Errorf("%w: AssignPosition - load queue: %v", ErrInternal, err)
	}

	position := 0
	for _, entry := range entries {
		if entry.ID == apt.ID && entry.QueuePosition != nil {
			// Already queued, keep the existing position.
			return *entry.QueuePosition, nil
		}
		if entry.QueuePosition != nil && *entry.QueuePosition > position {
			position = *entry.QueuePosition
		}
	}
	position++

	if err := s.appointments.UpdateQueuePosition(ctx, apt.ID, &position); err != nil {
		return 0, fmt.Errorf("%w: AssignPosition - persist position: %v", ErrInternal, err)
	}

	apt.QueuePosition = &position
	s.logger.Info("AssignPosition: appointment id=%d queued at position=%d date=%s",
		apt.ID, position, apt.ScheduledDate.Format(domain.DateFormat))

	return position, nil
}

// RecalculateDay rebuilds contiguous positions for one day after a departure
// or status change. Checked-in customers are ordered by check-in time, the
// rest by scheduled time.
func (s *Service) RecalculateDay(ctx context.Context, date time.Time) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entries, err := s.appointments.GetQueueForDate(txCtx, date)
		if err != nil {
			return fmt.Errorf("load queue: %w", err)
		}

		sortQueue(entries)

		for i, entry := range entries {
			position := i + 1
			if entry.QueuePosition != nil && *entry.QueuePosition == position {
				continue
			}
			if err := s.appointments.UpdateQueuePosition(txCtx, entry.ID, &position); err != nil {
				return fmt.Errorf("persist position for id=%d: %w", entry.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("RecalculateDay: date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: RecalculateDay: %v", ErrInternal, err)
	}

	s.logger.Info("RecalculateDay: queue rebuilt for date=%s", date.Format(domain.DateFormat))
	return nil
}

// Reorder applies staff position overrides to the day queue. Overridden
// entries are pulled out of the current order and re-inserted at their
// requested positions, then the whole queue is renumbered 1..N. The override
// holds until the next natural recalculation.
func (s *Service) Reorder(ctx context.Context, date time.Time, overrides []models.PositionOverride) error {
	if len(overrides) == 0 {
		return fmt.Errorf("%w: no overrides given", ErrInvalidReorder)
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entries, err := s.appointments.GetQueueForDate(txCtx, date)
		if err != nil {
			return fmt.Errorf("load queue: %w", err)
		}

		byID := make(map[int64]*domain.Appointment, len(entries))
		for _, entry := range entries {
			byID[entry.ID] = entry
		}

		seen := make(map[int64]bool, len(overrides))
		for _, o := range overrides {
			if o.Position < 1 || seen[o.AppointmentID] || byID[o.AppointmentID] == nil {
				return ErrInvalidReorder
			}
			seen[o.AppointmentID] = true
		}

		// Current order without the overridden entries.
		sortQueue(entries)
		remaining := make([]*domain.Appointment, 0, len(entries))
		for _, entry := range entries {
			if !seen[entry.ID] {
				remaining = append(remaining, entry)
			}
		}

		// Insert overrides lowest target position first so later inserts do
		// not shift earlier ones.
		ordered := make([]models.PositionOverride, len(overrides))
		copy(ordered, overrides)
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

		final := remaining
		for _, o := range ordered {
			idx := o.Position - 1
			if idx > len(final) {
				idx = len(final)
			}
			final = append(final[:idx], append([]*domain.Appointment{byID[o.AppointmentID]}, final[idx:]...)...)
		}

		for i, entry := range final {
			position := i + 1
			if entry.QueuePosition != nil && *entry.QueuePosition == position {
				continue
			}
			if err := s.appointments.UpdateQueuePosition(txCtx, entry.ID, &position); err != nil {
				return fmt.Errorf("persist position for id=%d: %w", entry.ID, err)
			}
		}

		return nil
	})
	if errors.Is(err, ErrInvalidReorder) {
		s.logger.Warn("Reorder: rejected overrides for date=%s", date.Format(domain.DateFormat))
		return ErrInvalidReorder
	}
	if err != nil {
		s.logger.Error("Reorder: date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Reorder: %v", ErrInternal, err)
	}

	s.logger.Info("Reorder: staff applied %d overrides for date=%s", len(overrides), date.Format(domain.DateFormat))
	return nil
}

// QueueForDay returns the queue in served order with per-entry wait
// estimates and summary stats. Persisted positions drive the order, so a
// staff reorder stays visible until the next recalculation.
func (s *Service) QueueForDay(ctx context.Context, date time.Time) (*models.QueueResponse, error) {
	entries, err := s.appointments.GetQueueForDate(ctx, date)
	if err != nil {
		s.logger.Error("QueueForDay: date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: QueueForDay - load queue: %v", ErrInternal, err)
	}

	sortByPosition(entries)

	response := &models.QueueResponse{
		Date:    date.Format(domain.DateFormat),
		Entries: make([]models.QueueEntry, 0, len(entries)),
	}

	totalWait := 0
	waitAhead := 0
	for _, apt := range entries {
		entry := models.FromDomainEntry(apt)
		if apt.Status != domain.StatusInProgress {
			entry.EstimatedWaitMinutes = waitAhead
		}
		response.Entries = append(response.Entries, entry)

		totalWait += entry.EstimatedWaitMinutes
		waitAhead += s.durationOf(apt)

		switch apt.Status {
		case domain.StatusConfirmed:
			response.Stats.Waiting++
		case domain.StatusCheckedIn:
			response.Stats.CheckedIn++
		case domain.StatusInProgress:
			response.Stats.InProgress++
		}
	}

	response.Stats.Total = len(entries)
	if len(entries) > 0 {
		response.Stats.AverageWaitMinutes = totalWait / len(entries)
	}

	return response, nil
}

// PositionFor reports one appointment's place in its day queue. Customers
// may only look up their own appointments, staff may look up any.
func (s *Service) PositionFor(ctx context.Context, appointmentID, requesterID int64, isStaff bool) (*models.PositionResponse, error) {
	apt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: PositionFor - load appointment: %v", ErrInternal, err)
	}

	if !isStaff && apt.CustomerID != requesterID {
		return nil, ErrAccessDenied
	}

	if !apt.InQueueSet() || apt.QueuePosition == nil {
		return nil, ErrNotInQueue
	}

	entries, err := s.appointments.GetQueueForDate(ctx, apt.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("%w: PositionFor - load queue: %v", ErrInternal, err)
	}

	sortByPosition(entries)

	waitAhead := 0
	peopleAhead := 0
	for _, entry := range entries {
		if entry.ID == apt.ID {
			break
		}
		peopleAhead++
		waitAhead += s.durationOf(entry)
	}
	if apt.Status == domain.StatusInProgress {
		waitAhead = 0
	}

	return &models.PositionResponse{
		AppointmentID:        apt.ID,
		Position:             *apt.QueuePosition,
		PeopleAhead:          peopleAhead,
		EstimatedWaitMinutes: waitAhead,
		Status:               string(apt.Status),
	}, nil
}

// durationOf is an entry's contribution to the wait of everyone behind it.
// Entries that have not checked in yet use the fixed fallback since their
// arrival is uncertain.
func (s *Service) durationOf(apt *domain.Appointment) int {
	if apt.CheckedInAt != nil && apt.EstimatedDurationMinutes > 0 {
		return apt.EstimatedDurationMinutes
	}
	return s.policy.DefaultWaitEstimateMinutes
}

// sortByPosition orders entries by their persisted position with
// unpositioned entries last, falling back to the natural order among
// themselves. Read paths use this so manual overrides survive until the
// next recalculation rewrites the positions.
func sortByPosition(entries []*domain.Appointment) {
	sortQueue(entries)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if (a.QueuePosition != nil) != (b.QueuePosition != nil) {
			return a.QueuePosition != nil
		}
		if a.QueuePosition != nil {
			return *a.QueuePosition < *b.QueuePosition
		}
		return false
	})
}

// sortQueue orders entries the way customers are served: checked-in entries
// first by check-in time, then everyone else by scheduled time, id as the
// final tie-break.
func sortQueue(entries []*domain.Appointment) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if (a.CheckedInAt != nil) != (b.CheckedInAt != nil) {
			return a.CheckedInAt != nil
		}
		if a.CheckedInAt != nil && !a.CheckedInAt.Equal(*b.CheckedInAt) {
			return a.CheckedInAt.Before(*b.CheckedInAt)
		}
		if a.ScheduledTime != b.ScheduledTime {
			return a.ScheduledTime.IsBefore(b.ScheduledTime)
		}
		return a.ID < b.ID
	})
}
