package store

import (
	"context"
	"fmt"

	"github.com/abhisek/statlab/ent"
	"github.com/abhisek/statlab/ent/xpevent"
)

func (r *eventRepo) AppendXP(ctx context.Context, data XPEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetLessonSlug(data.LessonSlug).
		SetAttemptID(data.AttemptID).
		SetTier(data.Tier).
		SetAmount(data.Amount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalXP(ctx context.Context) (int, error) {
	// SUM over an empty table scans as NULL, so guard with a count.
	n, err := r.client.XPEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count xp events: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	total, err := r.client.XPEvent.Query().
		Aggregate(ent.Sum(xpevent.FieldAmount)).
		Int(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum xp: %w", err)
	}
	return total, nil
}
