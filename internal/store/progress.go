package store

import (
	"context"
	"fmt"

	"github.com/abhisek/statlab/ent"
	"github.com/abhisek/statlab/ent/lessonprogress"
	"github.com/abhisek/statlab/internal/progress"
)

// progressStore implements progress.Store on the ent client. One row per
// lesson slug; lessons with no row read back as the zero value.
type progressStore struct {
	client *ent.Client
}

var _ progress.Store = (*progressStore)(nil)

func (s *progressStore) Get(ctx context.Context, slug string) (progress.LessonProgress, error) {
	row, err := s.client.LessonProgress.Query().
		Where(lessonprogress.Slug(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.LessonProgress{}, nil
		}
		return progress.LessonProgress{}, fmt.Errorf("query progress %q: %w", slug, err)
	}
	return fromEnt(row), nil
}

func (s *progressStore) Set(ctx context.Context, slug string, u progress.Update) (progress.LessonProgress, error) {
	row, err := s.client.LessonProgress.Query().
		Where(lessonprogress.Slug(slug)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return progress.LessonProgress{}, fmt.Errorf("query progress %q: %w", slug, err)
	}

	if ent.IsNotFound(err) {
		merged := u.Apply(progress.LessonProgress{})
		created, err := s.client.LessonProgress.Create().
			SetSlug(slug).
			SetViewedLesson(merged.ViewedLesson).
			SetViewedSummary(merged.ViewedSummary).
			SetQuizAttempted(merged.QuizAttempted).
			SetNillableScore(merged.Score).
			SetNillablePassed(merged.Passed).
			SetLastStep(string(merged.LastStep)).
			SetNillableCompletedAt(merged.CompletedAt).
			Save(ctx)
		if err != nil {
			return progress.LessonProgress{}, fmt.Errorf("create progress %q: %w", slug, err)
		}
		return fromEnt(created), nil
	}

	upd := s.client.LessonProgress.UpdateOne(row)
	if u.ViewedLesson != nil {
		upd.SetViewedLesson(*u.ViewedLesson)
	}
	if u.ViewedSummary != nil {
		upd.SetViewedSummary(*u.ViewedSummary)
	}
	if u.QuizAttempted != nil {
		upd.SetQuizAttempted(*u.QuizAttempted)
	}
	if u.Score != nil {
		upd.SetScore(*u.Score)
	}
	if u.Passed != nil {
		upd.SetPassed(*u.Passed)
	}
	if u.LastStep != nil {
		upd.SetLastStep(string(*u.LastStep))
	}
	if u.CompletedAt != nil {
		upd.SetCompletedAt(*u.CompletedAt)
	}

	saved, err := upd.Save(ctx)
	if err != nil {
		return progress.LessonProgress{}, fmt.Errorf("update progress %q: %w", slug, err)
	}
	return fromEnt(saved), nil
}

func (s *progressStore) All(ctx context.Context) (map[string]progress.LessonProgress, error) {
	rows, err := s.client.LessonProgress.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all progress: %w", err)
	}
	out := make(map[string]progress.LessonProgress, len(rows))
	for _, row := range rows {
		out[row.Slug] = fromEnt(row)
	}
	return out, nil
}

func (s *progressStore) Reset(ctx context.Context, slug string) error {
	_, err := s.client.LessonProgress.Delete().
		Where(lessonprogress.Slug(slug)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset progress %q: %w", slug, err)
	}
	return nil
}

func (s *progressStore) ResetAll(ctx context.Context) error {
	_, err := s.client.LessonProgress.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset all progress: %w", err)
	}
	return nil
}

// fromEnt converts an ent row to the domain record. Pointer fields are
// copied so callers can't reach back into ent-owned memory.
func fromEnt(row *ent.LessonProgress) progress.LessonProgress {
	p := progress.LessonProgress{
		ViewedLesson:  row.ViewedLesson,
		ViewedSummary: row.ViewedSummary,
		QuizAttempted: row.QuizAttempted,
		LastStep:      progress.Step(row.LastStep),
	}
	if row.Score != nil {
		score := *row.Score
		p.Score = &score
	}
	if row.Passed != nil {
		passed := *row.Passed
		p.Passed = &passed
	}
	if row.CompletedAt != nil {
		at := *row.CompletedAt
		p.CompletedAt = &at
	}
	return p
}
