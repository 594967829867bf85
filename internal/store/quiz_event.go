package store

import (
	"context"
	"fmt"

	"github.com/abhisek/statlab/ent"
	"github.com/abhisek/statlab/ent/quizevent"
	entschema "github.com/abhisek/statlab/ent/schema"
)

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var answers []entschema.AnswerSummary
	for _, a := range data.Answers {
		answers = append(answers, entschema.AnswerSummary{
			QuestionID: a.QuestionID,
			Correct:    a.Correct,
			TimeMs:     a.TimeMs,
		})
	}

	builder := r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetLessonSlug(data.LessonSlug).
		SetAttemptID(data.AttemptID).
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetHeartsLeft(data.HeartsLeft).
		SetBestStreak(data.BestStreak).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetExhausted(data.Exhausted).
		SetPassed(data.Passed)

	if len(answers) > 0 {
		builder = builder.SetAnswers(answers)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AttemptCount(ctx context.Context, lessonSlug string) (int, error) {
	n, err := r.client.QuizEvent.Query().
		Where(quizevent.LessonSlug(lessonSlug)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count quiz events: %w", err)
	}
	return n, nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]QuizAttempt, error) {
	q := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	attempts := make([]QuizAttempt, 0, len(rows))
	for _, row := range rows {
		a := QuizAttempt{
			QuizEventData: QuizEventData{
				LessonSlug:     row.LessonSlug,
				AttemptID:      row.AttemptID,
				Score:          row.Score,
				TotalQuestions: row.TotalQuestions,
				CorrectAnswers: row.CorrectAnswers,
				HeartsLeft:     row.HeartsLeft,
				BestStreak:     row.BestStreak,
				TimeSpentSecs:  row.TimeSpentSecs,
				Exhausted:      row.Exhausted,
				Passed:         row.Passed,
			},
			Timestamp: row.Timestamp,
		}
		for _, ans := range row.Answers {
			a.Answers = append(a.Answers, AnswerData{
				QuestionID: ans.QuestionID,
				Correct:    ans.Correct,
				TimeMs:     ans.TimeMs,
			})
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}
