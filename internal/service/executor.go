package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/siteforge/siteforge/internal/database/repository"
	"github.com/siteforge/siteforge/internal/intent"
)

// SubmissionExecutor is the pipeline's Execution collaborator: it
// records each executed intent in the submission log. Storage problems
// are ordinary failures reported through Result.Err, never Go errors;
// the error return is reserved for unexpected conditions.
type SubmissionExecutor struct {
	Submissions *repository.SubmissionRepo
	Log         *zap.Logger
}

func (s *SubmissionExecutor) Execute(ctx context.Context, in intent.Intent, p intent.Payload, o intent.Options) (intent.Result, error) {
	sub := repository.Submission{
		ID:      uuid.NewString(),
		Intent:  string(in),
		Payload: p,
	}
	if o.PageCategory != "" {
		cat := o.PageCategory
		sub.PageCategory = &cat
	}
	if err := s.Submissions.Insert(ctx, sub); err != nil {
		if s.Log != nil {
			s.Log.Warn("submission insert failed", zap.String("intent", string(in)), zap.Error(err))
		}
		return intent.Result{Success: false, Status: intent.StatusExecuted, Err: "could not save your request, please try again"}, nil
	}
	if s.Log != nil {
		s.Log.Info("submission recorded", zap.String("intent", string(in)), zap.String("id", sub.ID))
	}
	return intent.Result{Success: true, Status: intent.StatusExecuted}, nil
}
