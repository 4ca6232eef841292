package application

import (
	"context"
	"time"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

// ResponseRepository persists quiz responses.
// ResponseRepository はアンケート結果の永続化を担うポート。
type ResponseRepository interface {
	Create(ctx context.Context, response *domain.Response) error
	CountByResultType(ctx context.Context) ([]domain.LabelCount, error)
	Recent(ctx context.Context, limit int) ([]domain.Response, error)
}

// SubmissionService handles the write use-cases.
type SubmissionService interface {
	Submit(ctx context.Context, in domain.SubmissionInput) (*domain.Response, error)
	SubmitAnswers(ctx context.Context, answers domain.Answers) (*domain.Response, error)
}

// StatsService describes read use-cases for the dashboard and admin views.
type StatsService interface {
	Stats(ctx context.Context) (domain.Stats, error)
	Recent(ctx context.Context, limit int) ([]domain.Response, error)
}

// NewSubmissionService binds a classifier to a repository.
func NewSubmissionService(classifier domain.Classifier, repo ResponseRepository) SubmissionService {
	return &submissionService{
		classifier: classifier,
		repo:       repo,
		questions:  domain.Questions,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type submissionService struct {
	classifier domain.Classifier
	repo       ResponseRepository
	questions  []domain.Question
	now        func() time.Time
}

func (s *submissionService) Submit(ctx context.Context, in domain.SubmissionInput) (*domain.Response, error) {
	result, err := s.classifier.Classify(in)
	if err != nil {
		return nil, err
	}

	response, err := domain.NewResponse(result, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, response); err != nil {
		return nil, &domain.StorageError{Op: "create response", Err: err}
	}
	return response, nil
}

func (s *submissionService) SubmitAnswers(ctx context.Context, answers domain.Answers) (*domain.Response, error) {
	in, err := domain.Score(s.questions, answers)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, in)
}

// NewStatsService creates a StatsService over repo.
func NewStatsService(repo ResponseRepository) StatsService {
	return &statsService{repo: repo}
}

type statsService struct {
	repo ResponseRepository
}

func (s *statsService) Stats(ctx context.Context) (domain.Stats, error) {
	groups, err := s.repo.CountByResultType(ctx)
	if err != nil {
		return domain.Stats{}, &domain.StorageError{Op: "count responses", Err: err}
	}
	return domain.Aggregate(groups), nil
}

func (s *statsService) Recent(ctx context.Context, limit int) ([]domain.Response, error) {
	responses, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, &domain.StorageError{Op: "list responses", Err: err}
	}
	return responses, nil
}
