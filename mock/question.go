package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.QuestionService = (*QuestionService)(nil)

// QuestionService is a mock implementation of docsearch.QuestionService.
type QuestionService struct {
	SearchQuestionsFn  func(ctx context.Context, site docsearch.Site, intitle string, limit int) ([]*docsearch.Question, error)
	FindQuestionByIDFn func(ctx context.Context, site docsearch.Site, id int) (*docsearch.Question, error)
}

func (s *QuestionService) SearchQuestions(ctx context.Context, site docsearch.Site, intitle string, limit int) ([]*docsearch.Question, error) {
	return s.SearchQuestionsFn(ctx, site, intitle, limit)
}

func (s *QuestionService) FindQuestionByID(ctx context.Context, site docsearch.Site, id int) (*docsearch.Question, error) {
	return s.FindQuestionByIDFn(ctx, site, id)
}
