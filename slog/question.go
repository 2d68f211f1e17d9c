package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.QuestionService = (*LoggingQuestionService)(nil)

// LoggingQuestionService wraps a QuestionService with call logging.
type LoggingQuestionService struct {
	next   docsearch.QuestionService
	logger *slog.Logger
}

// NewLoggingQuestionService creates a new LoggingQuestionService.
func NewLoggingQuestionService(next docsearch.QuestionService, logger *slog.Logger) *LoggingQuestionService {
	return &LoggingQuestionService{next: next, logger: logger}
}

// SearchQuestions delegates to the wrapped service and logs the number of
// questions found.
func (s *LoggingQuestionService) SearchQuestions(ctx context.Context, site docsearch.Site, intitle string, limit int) (questions []*docsearch.Question, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "question search",
			"site", site.APIParameter,
			"intitle", intitle,
			"limit", limit,
			"count", len(questions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchQuestions(ctx, site, intitle, limit)
}

// FindQuestionByID delegates to the wrapped service and logs the lookup.
func (s *LoggingQuestionService) FindQuestionByID(ctx context.Context, site docsearch.Site, id int) (q *docsearch.Question, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "question details",
			"site", site.APIParameter,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindQuestionByID(ctx, site, id)
}
