package lookup

import (
	"context"
	"fmt"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/stackexchange"
)

// QuestionLimit caps the questions shown by the Stack Exchange lookup.
const QuestionLimit = 3

// FaviconURL serves a site's favicon given its domain.
const FaviconURL = "http://s2.googleusercontent.com/s2/favicons?domain_url="

var _ docsearch.Lookup = (*StackExchange)(nil)

// StackExchange searches question titles on one site of the network.
type StackExchange struct {
	questions docsearch.QuestionService
}

// NewStackExchange creates a new StackExchange lookup.
func NewStackExchange(questions docsearch.QuestionService) *StackExchange {
	return &StackExchange{questions: questions}
}

// Lookup reads the site identifier from the first word of the query and
// searches the remaining text in question titles. Each match is fetched
// again for its vote statistics, one request per question.
func (s *StackExchange) Lookup(ctx context.Context, query string) (*docsearch.Embed, error) {
	query, err := requireQuery(query)
	if err != nil {
		return nil, err
	}

	name, phrase := docsearch.SplitQuery(query)
	site, err := stackexchange.LookupSite(name)
	if err != nil {
		return nil, err
	}
	if phrase == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "Missing search text after %s.", name)
	}

	matches, err := s.questions.SearchQuestions(ctx, site, phrase, QuestionLimit)
	if err != nil {
		return nil, err
	}
	if len(matches) > QuestionLimit {
		matches = matches[:QuestionLimit]
	}

	e := docsearch.NewEmbed(query)
	e.Thumbnail = FaviconURL + site.Domain
	e.Footer = "Hover for vote stats"

	for _, match := range matches {
		q, err := s.questions.FindQuestionByID(ctx, site, match.ID)
		if err != nil {
			return nil, err
		}

		item := docsearch.ResultItem{
			Text:  q.Title,
			URL:   site.QuestionURL(q.ID),
			Stats: fmt.Sprintf("%d🔺|%d🔻", q.UpVotes, q.DownVotes),
		}
		if item.Validate() != nil {
			continue
		}
		e.AddField(fmt.Sprintf("`%d answers` Score : %d", q.AnswerCount, q.Score), item.Markdown(), false)
	}

	if len(e.Fields) == 0 {
		return nil, docsearch.ErrNoResults
	}
	return e, nil
}
