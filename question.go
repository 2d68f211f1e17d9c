package docsearch

import (
	"context"
	"strconv"
)

// Site identifies one site of the Stack Exchange network.
type Site struct {
	// Name is the identifier users type, e.g. "StackOverflow".
	Name string `json:"name"`
	// APIParameter is the value of the API's "site" parameter.
	APIParameter string `json:"apiParameter"`
	// Domain is the site's host name.
	Domain string `json:"domain"`
}

// QuestionURL returns the short link to a question on the site.
func (s Site) QuestionURL(id int) string {
	return "https://" + s.Domain + "/q/" + strconv.Itoa(id)
}

// Question is a Stack Exchange question with its vote statistics.
type Question struct {
	ID          int    `json:"questionId"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	AnswerCount int    `json:"answerCount"`
	UpVotes     int    `json:"upVotes"`
	DownVotes   int    `json:"downVotes"`
}

// QuestionService queries a Q&A network.
type QuestionService interface {
	// SearchQuestions returns up to limit questions whose title matches
	// the phrase, in the network's relevance order.
	SearchQuestions(ctx context.Context, site Site, intitle string, limit int) ([]*Question, error)

	// FindQuestionByID retrieves a question with vote and answer counts.
	// Returns ENOTFOUND if the question does not exist.
	FindQuestionByID(ctx context.Context, site Site, id int) (*Question, error)
}
