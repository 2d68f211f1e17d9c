// Package stackexchange implements docsearch.QuestionService on top of the
// Stack Exchange API v2.3.
package stackexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/docsearch"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Stack Exchange API root.
const DefaultBaseURL = "https://api.stackexchange.com/2.3"

// QuestionFilter is the API filter that adds answers and vote counts to
// the default question fields.
const QuestionFilter = "!b1MME4lS1P-8fK"

// Ensure Client implements docsearch.QuestionService at compile time.
var _ docsearch.QuestionService = (*Client)(nil)

// Client queries the Stack Exchange API through a docsearch.Fetcher.
type Client struct {
	fetcher docsearch.Fetcher
	baseURL string
	key     string
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithKey sets the application key sent with every request.
func WithKey(key string) Option {
	return func(c *Client) {
		c.key = key
	}
}

// WithRateLimit paces requests to at most rps per second, with no burst.
// A non-positive rps disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client.
func NewClient(fetcher docsearch.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchQuestions runs a title search on the site, newest activity first.
func (c *Client) SearchQuestions(ctx context.Context, site docsearch.Site, intitle string, limit int) ([]*docsearch.Question, error) {
	if strings.TrimSpace(intitle) == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "search phrase required")
	}

	params := url.Values{}
	params.Set("order", "desc")
	params.Set("sort", "activity")
	params.Set("intitle", intitle)
	if limit > 0 {
		params.Set("pagesize", strconv.Itoa(limit))
	}

	items, err := c.get(ctx, "/search", site, params)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", site.APIParameter, err)
	}

	questions := make([]*docsearch.Question, 0, len(items))
	for i := range items {
		questions = append(questions, items[i].toQuestion())
	}
	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

// FindQuestionByID retrieves a question with its answers and vote counts.
func (c *Client) FindQuestionByID(ctx context.Context, site docsearch.Site, id int) (*docsearch.Question, error) {
	params := url.Values{}
	params.Set("filter", QuestionFilter)

	items, err := c.get(ctx, "/questions/"+strconv.Itoa(id), site, params)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", id, err)
	}
	if len(items) == 0 {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "question %d not found on %s", id, site.Domain)
	}
	return items[0].toQuestion(), nil
}

func (c *Client) get(ctx context.Context, path string, site docsearch.Site, params url.Values) ([]question, error) {
	params.Set("site", site.APIParameter)
	if c.key != "" {
		params.Set("key", c.key)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := c.fetcher.Fetch(ctx, c.baseURL+path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var w wrapper
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if w.ErrorID != 0 {
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "stack exchange error %d (%s): %s", w.ErrorID, w.ErrorName, w.ErrorMessage)
	}
	return w.Items, nil
}

// wrapper is the common envelope of every API response.
type wrapper struct {
	Items        []question `json:"items"`
	ErrorID      int        `json:"error_id"`
	ErrorName    string     `json:"error_name"`
	ErrorMessage string     `json:"error_message"`
}

type question struct {
	QuestionID    int               `json:"question_id"`
	Title         string            `json:"title"`
	Score         int               `json:"score"`
	AnswerCount   int               `json:"answer_count"`
	UpVoteCount   int               `json:"up_vote_count"`
	DownVoteCount int               `json:"down_vote_count"`
	Answers       []json.RawMessage `json:"answers"`
}

func (q *question) toQuestion() *docsearch.Question {
	answers := q.AnswerCount
	if q.Answers != nil {
		answers = len(q.Answers)
	}
	return &docsearch.Question{
		ID:          q.QuestionID,
		Title:       html.UnescapeString(q.Title),
		Score:       q.Score,
		AnswerCount: answers,
		UpVotes:     q.UpVoteCount,
		DownVotes:   q.DownVoteCount,
	}
}
