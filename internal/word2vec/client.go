package word2vec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"resty.dev/v3"
)

// ErrUnreachable is returned when the word2vec-api server cannot be reached
// or answers with a body that is not a similarity list.
var ErrUnreachable = errors.New("word2vec-api server is unreachable")

const mostSimilarPath = "/word2vec/most_similar"

type Client struct {
	httpClient *resty.Client
}

// NewClient returns a client for the word2vec-api server at address (host:port).
func NewClient(address string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL("http://" + address)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// MostSimilar returns up to n words closest to word, most similar first.
// A word unknown to the model is answered with an error status by the server
// and results in an empty list.
func (client *Client) MostSimilar(ctx context.Context, word string, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("positive", word).
		SetQueryParam("topn", strconv.Itoa(n)).
		Get(mostSimilarPath)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w: %w", ErrUnreachable, err)
	}
	if response.IsError() {
		slog.Default().Debug("word2vec-api returned an error status",
			"word", word,
			"status", response.StatusCode(),
		)
		return []string{}, nil
	}

	words, err := parseMostSimilar([]byte(response.String()), n)
	if err != nil {
		return nil, fmt.Errorf("parseMostSimilar > %w: %w", ErrUnreachable, err)
	}
	return words, nil
}

// parseMostSimilar reads a [[word, score], ...] body.
func parseMostSimilar(body []byte, n int) ([]string, error) {
	var pairs [][]any
	if err := json.Unmarshal(body, &pairs); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", body, err)
	}

	words := make([]string, 0, min(len(pairs), n))
	for i, pair := range pairs {
		if len(words) == n {
			break
		}
		if len(pair) == 0 {
			return nil, fmt.Errorf("empty pair at %d", i)
		}
		w, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf("pair %d starts with %T, not a word", i, pair[0])
		}
		words = append(words, w)
	}
	return words, nil
}
