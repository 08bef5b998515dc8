package explain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty response", fmt.Errorf("explain: %w", ErrEmptyResponse), CategoryEmpty},
		{"deadline", fmt.Errorf("chat completion: %w", context.DeadlineExceeded), CategoryTimeout},
		{"timeout text", errors.New("net/http: request canceled (Client.Timeout exceeded)"), CategoryTimeout},
		{"unauthorized", errors.New("error, status code: 401, message: invalid api key"), CategoryAuth},
		{"forbidden", errors.New("403 Forbidden"), CategoryAuth},
		{"rate limited", errors.New("error, status code: 429, message: rate limit exceeded"), CategoryRateLimit},
		{"quota", errors.New("you exceeded your current quota"), CategoryRateLimit},
		{"anything else", errors.New("connection refused"), CategoryRequest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Categorize(c.err))
		})
	}
}
