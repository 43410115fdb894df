package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgrid/pkg/provider"
	"github.com/umputun/newsgrid/pkg/provider/mocks"
)

func noopPacer() *mocks.PacerMock {
	return &mocks.PacerMock{WaitFunc: func(ctx context.Context) error { return nil }}
}

func TestChain_ShortCircuit(t *testing.T) {
	first := &mocks.ProviderMock{
		NameFunc: func() string { return "first" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			return []provider.RawArticle{{Title: "one", Description: "d", Link: "https://example.com/1"}}, nil
		},
	}
	second := &mocks.ProviderMock{
		NameFunc: func() string { return "second" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			return []provider.RawArticle{
				{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}, {Title: "e"},
			}, nil
		},
	}

	chain := provider.NewChain(noopPacer(), first, second)
	got := chain.Fetch(context.Background(), "europe", "news", 5)

	require.Len(t, got, 1, "first non-empty provider wins outright")
	assert.Equal(t, "one", got[0].Title)
	assert.Empty(t, second.FetchCalls(), "second provider must not be consulted")
}

func TestChain_FallsThroughOnErrorAndEmpty(t *testing.T) {
	failing := &mocks.ProviderMock{
		NameFunc: func() string { return "failing" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			return nil, errors.New("boom")
		},
	}
	empty := &mocks.ProviderMock{
		NameFunc: func() string { return "empty" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			return nil, nil
		},
	}
	last := &mocks.ProviderMock{
		NameFunc: func() string { return "last" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			return []provider.RawArticle{{Title: "survivor"}}, nil
		},
	}

	chain := provider.NewChain(noopPacer(), failing, empty, last)
	got := chain.Fetch(context.Background(), "asia", "finance", 3)

	require.Len(t, got, 1)
	assert.Equal(t, "survivor", got[0].Title)
}

func TestChain_AllEmptyIsValid(t *testing.T) {
	failing := &mocks.ProviderMock{
		NameFunc: func() string { return "failing" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			return nil, errors.New("transport down")
		},
	}

	chain := provider.NewChain(noopPacer(), failing)
	got := chain.Fetch(context.Background(), "africa", "travel", 5)
	assert.Empty(t, got, "empty chain result is a valid, expected outcome")
}

func TestChain_PacedBeforeEveryAttempt(t *testing.T) {
	pacer := noopPacer()
	empty := &mocks.ProviderMock{
		NameFunc: func() string { return "empty" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			return nil, nil
		},
	}

	chain := provider.NewChain(pacer, empty, empty, empty)
	chain.Fetch(context.Background(), "europe", "news", 5)
	assert.Len(t, pacer.WaitCalls(), 3, "pacer acquired before each provider attempt")
}

func TestChain_CanceledContextStopsChain(t *testing.T) {
	pacer := &mocks.PacerMock{WaitFunc: func(ctx context.Context) error { return context.Canceled }}
	p := &mocks.ProviderMock{
		NameFunc: func() string { return "p" },
		FetchFunc: func(ctx context.Context, region, category string, count int) ([]provider.RawArticle, error) {
			t.Fatal("provider must not be called after pacing fails")
			return nil, nil
		},
	}

	chain := provider.NewChain(pacer, p)
	got := chain.Fetch(context.Background(), "europe", "news", 5)
	assert.Empty(t, got)
}
