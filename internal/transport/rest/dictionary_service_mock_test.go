package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	LookupFunc func(ctx context.Context, query string) (domain.DictionaryResult, error)

	calls struct {
		Lookup []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *dictionaryServiceMock) Lookup(ctx context.Context, query string) (domain.DictionaryResult, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryServiceMock.LookupFunc: method is nil but dictionaryService.Lookup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, query)
}

func (mock *dictionaryServiceMock) LookupCalls() []struct {
	Ctx   context.Context
	Query string
} {
	var calls []struct {
		Ctx   context.Context
		Query string
	}
	mock.lockLookup.RLock()
	calls = mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
