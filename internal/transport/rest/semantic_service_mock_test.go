package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

var _ semanticService = &semanticServiceMock{}

type semanticServiceMock struct {
	CompareFunc func(ctx context.Context, query string) (domain.SemanticResult, error)

	calls struct {
		Compare []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockCompare sync.RWMutex
}

func (mock *semanticServiceMock) Compare(ctx context.Context, query string) (domain.SemanticResult, error) {
	if mock.CompareFunc == nil {
		panic("semanticServiceMock.CompareFunc: method is nil but semanticService.Compare was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockCompare.Lock()
	mock.calls.Compare = append(mock.calls.Compare, callInfo)
	mock.lockCompare.Unlock()
	return mock.CompareFunc(ctx, query)
}

func (mock *semanticServiceMock) CompareCalls() []struct {
	Ctx   context.Context
	Query string
} {
	var calls []struct {
		Ctx   context.Context
		Query string
	}
	mock.lockCompare.RLock()
	calls = mock.calls.Compare
	mock.lockCompare.RUnlock()
	return calls
}
