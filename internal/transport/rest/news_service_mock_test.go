package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

var _ newsService = &newsServiceMock{}

type newsServiceMock struct {
	WeeklyFunc func(ctx context.Context) (domain.NewsDigest, error)

	calls struct {
		Weekly []struct {
			Ctx context.Context
		}
	}
	lockWeekly sync.RWMutex
}

func (mock *newsServiceMock) Weekly(ctx context.Context) (domain.NewsDigest, error) {
	if mock.WeeklyFunc == nil {
		panic("newsServiceMock.WeeklyFunc: method is nil but newsService.Weekly was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockWeekly.Lock()
	mock.calls.Weekly = append(mock.calls.Weekly, callInfo)
	mock.lockWeekly.Unlock()
	return mock.WeeklyFunc(ctx)
}

func (mock *newsServiceMock) WeeklyCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockWeekly.RLock()
	calls = mock.calls.Weekly
	mock.lockWeekly.RUnlock()
	return calls
}
