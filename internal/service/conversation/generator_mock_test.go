package conversation

import (
	"context"
	"sync"

	"github.com/heartmarshall/huayu-backend/internal/llm"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, req llm.Request) (llm.Response, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			Req llm.Request
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, req llm.Request) (llm.Response, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req llm.Request
	}{Ctx: ctx, Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx context.Context
	Req llm.Request
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
