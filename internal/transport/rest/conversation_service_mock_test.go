package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

var _ conversationService = &conversationServiceMock{}

type conversationServiceMock struct {
	StartFunc   func(ctx context.Context, topic string) (domain.ConversationSnapshot, error)
	GetFunc     func(ctx context.Context, id string) (domain.ConversationSnapshot, error)
	EndFunc     func(ctx context.Context, id string) error
	SendFunc    func(ctx context.Context, id string, text string) (domain.ChatMessage, error)
	AnalyzeFunc func(ctx context.Context, id string, sentence string) (domain.ChatMessage, error)
	HintsFunc   func(ctx context.Context, id string) ([]domain.Hint, error)

	calls struct {
		Start []struct {
			Ctx   context.Context
			Topic string
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		End []struct {
			Ctx context.Context
			ID  string
		}
		Send []struct {
			Ctx  context.Context
			ID   string
			Text string
		}
		Analyze []struct {
			Ctx      context.Context
			ID       string
			Sentence string
		}
		Hints []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockStart sync.RWMutex
	lockGet sync.RWMutex
	lockEnd sync.RWMutex
	lockSend sync.RWMutex
	lockAnalyze sync.RWMutex
	lockHints sync.RWMutex
}

func (mock *conversationServiceMock) Start(ctx context.Context, topic string) (domain.ConversationSnapshot, error) {
	if mock.StartFunc == nil {
		panic("conversationServiceMock.StartFunc: method is nil but conversationService.Start was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic string
	}{Ctx: ctx, Topic: topic}
	mock.lockStart.Lock()
	mock.calls.Start = append(mock.calls.Start, callInfo)
	mock.lockStart.Unlock()
	return mock.StartFunc(ctx, topic)
}

func (mock *conversationServiceMock) StartCalls() []struct {
	Ctx   context.Context
	Topic string
} {
	var calls []struct {
		Ctx   context.Context
		Topic string
	}
	mock.lockStart.RLock()
	calls = mock.calls.Start
	mock.lockStart.RUnlock()
	return calls
}

func (mock *conversationServiceMock) Get(ctx context.Context, id string) (domain.ConversationSnapshot, error) {
	if mock.GetFunc == nil {
		panic("conversationServiceMock.GetFunc: method is nil but conversationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *conversationServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *conversationServiceMock) End(ctx context.Context, id string) error {
	if mock.EndFunc == nil {
		panic("conversationServiceMock.EndFunc: method is nil but conversationService.End was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockEnd.Lock()
	mock.calls.End = append(mock.calls.End, callInfo)
	mock.lockEnd.Unlock()
	return mock.EndFunc(ctx, id)
}

func (mock *conversationServiceMock) EndCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockEnd.RLock()
	calls = mock.calls.End
	mock.lockEnd.RUnlock()
	return calls
}

func (mock *conversationServiceMock) Send(ctx context.Context, id string, text string) (domain.ChatMessage, error) {
	if mock.SendFunc == nil {
		panic("conversationServiceMock.SendFunc: method is nil but conversationService.Send was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   string
		Text string
	}{Ctx: ctx, ID: id, Text: text}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, id, text)
}

func (mock *conversationServiceMock) SendCalls() []struct {
	Ctx  context.Context
	ID   string
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		ID   string
		Text string
	}
	mock.lockSend.RLock()
	calls = mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

func (mock *conversationServiceMock) Analyze(ctx context.Context, id string, sentence string) (domain.ChatMessage, error) {
	if mock.AnalyzeFunc == nil {
		panic("conversationServiceMock.AnalyzeFunc: method is nil but conversationService.Analyze was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       string
		Sentence string
	}{Ctx: ctx, ID: id, Sentence: sentence}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, id, sentence)
}

func (mock *conversationServiceMock) AnalyzeCalls() []struct {
	Ctx      context.Context
	ID       string
	Sentence string
} {
	var calls []struct {
		Ctx      context.Context
		ID       string
		Sentence string
	}
	mock.lockAnalyze.RLock()
	calls = mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}

func (mock *conversationServiceMock) Hints(ctx context.Context, id string) ([]domain.Hint, error) {
	if mock.HintsFunc == nil {
		panic("conversationServiceMock.HintsFunc: method is nil but conversationService.Hints was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockHints.Lock()
	mock.calls.Hints = append(mock.calls.Hints, callInfo)
	mock.lockHints.Unlock()
	return mock.HintsFunc(ctx, id)
}

func (mock *conversationServiceMock) HintsCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockHints.RLock()
	calls = mock.calls.Hints
	mock.lockHints.RUnlock()
	return calls
}
