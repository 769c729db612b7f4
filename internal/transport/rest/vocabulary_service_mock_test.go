package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/service/vocabulary"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	CategoriesFunc     func() []string
	DifficultiesFunc   func() []domain.Difficulty
	QuotaFunc          func(ctx context.Context) (domain.QuotaStatus, error)
	GenerateFunc       func(ctx context.Context, input vocabulary.GenerateInput) ([]domain.VocabWord, error)
	BatchFunc          func(ctx context.Context) ([]domain.VocabWord, error)
	SavedFunc          func(ctx context.Context) ([]domain.VocabWord, error)
	ToggleSaveByIDFunc func(ctx context.Context, id string) (domain.VocabWord, bool, error)

	calls struct {
		Categories []struct {
		}
		Difficulties []struct {
		}
		Quota []struct {
			Ctx context.Context
		}
		Generate []struct {
			Ctx   context.Context
			Input vocabulary.GenerateInput
		}
		Batch []struct {
			Ctx context.Context
		}
		Saved []struct {
			Ctx context.Context
		}
		ToggleSaveByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCategories sync.RWMutex
	lockDifficulties sync.RWMutex
	lockQuota sync.RWMutex
	lockGenerate sync.RWMutex
	lockBatch sync.RWMutex
	lockSaved sync.RWMutex
	lockToggleSaveByID sync.RWMutex
}

func (mock *vocabularyServiceMock) Categories() []string {
	if mock.CategoriesFunc == nil {
		panic("vocabularyServiceMock.CategoriesFunc: method is nil but vocabularyService.Categories was just called")
	}
	callInfo := struct {
	}{}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, callInfo)
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc()
}

func (mock *vocabularyServiceMock) CategoriesCalls() []struct {
} {
	var calls []struct {
	}
	mock.lockCategories.RLock()
	calls = mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Difficulties() []domain.Difficulty {
	if mock.DifficultiesFunc == nil {
		panic("vocabularyServiceMock.DifficultiesFunc: method is nil but vocabularyService.Difficulties was just called")
	}
	callInfo := struct {
	}{}
	mock.lockDifficulties.Lock()
	mock.calls.Difficulties = append(mock.calls.Difficulties, callInfo)
	mock.lockDifficulties.Unlock()
	return mock.DifficultiesFunc()
}

func (mock *vocabularyServiceMock) DifficultiesCalls() []struct {
} {
	var calls []struct {
	}
	mock.lockDifficulties.RLock()
	calls = mock.calls.Difficulties
	mock.lockDifficulties.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Quota(ctx context.Context) (domain.QuotaStatus, error) {
	if mock.QuotaFunc == nil {
		panic("vocabularyServiceMock.QuotaFunc: method is nil but vocabularyService.Quota was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockQuota.Lock()
	mock.calls.Quota = append(mock.calls.Quota, callInfo)
	mock.lockQuota.Unlock()
	return mock.QuotaFunc(ctx)
}

func (mock *vocabularyServiceMock) QuotaCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockQuota.RLock()
	calls = mock.calls.Quota
	mock.lockQuota.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Generate(ctx context.Context, input vocabulary.GenerateInput) ([]domain.VocabWord, error) {
	if mock.GenerateFunc == nil {
		panic("vocabularyServiceMock.GenerateFunc: method is nil but vocabularyService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *vocabularyServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input vocabulary.GenerateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vocabulary.GenerateInput
	}
	mock.lockGenerate.RLock()
	calls = mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Batch(ctx context.Context) ([]domain.VocabWord, error) {
	if mock.BatchFunc == nil {
		panic("vocabularyServiceMock.BatchFunc: method is nil but vocabularyService.Batch was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockBatch.Lock()
	mock.calls.Batch = append(mock.calls.Batch, callInfo)
	mock.lockBatch.Unlock()
	return mock.BatchFunc(ctx)
}

func (mock *vocabularyServiceMock) BatchCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockBatch.RLock()
	calls = mock.calls.Batch
	mock.lockBatch.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Saved(ctx context.Context) ([]domain.VocabWord, error) {
	if mock.SavedFunc == nil {
		panic("vocabularyServiceMock.SavedFunc: method is nil but vocabularyService.Saved was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSaved.Lock()
	mock.calls.Saved = append(mock.calls.Saved, callInfo)
	mock.lockSaved.Unlock()
	return mock.SavedFunc(ctx)
}

func (mock *vocabularyServiceMock) SavedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockSaved.RLock()
	calls = mock.calls.Saved
	mock.lockSaved.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) ToggleSaveByID(ctx context.Context, id string) (domain.VocabWord, bool, error) {
	if mock.ToggleSaveByIDFunc == nil {
		panic("vocabularyServiceMock.ToggleSaveByIDFunc: method is nil but vocabularyService.ToggleSaveByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockToggleSaveByID.Lock()
	mock.calls.ToggleSaveByID = append(mock.calls.ToggleSaveByID, callInfo)
	mock.lockToggleSaveByID.Unlock()
	return mock.ToggleSaveByIDFunc(ctx, id)
}

func (mock *vocabularyServiceMock) ToggleSaveByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockToggleSaveByID.RLock()
	calls = mock.calls.ToggleSaveByID
	mock.lockToggleSaveByID.RUnlock()
	return calls
}
