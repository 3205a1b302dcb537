package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuestionCache_HitSkipsRepository(t *testing.T) {
	mockCache := new(MockCache)
	mockQuestionRepo := new(MockQuestionRepository)

	cached := dto.QuestionResponse{ID: "q-1", Title: "Cached question", QType: string(domain.OpenEnded)}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	mockCache.On("Get", mock.Anything, questionDetailKey("q-1")).Return(string(payload), nil)

	svc := NewQuestionCacheService(mockCache, mockQuestionRepo, time.Minute)
	resp, err := svc.GetQuestion(context.Background(), "q-1")

	require.NoError(t, err)
	assert.Equal(t, "Cached question", resp.Title)
	mockQuestionRepo.AssertNotCalled(t, "GetQuestionByID", mock.Anything, mock.Anything)
}

func TestQuestionCache_MissLoadsAndStores(t *testing.T) {
	mockCache := new(MockCache)
	mockQuestionRepo := new(MockQuestionRepository)

	key := questionDetailKey("q-1")
	mockCache.On("Get", mock.Anything, key).Return("", domain.ErrCacheMiss)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, "q-1").Return(&domain.Question{
		ID:    "q-1",
		Title: "Fresh question",
		QType: domain.OpenEnded,
	}, nil)
	mockCache.On("Set", mock.Anything, key, mock.AnythingOfType("string"), time.Minute).Return(nil)

	svc := NewQuestionCacheService(mockCache, mockQuestionRepo, time.Minute)
	resp, err := svc.GetQuestion(context.Background(), "q-1")

	require.NoError(t, err)
	assert.Equal(t, "Fresh question", resp.Title)
	mockCache.AssertExpectations(t)
	mockQuestionRepo.AssertExpectations(t)
}

func TestQuestionCache_CacheErrorFallsThroughToRepository(t *testing.T) {
	mockCache := new(MockCache)
	mockQuestionRepo := new(MockQuestionRepository)

	key := questionDetailKey("q-1")
	mockCache.On("Get", mock.Anything, key).Return("", errors.New("redis: connection refused"))
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, "q-1").Return(&domain.Question{
		ID:    "q-1",
		Title: "Fresh question",
		QType: domain.OpenEnded,
	}, nil)
	mockCache.On("Set", mock.Anything, key, mock.AnythingOfType("string"), time.Minute).Return(nil)

	svc := NewQuestionCacheService(mockCache, mockQuestionRepo, time.Minute)
	resp, err := svc.GetQuestion(context.Background(), "q-1")

	require.NoError(t, err)
	assert.Equal(t, "Fresh question", resp.Title)
}

func TestQuestionCache_NotFound(t *testing.T) {
	mockCache := new(MockCache)
	mockQuestionRepo := new(MockQuestionRepository)

	mockCache.On("Get", mock.Anything, questionDetailKey("ghost")).Return("", domain.ErrCacheMiss)
	mockQuestionRepo.On("GetQuestionByID", mock.Anything, "ghost").Return(nil, nil)

	svc := NewQuestionCacheService(mockCache, mockQuestionRepo, time.Minute)
	_, err := svc.GetQuestion(context.Background(), "ghost")

	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeNotFound, derr.Code)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionCache_InvalidateDeletesKey(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("Delete", mock.Anything, questionDetailKey("q-1")).Return(nil)

	svc := NewQuestionCacheService(mockCache, new(MockQuestionRepository), time.Minute)
	svc.InvalidateQuestion(context.Background(), "q-1")

	mockCache.AssertExpectations(t)
}
