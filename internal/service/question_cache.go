package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"interviewhub/internal/cache"
	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
	"interviewhub/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const questionCacheService = "question"

// QuestionCacheService is a read-through cache for question detail
// responses. Concurrent loads of the same question are collapsed into
// one repository call.
type QuestionCacheService struct {
	cache        domain.Cache
	questionRepo domain.QuestionRepository
	ttl          time.Duration
	group        singleflight.Group
}

// NewQuestionCacheService creates a new QuestionCacheService.
func NewQuestionCacheService(cacheAdapter domain.Cache, questionRepo domain.QuestionRepository, ttl time.Duration) *QuestionCacheService {
	return &QuestionCacheService{
		cache:        cacheAdapter,
		questionRepo: questionRepo,
		ttl:          ttl,
	}
}

func questionDetailKey(id string) string {
	return cache.GenerateCacheKey(questionCacheService, "detail", id)
}

// GetQuestion returns the cached rendering of a question, loading and
// caching it on a miss.
func (s *QuestionCacheService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	key := questionDetailKey(id)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var response dto.QuestionResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
		// Corrupt entry: fall through to a fresh load.
		logger.Get().Warn("Discarding unreadable question cache entry", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		// Cache trouble must not fail the read path.
		logger.Get().Warn("Question cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		question, err := s.questionRepo.GetQuestionByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if question == nil {
			return nil, domain.NewQuestionNotFoundError(id)
		}
		response := toQuestionResponse(question)

		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
				logger.Get().Warn("Question cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return response, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.QuestionResponse), nil
}

// InvalidateQuestion drops the cached rendering of a question.
func (s *QuestionCacheService) InvalidateQuestion(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, questionDetailKey(id)); err != nil {
		logger.Get().Warn("Question cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}
