// Package catalog содержит бизнес-логику работы с вопросами каталога,
// включая кеширование списков по главам.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/examprep/examprep-api/internal/models"
)

// QuestionRepository определяет методы для работы с вопросами в хранилище.
type QuestionRepository interface {
	// CreateQuestion добавляет новый вопрос и возвращает его ID.
	CreateQuestion(ctx context.Context, q models.Question) (int, error)
	// ListQuestionsByChapter возвращает все вопросы главы.
	ListQuestionsByChapter(ctx context.Context, chapter string) ([]*models.Question, error)
	// UpdateQuestion обновляет текст вопроса и ответа по ID.
	UpdateQuestion(ctx context.Context, id int, question, answer string) (*models.Question, error)
	// DeleteQuestion удаляет вопрос по ID и возвращает его главу.
	DeleteQuestion(ctx context.Context, id int) (string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует операции над вопросами каталога с кешированием.
type Service struct {
	repo  QuestionRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo QuestionRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func chapterCacheKey(chapter string) string {
	return fmt.Sprintf("questions:%s", chapter)
}

// ListChapterQuestions возвращает вопросы главы, используя кеш или хранилище.
func (s *Service) ListChapterQuestions(ctx context.Context, chapter string) ([]*models.Question, error) {
	var result []*models.Question
	cacheKey := chapterCacheKey(chapter)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read questions from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListQuestionsByChapter(ctx, chapter)
	if err != nil {
		return nil, err
	}

	if len(result) > 0 {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to cache questions", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// AddQuestion создает новый вопрос в главе и инвалидирует кеш главы.
func (s *Service) AddQuestion(ctx context.Context, subject, chapter string, req models.DummyQuestion) (*models.Question, error) {
	q := models.Question{
		Subject:  subject,
		Chapter:  chapter,
		Question: req.Question,
		Answer:   req.Answer,
	}
	id, err := s.repo.CreateQuestion(ctx, q)
	if err != nil {
		return nil, err
	}
	q.ID = id

	s.log.Info("created new question", slog.Int("id", id), slog.String("chapter", chapter))

	if err := s.cache.Invalidate(chapterCacheKey(chapter)); err != nil {
		s.log.Warn("failed to invalidate chapter cache", slog.String("chapter", chapter), slog.Any("err", err))
	}
	return &q, nil
}

// UpdateQuestion обновляет вопрос по ID и инвалидирует кеш его главы.
func (s *Service) UpdateQuestion(ctx context.Context, id int, req models.DummyQuestion) (*models.Question, error) {
	q, err := s.repo.UpdateQuestion(ctx, id, req.Question, req.Answer)
	if err != nil {
		return nil, err
	}

	s.log.Info("updated question", slog.Int("id", id))

	if err := s.cache.Invalidate(chapterCacheKey(q.Chapter)); err != nil {
		s.log.Warn("failed to invalidate chapter cache", slog.String("chapter", q.Chapter), slog.Any("err", err))
	}
	return q, nil
}

// RemoveQuestion удаляет вопрос по ID и инвалидирует кеш его главы.
func (s *Service) RemoveQuestion(ctx context.Context, id int) error {
	chapter, err := s.repo.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info("removed question", slog.Int("id", id))

	if err := s.cache.Invalidate(chapterCacheKey(chapter)); err != nil {
		s.log.Warn("failed to invalidate chapter cache", slog.String("chapter", chapter), slog.Any("err", err))
	}
	return nil
}
