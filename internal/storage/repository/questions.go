package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/examprep/examprep-api/internal/models"
)

// CreateQuestion сохраняет новый вопрос и возвращает его ID.
func (s *Storage) CreateQuestion(ctx context.Context, q models.Question) (int, error) {
	const op = "storage.CreateQuestion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO questions (subject, chapter, question, answer)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		q.Subject, q.Chapter, q.Question, q.Answer).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListQuestionsByChapter возвращает все вопросы главы.
func (s *Storage) ListQuestionsByChapter(ctx context.Context, chapter string) ([]*models.Question, error) {
	const op = "storage.ListQuestionsByChapter"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, subject, chapter, question, answer, created_at
			  FROM questions
			  WHERE chapter = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, chapter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Question
	for rows.Next() {
		var q models.Question
		if err = rows.Scan(&q.ID, &q.Subject, &q.Chapter, &q.Question, &q.Answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateQuestion обновляет текст вопроса и ответа по ID,
// возвращает обновлённую запись либо ErrQuestionNotFound.
func (s *Storage) UpdateQuestion(ctx context.Context, id int, question, answer string) (*models.Question, error) {
	const op = "storage.UpdateQuestion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE questions
			  SET question = $1, answer = $2
			  WHERE id = $3
			  RETURNING id, subject, chapter, question, answer, created_at`
	var q models.Question
	if err := s.DB.QueryRowContext(ctx, query, question, answer, id).Scan(
		&q.ID, &q.Subject, &q.Chapter, &q.Question, &q.Answer, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &q, nil
}

// DeleteQuestion удаляет вопрос по ID и возвращает главу удалённой записи
// для инвалидации кеша, либо ErrQuestionNotFound, если записи не было.
func (s *Storage) DeleteQuestion(ctx context.Context, id int) (string, error) {
	const op = "storage.DeleteQuestion"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM questions WHERE id = $1 RETURNING chapter`
	var chapter string
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&chapter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return chapter, nil
}
