// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, вопросами каталога и журналом платежей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Обработчики транслируют их в HTTP-статусы
// через errors.Is.
var (
	// ErrUserNotFound возвращается, когда пользователь не найден по uid или email.
	ErrUserNotFound = errors.New("user not found")
	// ErrQuestionNotFound возвращается, когда вопрос не найден по id.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrEmailTaken возвращается при попытке регистрации с занятым email.
	ErrEmailTaken = errors.New("email already registered")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, вопросами и платежами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}
