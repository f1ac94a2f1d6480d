package models

import "time"

// Question представляет вопрос с ответом внутри главы предмета.
// Создание, изменение и удаление доступны только администраторам.
type Question struct {
	ID        int       `json:"id"`        // Идентификатор вопроса
	Subject   string    `json:"subject"`   // Ключ предмета из фиксированного каталога
	Chapter   string    `json:"chapter"`   // Название главы
	Question  string    `json:"question"`  // Текст вопроса
	Answer    string    `json:"answer"`    // Текст ответа
	CreatedAt time.Time `json:"createdAt"` // Дата создания
}

// DummyQuestion используется для приёма данных из JSON-запроса
// перед сохранением вопроса.
type DummyQuestion struct {
	Question string `json:"question" validate:"required"` // Текст вопроса
	Answer   string `json:"answer" validate:"required"`   // Текст ответа
}
