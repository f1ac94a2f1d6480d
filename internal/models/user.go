// Package models содержит доменную модель пользователя сервиса,
// включающую учётные данные, время начала пробного периода и состояние подписки.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя сервиса.
//
// TrialStartTime устанавливается один раз: при регистрации либо при первом
// входе, если поле пустое. SubscriptionActive и SubscriptionExpiry изменяются
// только при активации подписки после подтверждённого платежа; сервис не
// сбрасывает SubscriptionActive при наступлении SubscriptionExpiry.
type User struct {
	UID                string     // Уникальный идентификатор пользователя
	Name               string     // Имя пользователя
	Email              string     // Электронная почта (уникальная)
	PasswordHash       string     // Bcrypt-хэш пароля
	TrialStartTime     *time.Time // Начало пробного периода, nil до первой аутентификации
	SubscriptionActive bool       // Признак оплаченной подписки
	SubscriptionExpiry *time.Time // Дата истечения подписки, nil если подписки не было
	IsAdmin            bool       // Признак администратора
	CreatedAt          time.Time  // Дата создания записи
}

// Role возвращает роль пользователя для JWT-claims: admin или user.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
