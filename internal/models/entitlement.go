package models

// AccessDecision — результат проверки доступа к каталогу для одного запроса.
// Значение вычисляется заново на каждый запрос и нигде не сохраняется.
type AccessDecision struct {
	Granted              bool  // Доступ разрешён
	RemainingTrialMillis int64 // Остаток пробного периода в миллисекундах, 0 при подписке или истечении
}
