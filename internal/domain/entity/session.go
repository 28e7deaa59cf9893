package entity

// SessionState состояние диалога с пользователем бота
type SessionState string

const (
	StateMainMenu          SessionState = "main_menu"           // В главном меню
	StateAwaitingBoard     SessionState = "awaiting_board"      // Ждём фото платы для детекции
	StateAwaitingEvalBoard SessionState = "awaiting_eval_board" // Ждём фото платы для оценки
	StateAwaitingGraph     SessionState = "awaiting_graph"      // Ждём JSON граф разметки
	StateProcessing        SessionState = "processing"          // Обработка
)

// Session диалог пользователя с ботом
type Session struct {
	UserID int64        // Telegram User ID
	ChatID int64        // Telegram Chat ID
	State  SessionState // Текущее состояние
}

// NewSession создаёт сессию в главном меню
func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID: userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние
func (s *Session) SetState(state SessionState) {
	s.State = state
}

// AwaitsPhoto сообщает, ждёт ли сессия фото платы
func (s *Session) AwaitsPhoto() bool {
	return s.State == StateAwaitingBoard || s.State == StateAwaitingEvalBoard
}
