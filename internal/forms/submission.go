package forms

import (
	"context"
	"errors"
	"sync"

	"github.com/Bessima/i2test-auth/internal/models"
)

var (
	// ErrSubmissionPending возвращается, пока предыдущая отправка той же формы не завершилась
	ErrSubmissionPending = errors.New("submission already pending")
	ErrFormClosed        = errors.New("form is closed")
)

// submission - общее состояние отправки для обеих форм.
// Все поля меняются только под mu.
type submission struct {
	mu      sync.Mutex
	state   models.SubmissionState
	message string
	closed  bool
	cancel  context.CancelFunc
}

// beginLocked переводит форму в Pending. Вызывать под mu.
func (s *submission) beginLocked(ctx context.Context) context.Context {
	reqCtx, cancel := context.WithCancel(ctx)
	s.state = models.PendingState
	s.message = ""
	s.cancel = cancel
	return reqCtx
}

// checkLocked отвечает, можно ли начинать новую отправку. Вызывать под mu.
func (s *submission) checkLocked() error {
	if s.closed {
		return ErrFormClosed
	}
	if s.state == models.PendingState {
		return ErrSubmissionPending
	}
	return nil
}

// rejectLocked показывает ошибку локальной проверки, сеть не трогается. Вызывать под mu.
func (s *submission) rejectLocked(message string) {
	s.state = models.IdleState
	s.message = message
}

// finishLocked фиксирует результат. false - форма уже закрыта и ответ нужно выбросить.
func (s *submission) finishLocked(state models.SubmissionState, message string) bool {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.closed {
		return false
	}
	s.state = state
	s.message = message
	return true
}

func (s *submission) State() models.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *submission) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Pending заменяет заблокированную кнопку отправки
func (s *submission) Pending() bool {
	return s.State() == models.PendingState
}

// Close снимает форму: запрос в полёте отменяется, поздний ответ игнорируется
func (s *submission) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
