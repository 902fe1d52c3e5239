package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/timeline"
)

var (
	// ErrNoDataset - набор данных еще не загружен
	ErrNoDataset = errors.New("no dataset loaded")
	// ErrStaleDataset - операция относится к набору, который уже заменен
	ErrStaleDataset = errors.New("dataset has been replaced")
)

// Ticket - порядковый номер загрузки. Выдается до начала разбора файла,
// чтобы более ранняя загрузка, закончившаяся позже, не перезаписала более новую.
type Ticket uint64

// Snapshot - согласованное состояние сессии на момент чтения
type Snapshot struct {
	DatasetID uuid.UUID
	FileName  string
	LoadedAt  time.Time
	Dataset   *domain.Dataset
	View      *domain.Dataset
	Window    timeline.DateWindow
}

// Filtered сообщает, что представление ограничено фильтром
func (s Snapshot) Filtered() bool {
	return !s.Window.IsZero()
}

// Session хранит единственный загруженный набор данных и его текущее представление.
// Набор неизменяем после установки, представление заменяется целиком.
type Session struct {
	mu        sync.RWMutex
	issued    Ticket
	installed Ticket
	current   *Snapshot
	now       func() time.Time
}

// New создает пустую сессию
func New() *Session {
	return &Session{now: time.Now}
}

// Begin выдает билет для новой загрузки
func (s *Session) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// Replace устанавливает новый набор, если после билета t не был установлен
// более поздний. Представление сбрасывается на весь набор.
// Возвращает false, если загрузка устарела и результат отброшен.
func (s *Session) Replace(t Ticket, ds *domain.Dataset, fileName string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t <= s.installed {
		return Snapshot{}, false
	}

	s.installed = t
	s.current = &Snapshot{
		DatasetID: uuid.New(),
		FileName:  fileName,
		LoadedAt:  s.now(),
		Dataset:   ds,
		View:      ds,
	}
	return *s.current, true
}

// Current возвращает текущее состояние или ErrNoDataset
func (s *Session) Current() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Snapshot{}, ErrNoDataset
	}
	return *s.current, nil
}

// SetView заменяет представление набора id. Если за время вычисления
// представления набор был заменен, возвращается ErrStaleDataset.
func (s *Session) SetView(id uuid.UUID, w timeline.DateWindow, view *domain.Dataset) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Snapshot{}, ErrNoDataset
	}
	if s.current.DatasetID != id {
		return Snapshot{}, ErrStaleDataset
	}

	next := *s.current
	next.Window = w
	next.View = view
	s.current = &next
	return next, nil
}

// ClearView возвращает представление ко всему набору
func (s *Session) ClearView() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Snapshot{}, ErrNoDataset
	}

	next := *s.current
	next.Window = timeline.DateWindow{}
	next.View = next.Dataset
	s.current = &next
	return next, nil
}
