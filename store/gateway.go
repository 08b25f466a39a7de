// ABOUTME: Collaborator contracts for the state stores
// ABOUTME: Gateway abstracts the backend; Notifier carries user-facing messages
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Akshada2906/circle-insights/api"
)

// Gateway is the subset of the backend API the account store relies on.
// *api.Client satisfies it.
type Gateway interface {
	ListAccounts(ctx context.Context) ([]api.AccountRecord, error)
	GetAccount(ctx context.Context, id string) (*api.AccountRecord, error)
	CreateAccount(ctx context.Context, in api.AccountCreate) (*api.AccountRecord, error)
	UpdateAccount(ctx context.Context, id string, in api.AccountUpdate) (*api.AccountRecord, error)
	DeleteAccount(ctx context.Context, id string) error
	SearchAccountsByUnit(ctx context.Context, unit string) ([]api.AccountRecord, error)

	ListProfiles(ctx context.Context) ([]api.StakeholderDetailRecord, error)
	GetProfile(ctx context.Context, id string) (*api.StakeholderDetailRecord, error)
	ProfilesByAccount(ctx context.Context, accountID string) ([]api.StakeholderDetailRecord, error)
	CreateProfile(ctx context.Context, in api.StakeholderDetailCreate) (*api.StakeholderDetailRecord, error)
	UpdateProfile(ctx context.Context, id string, in api.StakeholderDetailUpdate) (*api.StakeholderDetailRecord, error)
	DeleteProfile(ctx context.Context, id string) error
}

var _ Gateway = (*api.Client)(nil)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier receives messages meant for the person operating the dashboard.
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) {
	f(level, message)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Notify(level Level, message string) {
	if level == LevelError {
		n.Logger.Error(message)
		return
	}
	n.Logger.Info(message)
}

// Notification is a recorded notification, used by collecting notifiers.
type Notification struct {
	Level   Level
	Message string
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s] %s", n.Level, n.Message)
}

// Recorder keeps the latest message of each level until it is taken, and
// forwards every notification to Next when set.
type Recorder struct {
	Next Notifier

	mu   sync.Mutex
	last map[Level]string
}

func (r *Recorder) Notify(level Level, message string) {
	r.mu.Lock()
	if r.last == nil {
		r.last = make(map[Level]string)
	}
	r.last[level] = message
	r.mu.Unlock()

	if r.Next != nil {
		r.Next.Notify(level, message)
	}
}

// Take returns and clears the latest message of a level.
func (r *Recorder) Take(level Level) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := r.last[level]
	delete(r.last, level)
	return msg
}
