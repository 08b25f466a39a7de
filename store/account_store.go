// ABOUTME: Process-wide account cache kept consistent with the backend
// ABOUTME: Converts gateway failures into false results plus notifications
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/mapper"
	"github.com/Akshada2906/circle-insights/models"
)

// enrichLimit bounds concurrent profile fetches in EnrichProfiles.
const enrichLimit = 4

// AccountStore owns the account cache. Construct one per process and share it
// by reference; all methods are safe for concurrent use.
//
// Overlapping refreshes are not ordered: whichever response resolves last
// replaces the cache.
type AccountStore struct {
	gw       Gateway
	logger   *log.Logger
	notifier Notifier
	now      func() time.Time
	projects *ProjectStore

	mu       sync.RWMutex
	accounts []models.Account
	state    State
	err      error
}

// Option configures an AccountStore.
type Option func(*AccountStore)

// WithLogger sets the logger used for gateway failures.
func WithLogger(l *log.Logger) Option {
	return func(s *AccountStore) { s.logger = l }
}

// WithNotifier sets the receiver of user-facing messages.
func WithNotifier(n Notifier) Option {
	return func(s *AccountStore) { s.notifier = n }
}

// WithClock overrides the time source used to stamp outgoing payloads.
func WithClock(now func() time.Time) Option {
	return func(s *AccountStore) { s.now = now }
}

// NewAccountStore creates an uninitialized store over gw.
func NewAccountStore(gw Gateway, opts ...Option) (*AccountStore, error) {
	projects, err := NewProjectStore()
	if err != nil {
		return nil, err
	}
	s := &AccountStore{
		gw:       gw,
		now:      time.Now,
		projects: projects,
		state:    StateUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.notifier == nil {
		s.notifier = LogNotifier{Logger: s.logger}
	}
	return s, nil
}

// Refresh fetches the full account list and replaces the cache.
func (s *AccountStore) Refresh(ctx context.Context) bool {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	recs, err := s.gw.ListAccounts(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateError
		s.err = err
		s.mu.Unlock()
		s.fail("refresh", "", err)
		return false
	}
	accounts := mapper.Accounts(recs)

	s.mu.Lock()
	s.accounts = accounts
	s.state = StateReady
	s.err = nil
	s.mu.Unlock()

	s.logger.Debug("accounts refreshed", "count", len(accounts))
	return true
}

// FetchOne fetches a single account and upserts it. Client-side attachments
// on an existing entry are kept.
func (s *AccountStore) FetchOne(ctx context.Context, id string) bool {
	rec, err := s.gw.GetAccount(ctx, id)
	if err != nil {
		s.fail("fetch", id, err)
		return false
	}
	acc := mapper.Account(*rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(acc.ID); i >= 0 {
		if len(acc.StrategicProfiles) == 0 {
			acc.StrategicProfiles = s.accounts[i].StrategicProfiles
		}
		s.accounts[i] = acc
	} else {
		s.accounts = append(s.accounts, acc)
	}
	return true
}

// FetchProfileFor attaches the first strategic profile of an account. Failures
// are logged and otherwise ignored.
func (s *AccountStore) FetchProfileFor(ctx context.Context, accountID string) {
	recs, err := s.gw.ProfilesByAccount(ctx, accountID)
	if err != nil {
		s.logger.Warn("failed to fetch strategic profile", "account_id", accountID, "err", err)
		return
	}
	var attached []models.StrategicProfile
	if len(recs) > 0 {
		attached = []models.StrategicProfile{mapper.Profile(recs[0])}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(accountID); i >= 0 {
		s.accounts[i].StrategicProfiles = attached
	}
}

// EnrichProfiles runs FetchProfileFor for each id with bounded concurrency.
func (s *AccountStore) EnrichProfiles(ctx context.Context, ids []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for _, id := range ids {
		g.Go(func() error {
			s.FetchProfileFor(ctx, id)
			return nil
		})
	}
	_ = g.Wait()
}

// Create posts a new account and then refreshes the full list. The result
// reports whether the backend accepted the account; a failing follow-up
// refresh is notified separately.
func (s *AccountStore) Create(ctx context.Context, a models.Account) bool {
	if a.ID == "" {
		a.ID = models.NewAccountID()
	}
	if err := models.Validate(a); err != nil {
		s.fail("create", a.ID, err)
		return false
	}
	if _, err := s.gw.CreateAccount(ctx, mapper.AccountCreate(a, s.now())); err != nil {
		s.fail("create", a.ID, err)
		return false
	}
	s.notifier.Notify(LevelSuccess, fmt.Sprintf("Account %q created", a.Name))
	s.Refresh(ctx)
	return true
}

// Update validates and sends a partial patch, then refreshes. A shortfall set
// by the caller is discarded; when the patch changes the target or forecast,
// the shortfall is recomputed against the current record.
func (s *AccountStore) Update(ctx context.Context, id string, patch models.AccountPatch) bool {
	if err := models.Validate(patch); err != nil {
		s.fail("update", id, err)
		return false
	}
	patch.Shortfall2026 = nil
	if patch.TouchesFinancials() {
		current, ok := s.GetByID(id)
		if !ok {
			if !s.FetchOne(ctx, id) {
				return false
			}
			current, _ = s.GetByID(id)
		}
		patch.DeriveShortfall(current)
	}
	if _, err := s.gw.UpdateAccount(ctx, id, mapper.AccountUpdate(patch, s.now())); err != nil {
		s.fail("update", id, err)
		return false
	}
	s.notifier.Notify(LevelSuccess, "Account updated")
	s.Refresh(ctx)
	return true
}

// Delete removes an account remotely and then drops it, along with its local
// projects, from the cache without refetching.
func (s *AccountStore) Delete(ctx context.Context, id string) bool {
	if err := s.gw.DeleteAccount(ctx, id); err != nil {
		s.fail("delete", id, err)
		return false
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.accounts = slices.Delete(s.accounts, i, i+1)
	}
	s.mu.Unlock()

	if n, err := s.projects.DeleteForAccount(id); err != nil {
		s.logger.Warn("failed to drop local projects", "account_id", id, "err", err)
	} else if n > 0 {
		s.logger.Debug("dropped local projects", "account_id", id, "count", n)
	}
	s.notifier.Notify(LevelSuccess, "Account deleted")
	return true
}

// GetByID returns a cached account with its local projects attached. A false
// result means the account is not loaded, not that it does not exist.
func (s *AccountStore) GetByID(id string) (models.Account, bool) {
	s.mu.RLock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.RUnlock()
		return models.Account{}, false
	}
	acc := cloneAccount(s.accounts[i])
	s.mu.RUnlock()

	acc.Projects = s.projects.ForAccount(id)
	return acc, true
}

// Accounts returns a snapshot of the cache in backend order.
func (s *AccountStore) Accounts() []models.Account {
	s.mu.RLock()
	out := make([]models.Account, len(s.accounts))
	for i, a := range s.accounts {
		out[i] = cloneAccount(a)
	}
	s.mu.RUnlock()

	for i := range out {
		out[i].Projects = s.projects.ForAccount(out[i].ID)
	}
	return out
}

// State returns the lifecycle state.
func (s *AccountStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the last failed refresh, cleared by the next
// successful one.
func (s *AccountStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SearchByUnit queries the backend by business unit without touching the cache.
func (s *AccountStore) SearchByUnit(ctx context.Context, unit string) []models.Account {
	recs, err := s.gw.SearchAccountsByUnit(ctx, unit)
	if err != nil {
		s.fail("search", "", err)
		return nil
	}
	return mapper.Accounts(recs)
}

// Profiles lists every strategic profile known to the backend.
func (s *AccountStore) Profiles(ctx context.Context) []models.StrategicProfile {
	recs, err := s.gw.ListProfiles(ctx)
	if err != nil {
		s.fail("list profiles", "", err)
		return nil
	}
	return mapper.Profiles(recs)
}

// Profile fetches one strategic profile by its id.
func (s *AccountStore) Profile(ctx context.Context, id string) (models.StrategicProfile, bool) {
	rec, err := s.gw.GetProfile(ctx, id)
	if err != nil {
		s.fail("get profile", "", err)
		return models.StrategicProfile{}, false
	}
	return mapper.Profile(*rec), true
}

// SaveProfile creates the profile when it has no id and updates it otherwise,
// then re-attaches it to the cached account.
func (s *AccountStore) SaveProfile(ctx context.Context, p models.StrategicProfile) bool {
	if err := models.Validate(p); err != nil {
		s.fail("save profile", p.AccountID, err)
		return false
	}
	var err error
	if p.ID == "" {
		_, err = s.gw.CreateProfile(ctx, mapper.ProfileCreate(p))
	} else {
		_, err = s.gw.UpdateProfile(ctx, p.ID, mapper.ProfileUpdate(p))
	}
	if err != nil {
		s.fail("save profile", p.AccountID, err)
		return false
	}
	s.notifier.Notify(LevelSuccess, "Strategic profile saved")
	s.FetchProfileFor(ctx, p.AccountID)
	return true
}

// DeleteProfile removes a strategic profile and detaches it locally.
func (s *AccountStore) DeleteProfile(ctx context.Context, accountID, profileID string) bool {
	if err := s.gw.DeleteProfile(ctx, profileID); err != nil {
		s.fail("delete profile", accountID, err)
		return false
	}

	s.mu.Lock()
	if i := s.indexOf(accountID); i >= 0 {
		s.accounts[i].StrategicProfiles = slices.DeleteFunc(s.accounts[i].StrategicProfiles, func(p models.StrategicProfile) bool {
			return p.ID == profileID
		})
	}
	s.mu.Unlock()

	s.notifier.Notify(LevelSuccess, "Strategic profile deleted")
	return true
}

// AddProject adds a local project to an account.
func (s *AccountStore) AddProject(p models.Project) (models.Project, error) {
	return s.projects.Add(p)
}

// UpdateProject replaces a local project.
func (s *AccountStore) UpdateProject(p models.Project) (models.Project, error) {
	return s.projects.Update(p)
}

// DeleteProject removes a local project.
func (s *AccountStore) DeleteProject(id string) error {
	return s.projects.Delete(id)
}

// ProjectsFor lists the local projects of an account.
func (s *AccountStore) ProjectsFor(accountID string) []models.Project {
	return s.projects.ForAccount(accountID)
}

// Project returns a local project by id.
func (s *AccountStore) Project(id string) (models.Project, bool) {
	return s.projects.Get(id)
}

// ProjectName returns the name of a local project.
func (s *AccountStore) ProjectName(id string) (string, bool) {
	return s.projects.ProjectName(id)
}

// fail logs a failure with its classification and notifies the operator.
func (s *AccountStore) fail(op, accountID string, err error) {
	keyvals := []any{"op", op}
	if accountID != "" {
		keyvals = append(keyvals, "account_id", accountID)
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		keyvals = append(keyvals, "kind", apiErr.Kind)
		if apiErr.StatusCode != 0 {
			keyvals = append(keyvals, "status", apiErr.StatusCode)
		}
	}
	keyvals = append(keyvals, "err", err)
	s.logger.Error("account store operation failed", keyvals...)
	s.notifier.Notify(LevelError, api.Message(err))
}

// indexOf must be called with mu held.
func (s *AccountStore) indexOf(id string) int {
	return slices.IndexFunc(s.accounts, func(a models.Account) bool { return a.ID == id })
}

func cloneAccount(a models.Account) models.Account {
	a.StrategicProfiles = slices.Clone(a.StrategicProfiles)
	a.Projects = nil
	return a
}
