// ABOUTME: Hand-written Gateway fake for failure injection in store tests
// ABOUTME: Records calls and serves canned records guarded by a mutex
package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/Akshada2906/circle-insights/api"
)

type fakeGateway struct {
	mu sync.Mutex

	accounts []api.AccountRecord
	profiles map[string][]api.StakeholderDetailRecord

	failList    error
	failGet     error
	failCreate  error
	failUpdate  error
	failDelete  error
	failProfile error

	calls   []string
	created []api.AccountCreate
	updates []api.AccountUpdate

	// listHook runs before ListAccounts returns, outside the lock.
	listHook func()
}

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeGateway) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeGateway) ListAccounts(ctx context.Context) ([]api.AccountRecord, error) {
	f.record("list")
	if f.listHook != nil {
		f.listHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList != nil {
		return nil, f.failList
	}
	return append([]api.AccountRecord(nil), f.accounts...), nil
}

func (f *fakeGateway) GetAccount(ctx context.Context, id string) (*api.AccountRecord, error) {
	f.record("get")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	for _, a := range f.accounts {
		if a.AccountID == id {
			return &a, nil
		}
	}
	return nil, &api.Error{Kind: api.KindApplication, Op: "get account", StatusCode: http.StatusNotFound, Message: "Account not found"}
}

func (f *fakeGateway) CreateAccount(ctx context.Context, in api.AccountCreate) (*api.AccountRecord, error) {
	f.record("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	f.created = append(f.created, in)
	rec := api.AccountRecord{AccountID: in.AccountID, AccountName: in.AccountName}
	f.accounts = append(f.accounts, rec)
	return &rec, nil
}

func (f *fakeGateway) UpdateAccount(ctx context.Context, id string, in api.AccountUpdate) (*api.AccountRecord, error) {
	f.record("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate != nil {
		return nil, f.failUpdate
	}
	f.updates = append(f.updates, in)
	for i, a := range f.accounts {
		if a.AccountID == id {
			if in.TeamSize != nil {
				f.accounts[i].TeamSize = in.TeamSize
			}
			if in.Shortfall2026 != nil {
				f.accounts[i].Shortfall2026 = in.Shortfall2026
			}
			return &f.accounts[i], nil
		}
	}
	return nil, &api.Error{Kind: api.KindApplication, Op: "update account", StatusCode: http.StatusNotFound, Message: "Account not found"}
}

func (f *fakeGateway) DeleteAccount(ctx context.Context, id string) error {
	f.record("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete != nil {
		return f.failDelete
	}
	for i, a := range f.accounts {
		if a.AccountID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeGateway) SearchAccountsByUnit(ctx context.Context, unit string) ([]api.AccountRecord, error) {
	f.record("search")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []api.AccountRecord
	for _, a := range f.accounts {
		if a.Unit != nil && *a.Unit == unit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeGateway) ListProfiles(ctx context.Context) ([]api.StakeholderDetailRecord, error) {
	f.record("list profiles")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []api.StakeholderDetailRecord
	for _, ps := range f.profiles {
		out = append(out, ps...)
	}
	return out, nil
}

func (f *fakeGateway) GetProfile(ctx context.Context, id string) (*api.StakeholderDetailRecord, error) {
	f.record("get profile")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ps := range f.profiles {
		for _, p := range ps {
			if p.ID == id {
				return &p, nil
			}
		}
	}
	return nil, &api.Error{Kind: api.KindApplication, Op: "get profile", StatusCode: http.StatusNotFound, Message: "Stakeholder detail not found"}
}

func (f *fakeGateway) ProfilesByAccount(ctx context.Context, accountID string) ([]api.StakeholderDetailRecord, error) {
	f.record("profiles by account")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failProfile != nil {
		return nil, f.failProfile
	}
	return append([]api.StakeholderDetailRecord(nil), f.profiles[accountID]...), nil
}

func (f *fakeGateway) CreateProfile(ctx context.Context, in api.StakeholderDetailCreate) (*api.StakeholderDetailRecord, error) {
	f.record("create profile")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failProfile != nil {
		return nil, f.failProfile
	}
	qbr := in.QBRHappening
	rec := api.StakeholderDetailRecord{ID: "p-new", AccountID: in.AccountID, Sponsor: &in.Sponsor, QBRHappening: &qbr}
	if f.profiles == nil {
		f.profiles = map[string][]api.StakeholderDetailRecord{}
	}
	f.profiles[in.AccountID] = append(f.profiles[in.AccountID], rec)
	return &rec, nil
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, id string, in api.StakeholderDetailUpdate) (*api.StakeholderDetailRecord, error) {
	f.record("update profile")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failProfile != nil {
		return nil, f.failProfile
	}
	for acc, ps := range f.profiles {
		for i, p := range ps {
			if p.ID == id {
				if in.Sponsor != nil {
					f.profiles[acc][i].Sponsor = in.Sponsor
				}
				return &f.profiles[acc][i], nil
			}
		}
	}
	return nil, &api.Error{Kind: api.KindApplication, Op: "update profile", StatusCode: http.StatusNotFound, Message: "Stakeholder detail not found"}
}

func (f *fakeGateway) DeleteProfile(ctx context.Context, id string) error {
	f.record("delete profile")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failProfile != nil {
		return f.failProfile
	}
	for acc, ps := range f.profiles {
		for i, p := range ps {
			if p.ID == id {
				f.profiles[acc] = append(ps[:i], ps[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// splitGateway serves the first ListAccounts call from lister and every other
// call from the embedded gateway.
type splitGateway struct {
	*fakeGateway
	lister *fakeGateway

	once sync.Once
}

func (g *splitGateway) ListAccounts(ctx context.Context) ([]api.AccountRecord, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		return g.lister.ListAccounts(ctx)
	}
	return g.fakeGateway.ListAccounts(ctx)
}

// collectingNotifier records notifications for assertions.
type collectingNotifier struct {
	mu   sync.Mutex
	seen []Notification
}

func (n *collectingNotifier) Notify(level Level, message string) {
	n.mu.Lock()
	n.seen = append(n.seen, Notification{Level: level, Message: message})
	n.mu.Unlock()
}

func (n *collectingNotifier) errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, s := range n.seen {
		if s.Level == LevelError {
			out = append(out, s.Message)
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
