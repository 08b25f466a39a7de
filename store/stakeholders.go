// ABOUTME: Local-only stakeholder collection indexed by account and project
// ABOUTME: Writes recompute the relationship score and take project names from the project
package store

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/hashicorp/go-memdb"

	"github.com/Akshada2906/circle-insights/models"
)

// ProjectLookup resolves a project id to the current project.
// *AccountStore satisfies it.
type ProjectLookup interface {
	Project(id string) (models.Project, bool)
}

// StakeholderStore holds stakeholders in memory for the session.
type StakeholderStore struct {
	db       *memdb.MemDB
	projects ProjectLookup
	now      func() time.Time
}

// NewStakeholderStore creates an empty stakeholder collection. projects may be
// nil, in which case project references are not checked and the supplied
// project name is kept as-is.
func NewStakeholderStore(projects ProjectLookup) (*StakeholderStore, error) {
	db, err := memdb.NewMemDB(stakeholderSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create stakeholder table: %w", err)
	}
	return &StakeholderStore{db: db, projects: projects, now: time.Now}, nil
}

// prepare recomputes derived fields and validates the stakeholder along with
// its project reference.
func (s *StakeholderStore) prepare(st *models.Stakeholder) error {
	st.SetConnections(st.Connections)

	errs := models.ValidationErrors{}
	if err := models.Validate(*st); err != nil {
		var verrs models.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		maps.Copy(errs, verrs)
	}
	if msg := s.linkProject(st); msg != "" {
		if _, exists := errs["project_id"]; !exists {
			errs["project_id"] = msg
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// linkProject copies the project name onto st. It returns a message when the
// project is unknown or belongs to another account.
func (s *StakeholderStore) linkProject(st *models.Stakeholder) string {
	if s.projects == nil || st.ProjectID == "" {
		return ""
	}
	p, ok := s.projects.Project(st.ProjectID)
	if !ok {
		st.ProjectName = ""
		return "must be an existing project"
	}
	if p.AccountID != st.AccountID {
		st.ProjectName = ""
		return "must belong to the same account"
	}
	st.ProjectName = p.Name
	return ""
}

// resyncName refreshes the project name of a stored row. A project deleted
// since the write keeps its last known name.
func (s *StakeholderStore) resyncName(st *models.Stakeholder) {
	if s.projects == nil {
		return
	}
	if p, ok := s.projects.Project(st.ProjectID); ok {
		st.ProjectName = p.Name
	}
}

// Add validates and inserts a stakeholder.
func (s *StakeholderStore) Add(st models.Stakeholder) (models.Stakeholder, error) {
	if st.ID == "" {
		st.ID = models.NewStakeholderID()
	}
	if err := s.prepare(&st); err != nil {
		return models.Stakeholder{}, err
	}
	now := s.now()
	st.CreatedAt = now
	st.UpdatedAt = now

	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(stakeholderTable, indexID, st.ID)
	if err != nil {
		return models.Stakeholder{}, fmt.Errorf("failed to look up stakeholder: %w", err)
	}
	if existing != nil {
		return models.Stakeholder{}, fmt.Errorf("stakeholder %s already exists", st.ID)
	}
	if err := txn.Insert(stakeholderTable, cloneStakeholder(st)); err != nil {
		return models.Stakeholder{}, fmt.Errorf("failed to insert stakeholder: %w", err)
	}
	txn.Commit()
	return st, nil
}

// Update replaces the stakeholder with the same id.
func (s *StakeholderStore) Update(st models.Stakeholder) (models.Stakeholder, error) {
	if err := s.prepare(&st); err != nil {
		return models.Stakeholder{}, err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(stakeholderTable, indexID, st.ID)
	if err != nil {
		return models.Stakeholder{}, fmt.Errorf("failed to look up stakeholder: %w", err)
	}
	if raw == nil {
		return models.Stakeholder{}, fmt.Errorf("stakeholder %s: %w", st.ID, ErrNotFound)
	}
	st.CreatedAt = raw.(*models.Stakeholder).CreatedAt
	st.UpdatedAt = s.now()

	if err := txn.Insert(stakeholderTable, cloneStakeholder(st)); err != nil {
		return models.Stakeholder{}, fmt.Errorf("failed to update stakeholder: %w", err)
	}
	txn.Commit()
	return st, nil
}

// Delete removes a stakeholder.
func (s *StakeholderStore) Delete(id string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(stakeholderTable, indexID, id)
	if err != nil {
		return fmt.Errorf("failed to look up stakeholder: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("stakeholder %s: %w", id, ErrNotFound)
	}
	if err := txn.Delete(stakeholderTable, raw); err != nil {
		return fmt.Errorf("failed to delete stakeholder: %w", err)
	}
	txn.Commit()
	return nil
}

// Get returns a stakeholder by id.
func (s *StakeholderStore) Get(id string) (models.Stakeholder, bool) {
	raw, err := s.db.Txn(false).First(stakeholderTable, indexID, id)
	if err != nil || raw == nil {
		return models.Stakeholder{}, false
	}
	return s.read(raw), true
}

// All lists every stakeholder.
func (s *StakeholderStore) All() []models.Stakeholder {
	out, _ := collect(s.db.Txn(false), stakeholderTable, indexID, s.read)
	return out
}

// ByAccount lists the stakeholders of an account.
func (s *StakeholderStore) ByAccount(accountID string) []models.Stakeholder {
	out, _ := collect(s.db.Txn(false), stakeholderTable, indexAccount, s.read, accountID)
	return out
}

// ByProject lists the stakeholders attached to a project.
func (s *StakeholderStore) ByProject(projectID string) []models.Stakeholder {
	out, _ := collect(s.db.Txn(false), stakeholderTable, indexProject, s.read, projectID)
	return out
}

// read copies a stored row and refreshes its project name, since projects
// can be renamed after the stakeholder was written.
func (s *StakeholderStore) read(obj any) models.Stakeholder {
	st := *cloneStakeholder(*obj.(*models.Stakeholder))
	s.resyncName(&st)
	return st
}

func cloneStakeholder(st models.Stakeholder) *models.Stakeholder {
	st.Connections = slices.Clone(st.Connections)
	return &st
}
