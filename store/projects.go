// ABOUTME: Local-only project collection keyed by project id
// ABOUTME: Projects have no backend endpoint and live only for the session
package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/go-memdb"

	"github.com/Akshada2906/circle-insights/models"
)

// ProjectStore holds projects in memory, indexed by id and account.
type ProjectStore struct {
	db  *memdb.MemDB
	now func() time.Time
}

// NewProjectStore creates an empty project collection.
func NewProjectStore() (*ProjectStore, error) {
	db, err := memdb.NewMemDB(projectSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create project table: %w", err)
	}
	return &ProjectStore{db: db, now: time.Now}, nil
}

// Add validates and inserts a project, assigning an id when none is set.
func (s *ProjectStore) Add(p models.Project) (models.Project, error) {
	if p.ID == "" {
		p.ID = models.NewProjectID()
	}
	p.TechStack = models.NormalizeTechStack(p.TechStack)
	if p.Status == "" {
		p.Status = models.ProjectActive
	}
	if err := models.Validate(p); err != nil {
		return models.Project{}, err
	}

	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(projectTable, indexID, p.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to look up project: %w", err)
	}
	if existing != nil {
		return models.Project{}, fmt.Errorf("project %s already exists", p.ID)
	}
	if err := txn.Insert(projectTable, cloneProject(p)); err != nil {
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}
	txn.Commit()
	return p, nil
}

// Update replaces the project with the same id.
func (s *ProjectStore) Update(p models.Project) (models.Project, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(projectTable, indexID, p.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to look up project: %w", err)
	}
	if raw == nil {
		return models.Project{}, fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	current := raw.(*models.Project)

	p.TechStack = models.NormalizeTechStack(p.TechStack)
	if p.Status == "" {
		p.Status = current.Status
	}
	if err := models.Validate(p); err != nil {
		return models.Project{}, err
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now()

	if err := txn.Insert(projectTable, cloneProject(p)); err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	txn.Commit()
	return p, nil
}

// Delete removes a project.
func (s *ProjectStore) Delete(id string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(projectTable, indexID, id)
	if err != nil {
		return fmt.Errorf("failed to look up project: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err := txn.Delete(projectTable, raw); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	txn.Commit()
	return nil
}

// DeleteForAccount removes every project of an account and returns how many
// were removed.
func (s *ProjectStore) DeleteForAccount(accountID string) (int, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(projectTable, indexAccount, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete projects: %w", err)
	}
	txn.Commit()
	return n, nil
}

// Get returns a project by id.
func (s *ProjectStore) Get(id string) (models.Project, bool) {
	raw, err := s.db.Txn(false).First(projectTable, indexID, id)
	if err != nil || raw == nil {
		return models.Project{}, false
	}
	return *cloneProject(*raw.(*models.Project)), true
}

// ForAccount lists an account's projects in creation order.
func (s *ProjectStore) ForAccount(accountID string) []models.Project {
	out, _ := collect(s.db.Txn(false), projectTable, indexAccount, copyProject, accountID)
	return out
}

// All lists every project.
func (s *ProjectStore) All() []models.Project {
	out, _ := collect(s.db.Txn(false), projectTable, indexID, copyProject)
	return out
}

// ProjectName returns the current name of a project.
func (s *ProjectStore) ProjectName(id string) (string, bool) {
	p, ok := s.Get(id)
	if !ok {
		return "", false
	}
	return p.Name, true
}

// cloneProject copies a project so stored rows never share slices with callers.
func cloneProject(p models.Project) *models.Project {
	p.TechStack = slices.Clone(p.TechStack)
	return &p
}

func copyProject(obj any) models.Project {
	return *cloneProject(*obj.(*models.Project))
}
