// ABOUTME: In-memory keyed tables for entities with no backend endpoint
// ABOUTME: Schemas for the go-memdb project and stakeholder tables
package store

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const (
	projectTable     = "projects"
	stakeholderTable = "stakeholders"

	indexID      = "id"
	indexAccount = "account"
	indexProject = "project"
)

// ErrNotFound is returned by local collections when an id is unknown.
var ErrNotFound = errors.New("not found")

func projectSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			projectTable: {
				Name: projectTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexAccount: {
						Name:    indexAccount,
						Indexer: &memdb.StringFieldIndex{Field: "AccountID"},
					},
				},
			},
		},
	}
}

func stakeholderSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			stakeholderTable: {
				Name: stakeholderTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexAccount: {
						Name:    indexAccount,
						Indexer: &memdb.StringFieldIndex{Field: "AccountID"},
					},
					indexProject: {
						Name:    indexProject,
						Indexer: &memdb.StringFieldIndex{Field: "ProjectID"},
					},
				},
			},
		},
	}
}

// collect drains a memdb iterator through a copy function.
func collect[T any](txn *memdb.Txn, table, index string, copyFn func(any) T, args ...any) ([]T, error) {
	it, err := txn.Get(table, index, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", table, index, err)
	}
	var out []T
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, copyFn(obj))
	}
	return out, nil
}
