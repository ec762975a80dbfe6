package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotSoftDeletable is returned when SoftDelete is called on a repository
// whose entity has no active/available flag.
var ErrNotSoftDeletable = errors.New("entity does not support soft delete")

// Patch applies a partial field merge onto an entity. Fields left nil in the
// patch do not touch the row.
type Patch[T any] interface {
	Apply(*T)
}

// Repository is the uniform persistence layer for one entity type. Entities
// with an active/available flag get it applied on every lookup, so an
// inactive row behaves as absent. Absence is a value, not an error: lookups
// return (nil, nil) for missing rows.
//
// Update and SoftDelete are read-modify-write with no version column; two
// concurrent writers to the same row are last-writer-wins.
type Repository[T any] struct {
	db        *gorm.DB
	activeCol string
}

type Option func(*settings)

type settings struct {
	activeCol string
}

// WithActiveColumn marks the entity as soft-deletable via the given boolean
// column (is_active or is_available).
func WithActiveColumn(col string) Option {
	return func(s *settings) {
		s.activeCol = col
	}
}

func New[T any](db *gorm.DB, opts ...Option) *Repository[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &Repository[T]{db: db, activeCol: s.activeCol}
}

func (r *Repository[T]) scoped() *gorm.DB {
	tx := r.db
	if r.activeCol != "" {
		tx = tx.Where(r.activeCol+" = ?", true)
	}
	return tx
}

// ListActive returns all rows, filtered to the active flag when the entity
// has one, unfiltered otherwise. Ordering is unspecified.
func (r *Repository[T]) ListActive() ([]T, error) {
	var rows []T
	if err := r.scoped().Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns the row matching the primary key, or (nil, nil) when no
// visible row matches.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var row T
	err := r.scoped().First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the row and fills generated id and timestamps in place.
func (r *Repository[T]) Create(row *T) error {
	return r.db.Create(row).Error
}

// Update loads the row (honoring the active filter), applies the patch and
// persists. Returns (nil, nil) when the row is missing or inactive.
func (r *Repository[T]) Update(id uint, patch Patch[T]) (*T, error) {
	row, err := r.GetByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	patch.Apply(row)
	if err := r.db.Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// SoftDelete flips the active flag to false. Returns false both for a
// genuinely absent id and for an already-inactive one, since the lookup is
// active-filtered.
func (r *Repository[T]) SoftDelete(id uint) (bool, error) {
	if r.activeCol == "" {
		return false, ErrNotSoftDeletable
	}
	row, err := r.GetByID(id)
	if err != nil || row == nil {
		return false, err
	}
	if err := r.db.Model(row).Update(r.activeCol, false).Error; err != nil {
		return false, err
	}
	return true, nil
}
