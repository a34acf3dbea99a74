package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
)

// GormInventoryRepository implements inventory.Repository using GORM.
// Only the latest player snapshot is kept; a sync replaces it wholesale,
// matching the read-only snapshot lifecycle of the rules layer.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// ListEntries retrieves the inventory entries of the latest snapshot in
// their original order.
func (r *GormInventoryRepository) ListEntries(ctx context.Context) ([]*inventory.Entry, error) {
	snapshotID, err := r.latestSnapshotID(ctx)
	if err != nil {
		return nil, err
	}
	if snapshotID == "" {
		return []*inventory.Entry{}, nil
	}

	var models []InventoryEntryModel
	if err := r.db.WithContext(ctx).Where("snapshot_id = ?", snapshotID).Order("position").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory entries: %w", err)
	}

	materials, err := r.materialIndex(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*inventory.Entry, 0, len(models))
	for i := range models {
		m := &models[i]
		entries = append(entries, &inventory.Entry{
			ID:                m.EntryID,
			Material:          materials[m.MaterialID],
			Quantity:          m.Quantity,
			DurabilityCurrent: m.DurabilityCurrent,
			DurabilityMax:     m.DurabilityMax,
			Quality:           m.Quality,
			UpdatedAt:         m.UpdatedAt,
		})
	}
	return entries, nil
}

// ListWorkstations retrieves the owned workstations of the latest snapshot.
func (r *GormInventoryRepository) ListWorkstations(ctx context.Context) ([]*inventory.OwnedWorkstation, error) {
	snapshotID, err := r.latestSnapshotID(ctx)
	if err != nil {
		return nil, err
	}
	if snapshotID == "" {
		return []*inventory.OwnedWorkstation{}, nil
	}

	var models []OwnedWorkstationModel
	if err := r.db.WithContext(ctx).Where("snapshot_id = ?", snapshotID).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list owned workstations: %w", err)
	}

	var workstationModels []WorkstationModel
	if err := r.db.WithContext(ctx).Find(&workstationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load workstations: %w", err)
	}
	names := make(map[int]string, len(workstationModels))
	for _, w := range workstationModels {
		names[w.ID] = w.Name
	}

	owned := make([]*inventory.OwnedWorkstation, 0, len(models))
	for _, m := range models {
		owned = append(owned, &inventory.OwnedWorkstation{
			Workstation: &catalog.Workstation{ID: m.WorkstationID, Name: names[m.WorkstationID]},
			Quantity:    m.Quantity,
		})
	}
	return owned, nil
}

// PlayerState retrieves the resource state of the latest snapshot.
// An empty cache yields a zero state rather than an error so decision
// commands degrade gracefully before the first sync.
func (r *GormInventoryRepository) PlayerState(ctx context.Context) (*inventory.PlayerResourceState, error) {
	snapshotID, err := r.latestSnapshotID(ctx)
	if err != nil {
		return nil, err
	}
	if snapshotID == "" {
		return &inventory.PlayerResourceState{}, nil
	}

	var model PlayerStateModel
	result := r.db.WithContext(ctx).Where("snapshot_id = ?", snapshotID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return &inventory.PlayerResourceState{}, nil
		}
		return nil, fmt.Errorf("failed to load player state: %w", result.Error)
	}

	return &inventory.PlayerResourceState{Energy: model.Energy, MaxEnergy: model.MaxEnergy}, nil
}

// ReplaceSnapshot stores a fresh player snapshot and drops every older one.
func (r *GormInventoryRepository) ReplaceSnapshot(
	ctx context.Context,
	entries []*inventory.Entry,
	workstations []*inventory.OwnedWorkstation,
	state *inventory.PlayerResourceState,
) error {
	snapshotID := uuid.NewString()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&InventoryEntryModel{}, &OwnedWorkstationModel{}, &PlayerStateModel{}, &SnapshotModel{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear snapshot: %w", err)
			}
		}

		if err := tx.Create(&SnapshotModel{ID: snapshotID}).Error; err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}

		for i, e := range entries {
			if e == nil {
				continue
			}
			model := &InventoryEntryModel{
				SnapshotID:        snapshotID,
				EntryID:           e.ID,
				Quantity:          e.Quantity,
				DurabilityCurrent: e.DurabilityCurrent,
				DurabilityMax:     e.DurabilityMax,
				Quality:           e.Quality,
				Position:          i,
				UpdatedAt:         e.UpdatedAt,
			}
			if e.Material != nil {
				model.MaterialID = e.Material.ID
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store inventory entry: %w", err)
			}
		}

		for _, w := range workstations {
			if w == nil || w.Workstation == nil {
				continue
			}
			model := &OwnedWorkstationModel{
				SnapshotID:    snapshotID,
				WorkstationID: w.Workstation.ID,
				Quantity:      w.Quantity,
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store owned workstation: %w", err)
			}
		}

		if state != nil {
			model := &PlayerStateModel{SnapshotID: snapshotID, Energy: state.Energy, MaxEnergy: state.MaxEnergy}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store player state: %w", err)
			}
		}

		return nil
	})
}

func (r *GormInventoryRepository) latestSnapshotID(ctx context.Context) (string, error) {
	var snapshot SnapshotModel
	result := r.db.WithContext(ctx).Order("created_at DESC").First(&snapshot)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to find latest snapshot: %w", result.Error)
	}
	return snapshot.ID, nil
}

func (r *GormInventoryRepository) materialIndex(ctx context.Context) (map[int]*catalog.Material, error) {
	var models []MaterialModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	materials := make(map[int]*catalog.Material, len(models))
	for i := range models {
		m := modelToMaterial(&models[i])
		materials[m.ID] = m
	}
	return materials, nil
}
