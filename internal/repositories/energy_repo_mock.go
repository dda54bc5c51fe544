package repositories

import (
	"sync"

	"appleaday/internal/models"
)

// MockEnergyRepository is an in-memory implementation of EnergyRepository.
type MockEnergyRepository struct {
	entries map[uint]models.Energy
	nextID  uint
	mu      sync.RWMutex
}

// NewMockEnergyRepository creates a new instance of MockEnergyRepository.
func NewMockEnergyRepository() *MockEnergyRepository {
	return &MockEnergyRepository{
		entries: make(map[uint]models.Energy),
		nextID:  1,
	}
}

// GetAll returns all entries ordered by ID.
func (r *MockEnergyRepository) GetAll() ([]models.Energy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryList := make([]models.Energy, 0, len(r.entries))
	for id := uint(1); id < r.nextID; id++ {
		if e, ok := r.entries[id]; ok {
			entryList = append(entryList, e)
		}
	}
	return entryList, nil
}

// GetByID returns an entry by its ID.
func (r *MockEnergyRepository) GetByID(id uint) (*models.Energy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

// Create adds a new entry, assigning the next ID.
func (r *MockEnergyRepository) Create(entry *models.Energy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == 0 {
		entry.ID = r.nextID
	}
	if entry.ID >= r.nextID {
		r.nextID = entry.ID + 1
	}
	r.entries[entry.ID] = *entry
	return nil
}

// Update modifies an existing entry's ratings.
func (r *MockEnergyRepository) Update(entry *models.Energy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[entry.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Wellbeing = entry.Wellbeing
	existing.MentalStress = entry.MentalStress
	existing.PhysicalStress = entry.PhysicalStress
	r.entries[entry.ID] = existing
	return nil
}

// Delete removes an entry by its ID.
func (r *MockEnergyRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
