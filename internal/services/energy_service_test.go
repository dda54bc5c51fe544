package services_test

import (
	"testing"

	"appleaday/internal/models"
	"appleaday/internal/repositories"
	"appleaday/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestEnergyService_CreateAndList(t *testing.T) {
	repo := repositories.NewMockEnergyRepository()
	// nil mq client: publishing is skipped, not an error.
	energyService := services.NewEnergyService(repo, nil)

	entry := &models.Energy{Wellbeing: 7, MentalStress: 3, PhysicalStress: 4}
	err := energyService.CreateEntry(entry)
	assert.NoError(t, err)
	assert.NotZero(t, entry.ID)

	entries, err := energyService.ListEntries()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].Wellbeing)
}

func TestEnergyService_UpdateEntry(t *testing.T) {
	repo := repositories.NewMockEnergyRepository()
	energyService := services.NewEnergyService(repo, nil)

	entry := &models.Energy{Wellbeing: 5, MentalStress: 5, PhysicalStress: 5}
	assert.NoError(t, energyService.CreateEntry(entry))

	err := energyService.UpdateEntry(entry.ID, &models.Energy{Wellbeing: 9, MentalStress: 2, PhysicalStress: 1})
	assert.NoError(t, err)

	updated, err := repo.GetByID(entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, 9, updated.Wellbeing)
	assert.Equal(t, 2, updated.MentalStress)
	assert.Equal(t, 1, updated.PhysicalStress)
}

func TestEnergyService_UpdateEntry_NotFound(t *testing.T) {
	repo := repositories.NewMockEnergyRepository()
	energyService := services.NewEnergyService(repo, nil)

	err := energyService.UpdateEntry(99, &models.Energy{Wellbeing: 9, MentalStress: 2, PhysicalStress: 1})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestEnergyService_DeleteEntry(t *testing.T) {
	repo := repositories.NewMockEnergyRepository()
	energyService := services.NewEnergyService(repo, nil)

	entry := &models.Energy{Wellbeing: 5, MentalStress: 5, PhysicalStress: 5}
	assert.NoError(t, energyService.CreateEntry(entry))

	assert.NoError(t, energyService.DeleteEntry(entry.ID))

	_, err := repo.GetByID(entry.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// A second delete of the same ID reports not-found.
	assert.ErrorIs(t, energyService.DeleteEntry(entry.ID), repositories.ErrNotFound)
}
