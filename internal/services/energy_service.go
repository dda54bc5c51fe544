package services

import (
	"appleaday/internal/models"
	"appleaday/internal/repositories"
	"appleaday/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// EnergyService handles business logic for the energy journal.
type EnergyService struct {
	energyRepo repositories.EnergyRepository
	mqClient   *rabbitmq.Client
}

// NewEnergyService creates a new EnergyService. The RabbitMQ client may be
// nil, in which case event publishing is skipped.
func NewEnergyService(energyRepo repositories.EnergyRepository, mqClient *rabbitmq.Client) *EnergyService {
	return &EnergyService{
		energyRepo: energyRepo,
		mqClient:   mqClient,
	}
}

// ListEntries retrieves all journal entries.
func (s *EnergyService) ListEntries() ([]models.Energy, error) {
	return s.energyRepo.GetAll()
}

// CreateEntry persists a new journal entry and publishes an entry-logged
// event.
func (s *EnergyService) CreateEntry(entry *models.Energy) error {
	if err := s.energyRepo.Create(entry); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"event":           "energy.entry_logged",
			"entry_id":        entry.ID,
			"wellbeing":       entry.Wellbeing,
			"mental_stress":   entry.MentalStress,
			"physical_stress": entry.PhysicalStress,
		}
		if err := s.mqClient.PublishEntryLogged(event); err != nil {
			logrus.WithError(err).Warnf("failed to publish entry-logged event for entry %d", entry.ID)
		}
	} else {
		logrus.Debug("RabbitMQ client is not initialized, skipping event publication")
	}

	return nil
}

// UpdateEntry replaces all three ratings of an existing entry.
func (s *EnergyService) UpdateEntry(id uint, entry *models.Energy) error {
	if _, err := s.energyRepo.GetByID(id); err != nil {
		return err
	}
	entry.ID = id
	return s.energyRepo.Update(entry)
}

// DeleteEntry deletes a journal entry by its ID.
func (s *EnergyService) DeleteEntry(id uint) error {
	return s.energyRepo.Delete(id)
}
