package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . MigrationUseCase

import (
	"github.com/tokrecharge/migration-server/pkg/domain/model"
)

// MigrationUseCase provides the fixed payloads served while the main
// application is being migrated
type MigrationUseCase interface {
	// Health returns the health status payload
	Health() *model.HealthStatus

	// Tools returns the tool list in display order
	Tools() []model.Tool

	// Countries returns the country list in display order
	Countries() []model.Country
}
