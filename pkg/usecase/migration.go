package usecase

import (
	"bytes"
	_ "embed"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tokrecharge/migration-server/pkg/domain/interfaces"
	"github.com/tokrecharge/migration-server/pkg/domain/model"
)

//go:embed data/catalog.toml
var catalogTOML []byte

type migrationUseCase struct {
	health  *model.HealthStatus
	catalog *model.Catalog
}

var _ interfaces.MigrationUseCase = (*migrationUseCase)(nil)

// NewMigration creates a new instance of MigrationUseCase. The health payload
// and the catalog are built once here and never change afterwards.
func NewMigration(databaseURL string) (*migrationUseCase, error) {
	catalog, err := LoadCatalog(catalogTOML)
	if err != nil {
		return nil, err
	}

	return &migrationUseCase{
		health:  model.NewHealthStatus(databaseURL),
		catalog: catalog,
	}, nil
}

// LoadCatalog decodes catalog data in TOML format. Unknown keys are rejected
// so that a typo in the data file fails at startup instead of silently
// dropping a field from the API.
func LoadCatalog(data []byte) (*model.Catalog, error) {
	var catalog model.Catalog
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to decode catalog")
	}

	if len(catalog.Tools) == 0 {
		return nil, goerr.New("catalog has no tools")
	}
	if len(catalog.Countries) == 0 {
		return nil, goerr.New("catalog has no countries")
	}

	return &catalog, nil
}

// Health returns the health status payload
func (uc *migrationUseCase) Health() *model.HealthStatus {
	status := *uc.health
	return &status
}

// Tools returns a copy of the tool list
func (uc *migrationUseCase) Tools() []model.Tool {
	return slices.Clone(uc.catalog.Tools)
}

// Countries returns a copy of the country list
func (uc *migrationUseCase) Countries() []model.Country {
	return slices.Clone(uc.catalog.Countries)
}
