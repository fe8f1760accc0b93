package model

const (
	HealthStatusOK        = "ok"
	HealthMessage         = "TokRecharge migration server running"
	MigrationInProgress   = "in_progress"
	DatabaseNotConfigured = "not configured"
)

// HealthStatus represents the health check status
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Migration string `json:"migration"`
}

// NewHealthStatus builds the health payload. databaseURL is echoed as-is when
// set, otherwise the database is reported as not configured.
func NewHealthStatus(databaseURL string) *HealthStatus {
	database := databaseURL
	if database == "" {
		database = DatabaseNotConfigured
	}

	return &HealthStatus{
		Status:    HealthStatusOK,
		Message:   HealthMessage,
		Database:  database,
		Migration: MigrationInProgress,
	}
}
