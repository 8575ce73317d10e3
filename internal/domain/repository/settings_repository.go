package repository

// SettingsRepository estado de configuración del negocio que vive junto al ledger.
type SettingsRepository interface {
	ReinvestmentPercent() int
	SetReinvestmentPercent(percent int)
}
