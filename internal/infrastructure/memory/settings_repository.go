package memory

import (
	"sync"

	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración mutable del negocio (hoy solo el % de reinversión).
type SettingsRepo struct {
	mu                  sync.Mutex
	reinvestmentPercent int
}

// NewSettingsRepo construye la configuración con el porcentaje inicial.
func NewSettingsRepo(reinvestmentPercent int) *SettingsRepo {
	return &SettingsRepo{reinvestmentPercent: reinvestmentPercent}
}

// ReinvestmentPercent devuelve el porcentaje vigente.
func (r *SettingsRepo) ReinvestmentPercent() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reinvestmentPercent
}

// SetReinvestmentPercent guarda el porcentaje tal cual; el clamp 0-100
// lo aplica el caso de uso de métricas.
func (r *SettingsRepo) SetReinvestmentPercent(percent int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reinvestmentPercent = percent
}
