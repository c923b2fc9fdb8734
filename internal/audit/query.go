package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Filter da listagem de auditoria. From/To já vêm no fuso da loja;
// To é exclusivo.
type Filter struct {
	TenantID uint

	Action   string
	Entity   string
	EntityID *uint
	Actor    string

	From *time.Time
	To   *time.Time

	Page  int
	Limit int
}

// Normalize aplica página 1 e tamanho padrão quando fora dos limites.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = defaultPageSize
	}
	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Query lista o histórico da loja, mais recentes primeiro.
func (l *Logger) Query(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("tenant_id = ?", f.TenantID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if f.Actor != "" {
		q = q.Where("actor = ?", f.Actor)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
