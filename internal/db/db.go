package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/agenda-pro/internal/config"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// índice parcial: um só agendamento não cancelado por
// (profissional, data, horário). É a garantia final contra corrida.
const activeSlotIndexDDL = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_active_slot
ON appointments (professional_id, date, start_time)
WHERE status <> 'canceled'
`

func NewDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{PrepareStmt: true}
	if cfg.IsProduction() {
		gcfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Plan{},
		&models.Tenant{},
		&models.User{},
		&models.ProfessionalType{},
		&models.Professional{},
		&models.Service{},
		&models.AvailabilityOverride{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(activeSlotIndexDDL).Error; err != nil {
		return nil, fmt.Errorf("create active slot index: %w", err)
	}

	res := db.Exec(`
        UPDATE tenants
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone)
	if res.Error != nil {
		logger.Warn("timezone backfill failed", zap.Error(res.Error))
	} else if res.RowsAffected > 0 {
		logger.Info("timezone backfill", zap.Int64("tenants", res.RowsAffected))
	}

	return db, nil
}
