// Package database provides the optional relational persistence adapter.
// It mirrors the record store contract exactly: one row per batch id with a
// uniqueness constraint, upsert-by-batch-id and delete-by-batch-id.
// Terminal failures surface as PersistenceError; in-memory state is never
// touched by a failed operation.
package database

import (
	"fmt"
	"time"

	"canefield/harvest-csv/internal/config"
	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"
	"canefield/harvest-csv/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HarvestRow is the relational form of a harvest record.
type HarvestRow struct {
	ID            uint            `gorm:"primaryKey"`
	BatchID       string          `gorm:"uniqueIndex;size:50;not null"`
	Method        string          `gorm:"size:20;not null"`
	HarvestDate   string          `gorm:"size:10;not null"` // DD/MM/YYYY
	PredictedTons decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	HarvestedTons decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Efficiency    decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Loss          decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Notes         string          `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName sets the table name used by gorm.
func (HarvestRow) TableName() string {
	return "harvest_batches"
}

// Adapter wraps a gorm connection to the harvest database.
type Adapter struct {
	db  *gorm.DB
	log *logrus.Logger
}

// Open connects to the database and migrates the harvest table.
func Open(dsn string) (*Adapter, error) {
	if dsn == "" {
		return nil, &harvesterror.PersistenceError{
			Op:  "connect",
			Err: fmt.Errorf("no database DSN configured (set database.dsn or DATABASE_URL)"),
		}
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, &harvesterror.PersistenceError{Op: "connect", Err: err}
	}

	if err := db.AutoMigrate(&HarvestRow{}); err != nil {
		return nil, &harvesterror.PersistenceError{Op: "migrate", Err: err}
	}

	return &Adapter{
		db:  db,
		log: config.Logger,
	}, nil
}

// Ping verifies the connection is usable.
func (a *Adapter) Ping() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return &harvesterror.PersistenceError{Op: "ping", Err: err}
	}
	if err := sqlDB.Ping(); err != nil {
		return &harvesterror.PersistenceError{Op: "ping", Err: err}
	}
	return nil
}

// UpsertRecord inserts the record or updates the existing row with the same
// batch id.
func (a *Adapter) UpsertRecord(rec models.HarvestRecord) error {
	row := toRow(rec)

	err := a.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "batch_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"method", "harvest_date", "predicted_tons", "harvested_tons",
			"efficiency", "loss", "notes", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return &harvesterror.PersistenceError{Op: "upsert", Err: err}
	}

	a.log.WithField("batch", rec.BatchID).Debug("Record upserted in database")
	return nil
}

// PushAll upserts every record and returns how many were written. It stops
// at the first failure.
func (a *Adapter) PushAll(records []models.HarvestRecord) (int, error) {
	for i, rec := range records {
		if err := a.UpsertRecord(rec); err != nil {
			return i, err
		}
	}
	return len(records), nil
}

// DeleteRecord removes the row with the given batch id. It returns false
// when no such row exists.
func (a *Adapter) DeleteRecord(batchID string) (bool, error) {
	res := a.db.Where("batch_id = ?", batchID).Delete(&HarvestRow{})
	if res.Error != nil {
		return false, &harvesterror.PersistenceError{Op: "delete", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}

// FetchAll reads every row in insertion order and rebuilds canonical
// records through the validator, passing the stored efficiency/loss as
// precomputed values. A row that fails validation aborts the whole fetch
// with a LoadError.
func (a *Adapter) FetchAll(limits config.Limits) ([]models.HarvestRecord, error) {
	var rows []HarvestRow
	if err := a.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, &harvesterror.PersistenceError{Op: "fetch", Err: err}
	}

	records := make([]models.HarvestRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := validation.ValidateAndBuild(models.RecordRow{
			BatchID:       row.BatchID,
			Method:        row.Method,
			Date:          row.HarvestDate,
			PredictedTons: row.PredictedTons.String(),
			HarvestedTons: row.HarvestedTons.String(),
			Efficiency:    row.Efficiency.StringFixed(2),
			Loss:          row.Loss.StringFixed(2),
			Notes:         row.Notes,
		}, limits)
		if err != nil {
			return nil, &harvesterror.LoadError{
				Source:  "database",
				BatchID: row.BatchID,
				Err:     err,
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func toRow(rec models.HarvestRecord) HarvestRow {
	return HarvestRow{
		BatchID:       rec.BatchID,
		Method:        string(rec.Method),
		HarvestDate:   rec.Date,
		PredictedTons: rec.PredictedTons,
		HarvestedTons: rec.HarvestedTons,
		Efficiency:    rec.Efficiency,
		Loss:          rec.Loss,
		Notes:         rec.Notes,
	}
}
