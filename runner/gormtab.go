package runner

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entryRow is the persisted shape of an Entry. Args are stored JSON-encoded.
type entryRow struct {
	ID         string `gorm:"primaryKey"`
	Expression string
	Routine    string
	Args       []byte
	Policy     int
}

func (entryRow) TableName() string { return "cron_entries" }

// GormTab is a Tab persisted through GORM, suitable for SQLite or any other
// supported dialect.
type GormTab struct {
	db *gorm.DB
}

// NewGormTab creates the entries table if needed and returns a persistent Tab.
func NewGormTab(db *gorm.DB) (*GormTab, error) {
	if err := db.AutoMigrate(&entryRow{}); err != nil {
		return nil, errors.Wrap(err, "migrating cron entries table")
	}
	return &GormTab{db: db}, nil
}

// Put stores an entry, replacing any entry with the same ID.
func (t *GormTab) Put(e Entry) error {
	args, err := json.Marshal(e.Args)
	if err != nil {
		return errors.Wrapf(err, "encoding args of entry %s", e.ID)
	}

	row := entryRow{
		ID:         e.ID,
		Expression: e.Expression,
		Routine:    e.Routine,
		Args:       args,
		Policy:     int(e.Policy),
	}
	return errors.Wrapf(t.db.Save(&row).Error, "storing entry %s", e.ID)
}

// All returns all stored entries.
func (t *GormTab) All() ([]*Entry, error) {
	var rows []entryRow
	if err := t.db.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "loading entries")
	}

	entries := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		entry := &Entry{
			ID:         row.ID,
			Expression: row.Expression,
			Routine:    row.Routine,
			Policy:     RunPolicy(row.Policy),
		}
		if len(row.Args) > 0 {
			if err := json.Unmarshal(row.Args, &entry.Args); err != nil {
				return nil, errors.Wrapf(err, "decoding args of entry %s", row.ID)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Remove deletes an entry by ID.
func (t *GormTab) Remove(e Entry) error {
	return errors.Wrapf(t.db.Delete(&entryRow{ID: e.ID}).Error, "removing entry %s", e.ID)
}

// Clear deletes all entries.
func (t *GormTab) Clear() error {
	err := t.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entryRow{}).Error
	return errors.Wrap(err, "clearing entries")
}
