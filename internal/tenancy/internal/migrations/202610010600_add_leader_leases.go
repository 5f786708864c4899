package migrations

import (
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func addLeaderLeases() *gormigrate.Migration {
	type LeaderLease struct {
		db.Model
		Leader    string
		LeaseType string `gorm:"index"`
		Expires   *time.Time
	}

	leaseTypes := []string{"cluster_resources", "connect_health", "connector"}

	return db.CreateMigrationFromActions("202610010600",
		db.CreateTableAction(&LeaderLease{}),
		func(tx *gorm.DB, apply bool) error {
			if !apply {
				return nil
			}
			// seeded already expired so the first replica takes them
			expired := time.Now().Add(-time.Minute)
			for _, leaseType := range leaseTypes {
				if err := tx.Create(&LeaderLease{
					Model:     db.Model{ID: api.NewID()},
					LeaseType: leaseType,
					Expires:   &expired,
				}).Error; err != nil {
					return err
				}
			}
			return nil
		},
	)
}
