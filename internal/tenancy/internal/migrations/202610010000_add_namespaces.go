package migrations

// Migrations should NEVER use types from other packages. Types can change
// and then migrations run on a _new_ database will fail or behave unexpectedly.
// Instead of importing types, always re-create the type in the migration.

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
)

func addNamespaces() *gormigrate.Migration {
	type Namespace struct {
		db.Model
		Name             string `gorm:"uniqueIndex:idx_namespaces_cluster_name"`
		Cluster          string `gorm:"uniqueIndex:idx_namespaces_cluster_name"`
		KafkaUser        string
		ProducerByteRate *float64
		ConsumerByteRate *float64
	}

	return db.CreateMigrationFromActions("202610010000",
		db.CreateTableAction(&Namespace{}),
	)
}
