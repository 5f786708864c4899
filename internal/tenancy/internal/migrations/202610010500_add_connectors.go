package migrations

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
)

func addConnectors() *gormigrate.Migration {
	type Connector struct {
		db.Model
		Name           string `gorm:"uniqueIndex:idx_connectors_cluster_name"`
		Cluster        string `gorm:"uniqueIndex:idx_connectors_cluster_name"`
		Namespace      string `gorm:"index"`
		ConnectCluster string
		Config         string `gorm:"type:jsonb"`
		StatusPhase    string
		StatusMessage  string
		Generation     int64
	}

	return db.CreateMigrationFromActions("202610010500",
		db.CreateTableAction(&Connector{}),
	)
}
