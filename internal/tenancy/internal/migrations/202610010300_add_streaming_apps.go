package migrations

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
)

func addStreamingApps() *gormigrate.Migration {
	type StreamingApp struct {
		db.Model
		Name      string `gorm:"uniqueIndex:idx_streaming_apps_cluster_name"`
		Cluster   string `gorm:"uniqueIndex:idx_streaming_apps_cluster_name"`
		Namespace string `gorm:"index"`
	}

	return db.CreateMigrationFromActions("202610010300",
		db.CreateTableAction(&StreamingApp{}),
	)
}
