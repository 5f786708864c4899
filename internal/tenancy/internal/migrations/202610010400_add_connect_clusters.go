package migrations

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
)

func addConnectClusters() *gormigrate.Migration {
	type ConnectCluster struct {
		db.Model
		Name      string `gorm:"uniqueIndex:idx_connect_clusters_cluster_name"`
		Cluster   string `gorm:"uniqueIndex:idx_connect_clusters_cluster_name"`
		Namespace string `gorm:"index"`
		URL       string
		Username  string
		Password  string
	}

	return db.CreateMigrationFromActions("202610010400",
		db.CreateTableAction(&ConnectCluster{}),
	)
}
