package migrations

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
)

func addAccessControlEntries() *gormigrate.Migration {
	type AccessControlEntry struct {
		db.Model
		Name         string `gorm:"uniqueIndex:idx_aces_cluster_namespace_name"`
		Cluster      string `gorm:"uniqueIndex:idx_aces_cluster_namespace_name"`
		Namespace    string `gorm:"uniqueIndex:idx_aces_cluster_namespace_name"`
		ResourceType string
		PatternType  string
		Permission   string
		Resource     string
		GrantedTo    string
		Generation   int64
	}

	return db.CreateMigrationFromActions("202610010200",
		db.CreateTableAction(&AccessControlEntry{}),
		db.ExecAction("CREATE INDEX IF NOT EXISTS idx_aces_granted_to ON access_control_entries (cluster, granted_to)", ""),
	)
}
