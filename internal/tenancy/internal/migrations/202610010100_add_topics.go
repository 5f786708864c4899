package migrations

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
)

func addTopics() *gormigrate.Migration {
	type Topic struct {
		db.Model
		Name              string `gorm:"uniqueIndex:idx_topics_cluster_name"`
		Cluster           string `gorm:"uniqueIndex:idx_topics_cluster_name"`
		Namespace         string `gorm:"index"`
		Partitions        int32
		ReplicationFactor int16
		Configs           string `gorm:"type:jsonb"`
		Tags              string `gorm:"type:text[]"`
		Description       string
		StatusPhase       string
		StatusMessage     string
		Generation        int64
	}

	return db.CreateMigrationFromActions("202610010100",
		db.CreateTableAction(&Topic{}),
	)
}
