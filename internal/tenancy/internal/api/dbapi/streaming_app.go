package dbapi

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

// StreamingApp declares a stream processing application of a namespace. Its name is the application id,
// which prefixes every internal topic and transactional id the application creates.
type StreamingApp struct {
	db.Model
	Name      string `gorm:"uniqueIndex:idx_streaming_apps_cluster_name"`
	Cluster   string `gorm:"uniqueIndex:idx_streaming_apps_cluster_name"`
	Namespace string `gorm:"index"`
}

type StreamingAppList []*StreamingApp
