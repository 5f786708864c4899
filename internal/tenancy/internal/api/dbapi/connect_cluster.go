package dbapi

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

type ConnectClusterStatus string

const (
	ConnectClusterHealthy ConnectClusterStatus = "HEALTHY"
	ConnectClusterIdle    ConnectClusterStatus = "IDLE"
)

// ConnectCluster is a Kafka Connect cluster declared by a namespace. Its health is derived by
// the health check and never stored.
type ConnectCluster struct {
	db.Model
	Name      string `gorm:"uniqueIndex:idx_connect_clusters_cluster_name"`
	Cluster   string `gorm:"uniqueIndex:idx_connect_clusters_cluster_name"`
	Namespace string `gorm:"index"`
	URL       string
	Username  string
	Password  string
}

type ConnectClusterList []*ConnectCluster
