package dbapi

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

type Connector struct {
	db.Model
	Name           string `gorm:"uniqueIndex:idx_connectors_cluster_name"`
	Cluster        string `gorm:"uniqueIndex:idx_connectors_cluster_name"`
	Namespace      string `gorm:"index"`
	ConnectCluster string
	Config         api.NullableStringMap `gorm:"type:jsonb"`
	Status         ResourceStatus        `gorm:"embedded;embeddedPrefix:status_"`
	Generation     int64
}

type ConnectorList []*Connector

// ForConnectCluster returns the connectors deployed on the named Connect cluster
func (l ConnectorList) ForConnectCluster(name string) ConnectorList {
	var result ConnectorList
	for _, c := range l {
		if c.ConnectCluster == name {
			result = append(result, c)
		}
	}
	return result
}
