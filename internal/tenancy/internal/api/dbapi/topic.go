package dbapi

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/lib/pq"
)

type Topic struct {
	db.Model
	Name              string `gorm:"uniqueIndex:idx_topics_cluster_name"`
	Cluster           string `gorm:"uniqueIndex:idx_topics_cluster_name"`
	Namespace         string `gorm:"index"`
	Partitions        int32
	ReplicationFactor int16
	Configs           api.StringMap  `gorm:"type:jsonb"`
	Tags              pq.StringArray `gorm:"type:text[]"`
	Description       string
	Status            ResourceStatus `gorm:"embedded;embeddedPrefix:status_"`
	Generation        int64
}

type TopicList []*Topic

// ByName indexes the list by topic name
func (l TopicList) ByName() map[string]*Topic {
	index := make(map[string]*Topic, len(l))
	for _, t := range l {
		index[t.Name] = t
	}
	return index
}
