package reconcilers

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
)

// ClusterSet is the reconcilers of one managed cluster
type ClusterSet struct {
	Cluster        *registry.ManagedCluster
	Topics         *TopicReconciler
	Acls           *AclReconciler
	Connectors     *ConnectorReconciler
	Users          *UserReconciler
	ConsumerGroups *ConsumerGroupOperations
}

// ClusterSets holds one ClusterSet per managed cluster, in configuration order
type ClusterSets struct {
	sets   []*ClusterSet
	byName map[string]*ClusterSet
}

func NewClusterSets(
	clusters *registry.Registry,
	namespaces services.NamespaceService,
	topics services.TopicService,
	aces services.AccessControlEntryService,
	streamingApps services.StreamingAppService,
	connectors services.ConnectorService,
	connectClusters services.ConnectClusterService,
) *ClusterSets {
	sets := &ClusterSets{byName: map[string]*ClusterSet{}}
	for _, cluster := range clusters.All() {
		set := &ClusterSet{
			Cluster:        cluster,
			Topics:         NewTopicReconciler(cluster, topics, aces),
			Acls:           NewAclReconciler(cluster, namespaces, aces, streamingApps),
			Connectors:     NewConnectorReconciler(cluster, connectors, connectClusters),
			Users:          NewUserReconciler(cluster, namespaces),
			ConsumerGroups: NewConsumerGroupOperations(cluster),
		}
		sets.sets = append(sets.sets, set)
		sets.byName[cluster.Name()] = set
	}
	return sets
}

func (s *ClusterSets) All() []*ClusterSet {
	return s.sets
}

func (s *ClusterSets) Get(cluster string) (*ClusterSet, bool) {
	set, ok := s.byName[cluster]
	return set, ok
}
