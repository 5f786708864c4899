package dbapi

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

// Namespace is a tenant of a managed cluster. Byte rates are optional, unset values fall back to the cluster default.
type Namespace struct {
	db.Model
	Name             string `gorm:"uniqueIndex:idx_namespaces_cluster_name"`
	Cluster          string `gorm:"uniqueIndex:idx_namespaces_cluster_name"`
	KafkaUser        string
	ProducerByteRate *float64
	ConsumerByteRate *float64
}

type NamespaceList []*Namespace

// Principal returns the broker principal of the namespace user
func (n *Namespace) Principal() string {
	return UserPrincipal(n.KafkaUser)
}

// UserPrincipal formats a broker principal for a user name
func UserPrincipal(user string) string {
	return "User:" + user
}

// Names returns the namespace names in list order
func (l NamespaceList) Names() []string {
	names := make([]string, 0, len(l))
	for _, n := range l {
		names = append(names, n.Name)
	}
	return names
}

// ByName returns the namespace with the given name, or nil
func (l NamespaceList) ByName(name string) *Namespace {
	for _, n := range l {
		if n.Name == name {
			return n
		}
	}
	return nil
}
