package dbapi

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

type ResourceType string

const (
	ResourceTypeTopic           ResourceType = "TOPIC"
	ResourceTypeGroup           ResourceType = "GROUP"
	ResourceTypeConnect         ResourceType = "CONNECT"
	ResourceTypeConnectCluster  ResourceType = "CONNECT_CLUSTER"
	ResourceTypeTransactionalID ResourceType = "TRANSACTIONAL_ID"
)

type PatternType string

const (
	PatternTypeLiteral  PatternType = "LITERAL"
	PatternTypePrefixed PatternType = "PREFIXED"
)

type Permission string

const (
	PermissionOwner Permission = "OWNER"
	PermissionRead  Permission = "READ"
	PermissionWrite Permission = "WRITE"
)

// PublicGrantee grants a permission to every namespace of the cluster
const PublicGrantee = "*"

// AccessControlEntry grants Permission on a resource pattern, from Namespace (the grantor) to GrantedTo.
// Entries are immutable, a change is a delete followed by a create.
type AccessControlEntry struct {
	db.Model
	Name         string `gorm:"uniqueIndex:idx_aces_cluster_namespace_name"`
	Cluster      string `gorm:"uniqueIndex:idx_aces_cluster_namespace_name"`
	Namespace    string `gorm:"uniqueIndex:idx_aces_cluster_namespace_name"`
	ResourceType ResourceType
	PatternType  PatternType
	Permission   Permission
	Resource     string
	GrantedTo    string
	Generation   int64
}

type AccessControlEntryList []*AccessControlEntry

// IsPublic reports whether the entry is granted to every namespace
func (a *AccessControlEntry) IsPublic() bool {
	return a.GrantedTo == PublicGrantee
}

// Matches applies the entry pattern to a resource name
func (a *AccessControlEntry) Matches(resource string) bool {
	switch a.PatternType {
	case PatternTypeLiteral:
		return a.Resource == resource
	case PatternTypePrefixed:
		return len(resource) >= len(a.Resource) && resource[:len(a.Resource)] == a.Resource
	}
	return false
}

// Filter returns the entries accepted by keep
func (l AccessControlEntryList) Filter(keep func(ace *AccessControlEntry) bool) AccessControlEntryList {
	var result AccessControlEntryList
	for _, ace := range l {
		if keep(ace) {
			result = append(result, ace)
		}
	}
	return result
}
