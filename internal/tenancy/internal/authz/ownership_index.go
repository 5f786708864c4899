package authz

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
)

type ownedPattern struct {
	namespace   string
	resource    string
	patternType dbapi.PatternType
}

// OwnershipIndex maps every resource type to the patterns owned by each namespace. It is rebuilt on every
// reconciliation pass instead of being stored alongside the resources.
type OwnershipIndex struct {
	owned map[dbapi.ResourceType][]ownedPattern
}

func NewOwnershipIndex(aces dbapi.AccessControlEntryList) *OwnershipIndex {
	index := &OwnershipIndex{owned: map[dbapi.ResourceType][]ownedPattern{}}
	for _, ace := range aces {
		if ace.Permission != dbapi.PermissionOwner {
			continue
		}
		index.owned[ace.ResourceType] = append(index.owned[ace.ResourceType], ownedPattern{
			namespace:   ace.GrantedTo,
			resource:    ace.Resource,
			patternType: ace.PatternType,
		})
	}
	return index
}

// OwnerOf returns the namespace owning resource. When several patterns match, the most specific one wins.
func (i *OwnershipIndex) OwnerOf(resourceType dbapi.ResourceType, resource string) (string, bool) {
	best := -1
	owner := ""
	for _, p := range i.owned[resourceType] {
		ace := dbapi.AccessControlEntry{Resource: p.resource, PatternType: p.patternType}
		if !ace.Matches(resource) {
			continue
		}
		specificity := len(p.resource)
		if p.patternType == dbapi.PatternTypeLiteral {
			// a literal match is always more specific than any prefix
			specificity = len(resource) + 1
		}
		if specificity > best {
			best = specificity
			owner = p.namespace
		}
	}
	return owner, best >= 0
}

// IsOwnedBy reports whether namespace owns resource
func (i *OwnershipIndex) IsOwnedBy(namespace string, resourceType dbapi.ResourceType, resource string) bool {
	owner, ok := i.OwnerOf(resourceType, resource)
	return ok && owner == namespace
}
