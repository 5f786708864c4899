// Package authz decides resource ownership between the namespaces of a managed cluster.
// It performs no I/O, callers load the access control entries and pass them in.
package authz

import (
	"strings"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/samber/lo"
)

var (
	// resource types a namespace may grant to another namespace
	grantableResourceTypes = []dbapi.ResourceType{dbapi.ResourceTypeTopic, dbapi.ResourceTypeConnectCluster}
	grantablePermissions   = []dbapi.Permission{dbapi.PermissionRead, dbapi.PermissionWrite}
	patternTypes           = []dbapi.PatternType{dbapi.PatternTypeLiteral, dbapi.PatternTypePrefixed}
)

type AccessControl struct {
	aces       dbapi.AccessControlEntryList
	namespaces map[string]struct{}
}

// NewAccessControl builds the model over every entry of one managed cluster and the names of its namespaces
func NewAccessControl(aces dbapi.AccessControlEntryList, namespaces []string) *AccessControl {
	known := make(map[string]struct{}, len(namespaces))
	for _, ns := range namespaces {
		known[ns] = struct{}{}
	}
	return &AccessControl{aces: aces, namespaces: known}
}

// IsOwner reports whether namespace holds an OWNER entry of resourceType matching resource
func (a *AccessControl) IsOwner(namespace string, resourceType dbapi.ResourceType, resource string) bool {
	return lo.ContainsBy(a.aces, func(ace *dbapi.AccessControlEntry) bool {
		return ace.Permission == dbapi.PermissionOwner &&
			ace.ResourceType == resourceType &&
			ace.GrantedTo == namespace &&
			ace.Matches(resource)
	})
}

// OwnerEntries returns the OWNER entries of resourceType held by namespace
func (a *AccessControl) OwnerEntries(namespace string, resourceType dbapi.ResourceType) dbapi.AccessControlEntryList {
	return a.aces.Filter(func(ace *dbapi.AccessControlEntry) bool {
		return ace.Permission == dbapi.PermissionOwner &&
			ace.ResourceType == resourceType &&
			ace.GrantedTo == namespace
	})
}

// GrantedEntries returns the entries of resourceType that apply to namespace, public grants included
func (a *AccessControl) GrantedEntries(namespace string, resourceType dbapi.ResourceType) dbapi.AccessControlEntryList {
	return a.aces.Filter(func(ace *dbapi.AccessControlEntry) bool {
		return ace.ResourceType == resourceType && (ace.GrantedTo == namespace || ace.IsPublic())
	})
}

// MatchesAny reports whether one of the entries matches resource
func MatchesAny(aces dbapi.AccessControlEntryList, resource string) bool {
	return lo.ContainsBy(aces, func(ace *dbapi.AccessControlEntry) bool {
		return ace.Matches(resource)
	})
}

// Validate checks an entry a namespace grants to another namespace. Every violation is returned.
func (a *AccessControl) Validate(candidate *dbapi.AccessControlEntry, requestingNamespace string) []error {
	var errs []error

	if !lo.Contains(grantableResourceTypes, candidate.ResourceType) {
		errs = append(errs, errors.Validation("invalid resource type %q, allowed values are %s",
			candidate.ResourceType, join(grantableResourceTypes)))
	}
	if !lo.Contains(patternTypes, candidate.PatternType) {
		errs = append(errs, errors.Validation("invalid pattern type %q, allowed values are %s",
			candidate.PatternType, join(patternTypes)))
	}
	if !lo.Contains(grantablePermissions, candidate.Permission) {
		errs = append(errs, errors.Validation("invalid permission %q, allowed values are %s",
			candidate.Permission, join(grantablePermissions)))
	}
	if _, known := a.namespaces[candidate.GrantedTo]; !known && !candidate.IsPublic() {
		errs = append(errs, errors.Validation("invalid grantedTo %q, namespace does not exist", candidate.GrantedTo))
	}
	if candidate.GrantedTo == requestingNamespace {
		errs = append(errs, errors.Validation("invalid grantedTo %q, cannot grant an entry to yourself", candidate.GrantedTo))
	}
	if !a.ownsParent(requestingNamespace, candidate) {
		errs = append(errs, errors.Validation("invalid resource %q, namespace %q is neither OWNER of it nor of a top-level prefix",
			candidate.Resource, requestingNamespace))
	}
	return errs
}

// ValidateAsAdmin checks an entry created by an administrator. Only OWNER entries are checked: each OWNER
// entry of another namespace that collides with the candidate yields one error.
func (a *AccessControl) ValidateAsAdmin(candidate *dbapi.AccessControlEntry, requestingNamespace string) []error {
	if candidate.Permission != dbapi.PermissionOwner {
		return nil
	}
	var errs []error
	for _, existing := range a.aces {
		if existing.Permission != dbapi.PermissionOwner || existing.GrantedTo == requestingNamespace {
			continue
		}
		if Collide(existing, candidate) {
			errs = append(errs, errors.Conflict("%s %s %q collides with %s %q owned by namespace %q",
				candidate.PatternType, candidate.ResourceType, candidate.Resource,
				existing.PatternType, existing.Resource, existing.GrantedTo))
		}
	}
	return errs
}

// ownsParent reports whether the namespace owns the candidate resource. An owned prefix covers any resource
// starting with it, an owned literal covers a literal or prefixed candidate naming the same resource.
func (a *AccessControl) ownsParent(namespace string, candidate *dbapi.AccessControlEntry) bool {
	return lo.ContainsBy(a.OwnerEntries(namespace, candidate.ResourceType), func(owned *dbapi.AccessControlEntry) bool {
		switch owned.PatternType {
		case dbapi.PatternTypePrefixed:
			return strings.HasPrefix(candidate.Resource, owned.Resource)
		case dbapi.PatternTypeLiteral:
			return candidate.Resource == owned.Resource
		}
		return false
	})
}

// Collide reports whether two entries of the same resource type cover overlapping resources. The relation is symmetric.
func Collide(a, b *dbapi.AccessControlEntry) bool {
	if a.ResourceType != b.ResourceType {
		return false
	}
	if a.Resource == b.Resource && a.PatternType == b.PatternType {
		return true
	}
	if a.PatternType == dbapi.PatternTypePrefixed && strings.HasPrefix(b.Resource, a.Resource) {
		return true
	}
	return b.PatternType == dbapi.PatternTypePrefixed && strings.HasPrefix(a.Resource, b.Resource)
}

func join[T ~string](values []T) string {
	return strings.Join(lo.Map(values, func(v T, _ int) string { return string(v) }), ", ")
}
