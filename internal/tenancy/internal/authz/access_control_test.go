package authz

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
)

func ace(namespace string, resourceType dbapi.ResourceType, pattern dbapi.PatternType, permission dbapi.Permission, resource string, grantedTo string) *dbapi.AccessControlEntry {
	return &dbapi.AccessControlEntry{
		Namespace:    namespace,
		ResourceType: resourceType,
		PatternType:  pattern,
		Permission:   permission,
		Resource:     resource,
		GrantedTo:    grantedTo,
	}
}

func ownerAce(namespace string, pattern dbapi.PatternType, resource string) *dbapi.AccessControlEntry {
	return ace(namespace, dbapi.ResourceTypeTopic, pattern, dbapi.PermissionOwner, resource, namespace)
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name string
		a    *dbapi.AccessControlEntry
		b    *dbapi.AccessControlEntry
		want bool
	}{
		{
			name: "same resource and pattern",
			a:    ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
			b:    ownerAce("ns2", dbapi.PatternTypePrefixed, "project1"),
			want: true,
		},
		{
			name: "literal nested under a prefix",
			a:    ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
			b:    ownerAce("ns2", dbapi.PatternTypeLiteral, "project1_t1"),
			want: true,
		},
		{
			name: "prefix nested under a prefix",
			a:    ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
			b:    ownerAce("ns2", dbapi.PatternTypePrefixed, "project1_sub"),
			want: true,
		},
		{
			name: "prefix covering an existing literal",
			a:    ownerAce("ns1", dbapi.PatternTypeLiteral, "project2_t1"),
			b:    ownerAce("ns2", dbapi.PatternTypePrefixed, "proj"),
			want: true,
		},
		{
			name: "different literals",
			a:    ownerAce("ns1", dbapi.PatternTypeLiteral, "project1_t1"),
			b:    ownerAce("ns2", dbapi.PatternTypeLiteral, "project1_t2"),
			want: false,
		},
		{
			name: "literal and prefix with the same string",
			a:    ownerAce("ns1", dbapi.PatternTypeLiteral, "project1"),
			b:    ownerAce("ns2", dbapi.PatternTypePrefixed, "project1"),
			want: true,
		},
		{
			name: "unrelated prefixes",
			a:    ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
			b:    ownerAce("ns2", dbapi.PatternTypePrefixed, "project2"),
			want: false,
		},
		{
			name: "different resource types",
			a:    ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
			b:    ace("ns2", dbapi.ResourceTypeGroup, dbapi.PatternTypePrefixed, dbapi.PermissionOwner, "project1", "ns2"),
			want: false,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(Collide(tt.a, tt.b)).To(gomega.Equal(tt.want))
			g.Expect(Collide(tt.b, tt.a)).To(gomega.Equal(tt.want))
		})
	}
}

func TestCollide_PrefixedIsSymmetricForAnyNestedPattern(t *testing.T) {
	g := gomega.NewWithT(t)
	prefixes := []string{"a", "app", "app.", "app_orders"}
	suffixes := []string{"", "1", ".orders", "_x.y"}
	for _, prefix := range prefixes {
		for _, suffix := range suffixes {
			for _, pattern := range []dbapi.PatternType{dbapi.PatternTypeLiteral, dbapi.PatternTypePrefixed} {
				a := ownerAce("ns1", dbapi.PatternTypePrefixed, prefix)
				b := ownerAce("ns2", pattern, prefix+suffix)
				g.Expect(Collide(a, b)).To(gomega.BeTrue(), "%s vs %s %s", prefix, pattern, prefix+suffix)
				g.Expect(Collide(b, a)).To(gomega.BeTrue(), "%s %s vs %s", pattern, prefix+suffix, prefix)
			}
		}
	}
}

func TestAccessControl_ValidateAsAdmin(t *testing.T) {
	existing := dbapi.AccessControlEntryList{
		ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
		ownerAce("ns2", dbapi.PatternTypeLiteral, "project2_t1"),
	}
	tests := []struct {
		name       string
		candidate  *dbapi.AccessControlEntry
		namespace  string
		wantErrors int
	}{
		{
			name:       "prefix overlapping both owners",
			candidate:  ownerAce("ns3", dbapi.PatternTypePrefixed, "proj"),
			namespace:  "ns3",
			wantErrors: 2,
		},
		{
			name:       "same prefix as one owner",
			candidate:  ownerAce("ns3", dbapi.PatternTypePrefixed, "project1"),
			namespace:  "ns3",
			wantErrors: 1,
		},
		{
			name:       "unrelated prefix",
			candidate:  ownerAce("ns3", dbapi.PatternTypePrefixed, "project3_topic1_sub"),
			namespace:  "ns3",
			wantErrors: 0,
		},
		{
			name:       "entries of the requesting namespace are ignored",
			candidate:  ownerAce("ns1", dbapi.PatternTypePrefixed, "project1_sub"),
			namespace:  "ns1",
			wantErrors: 0,
		},
		{
			name:       "non owner entries are not checked",
			candidate:  ace("ns3", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, dbapi.PermissionRead, "proj", "ns3"),
			namespace:  "ns3",
			wantErrors: 0,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			ac := NewAccessControl(existing, []string{"ns1", "ns2", "ns3"})
			g.Expect(ac.ValidateAsAdmin(tt.candidate, tt.namespace)).To(gomega.HaveLen(tt.wantErrors))
		})
	}
}

func TestAccessControl_Validate(t *testing.T) {
	existing := dbapi.AccessControlEntryList{
		ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
		ownerAce("ns1", dbapi.PatternTypeLiteral, "shared_topic"),
		ace("ns1", dbapi.ResourceTypeConnectCluster, dbapi.PatternTypePrefixed, dbapi.PermissionOwner, "project1", "ns1"),
	}
	tests := []struct {
		name       string
		candidate  *dbapi.AccessControlEntry
		wantErrors int
	}{
		{
			name:       "read grant on an owned prefix",
			candidate:  ace("ns1", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, dbapi.PermissionRead, "project1_orders", "ns2"),
			wantErrors: 0,
		},
		{
			name:       "public write grant on an owned literal",
			candidate:  ace("ns1", dbapi.ResourceTypeTopic, dbapi.PatternTypeLiteral, dbapi.PermissionWrite, "shared_topic", dbapi.PublicGrantee),
			wantErrors: 0,
		},
		{
			name:       "connect cluster grant",
			candidate:  ace("ns1", dbapi.ResourceTypeConnectCluster, dbapi.PatternTypeLiteral, dbapi.PermissionWrite, "project1-connect", "ns2"),
			wantErrors: 0,
		},
		{
			name:       "prefixed grant on an owned literal",
			candidate:  ace("ns1", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, dbapi.PermissionRead, "shared_topic", "ns2"),
			wantErrors: 0,
		},
		{
			name:       "prefixed grant wider than an owned literal",
			candidate:  ace("ns1", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, dbapi.PermissionRead, "shared_top", "ns2"),
			wantErrors: 1,
		},
		{
			name:       "resource not owned",
			candidate:  ace("ns1", dbapi.ResourceTypeTopic, dbapi.PatternTypeLiteral, dbapi.PermissionRead, "project2_t1", "ns2"),
			wantErrors: 1,
		},
		{
			name:       "self grant",
			candidate:  ace("ns1", dbapi.ResourceTypeTopic, dbapi.PatternTypeLiteral, dbapi.PermissionRead, "project1_t1", "ns1"),
			wantErrors: 1,
		},
		{
			name:       "unknown grantee",
			candidate:  ace("ns1", dbapi.ResourceTypeTopic, dbapi.PatternTypeLiteral, dbapi.PermissionRead, "project1_t1", "nobody"),
			wantErrors: 1,
		},
		{
			name:       "every violation is reported",
			candidate:  ace("ns1", dbapi.ResourceTypeGroup, "MATCH", dbapi.PermissionOwner, "project2", "ns1"),
			wantErrors: 5,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			ac := NewAccessControl(existing, []string{"ns1", "ns2"})
			g.Expect(ac.Validate(tt.candidate, "ns1")).To(gomega.HaveLen(tt.wantErrors))
		})
	}
}

func TestAccessControl_IsOwner(t *testing.T) {
	ac := NewAccessControl(dbapi.AccessControlEntryList{
		ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
		ownerAce("ns2", dbapi.PatternTypeLiteral, "project2_t1"),
		ace("ns2", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, dbapi.PermissionRead, "project2", "ns1"),
	}, []string{"ns1", "ns2"})

	tests := []struct {
		name      string
		namespace string
		resource  string
		want      bool
	}{
		{name: "prefix owner", namespace: "ns1", resource: "project1_orders", want: true},
		{name: "literal owner", namespace: "ns2", resource: "project2_t1", want: true},
		{name: "literal does not cover longer names", namespace: "ns2", resource: "project2_t10", want: false},
		{name: "read grant is not ownership", namespace: "ns1", resource: "project2_t2", want: false},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(ac.IsOwner(tt.namespace, dbapi.ResourceTypeTopic, tt.resource)).To(gomega.Equal(tt.want))
		})
	}
}

func TestMatchesAny(t *testing.T) {
	g := gomega.NewWithT(t)
	aces := dbapi.AccessControlEntryList{
		ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
		ownerAce("ns1", dbapi.PatternTypeLiteral, "exact"),
	}
	g.Expect(MatchesAny(aces, "project1.topic")).To(gomega.BeTrue())
	g.Expect(MatchesAny(aces, "exact")).To(gomega.BeTrue())
	g.Expect(MatchesAny(aces, "exact2")).To(gomega.BeFalse())
	g.Expect(MatchesAny(nil, "project1.topic")).To(gomega.BeFalse())
}
