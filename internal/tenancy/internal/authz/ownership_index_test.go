package authz

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
)

func TestOwnershipIndex_OwnerOf(t *testing.T) {
	index := NewOwnershipIndex(dbapi.AccessControlEntryList{
		ownerAce("ns1", dbapi.PatternTypePrefixed, "project1"),
		ownerAce("ns2", dbapi.PatternTypePrefixed, "project1_team2"),
		ownerAce("ns3", dbapi.PatternTypeLiteral, "project1_team2_special"),
		ace("ns4", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, dbapi.PermissionRead, "project", "ns4"),
	})

	tests := []struct {
		name      string
		resource  string
		wantOwner string
		wantFound bool
	}{
		{name: "prefix owner", resource: "project1_orders", wantOwner: "ns1", wantFound: true},
		{name: "most specific prefix wins", resource: "project1_team2_orders", wantOwner: "ns2", wantFound: true},
		{name: "literal wins over prefixes", resource: "project1_team2_special", wantOwner: "ns3", wantFound: true},
		{name: "read grants do not own", resource: "project9", wantFound: false},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			owner, found := index.OwnerOf(dbapi.ResourceTypeTopic, tt.resource)
			g.Expect(found).To(gomega.Equal(tt.wantFound))
			g.Expect(owner).To(gomega.Equal(tt.wantOwner))
			g.Expect(index.IsOwnedBy(tt.wantOwner, dbapi.ResourceTypeTopic, tt.resource)).To(gomega.Equal(tt.wantFound))
		})
	}
}
