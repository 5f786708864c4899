package api

import (
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

func Test_LeaderLeaseTypes_BeforeCreate(t *testing.T) {
	tests := []struct {
		name        string
		leaderLease *LeaderLease
		wantID      string
	}{
		{
			name:        "assigns the id to a leader lease before creation",
			leaderLease: &LeaderLease{},
		},
		{
			name:        "keeps an id that was already set",
			leaderLease: &LeaderLease{Model: db.Model{ID: "existing"}},
			wantID:      "existing",
		},
	}

	for _, testcase := range tests {
		tt := testcase

		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			err := tt.leaderLease.BeforeCreate(nil)
			g.Expect(err).ToNot(gomega.HaveOccurred())
			g.Expect(tt.leaderLease.ID).ToNot(gomega.BeEmpty())
			if tt.wantID != "" {
				g.Expect(tt.leaderLease.ID).To(gomega.Equal(tt.wantID))
			}
		})
	}
}

func Test_LeaderLease_IsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Second)
	future := now.Add(time.Minute)
	tests := []struct {
		name  string
		lease LeaderLease
		want  bool
	}{
		{name: "a lease without expiry is expired", lease: LeaderLease{}, want: true},
		{name: "a lease in the past is expired", lease: LeaderLease{Expires: &past}, want: true},
		{name: "a lease in the future is not expired", lease: LeaderLease{Expires: &future}, want: false},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(tt.lease.IsExpired(now)).To(gomega.Equal(tt.want))
		})
	}
}
