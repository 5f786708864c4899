package authz

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestTopicNameCollisions(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		existing []string
		want     []string
	}{
		{
			name:     "dot and underscore substitution",
			topic:    "project1.topic",
			existing: []string{"project1_topic"},
			want:     []string{"project1_topic"},
		},
		{
			name:     "identical name",
			topic:    "project1.topic",
			existing: []string{"project1.topic"},
		},
		{
			name:     "unrelated names",
			topic:    "project1.topic",
			existing: []string{"project2.topic", "project1.other"},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(TopicNameCollisions(tt.topic, tt.existing)).To(gomega.Equal(tt.want))
		})
	}
}
