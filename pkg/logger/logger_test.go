package logger

import (
	"context"
	"testing"

	"github.com/onsi/gomega"
)

func Test_logger_prepareLogPrefix(t *testing.T) {
	type args struct {
		format string
		args   []interface{}
	}
	tests := []struct {
		name string
		ctx  context.Context
		args args
		want string
	}{
		{
			name: "should not add a prefix for a background context",
			ctx:  context.Background(),
			args: args{format: "reconciled %d topics", args: []interface{}{3}},
			want: "reconciled 3 topics",
		},
		{
			name: "should prefix the cluster name",
			ctx:  WithCluster(context.Background(), "cluster-a"),
			args: args{format: "listing topics"},
			want: "cluster='cluster-a' listing topics",
		},
		{
			name: "should prefix every known key in a stable order",
			ctx: WithResource(
				WithNamespace(
					WithCluster(
						WithWorker(context.Background(), "cluster_resources"),
						"cluster-a"),
					"team1"),
				"team1.orders"),
			args: args{format: "created"},
			want: "worker='cluster_resources' cluster='cluster-a' namespace='team1' resource='team1.orders' created",
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			l := NewUHCLogger(tt.ctx).(*logger)
			g.Expect(l.prepareLogPrefix(tt.args.format, tt.args.args...)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_logger_V(t *testing.T) {
	g := gomega.NewWithT(t)
	ctx := WithCluster(context.Background(), "cluster-b")
	l := NewUHCLogger(ctx).V(5).(*logger)
	g.Expect(l.level).To(gomega.Equal(int32(5)))
	g.Expect(l.context).To(gomega.Equal(ctx))
}
