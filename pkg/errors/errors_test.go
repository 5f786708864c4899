package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestErrorFormatting(t *testing.T) {
	g := gomega.NewWithT(t)
	err := New(ErrorGeneral, "test %s, %d", "errors", 1)
	g.Expect(err.Reason).To(gomega.Equal("test errors, 1"))
	g.Expect(err.Error()).To(gomega.Equal("KTM-9: test errors, 1"))
}

func TestErrorFind(t *testing.T) {
	g := gomega.NewWithT(t)
	exists, err := Find(ErrorNotFound)
	g.Expect(exists).To(gomega.Equal(true))
	g.Expect(err.Code).To(gomega.Equal(ErrorNotFound))

	exists, err = Find(ServiceErrorCode(91823719))
	g.Expect(exists).To(gomega.Equal(false))
	g.Expect(err).To(gomega.BeNil())
}

func TestNew_UndefinedCodeFallsBackToGeneral(t *testing.T) {
	g := gomega.NewWithT(t)
	err := New(ServiceErrorCode(12345), "")
	g.Expect(err.Code).To(gomega.Equal(ErrorGeneral))
	g.Expect(err.Reason).To(gomega.Equal(ErrorGeneralReason))
}

func TestFromOperationError(t *testing.T) {
	type args struct {
		err error
	}
	tests := []struct {
		name string
		args args
		want ServiceErrorCode
	}{
		{
			name: "deadline exceeded is reported as a timeout",
			args: args{err: errors.Wrap(context.DeadlineExceeded, "create topics")},
			want: ErrorTimeout,
		},
		{
			name: "cancelled context is reported as interrupted",
			args: args{err: fmt.Errorf("describe acls: %w", context.Canceled)},
			want: ErrorInterrupted,
		},
		{
			name: "any other failure is reported as a broker error",
			args: args{err: errors.New("TOPIC_ALREADY_EXISTS")},
			want: ErrorBroker,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			got := FromOperationError(tt.args.err, "failed on %s", "cluster-a")
			g.Expect(got.Code).To(gomega.Equal(tt.want))
			g.Expect(got.Reason).To(gomega.HavePrefix("failed on cluster-a: "))
			g.Expect(errors.Is(got, tt.args.err)).To(gomega.BeTrue())
			g.Expect(HasCode(errors.Wrap(got, "outer"), tt.want)).To(gomega.BeTrue())
		})
	}
}

func TestFromOperationError_Nil(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(FromOperationError(nil, "noop")).To(gomega.BeNil())
}

func TestToServiceError(t *testing.T) {
	g := gomega.NewWithT(t)
	svcErr := Validation("bad topic name")
	g.Expect(ToServiceError(errors.Wrap(svcErr, "wrapped"))).To(gomega.BeIdenticalTo(svcErr))

	converted := ToServiceError(errors.New("boom"))
	g.Expect(converted.Code).To(gomega.Equal(ErrorGeneral))
	g.Expect(converted.Reason).To(gomega.Equal("boom"))
}

func TestErrorList(t *testing.T) {
	g := gomega.NewWithT(t)
	var list ErrorList
	g.Expect(list.IsEmpty()).To(gomega.BeTrue())
	g.Expect(list.AsError()).To(gomega.BeNil())
	g.Expect(list.ToErrorSlice()).To(gomega.BeNil())

	list.AddErrors(nil, errors.New("first"), nil, errors.New("second"))
	g.Expect(list).To(gomega.HaveLen(2))
	g.Expect(list.Error()).To(gomega.Equal("first; second"))
	g.Expect(list.AsError()).To(gomega.HaveOccurred())
}
