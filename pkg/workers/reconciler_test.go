package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/onsi/gomega"
)

func newWorkerMock(reconcile func(ctx context.Context) []error) (*WorkerMock, *sync.WaitGroup) {
	var stopchan chan struct{}
	var wg sync.WaitGroup
	var running atomic.Bool
	return &WorkerMock{
		GetStopChanFunc: func() *chan struct{} {
			return &stopchan
		},
		GetSyncGroupFunc: func() *sync.WaitGroup {
			return &wg
		},
		SetIsRunningFunc: func(val bool) {
			running.Store(val)
		},
		IsRunningFunc: func() bool {
			return running.Load()
		},
		GetIDFunc: func() string {
			return "test"
		},
		GetWorkerTypeFunc: func() string {
			return "test"
		},
		ReconcileFunc: reconcile,
	}, &wg
}

func waitFor(ch chan time.Time, d time.Duration) (timeout bool) {
	if d == 0 {
		select {
		case <-ch:
		default:
			timeout = true
		}
		return
	}
	select {
	case <-ch:
	case <-time.After(d):
		timeout = true
	}
	return
}

func TestReconciler_Wakeup(t *testing.T) {
	g := gomega.NewWithT(t)
	r := Reconciler{Schedule: Schedule{Interval: 30 * time.Second, Policy: FixedDelay}}

	reconcileChan := make(chan time.Time, 1000)
	worker, _ := newWorkerMock(func(ctx context.Context) []error {
		reconcileChan <- time.Now()
		return nil
	})

	r.Start(worker)
	defer r.Stop(worker)

	// initial reconcile should happen right away
	g.Expect(waitFor(reconcileChan, 1*time.Second)).To(gomega.BeFalse())

	// the next one is 30 seconds away
	g.Expect(waitFor(reconcileChan, 2*time.Second)).To(gomega.BeTrue())

	r.Wakeup(false)
	g.Expect(waitFor(reconcileChan, 1*time.Second)).To(gomega.BeFalse())

	r.Wakeup(true)
	// Wakeup(true) returns only once the reconcile has happened
	g.Expect(waitFor(reconcileChan, 0)).To(gomega.BeFalse())
}

func TestReconciler_InitialDelay(t *testing.T) {
	g := gomega.NewWithT(t)
	r := Reconciler{Schedule: Schedule{InitialDelay: 300 * time.Millisecond, Interval: time.Minute}}

	reconcileChan := make(chan time.Time, 10)
	worker, _ := newWorkerMock(func(ctx context.Context) []error {
		reconcileChan <- time.Now()
		return nil
	})

	started := time.Now()
	r.Start(worker)
	defer r.Stop(worker)

	g.Expect(waitFor(reconcileChan, 2*time.Second)).To(gomega.BeFalse())
	g.Expect(time.Since(started)).To(gomega.BeNumerically(">=", 300*time.Millisecond))
}

func TestReconciler_FixedDelayNeverOverlaps(t *testing.T) {
	g := gomega.NewWithT(t)
	r := Reconciler{Schedule: Schedule{Interval: 10 * time.Millisecond, Policy: FixedDelay}}

	var concurrent, maxConcurrent, runs atomic.Int32
	worker, _ := newWorkerMock(func(ctx context.Context) []error {
		n := concurrent.Add(1)
		if n > maxConcurrent.Load() {
			maxConcurrent.Store(n)
		}
		time.Sleep(30 * time.Millisecond)
		concurrent.Add(-1)
		runs.Add(1)
		return nil
	})

	r.Start(worker)
	g.Eventually(runs.Load, 2*time.Second).Should(gomega.BeNumerically(">=", 3))
	r.Stop(worker)

	g.Expect(maxConcurrent.Load()).To(gomega.Equal(int32(1)))
}

func TestReconciler_DropOnOverlap(t *testing.T) {
	g := gomega.NewWithT(t)
	r := Reconciler{Schedule: Schedule{Interval: 10 * time.Millisecond, Policy: DropOnOverlap}}

	release := make(chan struct{})
	var concurrent, maxConcurrent, runs atomic.Int32
	worker, _ := newWorkerMock(func(ctx context.Context) []error {
		n := concurrent.Add(1)
		if n > maxConcurrent.Load() {
			maxConcurrent.Store(n)
		}
		select {
		case <-release:
		case <-ctx.Done():
		}
		concurrent.Add(-1)
		runs.Add(1)
		return nil
	})

	r.Start(worker)
	// many ticks fire while the first run is blocked, none of them may start a second run
	time.Sleep(200 * time.Millisecond)
	g.Expect(maxConcurrent.Load()).To(gomega.Equal(int32(1)))
	g.Expect(runs.Load()).To(gomega.Equal(int32(0)))

	close(release)
	g.Eventually(runs.Load, 2*time.Second).Should(gomega.BeNumerically(">=", 2))
	r.Stop(worker)
	g.Expect(maxConcurrent.Load()).To(gomega.Equal(int32(1)))
}

func TestReconciler_StopCancelsInFlightRun(t *testing.T) {
	g := gomega.NewWithT(t)
	r := Reconciler{Schedule: Schedule{Interval: time.Minute, Policy: DropOnOverlap}}

	entered := make(chan struct{})
	var cancelled atomic.Bool
	worker, _ := newWorkerMock(func(ctx context.Context) []error {
		close(entered)
		<-ctx.Done()
		cancelled.Store(true)
		return []error{ctx.Err()}
	})

	r.Start(worker)
	<-entered
	r.Stop(worker)

	g.Expect(cancelled.Load()).To(gomega.BeTrue())
	g.Expect(worker.IsRunning()).To(gomega.BeFalse())
}

func TestReconciler_StopWithoutStart(t *testing.T) {
	g := gomega.NewWithT(t)
	r := Reconciler{}
	worker, _ := newWorkerMock(nil)
	g.Expect(func() { r.Stop(worker) }).ToNot(gomega.Panic())
}
