package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/metrics"
)

var DefaultRepeatInterval = 30 * time.Second

// OverlapPolicy decides what happens to a tick that fires while a run is in progress.
type OverlapPolicy int

const (
	// FixedDelay waits for a run to complete before the next interval starts counting.
	FixedDelay OverlapPolicy = iota
	// DropOnOverlap fires at a fixed rate and skips a tick if the previous run has not returned.
	DropOnOverlap
)

type Schedule struct {
	InitialDelay time.Duration
	Interval     time.Duration
	Policy       OverlapPolicy
}

type Reconciler struct {
	Schedule Schedule
	wakeup   chan *sync.WaitGroup
	inFlight atomic.Bool
	cancel   context.CancelFunc
}

// Wakeup causes the worker reconcile to be performed as soon as possible.  If wait is true, the this
// function blocks until the reconcile is completed (or dropped), otherwise this function does not block.
func (r *Reconciler) Wakeup(wait bool) {
	if wait {
		wg := &sync.WaitGroup{}
		wg.Add(1)
		r.wakeup <- wg
		wg.Wait()
	} else {
		select {
		case r.wakeup <- nil:
			// wakeup channel accepted the message
		default:
			// wakeup channel was full..
		}
	}
}

func (r *Reconciler) Start(worker Worker) {
	r.wakeup = make(chan *sync.WaitGroup, 1)
	*worker.GetStopChan() = make(chan struct{})
	worker.GetSyncGroup().Add(1)
	worker.SetIsRunning(true)

	ctx, cancel := context.WithCancel(logger.WithWorker(context.Background(), worker.GetWorkerType()))
	r.cancel = cancel

	interval := r.Schedule.Interval
	if interval <= 0 {
		interval = DefaultRepeatInterval
	}
	timer := time.NewTimer(r.Schedule.InitialDelay)
	stop := *worker.GetStopChan()

	go func() {
		defer worker.GetSyncGroup().Done()
		defer timer.Stop()
		glog.V(1).Infof("Starting reconciliation loop for %T [%s], initial delay %s, interval %s", worker, worker.GetID(), r.Schedule.InitialDelay, interval)
		for {
			select {
			case wg := <-r.wakeup: //we were asked to wake up...
				glog.V(1).Infof("Wakeup triggered reconciliation loop for %T [%s]", worker, worker.GetID())
				r.trigger(ctx, worker, wg)
			case <-timer.C:
				glog.V(5).Infof("Timer triggered reconciliation loop for %T [%s]", worker, worker.GetID())
				r.trigger(ctx, worker, nil)
				timer.Reset(interval)
			case <-stop:
				glog.V(1).Infof("Stopping reconciliation loop for %T [%s]", worker, worker.GetID())
				return
			}
		}
	}()
}

func (r *Reconciler) trigger(ctx context.Context, worker Worker, wg *sync.WaitGroup) {
	if r.Schedule.Policy != DropOnOverlap {
		r.runReconcile(ctx, worker)
		if wg != nil {
			wg.Done()
		}
		return
	}

	if !r.inFlight.CompareAndSwap(false, true) {
		glog.V(5).Infof("Previous run of %T [%s] still in flight, dropping tick", worker, worker.GetID())
		metrics.IncreaseReconcilerDroppedTicks(worker.GetWorkerType())
		if wg != nil {
			wg.Done()
		}
		return
	}

	worker.GetSyncGroup().Add(1)
	go func() {
		defer worker.GetSyncGroup().Done()
		r.runReconcile(ctx, worker)
		r.inFlight.Store(false)
		if wg != nil {
			wg.Done()
		}
	}()
}

func (r *Reconciler) runReconcile(ctx context.Context, worker Worker) {
	start := time.Now()
	errors := worker.Reconcile(ctx)
	if len(errors) == 0 {
		metrics.IncreaseReconcilerSuccessCount(worker.GetWorkerType())
	} else {
		metrics.IncreaseReconcilerFailureCount(worker.GetWorkerType())
		metrics.IncreaseReconcilerErrorsCount(worker.GetWorkerType(), len(errors))
	}
	metrics.UpdateReconcilerDurationMetric(worker.GetWorkerType(), time.Since(start))
	for _, e := range errors {
		logger.NewUHCLogger(ctx).Error(e)
	}
}

func (r *Reconciler) Stop(worker Worker) {
	defer worker.SetIsRunning(false)
	stop := *worker.GetStopChan()
	if stop == nil {
		return
	}
	select {
	case <-stop: //already closed
		return
	default:
		close(stop) //explicit close
		if r.cancel != nil {
			r.cancel() // abandon in-flight cluster calls
		}
		worker.GetSyncGroup().Wait() //wait for in-flight job to finish
	}
}
