package workers

import (
	"context"
	"sync"
	"sync/atomic"
)

//go:generate moq -out worker_interface_moq.go . Worker
type Worker interface {
	GetID() string
	GetWorkerType() string
	Start()
	Stop()
	Reconcile(ctx context.Context) []error
	GetStopChan() *chan struct{}
	GetSyncGroup() *sync.WaitGroup
	IsRunning() bool
	SetIsRunning(val bool)
}

// BaseWorker is embedded by every worker to get the bookkeeping the Reconciler relies on.
type BaseWorker struct {
	Id           string
	WorkerType   string
	Reconciler   Reconciler
	imStop       chan struct{}
	syncTeardown sync.WaitGroup
	isRunning    atomic.Bool
}

func (b *BaseWorker) GetID() string {
	return b.Id
}

func (b *BaseWorker) GetWorkerType() string {
	return b.WorkerType
}

func (b *BaseWorker) GetStopChan() *chan struct{} {
	return &b.imStop
}

func (b *BaseWorker) GetSyncGroup() *sync.WaitGroup {
	return &b.syncTeardown
}

func (b *BaseWorker) IsRunning() bool {
	return b.isRunning.Load()
}

func (b *BaseWorker) SetIsRunning(val bool) {
	b.isRunning.Store(val)
}

func (b *BaseWorker) StartWorker(w Worker) {
	b.Reconciler.Start(w)
}

func (b *BaseWorker) StopWorker(w Worker) {
	b.Reconciler.Stop(w)
}
