package workers

import (
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

// LeaderElectionManager starts a worker only while this instance holds the lease for its worker type,
// so that several replicas never reconcile the same clusters concurrently.
type LeaderElectionManager struct {
	workers           []Worker
	connectionFactory *db.ConnectionFactory
	config            *ReconcilerConfig
	tearDown          chan struct{}
	isLeader          func(worker Worker) bool
}

func NewLeaderElectionManager(workers []Worker, connectionFactory *db.ConnectionFactory, config *ReconcilerConfig) *LeaderElectionManager {
	m := &LeaderElectionManager{
		workers:           workers,
		connectionFactory: connectionFactory,
		config:            config,
	}
	m.isLeader = m.isWorkerLeader
	return m
}

func (s *LeaderElectionManager) Start() {
	s.tearDown = make(chan struct{})
	glog.V(1).Infof("Starting LeaderElectionManager with %d workers", len(s.workers))
	// Starts once immediately
	s.startWorkers()
	ticker := time.NewTicker(s.config.LeaderElectionReconcilerRepeatInterval)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.startWorkers()
			case <-s.tearDown:
				ticker.Stop()
				for _, worker := range s.workers {
					if worker.IsRunning() {
						worker.Stop()
					}
				}
				return
			}
		}
	}()
}

func (s *LeaderElectionManager) Stop() {
	select {
	case <-s.tearDown:
		return
	default:
		close(s.tearDown)
	}
}

func (s *LeaderElectionManager) startWorkers() {
	for _, worker := range s.workers {
		isLeader := !s.config.LeaderElectionEnabled || s.isLeader(worker)
		if isLeader && !worker.IsRunning() {
			glog.V(1).Infof("Running as the leader and starting worker %T [%s]", worker, worker.GetID())
			worker.Start()
		} else if !isLeader && worker.IsRunning() {
			glog.V(1).Infof("No longer the leader and stopping worker %T [%s]", worker, worker.GetID())
			worker.Stop()
		}
	}
}

func (s *LeaderElectionManager) isWorkerLeader(worker Worker) bool {
	acquired, err := s.acquireLeaderLease(worker.GetID(), worker.GetWorkerType(), s.connectionFactory.New())
	if err != nil {
		glog.V(5).Infof("failed to acquire leader lease: %s", err)
		return false
	}
	if !acquired {
		glog.V(5).Infof("not currently leader, skipping %T [%s]", worker, worker.GetID())
	}
	return acquired
}

// acquireLeaderLease claims or extends the lease of workerType. An unexpired lease held by
// another worker is never taken over.
func (s *LeaderElectionManager) acquireLeaderLease(workerID string, workerType string, dbConn *gorm.DB) (bool, error) {
	now := time.Now()

	var lease api.LeaderLease
	err := dbConn.Where("lease_type = ?", workerType).Take(&lease).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		expired := now.Add(-time.Minute)
		lease = api.LeaderLease{LeaseType: workerType, Expires: &expired}
		if err := dbConn.Create(&lease).Error; err != nil {
			return false, errors.Wrapf(err, "failed to seed leader lease for %s", workerType)
		}
	} else if err != nil {
		return false, errors.Wrapf(err, "failed to retrieve leader lease for %s", workerType)
	}

	if !lease.IsExpired(now) && lease.Leader != workerID {
		return false, nil
	}
	// extend only when less than half of the lease is left
	if lease.Leader == workerID && !lease.IsExpired(now.Add(s.config.LeaderLeaseExpirationTime/2)) {
		return true, nil
	}

	acquired := false
	err = dbConn.Transaction(func(tx *gorm.DB) error {
		var locked api.LeaderLeaseList
		if err := tx.Raw("SELECT * FROM leader_leases WHERE deleted_at IS NULL AND lease_type = ? FOR UPDATE SKIP LOCKED LIMIT 1", workerType).Scan(&locked).Error; err != nil {
			return err
		}
		// another replica holds the row lock
		if len(locked) == 0 {
			return nil
		}
		current := locked[0]
		if !current.IsExpired(now) && current.Leader != workerID {
			return nil
		}
		newExpiry := now.Add(s.config.LeaderLeaseExpirationTime)
		if err := tx.Model(&api.LeaderLease{}).Where("id = ?", current.ID).
			Updates(map[string]interface{}{"leader": workerID, "expires": newExpiry}).Error; err != nil {
			return err
		}
		acquired = true
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "failed to update leader lease for %s", workerType)
	}
	return acquired, nil
}
