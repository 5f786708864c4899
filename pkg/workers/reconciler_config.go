package workers

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type ReconcilerConfig struct {
	ResourcesInitialDelay                  time.Duration `json:"resources_initial_delay"`
	ResourcesRepeatInterval                time.Duration `json:"resources_repeat_interval"`
	ConnectHealthRepeatInterval            time.Duration `json:"connect_health_repeat_interval"`
	ConnectorRepeatInterval                time.Duration `json:"connector_repeat_interval"`
	LeaderElectionEnabled                  bool          `json:"leader_election_enabled"`
	LeaderLeaseExpirationTime              time.Duration `json:"leader_lease_expiration_time"`
	LeaderElectionReconcilerRepeatInterval time.Duration `json:"leader_election_reconciler_repeat_interval"`
}

func NewReconcilerConfig() *ReconcilerConfig {
	return &ReconcilerConfig{
		ResourcesInitialDelay:                  12 * time.Second,
		ResourcesRepeatInterval:                30 * time.Second,
		ConnectHealthRepeatInterval:            5 * time.Second,
		ConnectorRepeatInterval:                10 * time.Second,
		LeaderElectionEnabled:                  true,
		LeaderLeaseExpirationTime:              1 * time.Minute,
		LeaderElectionReconcilerRepeatInterval: 15 * time.Second,
	}
}

func (r *ReconcilerConfig) AddFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&r.ResourcesInitialDelay, "resources-reconciler-initial-delay", r.ResourcesInitialDelay, "Delay before the first topic, ACL and user reconciliation.")
	fs.DurationVar(&r.ResourcesRepeatInterval, "resources-reconciler-repeat-interval", r.ResourcesRepeatInterval, "Delay between the end of one topic, ACL and user reconciliation and the start of the next.")
	fs.DurationVar(&r.ConnectHealthRepeatInterval, "connect-health-repeat-interval", r.ConnectHealthRepeatInterval, "The frequency at which Kafka Connect clusters are health checked.")
	fs.DurationVar(&r.ConnectorRepeatInterval, "connector-reconciler-repeat-interval", r.ConnectorRepeatInterval, "The frequency at which connectors are reconciled.")
	fs.BoolVar(&r.LeaderElectionEnabled, "enable-leader-election", r.LeaderElectionEnabled, "Only run the workers for which this instance holds the leader lease.")
	fs.DurationVar(&r.LeaderLeaseExpirationTime, "leader-lease-expiration-time", r.LeaderLeaseExpirationTime, "The time before a lease expires.")
	fs.DurationVar(&r.LeaderElectionReconcilerRepeatInterval, "leader-election-reconciler-repeat-interval", r.LeaderElectionReconcilerRepeatInterval, "The scheduled interval between leader election reconciliation.")
}

func (r *ReconcilerConfig) ReadFiles() error {
	return nil
}

func (r *ReconcilerConfig) Validate() error {
	if r.ResourcesRepeatInterval <= 0 || r.ConnectHealthRepeatInterval <= 0 || r.ConnectorRepeatInterval <= 0 {
		return errors.New("reconciler repeat intervals must be positive")
	}
	if r.LeaderElectionEnabled && r.LeaderLeaseExpirationTime <= r.LeaderElectionReconcilerRepeatInterval {
		return errors.Errorf("leader lease expiration time %s must be longer than the leader election interval %s",
			r.LeaderLeaseExpirationTime, r.LeaderElectionReconcilerRepeatInterval)
	}
	return nil
}

// ResourcesSchedule drives topic, ACL and user reconciliation.
func (r *ReconcilerConfig) ResourcesSchedule() Schedule {
	return Schedule{
		InitialDelay: r.ResourcesInitialDelay,
		Interval:     r.ResourcesRepeatInterval,
		Policy:       FixedDelay,
	}
}

func (r *ReconcilerConfig) ConnectHealthSchedule() Schedule {
	return Schedule{
		Interval: r.ConnectHealthRepeatInterval,
		Policy:   DropOnOverlap,
	}
}

func (r *ReconcilerConfig) ConnectorSchedule() Schedule {
	return Schedule{
		Interval: r.ConnectorRepeatInterval,
		Policy:   DropOnOverlap,
	}
}
