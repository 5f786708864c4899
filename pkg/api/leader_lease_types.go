package api

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
)

// LeaderLease is held by at most one worker instance per LeaseType.
type LeaderLease struct {
	db.Model
	Leader    string
	LeaseType string `gorm:"index"`
	Expires   *time.Time
}

type LeaderLeaseList []*LeaderLease

func (l *LeaderLease) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = NewID()
	}
	return nil
}

func (l *LeaderLease) IsExpired(now time.Time) bool {
	return l.Expires == nil || now.After(*l.Expires)
}

func NewID() string {
	return uuid.New().String()
}
