package migrations

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
)

// Migration rules:
//
//  1. IDs are numerical timestamps that must sort ascending.
//     Use YYYYMMDDHHMM w/ 24 hour time for format.
//
//  2. Include models inline with migrations to see the evolution of the object over time.
//
//  3. Migrations must be backwards compatible. There are no new required fields allowed.
//
//  4. Create one function in a separate file that returns your Migration. Add that single function call to this list.
var migrations = []*gormigrate.Migration{
	addNamespaces(),
	addTopics(),
	addAccessControlEntries(),
	addStreamingApps(),
	addConnectClusters(),
	addConnectors(),
	addLeaderLeases(),
}

func New(dbConfig *db.DatabaseConfig) (*db.Migration, func(), error) {
	return db.NewMigration(dbConfig, &gormigrate.Options{
		TableName:      "migrations",
		IDColumnName:   "id",
		IDColumnSize:   255,
		UseTransaction: false,
	}, migrations)
}
