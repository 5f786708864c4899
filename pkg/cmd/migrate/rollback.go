package migrate

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func NewRollbackLast(env *environments.Env) *cobra.Command {
	return newRollbackCommand(env, "rollback-last", "Roll back the last migration of every migration set", (*db.Migration).RollbackLast)
}

func NewRollbackAll(env *environments.Env) *cobra.Command {
	return newRollbackCommand(env, "rollback-all", "Roll back every applied migration, dropping the desired-state tables", (*db.Migration).RollbackAll)
}

func newRollbackCommand(env *environments.Env, use string, short string, rollback func(*db.Migration)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			env.MustInvoke(func(migrations []*db.Migration) {
				for _, migration := range migrations {
					rollback(migration)
					glog.Infof("%s: %d migrations of %s still applied", use, migration.CountMigrationsApplied(), migration.GormOptions.TableName)
				}
			})
		},
	}
}
