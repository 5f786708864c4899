package migrate

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// NewMigrateCommand runs every registered migration set, then exposes the rollback sub commands.
func NewMigrateCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run kafka-tenant-manager data migrations",
		Long:  "Run the desired-state store migrations of the Kafka tenant manager",
		Run: func(cmd *cobra.Command, args []string) {
			env.MustInvoke(func(migrations []*db.Migration) {
				glog.Infoln("Migration starting")
				for _, migration := range migrations {
					migration.Migrate()
				}
				glog.Infoln("Migration done")
			})
		},
	}
	cmd.AddCommand(NewRollbackLast(env), NewRollbackAll(env))
	return cmd
}
