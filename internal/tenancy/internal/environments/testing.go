package environments

import (
	"os"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
)

type TestingEnvLoader struct{}

var _ environments.EnvLoader = TestingEnvLoader{}

func NewTestingEnvLoader() environments.EnvLoader {
	return TestingEnvLoader{}
}

func (t TestingEnvLoader) Defaults() map[string]string {
	return map[string]string{
		"enable-leader-election":             "false",
		"resources-reconciler-initial-delay": "0s",
	}
}

// The testing environment is specifically for automated testing.
// The environment is expected to be modified as needed
func (t TestingEnvLoader) ModifyConfiguration(env *environments.Env) error {
	var databaseConfig *db.DatabaseConfig
	env.MustResolveAll(&databaseConfig)

	if os.Getenv("DB_DEBUG") == "true" {
		databaseConfig.Debug = true
	}
	return nil
}
