package environments

import "github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"

func NewProductionEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                      "1",
		"enable-sentry":          "true",
		"enable-leader-election": "true",
		"enable-metrics-https":   "false",
	}
}
