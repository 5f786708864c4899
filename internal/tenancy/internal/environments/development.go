package environments

import "github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"

// The development environment is intended for use while developing features, requiring manual verification
func NewDevelopmentEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                                    "10",
		"enable-metrics-https":                 "false",
		"enable-health-check-https":            "false",
		"enable-sentry":                        "false",
		"enable-db-debug":                      "false",
		"enable-leader-election":               "false",
		"managed-clusters-config-file":         "config/managed-clusters.yaml",
		"metrics-server-bindaddress":           "localhost:8080",
		"health-check-server-bindaddress":      "localhost:8083",
		"connect-health-repeat-interval":       "5s",
		"connector-reconciler-repeat-interval": "10s",
	}
}
