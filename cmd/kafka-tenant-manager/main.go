package main

import (
	"flag"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	// glog complains on every message unless the go flags look parsed
	_ = flag.CommandLine.Parse([]string{})

	// Always log to stderr by default
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}

	env, err := environments.New(environments.GetEnvironmentStrFromEnv(),
		tenancy.ConfigProviders(),
	)
	if err != nil {
		glog.Fatalf("error initializing: %v", err)
	}
	defer env.Cleanup()

	rootCmd := &cobra.Command{
		Use:  "kafka-tenant-manager",
		Long: "kafka-tenant-manager reconciles the topics, ACLs, quotas and connectors of tenant namespaces onto shared Kafka clusters.",
	}

	err = env.AddFlags(rootCmd.PersistentFlags())
	if err != nil {
		glog.Fatalf("Unable to add global flags: %s", err.Error())
	}

	env.MustInvoke(func(subcommands []*cobra.Command) {
		rootCmd.AddCommand(subcommands...)

		if err := rootCmd.Execute(); err != nil {
			glog.Fatalf("error running command: %v", err)
		}
	})
}
