package authz

import "strings"

// TopicNameCollisions returns the existing topic names that differ from name only by '.' and '_' substitutions.
// The broker maps both characters to the same metric name, so such topics cannot coexist. An identical name is
// not a collision.
func TopicNameCollisions(name string, existing []string) []string {
	normalized := normalizeTopicName(name)
	var collisions []string
	for _, other := range existing {
		if other != name && normalizeTopicName(other) == normalized {
			collisions = append(collisions, other)
		}
	}
	return collisions
}

func normalizeTopicName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}
