package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/golang/glog"
)

type LoggerKeys string

const (
	ClusterKey   LoggerKeys = "Cluster"
	NamespaceKey LoggerKeys = "Namespace"
	WorkerKey    LoggerKeys = "Worker"
	ResourceKey  LoggerKeys = "Resource"
)

type UHCLogger interface {
	V(level int32) UHCLogger
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Error(err error)
	Fatalf(format string, args ...interface{})
}

// Logger is a logger with a background context
var Logger = NewUHCLogger(context.Background())
var _ UHCLogger = &logger{}

type logger struct {
	context   context.Context
	level     int32
	sentryHub *sentry.Hub
}

// NewUHCLogger creates a new logger instance with a default verbosity of 1
func NewUHCLogger(ctx context.Context) UHCLogger {
	return &logger{
		context:   ctx,
		level:     1,
		sentryHub: sentry.GetHubFromContext(ctx),
	}
}

// WithCluster returns a copy of ctx whose loggers prefix every line with the cluster name.
func WithCluster(ctx context.Context, cluster string) context.Context {
	return context.WithValue(ctx, ClusterKey, cluster)
}

func WithNamespace(ctx context.Context, namespace string) context.Context {
	return context.WithValue(ctx, NamespaceKey, namespace)
}

func WithWorker(ctx context.Context, workerType string) context.Context {
	return context.WithValue(ctx, WorkerKey, workerType)
}

func WithResource(ctx context.Context, resource string) context.Context {
	return context.WithValue(ctx, ResourceKey, resource)
}

func (l *logger) prepareLogPrefix(format string, args ...interface{}) string {
	orig := fmt.Sprintf(format, args...)
	prefix := ""

	if worker, ok := l.context.Value(WorkerKey).(string); ok {
		prefix = strings.Join([]string{prefix, "worker='", worker, "' "}, "")
	}

	if cluster, ok := l.context.Value(ClusterKey).(string); ok {
		prefix = strings.Join([]string{prefix, "cluster='", cluster, "' "}, "")
	}

	if namespace, ok := l.context.Value(NamespaceKey).(string); ok {
		prefix = strings.Join([]string{prefix, "namespace='", namespace, "' "}, "")
	}

	if resource, ok := l.context.Value(ResourceKey).(string); ok {
		prefix = strings.Join([]string{prefix, "resource='", resource, "' "}, "")
	}

	return prefix + orig
}

func (l *logger) V(level int32) UHCLogger {
	return &logger{
		context:   l.context,
		level:     level,
		sentryHub: l.sentryHub,
	}
}

func (l *logger) Infof(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.V(glog.Level(l.level)).Infoln(prefixed)
}

func (l *logger) Warningf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.Warningln(prefixed)
	l.captureSentryEvent(sentry.LevelWarning, prefixed)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.Errorln(prefixed)
	l.captureSentryEvent(sentry.LevelError, prefixed)
}

func (l *logger) Error(err error) {
	glog.Errorln(l.prepareLogPrefix("%v", err))
	if l.sentryHub == nil {
		sentry.CaptureException(err)
		return
	}
	l.sentryHub.CaptureException(err)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	l.captureSentryEvent(sentry.LevelFatal, prefixed)
	glog.Fatalln(prefixed)
}

func (l *logger) captureSentryEvent(level sentry.Level, message string) {
	event := sentry.NewEvent()
	event.Level = level
	event.Message = message
	if l.sentryHub == nil {
		sentry.CaptureEvent(event)
		return
	}
	l.sentryHub.CaptureEvent(event)
}
