package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/golang/glog"
)

// Server is a background listener started and stopped with the process.
type Server interface {
	Start()
	Stop()
}

// endpoint serves a single handler on the address of a listenerConfig.
type endpoint struct {
	name          string
	httpServer    *http.Server
	listener      listenerConfig
	serverConfig  *ServerConfig
	sentryTimeout time.Duration
}

func newEndpoint(name string, handler http.Handler, listener listenerConfig, serverConfig *ServerConfig, sentryTimeout time.Duration) *endpoint {
	return &endpoint{
		name: name,
		httpServer: &http.Server{
			Addr:              listener.BindAddress,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			TLSConfig:         &tls.Config{MinVersion: listener.MinTLSVersion},
		},
		listener:      listener,
		serverConfig:  serverConfig,
		sentryTimeout: sentryTimeout,
	}
}

func (e *endpoint) Start() {
	go e.run()
}

func (e *endpoint) run() {
	var err error
	if e.listener.EnableHTTPS {
		if e.serverConfig.HTTPSCertFile == "" || e.serverConfig.HTTPSKeyFile == "" {
			check(fmt.Errorf("unspecified required --https-cert-file, --https-key-file"), "Can't start https server", e.sentryTimeout)
		}
		glog.Infof("Serving %s with TLS at %s", e.name, e.listener.BindAddress)
		err = e.httpServer.ListenAndServeTLS(e.serverConfig.HTTPSCertFile, e.serverConfig.HTTPSKeyFile)
	} else {
		glog.Infof("Serving %s without TLS at %s", e.name, e.listener.BindAddress)
		err = e.httpServer.ListenAndServe()
	}
	check(err, e.name+" server terminated with errors", e.sentryTimeout)
	glog.Infof("%s server terminated", e.name)
}

func (e *endpoint) Stop() {
	if err := e.httpServer.Shutdown(context.Background()); err != nil {
		glog.Warningf("Unable to stop %s server: %s", e.name, err)
	}
}

// check exits the process when err is set, flushing sentry first.
func check(err error, msg string, sentryTimeout time.Duration) {
	if err != nil && err != http.ErrServerClosed {
		glog.Errorf("%s: %s", msg, err)
		sentry.CaptureException(err)
		sentry.Flush(sentryTimeout)
		glog.Fatalf("%s: %s", msg, err)
	}
}
