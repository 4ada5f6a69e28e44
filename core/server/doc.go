// Package server is the HTTP bootstrap of the service.
//
// New builds a Fiber application with the global middleware chain (RayID,
// debug request logging, JSON body parsing), mounts the externally supplied
// database router under /database and answers GET / with a static greeting.
// Every other path gets Fiber's default 404.
//
// # Lifecycle
//
// Listen binds the configured port, logs a single readiness line and serves until
// the process is killed. Idle keep-alive connections are closed after IdleTimeout
// (20 minutes).
//
// # Usage
//
//	srv := server.New(cfg.Server, logg, database.NewRouter(svc))
//	if err := srv.Listen(); err != nil {
//	    logg.Fatal("Server failed to start", zap.Error(err))
//	}
package server
