// Package database is the router mounted by the server under /database.
//
// It stores fundamentals and daily quotations with GORM, ranks tickers through
// the strategy package and archives rankings in object storage. The router is
// a standalone Fiber app so the server only knows its mount point.
//
// # HTTP Endpoints (relative to /database)
//
//   - GET /health : Database ping and bucket check.
//   - GET|POST /fundamentals, GET /fundamentals/:ticker : Fundamentals, upserted by ticker.
//   - GET|POST /quotations : Daily bars (supports ?ticker= and ?limit=).
//   - GET /indicators : Current ranking.
//   - POST /indicators/snapshot : Archive the ranking (supports ?ensure=true).
//   - GET /indicators/snapshots, GET /indicators/snapshots/:name : Archived rankings.
//   - GET /tables/:name/columns : Schema of fundamentals or quotations.
//
// Without a database every data route answers 503; without storage the
// snapshot routes do.
package database
