package main

import "stock-api/cmd"

//go:generate swag init --dir ./cmd,./core/server,./feature/database,./core/database --generalInfo start.go --output ./docs/swagger --outputTypes go

func main() {
	cmd.Execute()
}
