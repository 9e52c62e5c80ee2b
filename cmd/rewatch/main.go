package main

import (
	"github.com/rewatch-io/rewatch/internal/cli"
	"github.com/rewatch-io/rewatch/internal/metrics"
)

func main() {
	metrics.EmitBuildInfo()
	cli.Execute()
}
