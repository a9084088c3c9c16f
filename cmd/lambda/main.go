package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"clash-player-proxy/internal/apigw"
	"clash-player-proxy/internal/config"
	"clash-player-proxy/internal/logging"
	"clash-player-proxy/internal/metrics"
	"clash-player-proxy/internal/server"
)

func main() {
	handler := server.NewHTTPHandler(config.Load(), logging.NewLogger(), metrics.NewRecorder())
	lambda.Start(apigw.Wrap(handler))
}
