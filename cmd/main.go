package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	log "github.com/sirupsen/logrus"

	"github.com/quizflow/quizflow-lambda/internal/container"
	"github.com/quizflow/quizflow-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	c := container.New()

	mux := router.New(router.RouterConfig{
		ExplanationHandler:  c.ExplanationContainer.Handler,
		RegistrationHandler: c.RegistrationContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(mux)
		lambda.Start(handler)
		return
	}

	addr := ":" + c.Config.Port
	log.WithField("addr", addr).Info("starting local http server")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Fatal("http server stopped")
	}
}
