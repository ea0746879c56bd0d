// Package router routes segment translations to the translator Lambda for the
// requested model.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/pricofy/image-translator/internal/translator"
)

// DefaultFunctionPrefix names the translator Lambdas.
// Functions are deployed as <prefix>-<model>-<environment>.
const DefaultFunctionPrefix = "image-translator"

// Invoker is the subset of the Lambda client the router needs.
type Invoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Router invokes translator Lambdas. It implements translator.Endpoint.
type Router struct {
	lambdaClient Invoker
	prefix       string
	environment  string
}

// TranslatorRequest is the payload sent to a translator Lambda.
type TranslatorRequest struct {
	Text          string `json:"text"`
	Language      string `json:"language"`
	InputLanguage string `json:"input_language,omitempty"`
	Model         string `json:"model,omitempty"`
}

// TranslatorResponse is the payload returned by a translator Lambda.
type TranslatorResponse struct {
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language,omitempty"`
	Error            string `json:"error,omitempty"`
	Code             string `json:"code,omitempty"`
}

// New creates a Router from the default AWS config.
// An empty prefix selects DefaultFunctionPrefix; an empty environment is
// read from ENVIRONMENT and falls back to "dev".
func New(ctx context.Context, prefix, environment string) (*Router, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewWithClient(lambda.NewFromConfig(cfg), prefix, environment), nil
}

// NewWithClient creates a Router around an existing Lambda client.
func NewWithClient(client Invoker, prefix, environment string) *Router {
	if prefix == "" {
		prefix = DefaultFunctionPrefix
	}
	if environment == "" {
		environment = os.Getenv("ENVIRONMENT")
	}
	if environment == "" {
		environment = "dev"
	}

	return &Router{
		lambdaClient: client,
		prefix:       prefix,
		environment:  environment,
	}
}

// FunctionName returns the translator Lambda that serves model.
func (r *Router) FunctionName(model translator.Model) string {
	if model == "" {
		model = translator.ModelStatistical
	}
	return fmt.Sprintf("%s-%s-%s", r.prefix, model, r.environment)
}

// Translate invokes the translator Lambda for req.Model with one segment.
func (r *Router) Translate(ctx context.Context, req translator.Request) (translator.Result, error) {
	functionName := r.FunctionName(req.Model)

	resp, err := r.invokeLambda(ctx, functionName, TranslatorRequest{
		Text:          req.Text,
		Language:      req.TargetLanguage,
		InputLanguage: req.SourceLanguage,
		Model:         req.Model.String(),
	})
	if err != nil {
		return translator.Result{}, err
	}

	return translator.Result{
		TranslatedText:   resp.TranslatedText,
		DetectedLanguage: resp.DetectedLanguage,
	}, nil
}

// invokeLambda calls a translator Lambda with a single segment.
func (r *Router) invokeLambda(ctx context.Context, functionName string, req TranslatorRequest) (*TranslatorResponse, error) {
	// Prepare request
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Invoke Lambda
	result, err := r.lambdaClient.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: &functionName,
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", functionName, err)
	}

	// Check for Lambda errors
	if result.FunctionError != nil {
		return nil, &translator.EndpointError{
			Message: fmt.Sprintf("lambda error: %s: %s", *result.FunctionError, string(result.Payload)),
		}
	}

	// Parse response; translated_text must be present on success
	var reply struct {
		TranslatedText   *string `json:"translated_text"`
		DetectedLanguage string  `json:"detected_language"`
		Error            string  `json:"error"`
		Code             string  `json:"code"`
	}
	if err := json.Unmarshal(result.Payload, &reply); err != nil {
		return nil, &translator.EndpointError{
			Message: "failed to parse response",
			Err:     err,
		}
	}

	if reply.Error != "" {
		return nil, &translator.EndpointError{
			Code:    reply.Code,
			Message: reply.Error,
		}
	}
	if reply.TranslatedText == nil {
		return nil, &translator.EndpointError{
			Message: fmt.Sprintf("malformed response from %s: missing translated_text", functionName),
		}
	}

	resp := TranslatorResponse{
		TranslatedText:   *reply.TranslatedText,
		DetectedLanguage: reply.DetectedLanguage,
	}
	return &resp, nil
}
