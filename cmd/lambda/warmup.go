package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/pricofy/image-translator/internal/router"
)

const (
	// WarmupSource identifies scheduled warmup events
	WarmupSource = "warmup"

	// WarmupDelay keeps this instance busy long enough for siblings to overlap
	WarmupDelay = 75 * time.Millisecond

	// maxWarmupConcurrency caps self-invocations per warmup event
	maxWarmupConcurrency = 20
)

// WarmupEvent is the scheduled event payload for warmup
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse is the response returned by warmup operations
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// newInvoker is replaced in tests.
var newInvoker = func(ctx context.Context) (router.Invoker, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// IsWarmupEvent checks if the event is a warmup event.
// Translation requests never carry a "source" field.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var warmup WarmupEvent
	if err := json.Unmarshal(event, &warmup); err != nil {
		return nil, false
	}
	if warmup.Source != WarmupSource {
		return nil, false
	}
	if warmup.Concurrency < 0 {
		warmup.Concurrency = 0
	}
	if warmup.Concurrency > maxWarmupConcurrency {
		warmup.Concurrency = maxWarmupConcurrency
	}
	return &warmup, true
}

// HandleWarmup processes a warmup event and optionally self-invokes
// to keep several instances warm.
func HandleWarmup(ctx context.Context, warmup *WarmupEvent) (interface{}, error) {
	instancesWarmed := 1

	if warmup.Concurrency > 0 {
		n, err := selfInvoke(ctx, os.Getenv("AWS_LAMBDA_FUNCTION_NAME"), warmup.Concurrency)
		if err != nil {
			log.Printf("warmup self-invoke: %v", err)
		}
		instancesWarmed += n
	}

	time.Sleep(WarmupDelay)

	return map[string]interface{}{
		"statusCode": 200,
		"body": WarmupResponse{
			Status:          "warm",
			InstancesWarmed: instancesWarmed,
		},
	}, nil
}

// selfInvoke asynchronously invokes functionName count times and returns how
// many invocations were accepted along with the first error seen.
func selfInvoke(ctx context.Context, functionName string, count int) (int, error) {
	client, err := newInvoker(ctx)
	if err != nil {
		return 0, err
	}

	// Child invocations carry concurrency=0 so they do not fan out again
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return 0, err
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		accepted  int
		invokeErr error
	)

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if invokeErr == nil {
					invokeErr = err
				}
				return
			}
			accepted++
		}()
	}

	wg.Wait()
	return accepted, invokeErr
}
