package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// FakeS3 records uploaded objects in memory.
type FakeS3 struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewFakeS3() *FakeS3 {
	return &FakeS3{Objects: make(map[string][]byte)}
}

func (f *FakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.Objects[*params.Key] = body
	return &s3.PutObjectOutput{}, nil
}

// FakeSQS records published message bodies and can be primed to fail.
type FakeSQS struct {
	mu       sync.Mutex
	Messages []string

	// FailNextSend, when set, makes the next SendMessage return this error.
	FailNextSend error
}

func NewFakeSQS() *FakeSQS {
	return &FakeSQS{}
}

func (f *FakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailNextSend != nil {
		err := f.FailNextSend
		f.FailNextSend = nil
		return nil, err
	}
	f.Messages = append(f.Messages, *params.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

// Sent returns a copy of the published bodies.
func (f *FakeSQS) Sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Messages))
	copy(out, f.Messages)
	return out
}
