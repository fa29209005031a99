package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
	"github.com/riyadominic123/ai-call/domain"
)

type dynamoFeedbackItem struct {
	CallId     string `dynamodbav:"call_id"`
	TurnId     string `dynamodbav:"turn_id"`
	Transcript string `dynamodbav:"transcript"`
	Reply      string `dynamodbav:"reply"`
	AudioName  string `dynamodbav:"audio_name"`
	FirstReply bool   `dynamodbav:"first_reply"`
	RecordedAt string `dynamodbav:"recorded_at"`
	TTL        int64  `dynamodbav:"ttl"`
}

type dynamoFeedbackRecorder struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoFeedbackRecorder(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.FeedbackRecorderPort {
	return &dynamoFeedbackRecorder{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (c *dynamoFeedbackRecorder) Record(ctx context.Context, entry domain.FeedbackEntry) error {
	item := newDynamoFeedbackItem(entry, c.dynamoConfig.TtlMinutes)
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal feedback item", map[string]interface{}{
			"call_id": item.CallId,
			"turn_id": item.TurnId,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save feedback item", map[string]interface{}{
			"call_id": item.CallId,
			"turn_id": item.TurnId,
		})
		return err
	}

	return nil
}

func newDynamoFeedbackItem(entry domain.FeedbackEntry, ttlMinutes int) dynamoFeedbackItem {
	return dynamoFeedbackItem{
		CallId:     entry.CallID,
		TurnId:     entry.ID,
		Transcript: entry.Transcript,
		Reply:      entry.Reply,
		AudioName:  entry.AudioName,
		FirstReply: entry.FirstReply,
		RecordedAt: entry.RecordedAt.UTC().Format(time.RFC3339),
		TTL:        entry.RecordedAt.Add(time.Duration(ttlMinutes) * time.Minute).Unix(),
	}
}

type logFeedbackRecorder struct {
	logger outbound.LoggerPort
}

// NewLogFeedbackRecorder records feedback turns as log entries only.
func NewLogFeedbackRecorder(logger outbound.LoggerPort) outbound.FeedbackRecorderPort {
	return &logFeedbackRecorder{logger: logger}
}

func (l *logFeedbackRecorder) Record(_ context.Context, entry domain.FeedbackEntry) error {
	l.logger.InfoWithFields("Feedback turn recorded", map[string]interface{}{
		"call_id":     entry.CallID,
		"turn_id":     entry.ID,
		"transcript":  entry.Transcript,
		"reply":       entry.Reply,
		"audio_name":  entry.AudioName,
		"first_reply": entry.FirstReply,
	})
	return nil
}
