package stream

import (
	"context"
	"log"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodbstreams/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

const defaultPollInterval = 5 * time.Second

// PaymentWatcher tails the payments table stream and turns record changes
// into dispatched events: an INSERT of a pending payment becomes a
// payment_submitted event, and a MODIFY that leaves pending becomes a
// payment_reconciled event. Polling starts at LATEST, so only changes made
// while the watcher runs are published.
type PaymentWatcher struct {
	streams    *dynamodbstreams.Client
	dispatcher interfaces.INotificationDispatcher
	streamARN  string
	interval   time.Duration

	// shard id -> current iterator; a nil next iterator closes the shard.
	iterators map[string]*string
}

func NewPaymentWatcher(streams *dynamodbstreams.Client, dispatcher interfaces.INotificationDispatcher, streamARN string) *PaymentWatcher {
	return &PaymentWatcher{
		streams:    streams,
		dispatcher: dispatcher,
		streamARN:  streamARN,
		interval:   defaultPollInterval,
		iterators:  make(map[string]*string),
	}
}

// Run polls the stream until the context is canceled. It is meant to be
// started once on its own goroutine.
func (w *PaymentWatcher) Run(ctx context.Context) {
	if w.streamARN == "" {
		log.Printf("[stream][watcher] no stream arn configured, watcher disabled")
		return
	}
	log.Printf("[stream][watcher] started stream_arn=%s interval=%s", w.streamARN, w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[stream][watcher] stopped err=%v", ctx.Err())
			return
		case <-ticker.C:
			if err := w.poll(ctx); err != nil {
				log.Printf("[stream][watcher] poll failed err=%v", err)
			}
		}
	}
}

func (w *PaymentWatcher) poll(ctx context.Context) error {
	if err := w.refreshShards(ctx); err != nil {
		return err
	}

	for shardID, iterator := range w.iterators {
		if iterator == nil {
			delete(w.iterators, shardID)
			continue
		}

		out, err := w.streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{
			ShardIterator: iterator,
		})
		if err != nil {
			log.Printf("[stream][watcher] get records failed shard_id=%s err=%v", shardID, err)
			delete(w.iterators, shardID)
			continue
		}

		for _, record := range out.Records {
			w.handleRecord(ctx, record)
		}

		if out.NextShardIterator == nil {
			delete(w.iterators, shardID)
			continue
		}
		w.iterators[shardID] = out.NextShardIterator
	}
	return nil
}

func (w *PaymentWatcher) refreshShards(ctx context.Context) error {
	out, err := w.streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
		StreamArn: aws.String(w.streamARN),
	})
	if err != nil {
		return err
	}
	if out.StreamDescription == nil {
		return nil
	}

	for _, shard := range out.StreamDescription.Shards {
		if shard.ShardId == nil {
			continue
		}
		if _, known := w.iterators[*shard.ShardId]; known {
			continue
		}

		iter, err := w.streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
			StreamArn:         aws.String(w.streamARN),
			ShardId:           shard.ShardId,
			ShardIteratorType: types.ShardIteratorTypeLatest,
		})
		if err != nil {
			log.Printf("[stream][watcher] get shard iterator failed shard_id=%s err=%v", *shard.ShardId, err)
			continue
		}
		w.iterators[*shard.ShardId] = iter.ShardIterator
	}
	return nil
}

type paymentImage struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	CustomerID string `dynamodbav:"customer_id"`
	Amount     string `dynamodbav:"amount"`
	Method     string `dynamodbav:"method"`
	Status     string `dynamodbav:"status"`
	ReviewedBy string `dynamodbav:"reviewed_by"`
}

func (w *PaymentWatcher) handleRecord(ctx context.Context, record types.Record) {
	if record.Dynamodb == nil {
		return
	}

	switch record.EventName {
	case types.OperationTypeInsert:
		image, ok := unmarshalImage(record.Dynamodb.NewImage)
		if !ok {
			return
		}
		if entities.PaymentStatus(image.Status) != entities.PaymentStatusPending {
			return
		}
		w.dispatch(ctx, entities.PaymentEvent{
			Kind:       entities.PaymentEventSubmitted,
			PaymentID:  image.ID,
			OrderID:    image.OrderID,
			CustomerID: image.CustomerID,
			Amount:     money.Parse(image.Amount),
			Method:     entities.PaymentMethod(image.Method),
			OccurredAt: time.Now().UTC(),
		})

	case types.OperationTypeModify:
		oldImage, ok := unmarshalImage(record.Dynamodb.OldImage)
		if !ok {
			return
		}
		newImage, ok := unmarshalImage(record.Dynamodb.NewImage)
		if !ok {
			return
		}

		oldStatus := entities.PaymentStatus(oldImage.Status)
		newStatus := entities.PaymentStatus(newImage.Status)
		if oldStatus != entities.PaymentStatusPending || newStatus == entities.PaymentStatusPending {
			return
		}
		w.dispatch(ctx, entities.PaymentEvent{
			Kind:       entities.PaymentEventReconciled,
			PaymentID:  newImage.ID,
			OrderID:    newImage.OrderID,
			CustomerID: newImage.CustomerID,
			Amount:     money.Parse(newImage.Amount),
			Method:     entities.PaymentMethod(newImage.Method),
			Outcome:    newStatus,
			ReviewedBy: newImage.ReviewedBy,
			OccurredAt: time.Now().UTC(),
		})
	}
}

func (w *PaymentWatcher) dispatch(ctx context.Context, ev entities.PaymentEvent) {
	if w.dispatcher == nil {
		return
	}
	if err := w.dispatcher.Dispatch(ctx, ev); err != nil {
		log.Printf("[stream][watcher] dispatch failed kind=%s payment_id=%s err=%v", ev.Kind, ev.PaymentID, err)
	}
}

func unmarshalImage(raw map[string]types.AttributeValue) (paymentImage, bool) {
	if len(raw) == 0 {
		return paymentImage{}, false
	}

	var image paymentImage
	if err := attributevalue.UnmarshalMap(raw, &image); err != nil {
		log.Printf("[stream][watcher] image unmarshal failed err=%v", err)
		return paymentImage{}, false
	}
	if image.ID == "" {
		return paymentImage{}, false
	}
	return image, true
}
