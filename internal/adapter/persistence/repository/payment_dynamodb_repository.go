package repository

import (
	"context"
	"errors"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type paymentItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	CustomerID string `dynamodbav:"customer_id"`
	Amount     string `dynamodbav:"amount"`
	Method     string `dynamodbav:"method"`
	Status     string `dynamodbav:"status"`
	ReceiptRef string `dynamodbav:"receipt_ref,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	ReviewedBy string `dynamodbav:"reviewed_by,omitempty"`
	ReviewedAt string `dynamodbav:"reviewed_at,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Status transitions go through UpdateStatusIfPending, whose condition
// expression is what makes reconciliation exactly-once under concurrency.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

// UpdateStatusIfPending is the compare-and-set behind reconciliation. The
// condition only passes while the payment is still pending; a lost race comes
// back as ConditionalCheckFailed, which is surfaced as the zero value so the
// caller can re-read and classify the outcome.
func (r *PaymentDynamoRepository) UpdateStatusIfPending(ctx context.Context, id string, status entities.PaymentStatus, reviewer string) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #reviewed_by = :reviewed_by, #reviewed_at = :reviewed_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":status":      &types.AttributeValueMemberS{Value: string(status)},
			":reviewed_by": &types.AttributeValueMemberS{Value: reviewer},
			":reviewed_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":      "status",
			"#reviewed_by": "reviewed_by",
			"#reviewed_at": "reviewed_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:         p.ID,
		OrderID:    p.OrderID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount.String(),
		Method:     string(p.Method),
		Status:     string(p.Status),
		ReceiptRef: p.ReceiptRef,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ReviewedBy: p.ReviewedBy,
	}
	if p.ReviewedAt != nil {
		it.ReviewedAt = p.ReviewedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Payment{
		ID:         it.ID,
		OrderID:    it.OrderID,
		CustomerID: it.CustomerID,
		Amount:     money.Parse(it.Amount),
		Method:     entities.PaymentMethod(it.Method),
		Status:     entities.PaymentStatus(it.Status),
		ReceiptRef: it.ReceiptRef,
		CreatedAt:  createdAt,
		ReviewedBy: it.ReviewedBy,
	}
	if it.ReviewedAt != "" {
		if reviewedAt, err := time.Parse(time.RFC3339Nano, it.ReviewedAt); err == nil {
			p.ReviewedAt = &reviewedAt
		}
	}
	return p
}
