package repository

import (
	"context"
	"strconv"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInstallmentsTableName = "installments"

type installmentItem struct {
	OrderID    string `dynamodbav:"order_id"`
	TermNo     int    `dynamodbav:"term_no"`
	DueDate    string `dynamodbav:"due_date"`
	AmountDue  string `dynamodbav:"amount_due"`
	AmountPaid string `dynamodbav:"amount_paid"`
	Status     string `dynamodbav:"status"`
}

// InstallmentDynamoRepository persists InstallmentTerm entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: term_no (number)
//
// The range key keeps queries sorted by term number, which is the order the
// equalizer and the validator expect.

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

// ReplaceForOrder swaps the whole plan of an order: stale terms are removed
// first, then the new ones are written. The commercial system is the only
// writer of plans, so the lack of atomicity across items is acceptable here.
func (r *InstallmentDynamoRepository) ReplaceForOrder(ctx context.Context, orderID string, terms []entities.InstallmentTerm) error {
	existing, err := r.ListByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	keep := make(map[int]bool, len(terms))
	for _, t := range terms {
		keep[t.TermNo] = true
	}
	for _, t := range existing {
		if keep[t.TermNo] {
			continue
		}
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       installmentKey(orderID, t.TermNo),
		})
		if err != nil {
			return err
		}
	}

	for _, t := range terms {
		av, err := attributevalue.MarshalMap(toInstallmentItem(t))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *InstallmentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.InstallmentTerm, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	terms := make([]entities.InstallmentTerm, 0, len(out.Items))
	for _, raw := range out.Items {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		terms = append(terms, fromInstallmentItem(it))
	}
	return terms, nil
}

func installmentKey(orderID string, termNo int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"order_id": &types.AttributeValueMemberS{Value: orderID},
		"term_no":  &types.AttributeValueMemberN{Value: strconv.Itoa(termNo)},
	}
}

func toInstallmentItem(t entities.InstallmentTerm) installmentItem {
	return installmentItem{
		OrderID:    t.OrderID,
		TermNo:     t.TermNo,
		DueDate:    t.DueDate.UTC().Format(time.RFC3339Nano),
		AmountDue:  t.AmountDue.String(),
		AmountPaid: t.AmountPaid.String(),
		Status:     string(t.Status),
	}
}

func fromInstallmentItem(it installmentItem) entities.InstallmentTerm {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	return entities.InstallmentTerm{
		OrderID:    it.OrderID,
		TermNo:     it.TermNo,
		DueDate:    dueDate,
		AmountDue:  money.Parse(it.AmountDue),
		AmountPaid: money.Parse(it.AmountPaid),
		Status:     entities.InstallmentStatus(it.Status),
	}
}
