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
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	SKU             string `dynamodbav:"sku"`
	Description     string `dynamodbav:"description,omitempty"`
	Quantity        int    `dynamodbav:"quantity"`
	UnitPrice       string `dynamodbav:"unit_price"`
	DiscountPercent string `dynamodbav:"discount_percent"`
}

type orderItem struct {
	ID                 string          `dynamodbav:"id"`
	CustomerID         string          `dynamodbav:"customer_id"`
	Items              []orderLineItem `dynamodbav:"items,omitempty"`
	TaxAmount          string          `dynamodbav:"tax_amount"`
	ShippingFee        string          `dynamodbav:"shipping_fee"`
	GrandTotalOverride string          `dynamodbav:"grand_total_override,omitempty"`
	CreatedAt          string          `dynamodbav:"created_at"`
	UpdatedAt          string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Monetary attributes are stored as decimal strings so no precision is lost
// between writes and the ledger arithmetic on reads.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Upsert(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdateShippingFee(ctx context.Context, id string, fee decimal.Decimal) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #shipping_fee = :shipping_fee, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":shipping_fee": &types.AttributeValueMemberS{Value: fee.String()},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#shipping_fee": "shipping_fee",
			"#updated_at":   "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, orderLineItem{
			SKU:             it.SKU,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice.String(),
			DiscountPercent: it.DiscountPercent.String(),
		})
	}

	item := orderItem{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Items:       lines,
		TaxAmount:   o.TaxAmount.String(),
		ShippingFee: o.ShippingFee.String(),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.GrandTotalOverride != nil {
		item.GrandTotalOverride = o.GrandTotalOverride.String()
	}
	return item
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.OrderItem{
			SKU:             line.SKU,
			Description:     line.Description,
			Quantity:        line.Quantity,
			UnitPrice:       money.Parse(line.UnitPrice),
			DiscountPercent: money.Parse(line.DiscountPercent),
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.Order{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		Items:       items,
		TaxAmount:   money.Parse(it.TaxAmount),
		ShippingFee: money.Parse(it.ShippingFee),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.GrandTotalOverride != "" {
		override := money.Parse(it.GrandTotalOverride)
		o.GrandTotalOverride = &override
	}
	return o
}
