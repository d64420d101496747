package repository

import (
	"context"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	PaymentMode   string `dynamodbav:"payment_mode,omitempty"`
	TermAmount    string `dynamodbav:"term_amount"`
	ContractTerms string `dynamodbav:"contract_terms,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Profiles come from the commercial system and are replaced wholesale, so
// Upsert is an unconditional put.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Upsert(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:            c.ID,
		Name:          c.Name,
		PaymentMode:   string(c.PaymentMode),
		TermAmount:    c.TermAmount.String(),
		ContractTerms: c.ContractTerms,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:            it.ID,
		Name:          it.Name,
		PaymentMode:   entities.PaymentMode(it.PaymentMode),
		TermAmount:    money.Parse(it.TermAmount),
		ContractTerms: it.ContractTerms,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
