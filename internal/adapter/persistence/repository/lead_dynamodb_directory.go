package repository

import (
	"context"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	CompanyID string `dynamodbav:"company_id"`
}

// LeadDynamoDirectory reads CRM leads from the table the CRM writes to. It never
// writes.
type LeadDynamoDirectory struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadDirectory = (*LeadDynamoDirectory)(nil)

func NewLeadDynamoDirectory(ddb *dynamodb.Client, tableName string) *LeadDynamoDirectory {
	return &LeadDynamoDirectory{ddb: ddb, tableName: tableOrDefault(tableName, defaultLeadsTableName)}
}

func (r *LeadDynamoDirectory) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ProjectionExpression: aws.String("#id, #name, email, company_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#name": "name",
		},
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return entities.Lead{ID: it.ID, Name: it.Name, Email: it.Email, CompanyID: it.CompanyID}, nil
}
