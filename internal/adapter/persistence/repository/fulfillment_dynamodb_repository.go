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

const (
	defaultProjectBriefsTableName = "project_briefs"
	defaultProjectsTableName      = "projects"
	orderIDIndex                  = "order_id-index"
)

type projectBriefItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	CompanyID string `dynamodbav:"company_id"`
	Package   string `dynamodbav:"package"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type projectItem struct {
	ID        string `dynamodbav:"id"`
	CompanyID string `dynamodbav:"company_id"`
	OrderID   string `dynamodbav:"order_id"`
	Name      string `dynamodbav:"name"`
	Package   string `dynamodbav:"package"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ProjectBriefDynamoRepository persists ProjectBrief entities.
//
// Table requirements:
//   - PK: id (string), derived from the order id
//   - GSI: order_id-index (PK: order_id)
type ProjectBriefDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectBriefRepository = (*ProjectBriefDynamoRepository)(nil)

func NewProjectBriefDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectBriefDynamoRepository {
	return &ProjectBriefDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultProjectBriefsTableName)}
}

func (r *ProjectBriefDynamoRepository) Create(ctx context.Context, b entities.ProjectBrief) (entities.ProjectBrief, error) {
	it := projectBriefItem{
		ID:        b.ID,
		OrderID:   b.OrderID,
		CompanyID: b.CompanyID,
		Package:   b.Package,
		Status:    string(b.Status),
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
	if err := putOnce(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ProjectBrief{}, err
	}
	return b, nil
}

func (r *ProjectBriefDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.ProjectBrief, error) {
	raw, err := firstByOrderID(ctx, r.ddb, r.tableName, orderID)
	if err != nil || raw == nil {
		return entities.ProjectBrief{}, err
	}
	var it projectBriefItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ProjectBrief{}, err
	}
	return entities.ProjectBrief{
		ID:        it.ID,
		OrderID:   it.OrderID,
		CompanyID: it.CompanyID,
		Package:   it.Package,
		Status:    entities.ProjectBriefStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}

// ProjectDynamoRepository persists delivery Project records.
//
// Table requirements:
//   - PK: id (string), derived from the order id
//   - GSI: order_id-index (PK: order_id)
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultProjectsTableName)}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := projectItem{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		OrderID:   p.OrderID,
		Name:      p.Name,
		Package:   p.Package,
		Status:    string(p.Status),
		CreatedAt: formatTime(p.CreatedAt),
	}
	if err := putOnce(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Project, error) {
	raw, err := firstByOrderID(ctx, r.ddb, r.tableName, orderID)
	if err != nil || raw == nil {
		return entities.Project{}, err
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Project{}, err
	}
	return entities.Project{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		OrderID:   it.OrderID,
		Name:      it.Name,
		Package:   it.Package,
		Status:    entities.ProjectStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

// putOnce writes item only if its id is not present yet.
func putOnce(ctx context.Context, ddb *dynamodb.Client, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

func firstByOrderID(ctx context.Context, ddb *dynamodb.Client, table, orderID string) (map[string]types.AttributeValue, error) {
	out, err := ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(orderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	return out.Items[0], nil
}
