package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsLeadIDIndex      = "lead_id-index"
)

type lineItemAttr struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type proposalItem struct {
	ID          string         `dynamodbav:"id"`
	LeadID      string         `dynamodbav:"lead_id"`
	Status      string         `dynamodbav:"status"`
	LineItems   []lineItemAttr `dynamodbav:"line_items"`
	TotalAmount string         `dynamodbav:"total_amount"`
	Notes       string         `dynamodbav:"notes,omitempty"`
	OrderID     string         `dynamodbav:"order_id,omitempty"`
	SentAt      string         `dynamodbav:"sent_at,omitempty"`
	DecidedAt   string         `dynamodbav:"decided_at,omitempty"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
//
// Status changes are conditional on the current status, so a stale caller gets
// ErrStaleTransition instead of overwriting a newer state.
type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
		if isConditionFailed(err) {
			return entities.Proposal{}, interfaces.ErrAlreadyExists
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}
	return unmarshalProposal(out.Item)
}

func (r *ProposalDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		p, err := unmarshalProposal(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *ProposalDynamoRepository) UpdateDraft(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	lineItems, err := attributevalue.Marshal(toLineItemAttrs(p.LineItems))
	if err != nil {
		return entities.Proposal{}, err
	}
	return r.update(ctx, p.ID, func(now string) updateSpec {
		return updateSpec{
			expr: "SET #lead_id = :lead_id, #line_items = :line_items, #total_amount = :total_amount, #notes = :notes, #updated_at = :updated_at",
			cond: "#status = :draft",
			values: map[string]types.AttributeValue{
				":lead_id":      &types.AttributeValueMemberS{Value: p.LeadID},
				":line_items":   lineItems,
				":total_amount": &types.AttributeValueMemberS{Value: floatToString(p.TotalAmount)},
				":notes":        &types.AttributeValueMemberS{Value: p.Notes},
				":updated_at":   &types.AttributeValueMemberS{Value: now},
				":draft":        &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
			},
			names: map[string]string{
				"#lead_id":      "lead_id",
				"#line_items":   "line_items",
				"#total_amount": "total_amount",
				"#notes":        "notes",
				"#updated_at":   "updated_at",
				"#status":       "status",
			},
		}
	})
}

func (r *ProposalDynamoRepository) DeleteDraft(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrStaleTransition
	}
	return err
}

func (r *ProposalDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.ProposalStatus, at time.Time) (entities.Proposal, error) {
	return r.update(ctx, id, proposalStatusSpec(from, to, at))
}

func proposalStatusSpec(from, to entities.ProposalStatus, at time.Time) func(now string) updateSpec {
	return func(_ string) updateSpec {
		ts := formatTime(at)
		expr := "SET #status = :to, #updated_at = :at"
		names := map[string]string{"#status": "status", "#updated_at": "updated_at"}
		switch to {
		case entities.ProposalStatusSent:
			expr += ", #sent_at = :at REMOVE #decided_at"
			names["#sent_at"] = "sent_at"
			names["#decided_at"] = "decided_at"
		case entities.ProposalStatusAccepted, entities.ProposalStatusRejected:
			expr += ", #decided_at = :at"
			names["#decided_at"] = "decided_at"
		}
		return updateSpec{
			expr: expr,
			cond: "#status = :from",
			values: map[string]types.AttributeValue{
				":to":   &types.AttributeValueMemberS{Value: string(to)},
				":from": &types.AttributeValueMemberS{Value: string(from)},
				":at":   &types.AttributeValueMemberS{Value: ts},
			},
			names: names,
		}
	}
}

func (r *ProposalDynamoRepository) AttachOrder(ctx context.Context, id string, orderID string) error {
	_, err := r.update(ctx, id, func(now string) updateSpec {
		return updateSpec{
			expr: "SET #order_id = :order_id, #updated_at = :updated_at",
			values: map[string]types.AttributeValue{
				":order_id":   &types.AttributeValueMemberS{Value: orderID},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{"#order_id": "order_id", "#updated_at": "updated_at"},
		}
	})
	return err
}

func (r *ProposalDynamoRepository) update(ctx context.Context, id string, build func(now string) updateSpec) (entities.Proposal, error) {
	attrs, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, build)
	if errors.Is(err, errConditionFailed) {
		current, uerr := unmarshalProposal(attrs)
		if uerr != nil {
			return entities.Proposal{}, uerr
		}
		return current, interfaces.ErrStaleTransition
	}
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(attrs) == 0 {
		return entities.Proposal{}, nil
	}
	return unmarshalProposal(attrs)
}

func unmarshalProposal(raw map[string]types.AttributeValue) (entities.Proposal, error) {
	var it proposalItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toLineItemAttrs(items []entities.LineItem) []lineItemAttr {
	out := make([]lineItemAttr, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemAttr{
			Description: it.Description,
			Quantity:    floatToString(it.Quantity),
			UnitPrice:   floatToString(it.UnitPrice),
			Total:       floatToString(it.Total),
		})
	}
	return out
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:          p.ID,
		LeadID:      p.LeadID,
		Status:      string(p.Status),
		LineItems:   toLineItemAttrs(p.LineItems),
		TotalAmount: floatToString(p.TotalAmount),
		Notes:       p.Notes,
		OrderID:     p.OrderID,
		SentAt:      formatTimePtr(p.SentAt),
		DecidedAt:   formatTimePtr(p.DecidedAt),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.LineItem{
			Description: li.Description,
			Quantity:    parseFloat(li.Quantity),
			UnitPrice:   parseFloat(li.UnitPrice),
			Total:       parseFloat(li.Total),
		})
	}
	return entities.Proposal{
		ID:          it.ID,
		LeadID:      it.LeadID,
		Status:      entities.ProposalStatus(it.Status),
		LineItems:   items,
		TotalAmount: parseFloat(it.TotalAmount),
		Notes:       it.Notes,
		OrderID:     it.OrderID,
		SentAt:      parseTimePtr(it.SentAt),
		DecidedAt:   parseTimePtr(it.DecidedAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
