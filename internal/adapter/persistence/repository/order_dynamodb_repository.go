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
	defaultOrdersTableName = "orders"
	ordersCompanyIDIndex   = "company_id-index"
	ordersInvoiceIDIndex   = "invoice_id-index"
)

type customItemAttr struct {
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
}

type orderItem struct {
	ID                    string           `dynamodbav:"id"`
	CompanyID             string           `dynamodbav:"company_id"`
	ProposalID            string           `dynamodbav:"proposal_id,omitempty"`
	Status                string           `dynamodbav:"status"`
	Package               string           `dynamodbav:"package"`
	Addons                []string         `dynamodbav:"addons,omitempty"`
	CustomItems           []customItemAttr `dynamodbav:"custom_items,omitempty"`
	Subtotal              string           `dynamodbav:"subtotal"`
	Tax                   string           `dynamodbav:"tax"`
	Total                 string           `dynamodbav:"total"`
	CustomerName          string           `dynamodbav:"customer_name,omitempty"`
	CustomerEmail         string           `dynamodbav:"customer_email,omitempty"`
	Notes                 string           `dynamodbav:"notes,omitempty"`
	InvoiceID             string           `dynamodbav:"invoice_id,omitempty"`
	InvoiceStatus         string           `dynamodbav:"invoice_status"`
	PaymentStatus         string           `dynamodbav:"payment_status"`
	StripePaymentLinkURL  string           `dynamodbav:"stripe_payment_link_url,omitempty"`
	StripePaymentIntentID string           `dynamodbav:"stripe_payment_intent_id,omitempty"`
	PaymentDate           string           `dynamodbav:"payment_date,omitempty"`
	PaymentMethod         string           `dynamodbav:"payment_method,omitempty"`
	AmountPaid            string           `dynamodbav:"amount_paid,omitempty"`
	LastPaymentFailure    string           `dynamodbav:"last_payment_failure,omitempty"`
	LastPaymentFailureAt  string           `dynamodbav:"last_payment_failure_at,omitempty"`
	FulfilledAt           string           `dynamodbav:"fulfilled_at,omitempty"`
	CreatedAt             string           `dynamodbav:"created_at"`
	UpdatedAt             string           `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// Payment and status changes are single UpdateItem calls conditioned on the expected
// "from" value, so concurrent webhook deliveries cannot both win the paid transition.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
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
	return unmarshalOrder(out.Item)
}

func (r *OrderDynamoRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Order, error) {
	orders, err := r.queryIndex(ctx, ordersInvoiceIDIndex, "invoice_id", invoiceID)
	if err != nil || len(orders) == 0 {
		return entities.Order{}, err
	}
	// GSIs are eventually consistent; re-read the base item for the current state.
	return r.GetByID(ctx, orders[0].ID)
}

func (r *OrderDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Order, error) {
	orders, err := r.queryIndex(ctx, ordersCompanyIDIndex, "company_id", companyID)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (r *OrderDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		o, err := unmarshalOrder(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, nil
}

func (r *OrderDynamoRepository) AttachInvoice(ctx context.Context, id string, invoice entities.Invoice) (entities.Order, error) {
	return r.update(ctx, id, attachInvoiceSpec(invoice))
}

func (r *OrderDynamoRepository) AttachPaymentLink(ctx context.Context, id string, url string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) updateSpec {
		return updateSpec{
			expr: "SET #link = :link, #updated_at = :updated_at",
			values: map[string]types.AttributeValue{
				":link":       &types.AttributeValueMemberS{Value: url},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{"#link": "stripe_payment_link_url", "#updated_at": "updated_at"},
		}
	})
}

func (r *OrderDynamoRepository) AdvanceInvoiceStatus(ctx context.Context, id string, from, to entities.InvoiceStatus) (entities.Order, error) {
	if to.Rank() <= from.Rank() {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.Order{}, err
		}
		return current, interfaces.ErrStaleTransition
	}
	return r.update(ctx, id, advanceInvoiceSpec(from, to))
}

func (r *OrderDynamoRepository) TransitionPayment(ctx context.Context, id string, from, to entities.PaymentStatus, details entities.PaymentDetails) (entities.Order, error) {
	return r.update(ctx, id, transitionPaymentSpec(from, to, details))
}

func (r *OrderDynamoRepository) RecordPaymentFailure(ctx context.Context, id string, failure entities.PaymentFailure) (entities.Order, error) {
	return r.update(ctx, id, paymentFailureSpec(failure))
}

func (r *OrderDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.OrderStatus, at time.Time) (entities.Order, error) {
	return r.update(ctx, id, orderStatusSpec(from, to, at))
}

func attachInvoiceSpec(invoice entities.Invoice) func(now string) updateSpec {
	status := invoice.Status
	if status.Rank() == 0 {
		status = entities.InvoiceStatusDraft
	}
	return func(now string) updateSpec {
		return updateSpec{
			expr: "SET #invoice_id = :invoice_id, #invoice_status = :invoice_status, #updated_at = :updated_at",
			// Never move the invoice status backwards.
			cond: "#invoice_status = :draft OR #invoice_status = :invoice_status",
			values: map[string]types.AttributeValue{
				":invoice_id":     &types.AttributeValueMemberS{Value: invoice.ID},
				":invoice_status": &types.AttributeValueMemberS{Value: string(status)},
				":draft":          &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusDraft)},
				":updated_at":     &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{
				"#invoice_id":     "invoice_id",
				"#invoice_status": "invoice_status",
				"#updated_at":     "updated_at",
			},
		}
	}
}

func advanceInvoiceSpec(from, to entities.InvoiceStatus) func(now string) updateSpec {
	return func(now string) updateSpec {
		return updateSpec{
			expr: "SET #invoice_status = :to, #updated_at = :updated_at",
			cond: "#invoice_status = :from",
			values: map[string]types.AttributeValue{
				":to":         &types.AttributeValueMemberS{Value: string(to)},
				":from":       &types.AttributeValueMemberS{Value: string(from)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{"#invoice_status": "invoice_status", "#updated_at": "updated_at"},
		}
	}
}

// transitionPaymentSpec is the compare-and-swap on payment_status. Moving to paid
// writes the payment details and the paid invoice status in the same update.
func transitionPaymentSpec(from, to entities.PaymentStatus, details entities.PaymentDetails) func(now string) updateSpec {
	return func(now string) updateSpec {
		spec := updateSpec{
			expr: "SET #payment_status = :to, #updated_at = :updated_at",
			cond: "#payment_status = :from",
			values: map[string]types.AttributeValue{
				":to":         &types.AttributeValueMemberS{Value: string(to)},
				":from":       &types.AttributeValueMemberS{Value: string(from)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{"#payment_status": "payment_status", "#updated_at": "updated_at"},
		}
		if to == entities.PaymentStatusPaid {
			spec.expr += ", #invoice_status = :paid, #payment_date = :payment_date, #payment_method = :payment_method, #intent = :intent, #amount_paid = :amount_paid"
			spec.values[":paid"] = &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)}
			spec.values[":payment_date"] = &types.AttributeValueMemberS{Value: formatTime(details.PaidAt)}
			spec.values[":payment_method"] = &types.AttributeValueMemberS{Value: details.Method}
			spec.values[":intent"] = &types.AttributeValueMemberS{Value: details.TransactionID}
			spec.values[":amount_paid"] = &types.AttributeValueMemberS{Value: floatToString(details.Amount)}
			spec.names["#invoice_status"] = "invoice_status"
			spec.names["#payment_date"] = "payment_date"
			spec.names["#payment_method"] = "payment_method"
			spec.names["#intent"] = "stripe_payment_intent_id"
			spec.names["#amount_paid"] = "amount_paid"
		}
		return spec
	}
}

func paymentFailureSpec(failure entities.PaymentFailure) func(now string) updateSpec {
	return func(now string) updateSpec {
		return updateSpec{
			expr: "SET #intent = :intent, #reason = :reason, #failed_at = :failed_at, #updated_at = :updated_at",
			cond: "#payment_status = :pending",
			values: map[string]types.AttributeValue{
				":intent":     &types.AttributeValueMemberS{Value: failure.TransactionID},
				":reason":     &types.AttributeValueMemberS{Value: failure.Reason},
				":failed_at":  &types.AttributeValueMemberS{Value: formatTime(failure.FailedAt)},
				":pending":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{
				"#intent":         "stripe_payment_intent_id",
				"#reason":         "last_payment_failure",
				"#failed_at":      "last_payment_failure_at",
				"#payment_status": "payment_status",
				"#updated_at":     "updated_at",
			},
		}
	}
}

func orderStatusSpec(from, to entities.OrderStatus, at time.Time) func(now string) updateSpec {
	return func(now string) updateSpec {
		spec := updateSpec{
			expr: "SET #status = :to, #updated_at = :updated_at",
			cond: "#status = :from",
			values: map[string]types.AttributeValue{
				":to":         &types.AttributeValueMemberS{Value: string(to)},
				":from":       &types.AttributeValueMemberS{Value: string(from)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{"#status": "status", "#updated_at": "updated_at"},
		}
		if to == entities.OrderStatusInProgress {
			spec.expr += ", #fulfilled_at = :fulfilled_at"
			spec.values[":fulfilled_at"] = &types.AttributeValueMemberS{Value: formatTime(at)}
			spec.names["#fulfilled_at"] = "fulfilled_at"
		}
		return spec
	}
}

func (r *OrderDynamoRepository) update(ctx context.Context, id string, build func(now string) updateSpec) (entities.Order, error) {
	attrs, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, build)
	if errors.Is(err, errConditionFailed) {
		current, uerr := unmarshalOrder(attrs)
		if uerr != nil {
			return entities.Order{}, uerr
		}
		return current, interfaces.ErrStaleTransition
	}
	if err != nil {
		return entities.Order{}, err
	}
	if len(attrs) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(attrs)
}

func unmarshalOrder(raw map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	custom := make([]customItemAttr, 0, len(o.CustomItems))
	for _, c := range o.CustomItems {
		custom = append(custom, customItemAttr{Description: c.Description, Price: floatToString(c.Price)})
	}
	it := orderItem{
		ID:                    o.ID,
		CompanyID:             o.CompanyID,
		ProposalID:            o.ProposalID,
		Status:                string(o.Status),
		Package:               o.Package,
		Addons:                o.Addons,
		CustomItems:           custom,
		Subtotal:              floatToString(o.Subtotal),
		Tax:                   floatToString(o.Tax),
		Total:                 floatToString(o.Total),
		CustomerName:          o.CustomerName,
		CustomerEmail:         o.CustomerEmail,
		Notes:                 o.Notes,
		InvoiceID:             o.InvoiceID,
		InvoiceStatus:         string(o.InvoiceStatus),
		PaymentStatus:         string(o.PaymentStatus),
		StripePaymentLinkURL:  o.StripePaymentLinkURL,
		StripePaymentIntentID: o.StripePaymentIntentID,
		PaymentDate:           formatTimePtr(o.PaymentDate),
		PaymentMethod:         o.PaymentMethod,
		LastPaymentFailure:    o.LastPaymentFailure,
		LastPaymentFailureAt:  formatTimePtr(o.LastPaymentFailureAt),
		FulfilledAt:           formatTimePtr(o.FulfilledAt),
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}
	if o.AmountPaid != 0 {
		it.AmountPaid = floatToString(o.AmountPaid)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	var custom []entities.CustomItem
	for _, c := range it.CustomItems {
		custom = append(custom, entities.CustomItem{Description: c.Description, Price: parseFloat(c.Price)})
	}
	return entities.Order{
		ID:                    it.ID,
		CompanyID:             it.CompanyID,
		ProposalID:            it.ProposalID,
		Status:                entities.OrderStatus(it.Status),
		Package:               it.Package,
		Addons:                it.Addons,
		CustomItems:           custom,
		Subtotal:              parseFloat(it.Subtotal),
		Tax:                   parseFloat(it.Tax),
		Total:                 parseFloat(it.Total),
		CustomerName:          it.CustomerName,
		CustomerEmail:         it.CustomerEmail,
		Notes:                 it.Notes,
		InvoiceID:             it.InvoiceID,
		InvoiceStatus:         entities.InvoiceStatus(it.InvoiceStatus),
		PaymentStatus:         entities.PaymentStatus(it.PaymentStatus),
		StripePaymentLinkURL:  it.StripePaymentLinkURL,
		StripePaymentIntentID: it.StripePaymentIntentID,
		PaymentDate:           parseTimePtr(it.PaymentDate),
		PaymentMethod:         it.PaymentMethod,
		AmountPaid:            parseFloat(it.AmountPaid),
		LastPaymentFailure:    it.LastPaymentFailure,
		LastPaymentFailureAt:  parseTimePtr(it.LastPaymentFailureAt),
		FulfilledAt:           parseTimePtr(it.FulfilledAt),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
