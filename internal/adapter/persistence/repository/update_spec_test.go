package repository

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"commerce_engine/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	namePlaceholder  = regexp.MustCompile(`#[a-z_]+`)
	valuePlaceholder = regexp.MustCompile(`:[a-z_]+`)
)

func stringValue(t *testing.T, v types.AttributeValue) string {
	t.Helper()
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected string attribute, got %T", v)
	}
	return s.Value
}

func TestUpdateSpecs(t *testing.T) {
	paidAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const now = "2025-03-01T12:00:01Z"

	cases := []struct {
		name     string
		build    func(now string) updateSpec
		cond     string
		exprHas  []string
		expected map[string]string
	}{
		{
			name:     "payment pending to paid",
			build:    transitionPaymentSpec(entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentDetails{Amount: 997, Method: "card", TransactionID: "pi_1", PaidAt: paidAt}),
			cond:     "#payment_status = :from",
			exprHas:  []string{"#payment_status = :to", "#invoice_status = :paid", "#intent = :intent", "#amount_paid = :amount_paid"},
			expected: map[string]string{":from": "pending", ":to": "paid", ":paid": "paid", ":intent": "pi_1", ":amount_paid": "997", ":payment_date": "2025-03-01T12:00:00Z"},
		},
		{
			name:     "payment transition without details",
			build:    transitionPaymentSpec(entities.PaymentStatusPaid, entities.PaymentStatusPending, entities.PaymentDetails{}),
			cond:     "#payment_status = :from",
			exprHas:  []string{"#payment_status = :to"},
			expected: map[string]string{":from": "paid", ":to": "pending"},
		},
		{
			name:     "payment failure only while pending",
			build:    paymentFailureSpec(entities.PaymentFailure{TransactionID: "pi_2", Reason: "card_declined", FailedAt: paidAt}),
			cond:     "#payment_status = :pending",
			exprHas:  []string{"#reason = :reason", "#failed_at = :failed_at"},
			expected: map[string]string{":pending": "pending", ":reason": "card_declined"},
		},
		{
			name:     "order status to in progress",
			build:    orderStatusSpec(entities.OrderStatusDraft, entities.OrderStatusInProgress, paidAt),
			cond:     "#status = :from",
			exprHas:  []string{"#status = :to", "#fulfilled_at = :fulfilled_at"},
			expected: map[string]string{":from": "draft", ":to": "in_progress"},
		},
		{
			name:     "invoice advance",
			build:    advanceInvoiceSpec(entities.InvoiceStatusDraft, entities.InvoiceStatusSent),
			cond:     "#invoice_status = :from",
			exprHas:  []string{"#invoice_status = :to"},
			expected: map[string]string{":from": "draft", ":to": "sent"},
		},
		{
			name:     "invoice attach never moves backwards",
			build:    attachInvoiceSpec(entities.Invoice{ID: "inv_1"}),
			cond:     "#invoice_status = :draft OR #invoice_status = :invoice_status",
			exprHas:  []string{"#invoice_id = :invoice_id"},
			expected: map[string]string{":invoice_id": "inv_1", ":invoice_status": "draft", ":draft": "draft"},
		},
		{
			name:     "proposal sent clears decision",
			build:    proposalStatusSpec(entities.ProposalStatusDraft, entities.ProposalStatusSent, paidAt),
			cond:     "#status = :from",
			exprHas:  []string{"#sent_at = :at", "REMOVE #decided_at"},
			expected: map[string]string{":from": "draft", ":to": "sent"},
		},
		{
			name:     "proposal accepted records decision",
			build:    proposalStatusSpec(entities.ProposalStatusSent, entities.ProposalStatusAccepted, paidAt),
			cond:     "#status = :from",
			exprHas:  []string{"#decided_at = :at"},
			expected: map[string]string{":from": "sent", ":to": "accepted"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := tc.build(now)
			if spec.cond != tc.cond {
				t.Fatalf("unexpected condition %q", spec.cond)
			}
			for _, part := range tc.exprHas {
				if !strings.Contains(spec.expr, part) {
					t.Fatalf("expected %q in %q", part, spec.expr)
				}
			}
			for k, want := range tc.expected {
				v, ok := spec.values[k]
				if !ok {
					t.Fatalf("missing value %s", k)
				}
				if got := stringValue(t, v); got != want {
					t.Fatalf("value %s = %q, want %q", k, got, want)
				}
			}

			in := updateItemInput("orders", "id-1", spec)
			cond := aws.ToString(in.ConditionExpression)
			if cond != "attribute_exists(#id) AND ("+tc.cond+")" {
				t.Fatalf("unexpected merged condition %q", cond)
			}
			all := cond + " " + aws.ToString(in.UpdateExpression)
			for _, n := range namePlaceholder.FindAllString(all, -1) {
				if _, ok := in.ExpressionAttributeNames[n]; !ok {
					t.Fatalf("name placeholder %s has no attribute name", n)
				}
			}
			for _, v := range valuePlaceholder.FindAllString(all, -1) {
				if _, ok := in.ExpressionAttributeValues[v]; !ok {
					t.Fatalf("value placeholder %s has no value", v)
				}
			}
			// DynamoDB rejects unused names and values.
			for n := range in.ExpressionAttributeNames {
				if !strings.Contains(all, n) {
					t.Fatalf("attribute name %s is unused", n)
				}
			}
			for v := range in.ExpressionAttributeValues {
				if !strings.Contains(all, v) {
					t.Fatalf("attribute value %s is unused", v)
				}
			}
		})
	}
}

func TestUpdateItemInput_WithoutCondition(t *testing.T) {
	in := updateItemInput("proposals", "prop-1", updateSpec{
		expr:   "SET #order_id = :order_id",
		values: map[string]types.AttributeValue{":order_id": &types.AttributeValueMemberS{Value: "ord-1"}},
		names:  map[string]string{"#order_id": "order_id"},
	})
	if got := aws.ToString(in.ConditionExpression); got != "attribute_exists(#id)" {
		t.Fatalf("unexpected condition %q", got)
	}
	if in.ExpressionAttributeNames["#id"] != "id" || in.ExpressionAttributeNames["#order_id"] != "order_id" {
		t.Fatalf("unexpected names %v", in.ExpressionAttributeNames)
	}
	if in.ReturnValuesOnConditionCheckFailure != types.ReturnValuesOnConditionCheckFailureAllOld {
		t.Fatalf("expected old item on condition failure")
	}
}
