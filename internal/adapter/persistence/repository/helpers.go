package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// errConditionFailed is returned by conditionalUpdate together with the item as it
// was when the condition was evaluated.
var errConditionFailed = errors.New("condition failed")

func tableOrDefault(name, def string) string {
	if v := strings.TrimSpace(name); v != "" {
		return v
	}
	return def
}

type updateSpec struct {
	expr   string
	cond   string
	values map[string]types.AttributeValue
	names  map[string]string
}

// conditionalUpdate runs an UpdateItem guarded by attribute_exists(id) AND spec.cond.
//
//   - item missing: (nil, nil)
//   - spec.cond false: (current attributes, errConditionFailed)
//   - success: (new attributes, nil)
func conditionalUpdate(ctx context.Context, ddb *dynamodb.Client, table, id string, build func(now string) updateSpec) (map[string]types.AttributeValue, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := ddb.UpdateItem(ctx, updateItemInput(table, id, build(now)))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return nil, nil
			}
			return cfe.Item, errConditionFailed
		}
		return nil, err
	}
	return out.Attributes, nil
}

func updateItemInput(table, id string, spec updateSpec) *dynamodb.UpdateItemInput {
	cond := "attribute_exists(#id)"
	if spec.cond != "" {
		cond += " AND (" + spec.cond + ")"
	}
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(spec.expr),
		ExpressionAttributeValues:           spec.values,
		ExpressionAttributeNames:            mergeNames(spec.names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
