package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStatsTableName = "stats"

type statsItem struct {
	ID                    string  `dynamodbav:"id"`
	TotalRaised           float64 `dynamodbav:"total_raised"`
	TotalDonations        int     `dynamodbav:"total_donations"`
	TotalPledges          int     `dynamodbav:"total_pledges"`
	GoalAmount            float64 `dynamodbav:"goal_amount"`
	PledgedAmountOverride float64 `dynamodbav:"pledged_amount_override"`
	LastUpdated           string  `dynamodbav:"last_updated"`
}

// StatsDynamoRepository persists the singleton FundraiserStats document.
//
// Table requirements:
//   - PK: id (string, always "main")
//
// Counters are stored as DynamoDB numbers so ApplyDelta can use an ADD
// expression: the increment happens inside the store, there is no
// read-modify-write window for concurrent submissions to race on.

type StatsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatsRepository = (*StatsDynamoRepository)(nil)

func NewStatsDynamoRepository(ddb *dynamodb.Client) *StatsDynamoRepository {
	return &StatsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATS_TABLE", defaultStatsTableName),
	}
}

func (r *StatsDynamoRepository) Get(ctx context.Context) (entities.FundraiserStats, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.StatsDocID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FundraiserStats{}, err
	}
	if len(out.Item) == 0 {
		return entities.FundraiserStats{}, nil
	}

	var it statsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FundraiserStats{}, err
	}
	return fromStatsItem(it), nil
}

func (r *StatsDynamoRepository) InitIfAbsent(ctx context.Context, goalAmount float64) (bool, error) {
	it := statsItem{
		ID:          entities.StatsDocID,
		GoalAmount:  goalAmount,
		LastUpdated: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *StatsDynamoRepository) ApplyDelta(ctx context.Context, delta entities.StatsDelta) (entities.FundraiserStats, error) {
	expr := "ADD #total_raised :raised, #total_donations :donations, #total_pledges :pledges SET #last_updated = :now"
	return r.update(ctx, expr,
		map[string]types.AttributeValue{
			":raised":    &types.AttributeValueMemberN{Value: floatToString(delta.Raised)},
			":donations": &types.AttributeValueMemberN{Value: strconv.Itoa(delta.Donations)},
			":pledges":   &types.AttributeValueMemberN{Value: strconv.Itoa(delta.Pledges)},
			":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		map[string]string{
			"#total_raised":    "total_raised",
			"#total_donations": "total_donations",
			"#total_pledges":   "total_pledges",
			"#last_updated":    "last_updated",
		},
	)
}

func (r *StatsDynamoRepository) Reset(ctx context.Context) (entities.FundraiserStats, error) {
	// goal_amount is deliberately left out of the expression: reset zeroes
	// the totals and keeps the target.
	expr := "SET #total_raised = :zero, #total_donations = :zero, #total_pledges = :zero, #pledged_amount_override = :zero, #last_updated = :now"
	return r.update(ctx, expr,
		map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":now":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		map[string]string{
			"#total_raised":            "total_raised",
			"#total_donations":         "total_donations",
			"#total_pledges":           "total_pledges",
			"#pledged_amount_override": "pledged_amount_override",
			"#last_updated":            "last_updated",
		},
	)
}

func (r *StatsDynamoRepository) SetPledgedAmountOverride(ctx context.Context, amount float64) (entities.FundraiserStats, error) {
	expr := "SET #pledged_amount_override = :amount, #last_updated = :now"
	return r.update(ctx, expr,
		map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: floatToString(amount)},
			":now":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		map[string]string{
			"#pledged_amount_override": "pledged_amount_override",
			"#last_updated":            "last_updated",
		},
	)
}

func (r *StatsDynamoRepository) update(
	ctx context.Context,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.FundraiserStats, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.StatsDocID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FundraiserStats{}, nil
		}
		return entities.FundraiserStats{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FundraiserStats{}, nil
	}
	var it statsItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FundraiserStats{}, err
	}
	return fromStatsItem(it), nil
}

func fromStatsItem(it statsItem) entities.FundraiserStats {
	lastUpdated, _ := time.Parse(time.RFC3339Nano, it.LastUpdated)
	return entities.FundraiserStats{
		ID:                    it.ID,
		TotalRaised:           it.TotalRaised,
		TotalDonations:        it.TotalDonations,
		TotalPledges:          it.TotalPledges,
		GoalAmount:            it.GoalAmount,
		PledgedAmountOverride: it.PledgedAmountOverride,
		LastUpdated:           lastUpdated,
	}
}
