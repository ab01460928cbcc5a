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

const (
	defaultDonationsTableName = "donations"
	donationsDocIndex         = "doc-created_at-index"
	donationsKindIndex        = "kind-created_at-index"

	// docPartition is the constant partition value that puts every record on
	// the doc index, so newest-first listings are a single ordered query
	// instead of a scan.
	docPartition = "donation"
)

type donationItem struct {
	ID                 string `dynamodbav:"id"`
	Doc                string `dynamodbav:"doc"`
	Amount             string `dynamodbav:"amount"`
	DonorName          string `dynamodbav:"donor_name"`
	DonorEmail         string `dynamodbav:"donor_email"`
	DonorPhone         string `dynamodbav:"donor_phone,omitempty"`
	Kind               string `dynamodbav:"kind"`
	PaymentMethod      string `dynamodbav:"payment_method,omitempty"`
	Status             string `dynamodbav:"status"`
	VerificationStatus string `dynamodbav:"verification_status,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	IdempotencyKey     string `dynamodbav:"idempotency_key,omitempty"`
	CountedAtCreation  bool   `dynamodbav:"counted_at_creation"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// DonationDynamoRepository persists Donation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: doc-created_at-index (PK: doc, SK: created_at)
//   - GSI: kind-created_at-index (PK: kind, SK: created_at)
//
// created_at is an RFC3339Nano string, so lexicographic sort-key order is
// chronological order.

type DonationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDonationRepository = (*DonationDynamoRepository)(nil)

func NewDonationDynamoRepository(ddb *dynamodb.Client) *DonationDynamoRepository {
	return &DonationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATIONS_TABLE", defaultDonationsTableName),
	}
}

func (r *DonationDynamoRepository) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	it := toDonationItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Donation{}, err
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
		// An idempotency-derived id that already exists is not a failure,
		// the caller replays the original record.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Donation{}, nil
		}
		return entities.Donation{}, err
	}
	return d, nil
}

func (r *DonationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func (r *DonationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DonationDynamoRepository) UpdateVerification(ctx context.Context, id string, vs entities.VerificationStatus) (entities.Donation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #verification_status = :vs, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":vs":         &types.AttributeValueMemberS{Value: string(vs)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#verification_status": "verification_status",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DonationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *DonationDynamoRepository) List(ctx context.Context) ([]entities.Donation, error) {
	return r.queryNewestFirst(ctx, donationsDocIndex, "doc", docPartition, 0)
}

func (r *DonationDynamoRepository) ListByKind(ctx context.Context, kind entities.DonationKind) ([]entities.Donation, error) {
	return r.queryNewestFirst(ctx, donationsKindIndex, "kind", string(kind), 0)
}

func (r *DonationDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Donation, error) {
	return r.queryNewestFirst(ctx, donationsDocIndex, "doc", docPartition, limit)
}

func (r *DonationDynamoRepository) queryNewestFirst(ctx context.Context, index, keyAttr, keyValue string, limit int) ([]entities.Donation, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": keyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: keyValue},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Donation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it donationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDonationItem(it))
	}
	return items, nil
}

func (r *DonationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Donation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
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
			return entities.Donation{}, nil
		}
		return entities.Donation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Donation{}, nil
	}
	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func toDonationItem(d entities.Donation) donationItem {
	return donationItem{
		ID:                 d.ID,
		Doc:                docPartition,
		Amount:             floatToString(d.Amount),
		DonorName:          d.DonorName,
		DonorEmail:         d.DonorEmail,
		DonorPhone:         d.DonorPhone,
		Kind:               string(d.Kind),
		PaymentMethod:      string(d.PaymentMethod),
		Status:             string(d.Status),
		VerificationStatus: string(d.VerificationStatus),
		Notes:              d.Notes,
		ProviderPaymentID:  d.ProviderPaymentID,
		IdempotencyKey:     d.IdempotencyKey,
		CountedAtCreation:  d.CountedAtCreation,
		CreatedAt:          d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDonationItem(it donationItem) entities.Donation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Donation{
		ID:                 it.ID,
		Amount:             amount,
		DonorName:          it.DonorName,
		DonorEmail:         it.DonorEmail,
		DonorPhone:         it.DonorPhone,
		Kind:               entities.DonationKind(it.Kind),
		PaymentMethod:      entities.PaymentMethod(it.PaymentMethod),
		Status:             entities.DonationStatus(it.Status),
		VerificationStatus: entities.VerificationStatus(it.VerificationStatus),
		Notes:              it.Notes,
		ProviderPaymentID:  it.ProviderPaymentID,
		IdempotencyKey:     it.IdempotencyKey,
		CountedAtCreation:  it.CountedAtCreation,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
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
