package repository

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"premiumpay/internal/domain/entities"
	"premiumpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultLedgerTableName = "payment_ledger"
	ledgerOrderIDIndex     = "order_id-index"
)

type retryAttemptItem struct {
	Timestamp    string `dynamodbav:"timestamp"`
	Attempt      int    `dynamodbav:"attempt"`
	ErrorCode    string `dynamodbav:"error_code"`
	ErrorMessage string `dynamodbav:"error_message"`
	HTTPStatus   int    `dynamodbav:"http_status,omitempty"`
}

type paymentOutcomeItem struct {
	PK           string             `dynamodbav:"pk"`
	OrderID      string             `dynamodbav:"order_id"`
	CaptureID    string             `dynamodbav:"capture_id,omitempty"`
	EventID      string             `dynamodbav:"event_id,omitempty"`
	Status       string             `dynamodbav:"status"`
	Amount       float64            `dynamodbav:"amount"`
	Currency     string             `dynamodbav:"currency,omitempty"`
	PayerID      string             `dynamodbav:"payer_id,omitempty"`
	PayerEmail   string             `dynamodbav:"payer_email,omitempty"`
	UserID       string             `dynamodbav:"user_id,omitempty"`
	Source       string             `dynamodbav:"source"`
	Attempts     int                `dynamodbav:"attempts"`
	RetryHistory []retryAttemptItem `dynamodbav:"retry_history,omitempty"`
	CreatedAt    string             `dynamodbav:"created_at"`
	PayloadRaw   string             `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentOutcomeDynamoRepository is the append-only payment ledger.
//
// Table layout:
//   - PK: pk (string) — "capture#<captureID>" | "event#<eventID>" | "failed#<uuid>"
//   - GSI: order_id-index (PK: order_id)
//
// The computed pk stands in for sparse unique indexes: the conditional put on
// attribute_not_exists(pk) is the sole synchronization primitive between the
// capture and webhook delivery channels. Two concurrent inserts for the same
// key race at the storage layer; exactly one wins and the other observes
// idempotent=true.

type PaymentOutcomeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string

	ensureOnce sync.Once
	ensureErr  error
}

var _ interfaces.IPaymentLedgerRepository = (*PaymentOutcomeDynamoRepository)(nil)

func NewPaymentOutcomeDynamoRepository(ddb *dynamodb.Client) *PaymentOutcomeDynamoRepository {
	return &PaymentOutcomeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_LEDGER_TABLE", defaultLedgerTableName),
	}
}

// Record inserts one immutable outcome row. A duplicate idempotency key
// returns (true, nil) without mutating the stored row; there is no upsert.
func (r *PaymentOutcomeDynamoRepository) Record(ctx context.Context, o entities.PaymentOutcome) (bool, error) {
	if err := r.ensureTable(ctx); err != nil {
		return false, err
	}

	it := toPaymentOutcomeItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
		},
	})
	if err != nil {
		var dup *types.ConditionalCheckFailedException
		if errors.As(err, &dup) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (r *PaymentOutcomeDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentOutcome, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ledgerOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentOutcome, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentOutcomeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentOutcomeItem(it))
	}
	return items, nil
}

// ensureTable lazily creates the ledger table with its order index, exactly
// once per process. A table that already exists (including one created by a
// racing instance) is fine.
func (r *PaymentOutcomeDynamoRepository) ensureTable(ctx context.Context) error {
	r.ensureOnce.Do(func() {
		_, err := r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:   aws.String(r.tableName),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("pk"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("order_id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("pk"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String(ledgerOrderIDIndex),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("order_id"), KeyType: types.KeyTypeHash},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				return
			}
			log.Printf("[ledger][repository] create table failed table=%s err=%v", r.tableName, err)
			r.ensureErr = err
			return
		}
		log.Printf("[ledger][repository] created table table=%s", r.tableName)
	})
	return r.ensureErr
}

func toPaymentOutcomeItem(o entities.PaymentOutcome) paymentOutcomeItem {
	pk := o.IdempotencyKey()
	if pk == "" {
		// Failed attempts carry no idempotency key; each one is its own
		// audit row.
		pk = "failed#" + uuid.NewString()
	}

	history := make([]retryAttemptItem, 0, len(o.RetryHistory))
	for _, a := range o.RetryHistory {
		history = append(history, retryAttemptItem{
			Timestamp:    a.Timestamp.UTC().Format(time.RFC3339Nano),
			Attempt:      a.Attempt,
			ErrorCode:    a.ErrorCode,
			ErrorMessage: a.ErrorMessage,
			HTTPStatus:   a.HTTPStatus,
		})
	}

	return paymentOutcomeItem{
		PK:           pk,
		OrderID:      o.OrderID,
		CaptureID:    o.CaptureID,
		EventID:      o.EventID,
		Status:       string(o.Status),
		Amount:       o.Amount,
		Currency:     o.Currency,
		PayerID:      o.PayerID,
		PayerEmail:   o.PayerEmail,
		UserID:       o.UserID,
		Source:       string(o.Source),
		Attempts:     o.Attempts,
		RetryHistory: history,
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339Nano),
		PayloadRaw:   string(o.ProviderPayloadRaw),
	}
}

func fromPaymentOutcomeItem(it paymentOutcomeItem) entities.PaymentOutcome {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	history := make([]entities.RetryAttemptRecord, 0, len(it.RetryHistory))
	for _, a := range it.RetryHistory {
		ts, _ := time.Parse(time.RFC3339Nano, a.Timestamp)
		history = append(history, entities.RetryAttemptRecord{
			Timestamp:    ts,
			Attempt:      a.Attempt,
			ErrorCode:    a.ErrorCode,
			ErrorMessage: a.ErrorMessage,
			HTTPStatus:   a.HTTPStatus,
		})
	}

	o := entities.PaymentOutcome{
		OrderID:      it.OrderID,
		CaptureID:    it.CaptureID,
		EventID:      it.EventID,
		Status:       entities.PaymentStatus(it.Status),
		Amount:       it.Amount,
		Currency:     it.Currency,
		PayerID:      it.PayerID,
		PayerEmail:   it.PayerEmail,
		UserID:       it.UserID,
		Source:       entities.PaymentSource(it.Source),
		Attempts:     it.Attempts,
		RetryHistory: history,
		CreatedAt:    createdAt,
	}
	if it.PayloadRaw != "" {
		o.ProviderPayloadRaw = []byte(it.PayloadRaw)
	}
	return o
}
