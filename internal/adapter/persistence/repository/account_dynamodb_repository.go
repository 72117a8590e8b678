package repository

import (
	"context"
	"errors"
	"time"

	"premiumpay/internal/domain/entities"
	"premiumpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAccountsTableName = "accounts"
	accountsEmailIndex       = "email-index"
)

type accountItem struct {
	ID               string `dynamodbav:"id"`
	Email            string `dynamodbav:"email"`
	Premium          bool   `dynamodbav:"premium"`
	PremiumExpiresAt string `dynamodbav:"premium_expires_at,omitempty"`
}

// AccountDynamoRepository reads accounts and applies the premium extension.
//
// Table requirements (owned by the user service, never created here):
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accountsEmailIndex),
		KeyConditionExpression: aws.String("email = :em"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":em": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Items) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

// SetPremiumUntil writes the tier flag and the new expiration together in one
// atomic update. The condition keeps an update from resurrecting a deleted
// account as a bare premium row.
func (r *AccountDynamoRepository) SetPremiumUntil(ctx context.Context, id string, expiresAt time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET premium = :p, premium_expires_at = :exp"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":   &types.AttributeValueMemberBOOL{Value: true},
			":exp": &types.AttributeValueMemberS{Value: expiresAt.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var missing *types.ConditionalCheckFailedException
		if errors.As(err, &missing) {
			return entities.ErrAccountNotFound
		}
		return err
	}
	return nil
}

func fromAccountItem(it accountItem) entities.Account {
	acc := entities.Account{
		ID:      it.ID,
		Email:   it.Email,
		Premium: it.Premium,
	}
	if it.PremiumExpiresAt != "" {
		if exp, err := time.Parse(time.RFC3339Nano, it.PremiumExpiresAt); err == nil {
			acc.PremiumExpiresAt = &exp
		}
	}
	return acc
}
