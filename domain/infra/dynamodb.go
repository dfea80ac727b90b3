package infra

//go:generate mockgen -source=dynamodb.go -destination=mock_dynamodb_test.go -package=infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pyama86/inquiry-relay/config"
	"github.com/pyama86/inquiry-relay/domain/model"
)

type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type DynamoDB struct {
	db        DynamoDBAPI
	tableName string
}

var (
	waitInterval = 2 * time.Second // ポーリング間隔
	maxRetries   = 30              // 最大リトライ回数 (30回 = 約1分)
)

func NewDynamoDB(ctx context.Context, cfg *config.Config) (*DynamoDB, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.DynamoLocal)
	if err != nil {
		return nil, err
	}

	var optFns []func(*dynamodb.Options)
	if cfg.DynamoLocal {
		optFns = append(optFns, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		})
	}

	d := NewDynamoDBWithClient(dynamodb.NewFromConfig(awsCfg, optFns...), cfg.TableName)
	if cfg.DynamoLocal {
		if err := d.EnsureTable(ctx); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func NewDynamoDBWithClient(db DynamoDBAPI, tableName string) *DynamoDB {
	return &DynamoDB{
		db:        db,
		tableName: tableName,
	}
}

// EnsureTable はテーブルが無ければ作成し、ACTIVE になるまで待つ
func (d *DynamoDB) EnsureTable(ctx context.Context) error {
	_, err := d.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.tableName),
	})
	if err == nil {
		// テーブルが既に存在する
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table %s: %w", d.tableName, err)
	}

	_, err = d.db.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(d.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("inquiry_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("inquiry_id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", d.tableName, err)
	}

	// テーブルがACTIVEになるまで待機
	for i := 0; i < maxRetries; i++ {
		out, err := d.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(d.tableName),
		})
		if err != nil {
			return fmt.Errorf("failed to describe table %s: %w", d.tableName, err)
		}

		if out.Table != nil && out.Table.TableStatus == types.TableStatusActive {
			return nil
		}

		time.Sleep(waitInterval)
	}

	return fmt.Errorf("table %s creation timed out", d.tableName)
}

func (d *DynamoDB) SaveInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	input := &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item: map[string]types.AttributeValue{
			"inquiry_id": &types.AttributeValueMemberS{Value: inquiry.ID},
			"name":       &types.AttributeValueMemberS{Value: inquiry.Name},
			"email":      &types.AttributeValueMemberS{Value: inquiry.Email},
			"message":    &types.AttributeValueMemberS{Value: inquiry.Message},
			"timestamp":  &types.AttributeValueMemberS{Value: inquiry.Timestamp()},
		},
	}

	_, err := d.db.PutItem(ctx, input)
	return err
}

func (d *DynamoDB) GetInquiry(ctx context.Context, id string) (*model.Inquiry, error) {
	result, err := d.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"inquiry_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}

	if result.Item == nil {
		return nil, nil
	}

	tsStr := getStringValue(result.Item, "timestamp")
	createdAt, err := model.ParseTimestamp(tsStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp (%s): %w", tsStr, err)
	}

	return &model.Inquiry{
		ID:        getStringValue(result.Item, "inquiry_id"),
		Name:      getStringValue(result.Item, "name"),
		Email:     getStringValue(result.Item, "email"),
		Message:   getStringValue(result.Item, "message"),
		CreatedAt: createdAt,
	}, nil
}

func getStringValue(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
