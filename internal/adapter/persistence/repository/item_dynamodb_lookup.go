package repository

import (
	"context"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultItemsTableName = "bookings"

type swapItemRecord struct {
	ID                 string `dynamodbav:"id"`
	OwnerID            string `dynamodbav:"owner_id"`
	EventDate          string `dynamodbav:"event_date"`
	Status             string `dynamodbav:"status"`
	VerificationStatus string `dynamodbav:"verification_status"`
}

// ItemDynamoLookup reads bookings from the table owned by the booking service.
// It never writes.
type ItemDynamoLookup struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IItemLookup = (*ItemDynamoLookup)(nil)

// NewItemDynamoLookup uses tableName, or ITEMS_TABLE when empty.
func NewItemDynamoLookup(ddb *dynamodb.Client, tableName string) *ItemDynamoLookup {
	return &ItemDynamoLookup{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "ITEMS_TABLE", defaultItemsTableName),
	}
}

func (l *ItemDynamoLookup) GetItemByID(ctx context.Context, id string) (entities.SwapItem, error) {
	out, err := l.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(l.tableName),
		Key:       keyOf(id),
	})
	if err != nil {
		return entities.SwapItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.SwapItem{}, nil
	}
	var rec swapItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.SwapItem{}, err
	}
	return entities.SwapItem{
		ID:                 rec.ID,
		OwnerID:            rec.OwnerID,
		EventDate:          parseTime(rec.EventDate),
		Status:             rec.Status,
		VerificationStatus: rec.VerificationStatus,
	}, nil
}
