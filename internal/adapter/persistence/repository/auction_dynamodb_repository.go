package repository

import (
	"context"
	"sort"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultAuctionsTableName = "auctions"
	auctionsSwapIDIndex      = "swap_id-index"
	auctionsStatusIndex      = "status-end_date-index"
)

type auctionItem struct {
	ID                    string `dynamodbav:"id"`
	SwapID                string `dynamodbav:"swap_id"`
	ItemID                string `dynamodbav:"item_id"`
	OwnerID               string `dynamodbav:"owner_id"`
	EventDate             string `dynamodbav:"event_date"`
	Status                string `dynamodbav:"status"`
	EndDate               string `dynamodbav:"end_date"`
	AllowBookingProposals bool   `dynamodbav:"allow_booking_proposals"`
	AllowCashProposals    bool   `dynamodbav:"allow_cash_proposals"`
	MinimumCashOffer      string `dynamodbav:"minimum_cash_offer,omitempty"`
	AutoSelectAfterHours  *int   `dynamodbav:"auto_select_after_hours,omitempty"`
	WinningProposalID     string `dynamodbav:"winning_proposal_id,omitempty"`
	EndedAt               string `dynamodbav:"ended_at,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// AuctionDynamoRepository persists Auction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: swap_id-index (PK: swap_id)
//   - GSI: status-end_date-index (PK: status, SK: end_date)
//
// The winner guard and every status transition are condition expressions, so
// check and write happen in one request.
type AuctionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IAuctionRepository = (*AuctionDynamoRepository)(nil)

// NewAuctionDynamoRepository uses tableName, or AUCTIONS_TABLE when empty.
func NewAuctionDynamoRepository(ddb *dynamodb.Client, tableName string) *AuctionDynamoRepository {
	return newAuctionDynamoRepository(ddb, tableName)
}

func newAuctionDynamoRepository(ddb dynamoAPI, tableName string) *AuctionDynamoRepository {
	return &AuctionDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "AUCTIONS_TABLE", defaultAuctionsTableName),
	}
}

func (r *AuctionDynamoRepository) Create(ctx context.Context, a entities.Auction) (entities.Auction, error) {
	av, err := attributevalue.MarshalMap(toAuctionItem(a))
	if err != nil {
		return entities.Auction{}, err
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
		return entities.Auction{}, err
	}
	a.Proposals = nil
	return a, nil
}

func (r *AuctionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       keyOf(id),
	})
	return err
}

func (r *AuctionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Auction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Auction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Auction{}, nil
	}

	var it auctionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Auction{}, err
	}
	return fromAuctionItem(it), nil
}

// GetBySwapID returns the active auction for the swap if there is one,
// otherwise the most recently created.
func (r *AuctionDynamoRepository) GetBySwapID(ctx context.Context, swapID string) (entities.Auction, error) {
	items, err := queryAll[auctionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auctionsSwapIDIndex),
		KeyConditionExpression: aws.String("swap_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: swapID},
		},
	})
	if err != nil {
		return entities.Auction{}, err
	}

	var found entities.Auction
	for _, it := range items {
		a := fromAuctionItem(it)
		switch {
		case found.ID == "":
			found = a
		case (a.Status == entities.AuctionStatusActive) != (found.Status == entities.AuctionStatusActive):
			if a.Status == entities.AuctionStatusActive {
				found = a
			}
		case a.CreatedAt.After(found.CreatedAt):
			found = a
		}
	}
	return found, nil
}

func (r *AuctionDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.AuctionStatus, at time.Time) (entities.Auction, error) {
	expr := "SET #status = :to, #updated_at = :at"
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if to == entities.AuctionStatusEnded {
		expr += ", #ended_at = :at"
		names["#ended_at"] = "ended_at"
	}
	return r.update(ctx, id, "#status = :from", expr, values, names)
}

func (r *AuctionDynamoRepository) SetWinningProposal(ctx context.Context, auctionID, proposalID string, at time.Time) (entities.Auction, error) {
	return r.update(ctx, auctionID,
		"#status = :ended AND attribute_not_exists(#winning)",
		"SET #winning = :pid, #updated_at = :at",
		map[string]types.AttributeValue{
			":ended": &types.AttributeValueMemberS{Value: string(entities.AuctionStatusEnded)},
			":pid":   &types.AttributeValueMemberS{Value: proposalID},
			":at":    &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		map[string]string{
			"#status":     "status",
			"#winning":    "winning_proposal_id",
			"#updated_at": "updated_at",
		},
	)
}

func (r *AuctionDynamoRepository) ClearWinningProposal(ctx context.Context, auctionID, proposalID string) error {
	_, err := r.update(ctx, auctionID,
		"#winning = :pid",
		"REMOVE #winning",
		map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
		map[string]string{"#winning": "winning_proposal_id"},
	)
	return err
}

func (r *AuctionDynamoRepository) ListExpired(ctx context.Context, now time.Time) ([]entities.Auction, error) {
	items, err := queryAll[auctionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auctionsStatusIndex),
		KeyConditionExpression: aws.String("#status = :active AND end_date <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.AuctionStatusActive)},
			":now":    &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromAuctionItems(items), nil
}

func (r *AuctionDynamoRepository) List(ctx context.Context, filter entities.AuctionFilter) ([]entities.Auction, error) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var filterExpr *string
	if filter.HasWinner != nil {
		names["#winning"] = "winning_proposal_id"
		if *filter.HasWinner {
			filterExpr = aws.String("attribute_exists(#winning)")
		} else {
			filterExpr = aws.String("attribute_not_exists(#winning)")
		}
	}

	var (
		items []auctionItem
		err   error
	)
	if filter.Status != "" {
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		items, err = queryAll[auctionItem](ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(auctionsStatusIndex),
			KeyConditionExpression:    aws.String("#status = :status"),
			FilterExpression:          filterExpr,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	} else {
		in := &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: filterExpr,
		}
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		items, err = scanAll[auctionItem](ctx, r.ddb, in)
	}
	if err != nil {
		return nil, err
	}
	return fromAuctionItems(items), nil
}

func (r *AuctionDynamoRepository) update(
	ctx context.Context,
	id, condition, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Auction, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       keyOf(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Auction{}, nil
		}
		return entities.Auction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Auction{}, nil
	}
	var it auctionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Auction{}, err
	}
	return fromAuctionItem(it), nil
}

func toAuctionItem(a entities.Auction) auctionItem {
	it := auctionItem{
		ID:                    a.ID,
		SwapID:                a.SwapID,
		ItemID:                a.ItemID,
		OwnerID:               a.OwnerID,
		EventDate:             formatTime(a.EventDate),
		Status:                string(a.Status),
		EndDate:               formatTime(a.Settings.EndDate),
		AllowBookingProposals: a.Settings.AllowBookingProposals,
		AllowCashProposals:    a.Settings.AllowCashProposals,
		AutoSelectAfterHours:  a.Settings.AutoSelectAfterHours,
		WinningProposalID:     a.WinningProposalID,
		CreatedAt:             formatTime(a.CreatedAt),
		UpdatedAt:             formatTime(a.UpdatedAt),
	}
	if a.Settings.MinimumCashOffer != nil {
		it.MinimumCashOffer = a.Settings.MinimumCashOffer.String()
	}
	if a.EndedAt != nil {
		it.EndedAt = formatTime(*a.EndedAt)
	}
	return it
}

func fromAuctionItem(it auctionItem) entities.Auction {
	a := entities.Auction{
		ID:        it.ID,
		SwapID:    it.SwapID,
		ItemID:    it.ItemID,
		OwnerID:   it.OwnerID,
		EventDate: parseTime(it.EventDate),
		Status:    entities.AuctionStatus(it.Status),
		Settings: entities.AuctionSettings{
			EndDate:               parseTime(it.EndDate),
			AllowBookingProposals: it.AllowBookingProposals,
			AllowCashProposals:    it.AllowCashProposals,
			AutoSelectAfterHours:  it.AutoSelectAfterHours,
		},
		WinningProposalID: it.WinningProposalID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.MinimumCashOffer != "" {
		if m, err := decimal.NewFromString(it.MinimumCashOffer); err == nil {
			a.Settings.MinimumCashOffer = &m
		}
	}
	if it.EndedAt != "" {
		endedAt := parseTime(it.EndedAt)
		a.EndedAt = &endedAt
	}
	return a
}

func fromAuctionItems(items []auctionItem) []entities.Auction {
	out := make([]entities.Auction, 0, len(items))
	for _, it := range items {
		out = append(out, fromAuctionItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
