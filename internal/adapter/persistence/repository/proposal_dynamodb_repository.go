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
	defaultProposalsTableName = "auction_proposals"
	proposalsAuctionIDIndex   = "auction_id-submitted_at-index"
	proposalsProposerIDIndex  = "proposer_id-index"
)

type proposalItem struct {
	ID              string `dynamodbav:"id"`
	AuctionID       string `dynamodbav:"auction_id"`
	ProposerID      string `dynamodbav:"proposer_id"`
	ProposalType    string `dynamodbav:"proposal_type"`
	BookingID       string `dynamodbav:"booking_id,omitempty"`
	CashAmount      string `dynamodbav:"cash_amount,omitempty"`
	Currency        string `dynamodbav:"currency,omitempty"`
	PaymentMethodID string `dynamodbav:"payment_method_id,omitempty"`
	EscrowRequired  bool   `dynamodbav:"escrow_required,omitempty"`
	Message         string `dynamodbav:"message,omitempty"`
	Status          string `dynamodbav:"status"`
	SubmittedAt     string `dynamodbav:"submitted_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: auction_id-submitted_at-index (PK: auction_id, SK: submitted_at)
//   - GSI: proposer_id-index (PK: proposer_id)
type ProposalDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

// NewProposalDynamoRepository uses tableName, or PROPOSALS_TABLE when empty.
func NewProposalDynamoRepository(ddb *dynamodb.Client, tableName string) *ProposalDynamoRepository {
	return newProposalDynamoRepository(ddb, tableName)
}

func newProposalDynamoRepository(ddb dynamoAPI, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "PROPOSALS_TABLE", defaultProposalsTableName),
		now:       func() string { return formatTime(time.Now()) },
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// List queries by auction or proposer when the filter names one and scans
// otherwise. Results are in submission order.
func (r *ProposalDynamoRepository) List(ctx context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var filterExpr *string
	if filter.Status != "" {
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		filterExpr = aws.String("#status = :status")
	}

	var (
		items []proposalItem
		err   error
	)
	switch {
	case filter.AuctionID != "":
		values[":aid"] = &types.AttributeValueMemberS{Value: filter.AuctionID}
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(proposalsAuctionIDIndex),
			KeyConditionExpression:    aws.String("auction_id = :aid"),
			FilterExpression:          filterExpr,
			ExpressionAttributeValues: values,
		}
		if filter.ProposerID != "" {
			names["#proposer"] = "proposer_id"
			values[":pid"] = &types.AttributeValueMemberS{Value: filter.ProposerID}
			in.FilterExpression = aws.String(joinConditions(filterExpr, "#proposer = :pid"))
		}
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		items, err = queryAll[proposalItem](ctx, r.ddb, in)
	case filter.ProposerID != "":
		values[":pid"] = &types.AttributeValueMemberS{Value: filter.ProposerID}
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(proposalsProposerIDIndex),
			KeyConditionExpression:    aws.String("proposer_id = :pid"),
			FilterExpression:          filterExpr,
			ExpressionAttributeValues: values,
		}
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		items, err = queryAll[proposalItem](ctx, r.ddb, in)
	default:
		in := &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: filterExpr,
		}
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		items, err = scanAll[proposalItem](ctx, r.ddb, in)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.Proposal, 0, len(items))
	for _, it := range items {
		out = append(out, fromProposalItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 keyOf(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":at":   &types.AttributeValueMemberS{Value: r.now()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func joinConditions(existing *string, cond string) string {
	if existing == nil {
		return cond
	}
	return *existing + " AND " + cond
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		ID:           p.ID,
		AuctionID:    p.AuctionID,
		ProposerID:   p.ProposerID,
		ProposalType: string(p.ProposalType),
		BookingID:    p.BookingID,
		Message:      p.Message,
		Status:       string(p.Status),
		SubmittedAt:  formatTime(p.SubmittedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
	if p.Cash != nil {
		it.CashAmount = p.Cash.Amount.String()
		it.Currency = p.Cash.Currency
		it.PaymentMethodID = p.Cash.PaymentMethodID
		it.EscrowRequired = p.Cash.EscrowRequired
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	p := entities.Proposal{
		ID:           it.ID,
		AuctionID:    it.AuctionID,
		ProposerID:   it.ProposerID,
		ProposalType: entities.ProposalType(it.ProposalType),
		BookingID:    it.BookingID,
		Message:      it.Message,
		Status:       entities.ProposalStatus(it.Status),
		SubmittedAt:  parseTime(it.SubmittedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if it.CashAmount != "" {
		amount, _ := decimal.NewFromString(it.CashAmount)
		p.Cash = &entities.CashOffer{
			Amount:          amount,
			Currency:        it.Currency,
			PaymentMethodID: it.PaymentMethodID,
			EscrowRequired:  it.EscrowRequired,
		}
	}
	return p
}
