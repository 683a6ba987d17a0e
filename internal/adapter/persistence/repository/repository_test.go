package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

// fakeDynamo records requests and answers with canned outputs.
type fakeDynamo struct {
	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	queries []*dynamodb.QueryInput

	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	queryOut  []*dynamodb.QueryOutput
	getOut    *dynamodb.GetItemOutput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, _ *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if len(f.queryOut) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOut[0]
	f.queryOut = f.queryOut[1:]
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func sampleAuction() entities.Auction {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	minimum := decimal.RequireFromString("75.50")
	hours := 24
	endedAt := now.Add(time.Hour)
	return entities.Auction{
		ID:        "a1",
		SwapID:    "swap-1",
		ItemID:    "item-1",
		OwnerID:   "owner",
		EventDate: now.Add(30 * 24 * time.Hour),
		Status:    entities.AuctionStatusEnded,
		Settings: entities.AuctionSettings{
			EndDate:               now.Add(10 * 24 * time.Hour),
			AllowBookingProposals: true,
			AllowCashProposals:    true,
			MinimumCashOffer:      &minimum,
			AutoSelectAfterHours:  &hours,
		},
		WinningProposalID: "p1",
		EndedAt:           &endedAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestAuctionItemConversion(t *testing.T) {
	in := sampleAuction()
	out := fromAuctionItem(toAuctionItem(in))

	check.Equal(t, in.ID, out.ID)
	check.Equal(t, in.Status, out.Status)
	check.True(t, in.EventDate.Equal(out.EventDate))
	check.True(t, in.Settings.EndDate.Equal(out.Settings.EndDate))
	assert.NotNil(t, out.Settings.MinimumCashOffer)
	check.True(t, in.Settings.MinimumCashOffer.Equal(*out.Settings.MinimumCashOffer))
	assert.NotNil(t, out.Settings.AutoSelectAfterHours)
	check.Equal(t, 24, *out.Settings.AutoSelectAfterHours)
	assert.NotNil(t, out.EndedAt)
	check.True(t, in.EndedAt.Equal(*out.EndedAt))
	check.Equal(t, "p1", out.WinningProposalID)
}

func TestFormatTimeSortsLexically(t *testing.T) {
	a := time.Date(2026, 3, 1, 12, 0, 0, 500_000_000, time.UTC)
	b := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Second)
	check.True(t, formatTime(a) < formatTime(b))
	check.Equal(t, len(formatTime(a)), len(formatTime(b)))
	check.Equal(t, "", formatTime(time.Time{}))
}

func TestProposalItemConversion(t *testing.T) {
	p := entities.Proposal{
		ID:           "p1",
		AuctionID:    "a1",
		ProposerID:   "u1",
		ProposalType: entities.ProposalTypeCash,
		Cash: &entities.CashOffer{
			Amount:          decimal.RequireFromString("199.99"),
			Currency:        "EUR",
			PaymentMethodID: "visa",
			EscrowRequired:  true,
		},
		Status:      entities.ProposalStatusPending,
		SubmittedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	out := fromProposalItem(toProposalItem(p))
	assert.NotNil(t, out.Cash)
	check.Equal(t, "199.99", out.Cash.Amount.String())
	check.Equal(t, "EUR", out.Cash.Currency)
	check.True(t, out.Cash.EscrowRequired)
	check.True(t, p.SubmittedAt.Equal(out.SubmittedAt))

	booking := fromProposalItem(toProposalItem(entities.Proposal{ID: "p2", ProposalType: entities.ProposalTypeBooking, BookingID: "b1"}))
	check.Nil(t, booking.Cash)
	check.Equal(t, "b1", booking.BookingID)
}

func TestAuctionDynamoRepository_SetWinningProposal(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("guard failure yields zero auction", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("nope")}}
		repo := newAuctionDynamoRepository(fake, "auctions")

		got, err := repo.SetWinningProposal(ctx, "a1", "p1", at)
		assert.NoError(t, err)
		check.Equal(t, "", got.ID)

		assert.Equal(t, 1, len(fake.updates))
		cond := aws.ToString(fake.updates[0].ConditionExpression)
		check.Equal(t, "attribute_exists(#id) AND #status = :ended AND attribute_not_exists(#winning)", cond)
	})

	t.Run("success returns the stored auction", func(t *testing.T) {
		attrs, err := attributevalue.MarshalMap(toAuctionItem(sampleAuction()))
		assert.NoError(t, err)
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: attrs}}
		repo := newAuctionDynamoRepository(fake, "auctions")

		got, err := repo.SetWinningProposal(ctx, "a1", "p1", at)
		assert.NoError(t, err)
		check.Equal(t, "p1", got.WinningProposalID)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: errors.New("throttled")}
		repo := newAuctionDynamoRepository(fake, "auctions")
		_, err := repo.SetWinningProposal(ctx, "a1", "p1", at)
		check.Error(t, err)
	})
}

func TestAuctionDynamoRepository_UpdateStatusSetsEndedAt(t *testing.T) {
	fake := &fakeDynamo{}
	repo := newAuctionDynamoRepository(fake, "auctions")

	_, err := repo.UpdateStatus(context.Background(), "a1", entities.AuctionStatusActive, entities.AuctionStatusEnded, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(fake.updates))
	check.Equal(t, "SET #status = :to, #updated_at = :at, #ended_at = :at", aws.ToString(fake.updates[0].UpdateExpression))

	_, err = repo.UpdateStatus(context.Background(), "a1", entities.AuctionStatusActive, entities.AuctionStatusCancelled, time.Now())
	assert.NoError(t, err)
	check.Equal(t, "SET #status = :to, #updated_at = :at", aws.ToString(fake.updates[1].UpdateExpression))
}

func TestAuctionDynamoRepository_GetBySwapIDFollowsPages(t *testing.T) {
	older := toAuctionItem(entities.Auction{ID: "old", SwapID: "s1", Status: entities.AuctionStatusCancelled, CreatedAt: time.Unix(100, 0)})
	active := toAuctionItem(entities.Auction{ID: "live", SwapID: "s1", Status: entities.AuctionStatusActive, CreatedAt: time.Unix(50, 0)})
	p1, _ := attributevalue.MarshalMap(older)
	p2, _ := attributevalue.MarshalMap(active)

	fake := &fakeDynamo{queryOut: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{p1}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "old"}}},
		{Items: []map[string]types.AttributeValue{p2}},
	}}
	repo := newAuctionDynamoRepository(fake, "auctions")

	got, err := repo.GetBySwapID(context.Background(), "s1")
	assert.NoError(t, err)
	check.Equal(t, "live", got.ID)
	check.Equal(t, 2, len(fake.queries))
	check.Equal(t, auctionsSwapIDIndex, aws.ToString(fake.queries[0].IndexName))
}

func TestProposalDynamoRepository_UpdateStatusGuard(t *testing.T) {
	fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
	repo := newProposalDynamoRepository(fake, "")

	got, err := repo.UpdateStatus(context.Background(), "p1", entities.ProposalStatusPending, entities.ProposalStatusAccepted)
	assert.NoError(t, err)
	check.Equal(t, "", got.ID)
	check.Equal(t, defaultProposalsTableName, repo.tableName)
}
