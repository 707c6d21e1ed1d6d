package repository

import (
	"context"
	"sort"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	proposalOrderIndexName    = "order_id-index"
)

type proposalRecord struct {
	ID             string `dynamodbav:"id"`
	OrderID        string `dynamodbav:"order_id"`
	Seq            int64  `dynamodbav:"seq"`
	Side           string `dynamodbav:"side"`
	ProducerUserID string `dynamodbav:"producer_user_id,omitempty"`
	SupplierUserID string `dynamodbav:"supplier_user_id,omitempty"`
	Action         string `dynamodbav:"action"`
	Note           string `dynamodbav:"note,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ProposalDynamoRepository persists the append-only negotiation log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_id-index: HASH order_id (string), RANGE seq (number)
//
// Append commits the proposal row and the order's status/seq update in one
// transaction conditioned on the order's version token, and releases the
// open-cart guard row when the negotiation reaches a terminal status.
type ProposalDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	ordersTable string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
		ordersTable: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ProposalDynamoRepository) Append(ctx context.Context, p entities.Proposal, updatedOrder entities.Order, expectedVersion int64) (entities.Proposal, error) {
	proposalAV, err := attributevalue.MarshalMap(toProposalRecord(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	updatedOrder.Version = expectedVersion + 1
	orderAV, err := attributevalue.MarshalMap(toOrderRecord(updatedOrder))
	if err != nil {
		return entities.Proposal{}, err
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     proposalAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		{Put: &types.Put{
			TableName:                aws.String(r.ordersTable),
			Item:                     orderAV,
			ConditionExpression:      aws.String("#version = :expected"),
			ExpressionAttributeNames: map[string]string{"#version": "version"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: formatInt(expectedVersion)},
			},
		}},
	}
	if updatedOrder.CartStatus.IsTerminal() {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.ordersTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: openCartGuardID(updatedOrder.ProducerID, updatedOrder.SupplierID)},
			},
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.Proposal{}, interfaces.ErrVersionConflict
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) ListByOrderID(ctx context.Context, orderID string, newestFirst bool, limit, offset int) ([]entities.Proposal, error) {
	all, err := r.queryByOrderID(ctx, orderID, newestFirst, 0)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return []entities.Proposal{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *ProposalDynamoRepository) GetLatestByOrderID(ctx context.Context, orderID string) (entities.Proposal, error) {
	ps, err := r.queryByOrderID(ctx, orderID, true, 1)
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(ps) == 0 {
		return entities.Proposal{}, nil
	}
	return ps[0], nil
}

func (r *ProposalDynamoRepository) queryByOrderID(ctx context.Context, orderID string, newestFirst bool, limit int32) ([]entities.Proposal, error) {
	input := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(proposalOrderIndexName),
		KeyConditionExpression:   aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(!newestFirst),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	out := make([]entities.Proposal, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var recs []proposalRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, err
		}
		for _, rec := range recs {
			out = append(out, fromProposalRecord(rec))
		}
		if limit > 0 && len(out) >= int(limit) {
			return out[:limit], nil
		}
	}

	// The GSI orders by seq; keep the contract explicit for callers.
	sort.SliceStable(out, func(i, j int) bool {
		if newestFirst {
			return out[i].Seq > out[j].Seq
		}
		return out[i].Seq < out[j].Seq
	})
	return out, nil
}

func toProposalRecord(p entities.Proposal) proposalRecord {
	return proposalRecord{
		ID:             p.ID,
		OrderID:        p.OrderID,
		Seq:            p.Seq,
		Side:           string(p.Side),
		ProducerUserID: p.ProducerUserID,
		SupplierUserID: p.SupplierUserID,
		Action:         string(p.Action),
		Note:           p.Note,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProposalRecord(rec proposalRecord) entities.Proposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Proposal{
		ID:             rec.ID,
		OrderID:        rec.OrderID,
		Seq:            rec.Seq,
		Side:           entities.ProposalSide(rec.Side),
		ProducerUserID: rec.ProducerUserID,
		SupplierUserID: rec.SupplierUserID,
		Action:         entities.ProposalAction(rec.Action),
		Note:           rec.Note,
		CreatedAt:      createdAt,
	}
}
