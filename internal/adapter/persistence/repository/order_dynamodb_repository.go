package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderLineRecord struct {
	ID              string `dynamodbav:"id"`
	ProductID       string `dynamodbav:"product_id"`
	CategoryID      string `dynamodbav:"category_id"`
	CatalogID       string `dynamodbav:"catalog_id"`
	Quantity        int    `dynamodbav:"quantity"`
	UnitPrice       string `dynamodbav:"unit_price"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	DiscountValue   string `dynamodbav:"discount_value"`
	FinalValue      string `dynamodbav:"final_value"`
	UnitWeight      string `dynamodbav:"unit_weight"`
	UnitVolume      string `dynamodbav:"unit_volume"`
	AppliedBundleID string `dynamodbav:"applied_bundle_id,omitempty"`
}

type orderRecord struct {
	ID                  string            `dynamodbav:"id"`
	ProducerID          string            `dynamodbav:"producer_id"`
	SupplierID          string            `dynamodbav:"supplier_id"`
	DistributionPointID string            `dynamodbav:"distribution_point_id"`
	CartStatus          string            `dynamodbav:"cart_status"`
	AllowNegotiation    bool              `dynamodbav:"allow_negotiation"`
	Items               []orderLineRecord `dynamodbav:"items"`
	ItemCount           int               `dynamodbav:"item_count"`
	Total               string            `dynamodbav:"total"`
	InteractionDeadline string            `dynamodbav:"interaction_deadline"`
	Version             int64             `dynamodbav:"version"`
	ProposalSeq         int64             `dynamodbav:"proposal_seq"`
	CreatedAt           string            `dynamodbav:"created_at"`
	UpdatedAt           string            `dynamodbav:"updated_at"`
}

// openCartGuardID keys the single-open-cart rule: the guard row shares the
// orders table and exists exactly while the pair has an open cart.
func openCartGuardID(producerID, supplierID string) string {
	return fmt.Sprintf("open#%s#%s", producerID, supplierID)
}

type guardRecord struct {
	ID      string `dynamodbav:"id"`
	OrderID string `dynamodbav:"order_id"`
}

// OrderDynamoRepository persists the whole Order aggregate as one item.
//
// Table requirements:
//   - PK: id (string)
//
// The `version` attribute is the optimistic concurrency token: every write
// conditions on the version the caller read and bumps it by one, so all
// mutations of an order are serialized. A guard row `open#<producer>#<supplier>`
// enforces at most one open cart per producer/supplier pair.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}
	guard, err := attributevalue.MarshalMap(guardRecord{
		ID:      openCartGuardID(o.ProducerID, o.SupplierID),
		OrderID: o.ID,
	})
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return r.createReclaimingGuard(ctx, o, av, guard)
		}
		return entities.Order{}, err
	}
	return o, nil
}

// createReclaimingGuard handles the guard conflict on Create. Expiry is
// observed lazily and never written back, so the guard of a lapsed
// negotiation stays behind; when the guarded order is no longer effectively
// open the guard is reclaimed for the new cart, conditioned on the stale
// order id so a concurrent creation for the same pair still loses.
func (r *OrderDynamoRepository) createReclaimingGuard(ctx context.Context, o entities.Order, orderItem, guardItem map[string]types.AttributeValue) (entities.Order, error) {
	guardID := openCartGuardID(o.ProducerID, o.SupplierID)
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: guardID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		// The conflict was not the guard row.
		return entities.Order{}, interfaces.ErrAlreadyExists
	}
	var g guardRecord
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return entities.Order{}, err
	}

	held, err := r.GetByID(ctx, g.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !guardReclaimable(held, time.Now().UTC()) {
		return entities.Order{}, interfaces.ErrAlreadyExists
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     orderItem,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guardItem,
				ConditionExpression:      aws.String("#order_id = :stale"),
				ExpressionAttributeNames: map[string]string{"#order_id": "order_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":stale": &types.AttributeValueMemberS{Value: g.OrderID},
				},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) UpdateWithVersion(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	o.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

// guardReclaimable reports whether the guard of held may be taken over by a
// new cart: the guarded order is gone, or its effective status has become
// terminal, which covers lazily observed expiry that was never written back.
func guardReclaimable(held entities.Order, now time.Time) bool {
	if held.ID == "" {
		return true
	}
	return held.EffectiveCartStatus(now).IsTerminal()
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderLineRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineRecord{
			ID:              it.ID,
			ProductID:       it.ProductID,
			CategoryID:      it.CategoryID,
			CatalogID:       it.CatalogID,
			Quantity:        it.Quantity,
			UnitPrice:       floatToString(it.UnitPrice),
			DiscountPercent: floatToString(it.DiscountPercent),
			DiscountValue:   floatToString(it.DiscountValue),
			FinalValue:      floatToString(it.FinalValue),
			UnitWeight:      floatToString(it.UnitWeight),
			UnitVolume:      floatToString(it.UnitVolume),
			AppliedBundleID: it.AppliedBundleID,
		})
	}
	return orderRecord{
		ID:                  o.ID,
		ProducerID:          o.ProducerID,
		SupplierID:          o.SupplierID,
		DistributionPointID: o.DistributionPointID,
		CartStatus:          string(o.CartStatus),
		AllowNegotiation:    o.AllowNegotiation,
		Items:               items,
		ItemCount:           o.ItemCount,
		Total:               floatToString(o.Total),
		InteractionDeadline: o.InteractionDeadline.UTC().Format(time.RFC3339Nano),
		Version:             o.Version,
		ProposalSeq:         o.ProposalSeq,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	items := make([]entities.OrderItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.OrderItem{
			ID:              it.ID,
			ProductID:       it.ProductID,
			CategoryID:      it.CategoryID,
			CatalogID:       it.CatalogID,
			Quantity:        it.Quantity,
			UnitPrice:       stringToFloat(it.UnitPrice),
			DiscountPercent: stringToFloat(it.DiscountPercent),
			DiscountValue:   stringToFloat(it.DiscountValue),
			FinalValue:      stringToFloat(it.FinalValue),
			UnitWeight:      stringToFloat(it.UnitWeight),
			UnitVolume:      stringToFloat(it.UnitVolume),
			AppliedBundleID: it.AppliedBundleID,
		})
	}
	deadline, _ := time.Parse(time.RFC3339Nano, rec.InteractionDeadline)
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.Order{
		ID:                  rec.ID,
		ProducerID:          rec.ProducerID,
		SupplierID:          rec.SupplierID,
		DistributionPointID: rec.DistributionPointID,
		CartStatus:          entities.CartStatus(rec.CartStatus),
		AllowNegotiation:    rec.AllowNegotiation,
		Items:               items,
		ItemCount:           rec.ItemCount,
		Total:               stringToFloat(rec.Total),
		InteractionDeadline: deadline,
		Version:             rec.Version,
		ProposalSeq:         rec.ProposalSeq,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
