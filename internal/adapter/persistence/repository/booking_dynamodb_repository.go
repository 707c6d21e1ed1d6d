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

const (
	defaultBookingsTableName = "bookings"
	bookingItemIndexName     = "item_id-index"
)

type addressRecord struct {
	Street      string   `dynamodbav:"street,omitempty"`
	City        string   `dynamodbav:"city,omitempty"`
	State       string   `dynamodbav:"state,omitempty"`
	MunicipioID string   `dynamodbav:"municipio_id,omitempty"`
	Latitude    *float64 `dynamodbav:"latitude,omitempty"`
	Longitude   *float64 `dynamodbav:"longitude,omitempty"`
}

type bookingRecord struct {
	ID            string        `dynamodbav:"id"`
	OrderID       string        `dynamodbav:"order_id"`
	ItemID        string        `dynamodbav:"item_id"`
	Quantity      int           `dynamodbav:"quantity"`
	ScheduledDate string        `dynamodbav:"scheduled_date"`
	FreightValue  string        `dynamodbav:"freight_value"`
	WeightKg      string        `dynamodbav:"weight_kg"`
	VolumeM3      string        `dynamodbav:"volume_m3"`
	Origin        addressRecord `dynamodbav:"origin"`
	Destination   addressRecord `dynamodbav:"destination"`
	Status        string        `dynamodbav:"status"`
	CancelReason  string        `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt     string        `dynamodbav:"created_at"`
	UpdatedAt     string        `dynamodbav:"updated_at"`
}

// commitCounterID keys the per-item commitment counter row, living in the
// bookings table alongside the booking rows.
func commitCounterID(itemID string) string {
	return fmt.Sprintf("commit#%s", itemID)
}

// BookingDynamoRepository persists transport bookings.
//
// Table requirements:
//   - PK: id (string)
//   - GSI item_id-index: HASH item_id (string)
//
// A counter row `commit#<item_id>` accumulates the active booked quantity per
// item; Create adds to it in the same transaction as the booking put, with a
// condition that rejects the transaction when the item would overcommit.
// Cancel subtracts in the same way, so the counter always equals the sum of
// active booking quantities.
type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.TransportBooking, itemCap int) (entities.TransportBooking, error) {
	if b.Quantity > itemCap {
		return entities.TransportBooking{}, interfaces.ErrOvercommitted
	}

	av, err := attributevalue.MarshalMap(toBookingRecord(b))
	if err != nil {
		return entities.TransportBooking{}, err
	}

	// headroom is the counter value at which this quantity still fits.
	headroom := itemCap - b.Quantity
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: commitCounterID(b.ItemID)},
				},
				UpdateExpression:         aws.String("ADD #booked :q"),
				ConditionExpression:      aws.String("attribute_not_exists(#booked) OR #booked <= :headroom"),
				ExpressionAttributeNames: map[string]string{"#booked": "booked"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":q":        &types.AttributeValueMemberN{Value: formatInt(int64(b.Quantity))},
					":headroom": &types.AttributeValueMemberN{Value: formatInt(int64(headroom))},
				},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.TransportBooking{}, interfaces.ErrOvercommitted
		}
		return entities.TransportBooking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.TransportBooking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransportBooking{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransportBooking{}, nil
	}

	var rec bookingRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.TransportBooking{}, err
	}
	return fromBookingRecord(rec), nil
}

func (r *BookingDynamoRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.TransportBooking, error) {
	out := make([]entities.TransportBooking, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(bookingItemIndexName),
		KeyConditionExpression:   aws.String("#item_id = :item_id"),
		ExpressionAttributeNames: map[string]string{"#item_id": "item_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item_id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var recs []bookingRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, err
		}
		for _, rec := range recs {
			out = append(out, fromBookingRecord(rec))
		}
	}
	return out, nil
}

func (r *BookingDynamoRepository) CommittedQuantity(ctx context.Context, itemID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: commitCounterID(itemID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var rec struct {
		Booked int `dynamodbav:"booked"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return 0, err
	}
	return rec.Booked, nil
}

func (r *BookingDynamoRepository) UpdateScheduledDate(ctx context.Context, id string, newDate time.Time) (entities.TransportBooking, error) {
	return r.update(ctx, id, "SET #scheduled_date = :v, #updated_at = :updated_at",
		map[string]string{"#scheduled_date": "scheduled_date"},
		&types.AttributeValueMemberS{Value: newDate.UTC().Format(time.RFC3339Nano)})
}

func (r *BookingDynamoRepository) UpdateFreightValue(ctx context.Context, id string, newValue float64) (entities.TransportBooking, error) {
	return r.update(ctx, id, "SET #freight_value = :v, #updated_at = :updated_at",
		map[string]string{"#freight_value": "freight_value"},
		&types.AttributeValueMemberS{Value: floatToString(newValue)})
}

func (r *BookingDynamoRepository) Cancel(ctx context.Context, id, reason string) (entities.TransportBooking, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.TransportBooking{}, err
	}
	if b.ID == "" {
		return entities.TransportBooking{}, interfaces.ErrNotFound
	}
	if !b.Active() {
		// Already inactive; nothing to release.
		return b, nil
	}

	now := time.Now().UTC()
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
				UpdateExpression:    aws.String("SET #status = :cancelled, #cancel_reason = :reason, #updated_at = :updated_at"),
				ConditionExpression: aws.String("#status = :active"),
				ExpressionAttributeNames: map[string]string{
					"#status":        "status",
					"#cancel_reason": "cancel_reason",
					"#updated_at":    "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":cancelled":  &types.AttributeValueMemberS{Value: string(entities.BookingStatusCancelado)},
					":active":     &types.AttributeValueMemberS{Value: string(entities.BookingStatusAgendado)},
					":reason":     &types.AttributeValueMemberS{Value: reason},
					":updated_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
				},
			}},
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: commitCounterID(b.ItemID)},
				},
				UpdateExpression:         aws.String("ADD #booked :negq"),
				ExpressionAttributeNames: map[string]string{"#booked": "booked"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":negq": &types.AttributeValueMemberN{Value: formatInt(int64(-b.Quantity))},
				},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			// Lost a race with another cancel; the booking is already inactive.
			return r.GetByID(ctx, id)
		}
		return entities.TransportBooking{}, err
	}

	b.Status = entities.BookingStatusCancelado
	b.CancelReason = reason
	b.UpdatedAt = now
	return b, nil
}

func (r *BookingDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, value types.AttributeValue) (entities.TransportBooking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":          value,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TransportBooking{}, interfaces.ErrNotFound
		}
		return entities.TransportBooking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TransportBooking{}, interfaces.ErrNotFound
	}
	var rec bookingRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.TransportBooking{}, err
	}
	return fromBookingRecord(rec), nil
}

func toBookingRecord(b entities.TransportBooking) bookingRecord {
	return bookingRecord{
		ID:            b.ID,
		OrderID:       b.OrderID,
		ItemID:        b.ItemID,
		Quantity:      b.Quantity,
		ScheduledDate: b.ScheduledDate.UTC().Format(time.RFC3339Nano),
		FreightValue:  floatToString(b.FreightValue),
		WeightKg:      floatToString(b.WeightKg),
		VolumeM3:      floatToString(b.VolumeM3),
		Origin:        toAddressRecord(b.Origin),
		Destination:   toAddressRecord(b.Destination),
		Status:        string(b.Status),
		CancelReason:  b.CancelReason,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingRecord(rec bookingRecord) entities.TransportBooking {
	scheduled, _ := time.Parse(time.RFC3339Nano, rec.ScheduledDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.TransportBooking{
		ID:            rec.ID,
		OrderID:       rec.OrderID,
		ItemID:        rec.ItemID,
		Quantity:      rec.Quantity,
		ScheduledDate: scheduled,
		FreightValue:  stringToFloat(rec.FreightValue),
		WeightKg:      stringToFloat(rec.WeightKg),
		VolumeM3:      stringToFloat(rec.VolumeM3),
		Origin:        fromAddressRecord(rec.Origin),
		Destination:   fromAddressRecord(rec.Destination),
		Status:        entities.BookingStatus(rec.Status),
		CancelReason:  rec.CancelReason,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func toAddressRecord(a entities.Address) addressRecord {
	return addressRecord{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		MunicipioID: a.MunicipioID,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
	}
}

func fromAddressRecord(rec addressRecord) entities.Address {
	return entities.Address{
		Street:      rec.Street,
		City:        rec.City,
		State:       rec.State,
		MunicipioID: rec.MunicipioID,
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
	}
}
