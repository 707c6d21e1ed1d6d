package repository

import (
	"context"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/usecase/interfaces"
	"campo_direto/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogsTableName = "catalogs"
	defaultBundlesTableName  = "bundles"
	bundleSupplierIndexName  = "supplier_id-index"
)

type priceTierRecord struct {
	MinQuantity int    `dynamodbav:"min_quantity"`
	MaxQuantity *int   `dynamodbav:"max_quantity,omitempty"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type catalogItemRecord struct {
	ProductID  string            `dynamodbav:"product_id"`
	CategoryID string            `dynamodbav:"category_id"`
	Tiers      []priceTierRecord `dynamodbav:"tiers"`
	BasePrice  string            `dynamodbav:"base_price"`
	UnitWeight string            `dynamodbav:"unit_weight"`
	UnitVolume string            `dynamodbav:"unit_volume"`
}

type catalogRecord struct {
	ID                  string              `dynamodbav:"id"`
	SeasonID            string              `dynamodbav:"season_id"`
	DistributionPointID string              `dynamodbav:"distribution_point_id"`
	CropID              string              `dynamodbav:"crop_id"`
	CategoryID          string              `dynamodbav:"category_id"`
	StartDate           string              `dynamodbav:"start_date"`
	EndDate             string              `dynamodbav:"end_date,omitempty"`
	Active              bool                `dynamodbav:"active"`
	Items               []catalogItemRecord `dynamodbav:"items"`
}

type bundleDiscountRecord struct {
	CategoryID  string  `dynamodbav:"category_id"`
	Percentage  string  `dynamodbav:"percentage"`
	FixedAmount string  `dynamodbav:"fixed_amount"`
	HectareMin  float64 `dynamodbav:"hectare_min"`
	HectareMax  float64 `dynamodbav:"hectare_max"`
	Active      bool    `dynamodbav:"active"`
}

type bundleRecord struct {
	ID         string                 `dynamodbav:"id"`
	SupplierID string                 `dynamodbav:"supplier_id"`
	Name       string                 `dynamodbav:"name"`
	HectareMin float64                `dynamodbav:"hectare_min"`
	HectareMax float64                `dynamodbav:"hectare_max"`
	StartDate  string                 `dynamodbav:"start_date"`
	EndDate    string                 `dynamodbav:"end_date,omitempty"`
	Territory  []string               `dynamodbav:"territory,omitempty"`
	Status     string                 `dynamodbav:"status"`
	Discounts  []bundleDiscountRecord `dynamodbav:"discounts"`
}

// CatalogDynamoRepository reads reference-data owned catalogs and bundles.
// This service never writes either table.
//
// Table requirements:
//   - catalogs: PK id (string)
//   - bundles: PK id (string), GSI supplier_id-index: HASH supplier_id
type CatalogDynamoRepository struct {
	ddb          *dynamodb.Client
	catalogTable string
	bundleTable  string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:          ddb,
		catalogTable: getenvDefault("CATALOGS_TABLE", defaultCatalogsTableName),
		bundleTable:  getenvDefault("BUNDLES_TABLE", defaultBundlesTableName),
	}
}

func (r *CatalogDynamoRepository) GetCatalog(ctx context.Context, id string) (entities.Catalog, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.catalogTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Catalog{}, err
	}
	if len(out.Item) == 0 {
		return entities.Catalog{}, nil
	}

	var rec catalogRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Catalog{}, err
	}
	cat := fromCatalogRecord(rec)
	// Malformed reference data is worth surfacing early; pricing will still
	// reject the affected item on resolution.
	if err := cat.Validate(); err != nil {
		logger.S().Warnw("catalog failed validation on load", "catalog_id", cat.ID, "error", err)
	}
	return cat, nil
}

func (r *CatalogDynamoRepository) ListBundlesBySupplier(ctx context.Context, supplierID string) ([]entities.Bundle, error) {
	out := make([]entities.Bundle, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.bundleTable),
		IndexName:                aws.String(bundleSupplierIndexName),
		KeyConditionExpression:   aws.String("#supplier_id = :supplier_id"),
		ExpressionAttributeNames: map[string]string{"#supplier_id": "supplier_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":supplier_id": &types.AttributeValueMemberS{Value: supplierID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var recs []bundleRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, err
		}
		for _, rec := range recs {
			out = append(out, fromBundleRecord(rec))
		}
	}
	return out, nil
}

func fromCatalogRecord(rec catalogRecord) entities.Catalog {
	items := make([]entities.CatalogItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		tiers := make(entities.PriceTierList, 0, len(it.Tiers))
		for _, t := range it.Tiers {
			tiers = append(tiers, entities.PriceTier{
				MinQuantity: t.MinQuantity,
				MaxQuantity: t.MaxQuantity,
				UnitPrice:   stringToFloat(t.UnitPrice),
			})
		}
		var basePrice *float64
		if it.BasePrice != "" {
			v := stringToFloat(it.BasePrice)
			basePrice = &v
		}
		items = append(items, entities.CatalogItem{
			ProductID:  it.ProductID,
			CategoryID: it.CategoryID,
			Tiers:      tiers,
			BasePrice:  basePrice,
			UnitWeight: stringToFloat(it.UnitWeight),
			UnitVolume: stringToFloat(it.UnitVolume),
		})
	}
	startDate, _ := time.Parse(time.RFC3339Nano, rec.StartDate)
	var endDate *time.Time
	if rec.EndDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, rec.EndDate); err == nil {
			endDate = &t
		}
	}
	return entities.Catalog{
		ID:                  rec.ID,
		SeasonID:            rec.SeasonID,
		DistributionPointID: rec.DistributionPointID,
		CropID:              rec.CropID,
		CategoryID:          rec.CategoryID,
		StartDate:           startDate,
		EndDate:             endDate,
		Active:              rec.Active,
		Items:               items,
	}
}

func fromBundleRecord(rec bundleRecord) entities.Bundle {
	discounts := make([]entities.BundleDiscount, 0, len(rec.Discounts))
	for _, d := range rec.Discounts {
		discounts = append(discounts, entities.BundleDiscount{
			CategoryID:  d.CategoryID,
			Percentage:  stringToFloat(d.Percentage),
			FixedAmount: stringToFloat(d.FixedAmount),
			HectareMin:  d.HectareMin,
			HectareMax:  d.HectareMax,
			Active:      d.Active,
		})
	}
	startDate, _ := time.Parse(time.RFC3339Nano, rec.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, rec.EndDate)
	return entities.Bundle{
		ID:         rec.ID,
		SupplierID: rec.SupplierID,
		Name:       rec.Name,
		HectareMin: rec.HectareMin,
		HectareMax: rec.HectareMax,
		StartDate:  startDate,
		EndDate:    endDate,
		Territory:  entities.TerritoryRestriction(rec.Territory),
		Status:     entities.BundleStatus(rec.Status),
		Discounts:  discounts,
	}
}
