package repository

import (
	"context"
	"errors"
	"time"

	"restoration_billing/internal/domain/entities"
	"restoration_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimate_documents"

type lineItemRecord struct {
	ID           string  `dynamodbav:"id"`
	Name         string  `dynamodbav:"name"`
	Description  string  `dynamodbav:"description,omitempty"`
	Note         string  `dynamodbav:"note,omitempty"`
	Quantity     float64 `dynamodbav:"quantity"`
	Unit         string  `dynamodbav:"unit"`
	UnitPrice    float64 `dynamodbav:"unit_price"`
	Total        float64 `dynamodbav:"total"`
	Taxable      bool    `dynamodbav:"taxable"`
	PrimaryGroup string  `dynamodbav:"primary_group"`
}

type sectionRecord struct {
	ID           string           `dynamodbav:"id"`
	Title        string           `dynamodbav:"title"`
	Items        []lineItemRecord `dynamodbav:"items"`
	ShowSubtotal bool             `dynamodbav:"show_subtotal"`
	Subtotal     float64          `dynamodbav:"subtotal"`
	DisplayOrder int              `dynamodbav:"display_order"`
}

type estimateDocumentItem struct {
	ID                string           `dynamodbav:"id"`
	Title             string           `dynamodbav:"title"`
	Status            string           `dynamodbav:"status"`
	Sections          []sectionRecord  `dynamodbav:"sections"`
	Items             []lineItemRecord `dynamodbav:"items"`
	OPPercent         float64          `dynamodbav:"op_percent"`
	OPAmount          float64          `dynamodbav:"op_amount"`
	Subtotal          float64          `dynamodbav:"subtotal"`
	TaxMethod         string           `dynamodbav:"tax_method"`
	TaxRate           float64          `dynamodbav:"tax_rate"`
	SpecificTaxAmount float64          `dynamodbav:"specific_tax_amount"`
	TaxAmount         float64          `dynamodbav:"tax_amount"`
	TotalAmount       float64          `dynamodbav:"total_amount"`
	CreatedAt         string           `dynamodbav:"created_at"`
	UpdatedAt         string           `dynamodbav:"updated_at"`
}

// EstimateDocumentDynamoRepository persists estimate documents in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole snapshot (nested sections plus the flat item list) is stored
// as one item; editing sessions are single-writer, so full replaces are
// safe and keep the sections and flat list value-consistent.

type EstimateDocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateDocumentRepository = (*EstimateDocumentDynamoRepository)(nil)

func NewEstimateDocumentDynamoRepository(ddb *dynamodb.Client) *EstimateDocumentDynamoRepository {
	return &EstimateDocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDocumentDynamoRepository) Create(ctx context.Context, doc entities.EstimateDocument) (entities.EstimateDocument, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(doc))
	if err != nil {
		return entities.EstimateDocument{}, err
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
		return entities.EstimateDocument{}, err
	}
	return doc, nil
}

func (r *EstimateDocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateDocument{}, nil
	}

	var it estimateDocumentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateDocument{}, err
	}
	return fromDocumentItem(it), nil
}

// Replace overwrites the stored snapshot, requiring the document to exist.
func (r *EstimateDocumentDynamoRepository) Replace(ctx context.Context, doc entities.EstimateDocument) (entities.EstimateDocument, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(doc))
	if err != nil {
		return entities.EstimateDocument{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimateDocument{}, nil
		}
		return entities.EstimateDocument{}, err
	}
	return doc, nil
}

func (r *EstimateDocumentDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.DocumentStatus) (entities.EstimateDocument, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimateDocument{}, nil
		}
		return entities.EstimateDocument{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateDocument{}, nil
	}

	var it estimateDocumentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateDocument{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *EstimateDocumentDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDocumentItem(doc entities.EstimateDocument) estimateDocumentItem {
	it := estimateDocumentItem{
		ID:                doc.ID,
		Title:             doc.Title,
		Status:            string(doc.Status),
		Sections:          make([]sectionRecord, 0, len(doc.Sections)),
		Items:             make([]lineItemRecord, 0, len(doc.Items)),
		OPPercent:         doc.OPPercent,
		OPAmount:          doc.OPAmount,
		Subtotal:          doc.Subtotal,
		TaxMethod:         string(doc.TaxMethod),
		TaxRate:           doc.TaxRate,
		SpecificTaxAmount: doc.SpecificTaxAmount,
		TaxAmount:         doc.TaxAmount,
		TotalAmount:       doc.TotalAmount,
		CreatedAt:         doc.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         doc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, s := range doc.Sections {
		it.Sections = append(it.Sections, toSectionRecord(s))
	}
	for _, li := range doc.Items {
		it.Items = append(it.Items, toLineItemRecord(li))
	}
	return it
}

func fromDocumentItem(it estimateDocumentItem) entities.EstimateDocument {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	doc := entities.EstimateDocument{
		ID:                it.ID,
		Title:             it.Title,
		Status:            entities.DocumentStatus(it.Status),
		OPPercent:         it.OPPercent,
		OPAmount:          it.OPAmount,
		Subtotal:          it.Subtotal,
		TaxMethod:         entities.TaxMethod(it.TaxMethod),
		TaxRate:           it.TaxRate,
		SpecificTaxAmount: it.SpecificTaxAmount,
		TaxAmount:         it.TaxAmount,
		TotalAmount:       it.TotalAmount,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	for _, s := range it.Sections {
		doc.Sections = append(doc.Sections, fromSectionRecord(s))
	}
	for _, li := range it.Items {
		doc.Items = append(doc.Items, fromLineItemRecord(li))
	}
	return doc
}

func toSectionRecord(s entities.Section) sectionRecord {
	rec := sectionRecord{
		ID:           s.ID,
		Title:        s.Title,
		Items:        make([]lineItemRecord, 0, len(s.Items)),
		ShowSubtotal: s.ShowSubtotal,
		Subtotal:     s.Subtotal,
		DisplayOrder: s.DisplayOrder,
	}
	for _, li := range s.Items {
		rec.Items = append(rec.Items, toLineItemRecord(li))
	}
	return rec
}

func fromSectionRecord(rec sectionRecord) entities.Section {
	s := entities.Section{
		ID:           rec.ID,
		Title:        rec.Title,
		ShowSubtotal: rec.ShowSubtotal,
		Subtotal:     rec.Subtotal,
		DisplayOrder: rec.DisplayOrder,
	}
	for _, li := range rec.Items {
		s.Items = append(s.Items, fromLineItemRecord(li))
	}
	return s
}

func toLineItemRecord(li entities.LineItem) lineItemRecord {
	return lineItemRecord{
		ID:           li.ID.String(),
		Name:         li.Name,
		Description:  li.Description,
		Note:         li.Note,
		Quantity:     li.Quantity,
		Unit:         li.Unit,
		UnitPrice:    li.UnitPrice,
		Total:        li.Total,
		Taxable:      li.Taxable,
		PrimaryGroup: li.PrimaryGroup,
	}
}

func fromLineItemRecord(rec lineItemRecord) entities.LineItem {
	return entities.LineItem{
		ID:           entities.NewItemID(rec.ID),
		Name:         rec.Name,
		Description:  rec.Description,
		Note:         rec.Note,
		Quantity:     rec.Quantity,
		Unit:         rec.Unit,
		UnitPrice:    rec.UnitPrice,
		Total:        rec.Total,
		Taxable:      rec.Taxable,
		PrimaryGroup: rec.PrimaryGroup,
	}
}
