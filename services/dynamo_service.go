package services

import (
	"context"
	"fmt"
	"sort"

	"heartwave_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// DynamoService reads the profile catalog out of DynamoDB.
type DynamoService struct {
	Client dynamodb.ScanAPIClient
	Logger *zap.Logger
}

// InitializeDynamoDBClient builds a DynamoDB client from a loaded AWS config.
func InitializeDynamoDBClient(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}

// LoadProfiles scans tableName and returns the profiles ordered by position.
func (ds *DynamoService) LoadProfiles(ctx context.Context, tableName string) ([]models.Profile, error) {
	var profiles []models.Profile
	paginator := dynamodb.NewScanPaginator(ds.Client, &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})

	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profiles from table '%s': %w", tableName, err)
		}

		var page []models.Profile
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
		}
		profiles = append(profiles, page...)
	}

	// Scan order is arbitrary; the deck order is the stored position
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Position < profiles[j].Position
	})

	if ds.Logger != nil {
		ds.Logger.Info("profiles loaded from dynamodb",
			zap.String("table", tableName),
			zap.Int("count", len(profiles)),
		)
	}
	return profiles, nil
}
