package services

import (
	"context"
	"errors"
	"testing"

	"heartwave_server/apperrors"
	"heartwave_server/data"
	"heartwave_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDecodeProfiles_Seed(t *testing.T) {
	profiles, err := DecodeProfiles(data.SeedProfiles)
	require.NoError(t, err)
	require.NotEmpty(t, profiles)

	catalog, err := NewCatalogService(profiles)
	require.NoError(t, err)
	assert.Equal(t, len(profiles), catalog.Len())

	for _, p := range catalog.Profiles() {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Cover)
		assert.NotEmpty(t, p.Avatar)
	}
}

func TestDecodeProfiles_Invalid(t *testing.T) {
	_, err := DecodeProfiles([]byte(`[{"id":"a","nickname":"x"}]`))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeCatalogInvalid))

	_, err = DecodeProfiles([]byte(`not json`))
	assert.Error(t, err)
}

func TestNewCatalogService_RejectsBadIDs(t *testing.T) {
	_, err := NewCatalogService([]models.Profile{testProfile("a"), testProfile("a")})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeCatalogInvalid))

	_, err = NewCatalogService([]models.Profile{{Name: "no id"}})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeCatalogInvalid))
}

func TestCatalogService_GetAndCopies(t *testing.T) {
	catalog, err := NewCatalogService([]models.Profile{testProfile("a", "x"), testProfile("b")})
	require.NoError(t, err)

	p, err := catalog.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "b", p.ID)

	_, err = catalog.Get("zzz")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProfileNotFound))

	profiles := catalog.Profiles()
	profiles[0].ID = "mutated"
	assert.Equal(t, "a", catalog.Profiles()[0].ID)
}

// fakeScanClient serves items in fixed pages.
type fakeScanClient struct {
	pages [][]map[string]types.AttributeValue
	calls int
	err   error
}

func (f *fakeScanClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++

	out := &dynamodb.ScanOutput{Items: page}
	if f.calls < len(f.pages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: page[len(page)-1]["id"].(*types.AttributeValueMemberS).Value},
		}
	}
	return out, nil
}

func marshalProfiles(t *testing.T, profiles ...models.Profile) []map[string]types.AttributeValue {
	t.Helper()
	out := make([]map[string]types.AttributeValue, 0, len(profiles))
	for _, p := range profiles {
		item, err := attributevalue.MarshalMap(p)
		require.NoError(t, err)
		out = append(out, item)
	}
	return out
}

func TestDynamoService_LoadProfiles(t *testing.T) {
	withPosition := func(p models.Profile, pos int) models.Profile {
		p.Position = pos
		return p
	}
	client := &fakeScanClient{pages: [][]map[string]types.AttributeValue{
		marshalProfiles(t, withPosition(testProfile("c", "tea"), 3), withPosition(testProfile("a"), 1)),
		marshalProfiles(t, withPosition(testProfile("b", "jazz", "ramen"), 2)),
	}}
	ds := &DynamoService{Client: client, Logger: zaptest.NewLogger(t)}

	profiles, err := ds.LoadProfiles(context.Background(), models.ProfilesTable)
	require.NoError(t, err)

	assert.Equal(t, 2, client.calls)
	assert.Equal(t, []string{"a", "b", "c"}, profileIDs(profiles))
	assert.Equal(t, []string{"jazz", "ramen"}, profiles[1].Interests)
	assert.Equal(t, "Brooklyn, NY", profiles[0].Location)
}

func TestDynamoService_LoadProfilesError(t *testing.T) {
	ds := &DynamoService{Client: &fakeScanClient{err: errors.New("throttled")}}

	_, err := ds.LoadProfiles(context.Background(), models.ProfilesTable)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
