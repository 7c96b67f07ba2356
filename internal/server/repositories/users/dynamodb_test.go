package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	getIn    *dynamodb.GetItemInput
	putIn    *dynamodb.PutItemInput
	queryIn  *dynamodb.QueryInput
	updateIn *dynamodb.UpdateItemInput
	deleteIn *dynamodb.DeleteItemInput

	item  map[string]types.AttributeValue
	items []map[string]types.AttributeValue
	err   error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.QueryOutput{Items: f.items}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.item}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func sampleItem(t *testing.T) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(models.User{
		ID: "u-1", EmailID: "alice@example.com", UserName: "alice", FullName: "Alice A",
		Password: "$2a$10$digest", CreatedAt: time.Unix(100, 0).UTC(), UpdatedAt: time.Unix(200, 0).UTC(),
	})
	require.NoError(t, err)
	return item
}

func newDynamoRepo(f *fakeDynamo) *DynamoDBRepository {
	r := NewDynamoDBRepository(f, "users", "emailId-index")
	r.now = func() time.Time { return time.Unix(1000, 0) }
	return r
}

func TestDynamoCreate_ConditionalPut(t *testing.T) {
	f := &fakeDynamo{}
	r := newDynamoRepo(f)

	u, err := r.Create(context.Background(), &models.User{ID: "u-1", EmailID: "a@b.co", Password: "digest"})
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1000, 0).UTC(), u.CreatedAt)

	require.NotNil(t, f.putIn)
	assert.Equal(t, "users", aws.ToString(f.putIn.TableName))
	assert.Equal(t, "attribute_not_exists(id)", aws.ToString(f.putIn.ConditionExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "digest"}, f.putIn.Item["password"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "a@b.co"}, f.putIn.Item["emailId"])
}

func TestDynamoCreate_Duplicate(t *testing.T) {
	f := &fakeDynamo{err: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
	_, err := newDynamoRepo(f).Create(context.Background(), &models.User{ID: "u-1"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestDynamoGetByID(t *testing.T) {
	f := &fakeDynamo{item: sampleItem(t)}
	u, err := newDynamoRepo(f).GetByID(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, "alice", u.UserName)
	assert.Equal(t, "$2a$10$digest", u.Password)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "u-1"}, f.getIn.Key["id"])
}

func TestDynamoGetByID_NotFound(t *testing.T) {
	_, err := newDynamoRepo(&fakeDynamo{}).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDynamoGetByID_ClientError(t *testing.T) {
	boom := errors.New("throttled")
	_, err := newDynamoRepo(&fakeDynamo{err: boom}).GetByID(context.Background(), "u-1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestDynamoGetByEmail_QueriesIndex(t *testing.T) {
	f := &fakeDynamo{items: []map[string]types.AttributeValue{sampleItem(t)}}
	u, err := newDynamoRepo(f).GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)

	require.NotNil(t, f.queryIn)
	assert.Equal(t, "emailId-index", aws.ToString(f.queryIn.IndexName))
	assert.Contains(t, f.queryIn.ExpressionAttributeNames, "#0")
	assert.Equal(t, "emailId", f.queryIn.ExpressionAttributeNames["#0"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "alice@example.com"}, f.queryIn.ExpressionAttributeValues[":0"])
}

func TestDynamoGetByEmail_NotFound(t *testing.T) {
	_, err := newDynamoRepo(&fakeDynamo{}).GetByEmail(context.Background(), "x@y.z")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDynamoUpdate_OnlySuppliedFields(t *testing.T) {
	f := &fakeDynamo{item: sampleItem(t)}
	_, err := newDynamoRepo(f).Update(context.Background(), "u-1", models.UserUpdate{FullName: "New"})
	require.NoError(t, err)

	require.NotNil(t, f.updateIn)
	assert.Equal(t, types.ReturnValueAllNew, f.updateIn.ReturnValues)

	names := make([]string, 0, len(f.updateIn.ExpressionAttributeNames))
	for _, n := range f.updateIn.ExpressionAttributeNames {
		names = append(names, n)
	}
	assert.ElementsMatch(t, []string{"updatedAt", "fullName", "id"}, names)
}

func TestDynamoUpdate_Missing(t *testing.T) {
	f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
	_, err := newDynamoRepo(f).Update(context.Background(), "u-1", models.UserUpdate{UserName: "bob"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDynamoDelete(t *testing.T) {
	f := &fakeDynamo{}
	require.NoError(t, newDynamoRepo(f).Delete(context.Background(), "u-1"))
	assert.Equal(t, "attribute_exists(id)", aws.ToString(f.deleteIn.ConditionExpression))

	f.err = &types.ConditionalCheckFailedException{}
	assert.ErrorIs(t, newDynamoRepo(f).Delete(context.Background(), "u-1"), common.ErrorNotFound)
}
