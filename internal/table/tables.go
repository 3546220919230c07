package table

import (
	"context"

	pb "github.com/mtiwari1/tableloader/proto"
)

// CreateTable registers t with the table service.
func CreateTable(ctx context.Context, t *pb.Table, c Client) (*pb.Table, error) {
	resp, err := c.TableStub().CreateTable(withMetadata(ctx, c), &pb.CreateTableRequest{Table: t})
	if err != nil {
		return nil, err
	}
	return resp.Table, nil
}

// GetTable fetches a table definition by name.
func GetTable(ctx context.Context, name string, c Client) (*pb.Table, error) {
	resp, err := c.TableStub().GetTable(withMetadata(ctx, c), &pb.GetTableRequest{TableName: name})
	if err != nil {
		return nil, err
	}
	return resp.Table, nil
}

// ListTables returns one page of tables matching search, and the token for
// the next page ("" when there are no more).
func ListTables(ctx context.Context, search string, pageSize int32, pageToken string, c Client) ([]*pb.Table, string, error) {
	resp, err := c.TableStub().ListTables(withMetadata(ctx, c), &pb.ListTablesRequest{
		Search:    search,
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, "", err
	}
	return resp.Tables, resp.NextPageToken, nil
}

// DeleteTable removes a table. force deletes it even if other resources depend on it.
func DeleteTable(ctx context.Context, name string, force bool, c Client) (*pb.DeleteTableResponse, error) {
	return c.TableStub().DeleteTable(withMetadata(ctx, c), &pb.DeleteTableRequest{TableName: name, Force: force})
}
