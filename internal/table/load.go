// Package table wraps the table service RPCs: loading local files into a
// table and managing table definitions.
package table

import (
	"context"

	"google.golang.org/grpc/metadata"

	pb "github.com/mtiwari1/tableloader/proto"
)

// Client is the handle the table functions call through. Metadata is read
// once per call and sent as outgoing gRPC headers.
type Client interface {
	TableStub() pb.TableServiceClient
	Metadata() metadata.MD
}

// NewLoadDataRequest builds the request that loads path into tableName.
// It fails with ErrUnsupportedFileType before touching the filesystem when
// the extension is not recognized. The file itself is not opened.
func NewLoadDataRequest(tableName, path string) (*pb.LoadDataRequest, error) {
	ft, err := FileTypeForPath(path)
	if err != nil {
		return nil, err
	}
	uri, err := FileURI(path)
	if err != nil {
		return nil, err
	}
	return &pb.LoadDataRequest{
		TableName: tableName,
		FileInput: &pb.FileInput{
			FileType: ft,
			Uri:      uri,
		},
	}, nil
}

// Load sends the local file at path to the table service for ingestion into
// tableName. Errors from the RPC are returned as-is so callers can inspect
// their gRPC status.
func Load(ctx context.Context, tableName, path string, c Client) (*pb.LoadDataResponse, error) {
	req, err := NewLoadDataRequest(tableName, path)
	if err != nil {
		return nil, err
	}
	return c.TableStub().LoadData(withMetadata(ctx, c), req)
}

func withMetadata(ctx context.Context, c Client) context.Context {
	return metadata.NewOutgoingContext(ctx, c.Metadata())
}
