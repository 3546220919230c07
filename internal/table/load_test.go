package table

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/mtiwari1/tableloader/proto"
)

type loadCall struct {
	req *pb.LoadDataRequest
	md  metadata.MD
}

// fakeStub records LoadData calls and answers with loadErr or a fixed token.
type fakeStub struct {
	pb.TableServiceClient

	mu      sync.Mutex
	calls   []loadCall
	loadErr error
}

func (s *fakeStub) LoadData(ctx context.Context, in *pb.LoadDataRequest, _ ...grpc.CallOption) (*pb.LoadDataResponse, error) {
	md, _ := metadata.FromOutgoingContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, loadCall{req: in, md: md})
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return &pb.LoadDataResponse{DataTokenId: "token-1"}, nil
}

func (s *fakeStub) loadCalls() []loadCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]loadCall(nil), s.calls...)
}

type fakeClient struct {
	stub *fakeStub
	md   metadata.MD

	mu            sync.Mutex
	metadataCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		stub: &fakeStub{},
		md:   metadata.Pairs("authorization", "Bearer test-key", "client-id", "test-client"),
	}
}

func (c *fakeClient) TableStub() pb.TableServiceClient { return c.stub }

func (c *fakeClient) Metadata() metadata.MD {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadataCalls++
	return c.md
}

func absURI(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return "file://" + filepath.ToSlash(abs)
}

func TestLoadParquet(t *testing.T) {
	c := newFakeClient()

	resp, err := Load(context.Background(), "test_table", "local.parquet", c)
	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.DataTokenId)

	calls := c.stub.loadCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, &pb.LoadDataRequest{
		TableName: "test_table",
		FileInput: &pb.FileInput{
			FileType: pb.FileType_FILE_TYPE_PARQUET,
			Uri:      absURI(t, "local.parquet"),
		},
	}, calls[0].req)
	assert.Equal(t, c.md, calls[0].md)
	assert.Equal(t, 1, c.metadataCalls)
}

func TestLoadCSV(t *testing.T) {
	c := newFakeClient()

	_, err := Load(context.Background(), "test_table", "local.csv", c)
	require.NoError(t, err)

	calls := c.stub.loadCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "test_table", calls[0].req.TableName)
	assert.Equal(t, pb.FileType_FILE_TYPE_CSV, calls[0].req.FileInput.FileType)
	assert.Equal(t, absURI(t, "local.csv"), calls[0].req.FileInput.Uri)
	assert.Equal(t, c.md, calls[0].md)
}

func TestLoadInvalidType(t *testing.T) {
	c := newFakeClient()

	resp, err := Load(context.Background(), "test_table", "local.img", c)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	var typeErr *UnsupportedFileTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, ".img", typeErr.Extension)
	assert.Equal(t, "local.img", typeErr.Path)

	assert.Empty(t, c.stub.loadCalls())
	assert.Zero(t, c.metadataCalls)
}

func TestLoadReturnsRPCErrorUnchanged(t *testing.T) {
	c := newFakeClient()
	rpcErr := status.Error(codes.Unavailable, "connection refused")
	c.stub.loadErr = rpcErr

	_, err := Load(context.Background(), "test_table", "local.csv", c)
	require.Error(t, err)
	assert.Same(t, rpcErr, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Len(t, c.stub.loadCalls(), 1)
}

func TestLoadTwiceSendsTwice(t *testing.T) {
	c := newFakeClient()

	for i := 0; i < 2; i++ {
		_, err := Load(context.Background(), "test_table", "data/events.parquet", c)
		require.NoError(t, err)
	}

	calls := c.stub.loadCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0].req, calls[1].req)
	assert.NotSame(t, calls[0].req, calls[1].req)
	assert.Equal(t, 2, c.metadataCalls)
}

func TestFileTypeForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    pb.FileType
		wantErr bool
	}{
		{path: "local.parquet", want: pb.FileType_FILE_TYPE_PARQUET},
		{path: "/tmp/a/b.csv", want: pb.FileType_FILE_TYPE_CSV},
		{path: "archive.tar.parquet", want: pb.FileType_FILE_TYPE_PARQUET},
		{path: "upper.CSV", wantErr: true},
		{path: "rows.csv.gz", wantErr: true},
		{path: "noextension", wantErr: true},
		{path: "image.img", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FileTypeForPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFileType)
				assert.Equal(t, pb.FileType_FILE_TYPE_UNSPECIFIED, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileURIIsAbsolute(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	uri, err := FileURI(filepath.Join("nested", "..", "local.parquet"))
	require.NoError(t, err)

	wd, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(wd, "local.parquet")), uri)
}

func TestUnsupportedFileTypeErrorMessage(t *testing.T) {
	_, err := FileTypeForPath("README")
	assert.EqualError(t, err, "unsupported file type: README has no extension")

	_, err = FileTypeForPath("photo.img")
	assert.EqualError(t, err, `unsupported file type ".img": photo.img`)
}
