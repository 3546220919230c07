package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	require.NotNil(t, encoding.GetCodec(CodecName))
}

func TestLoadDataRequestWireFormat(t *testing.T) {
	req := &LoadDataRequest{
		TableName: "test_table",
		FileInput: &FileInput{FileType: FileType_FILE_TYPE_PARQUET, Uri: "file:///data/local.parquet"},
	}

	b, err := jsonCodec{}.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"table_name":"test_table","file_input":{"file_type":"FILE_TYPE_PARQUET","uri":"file:///data/local.parquet"}}`, string(b))

	var got LoadDataRequest
	require.NoError(t, jsonCodec{}.Unmarshal(b, &got))
	assert.Equal(t, req, &got)
}

func TestFileTypeJSON(t *testing.T) {
	var ft FileType
	require.NoError(t, ft.UnmarshalJSON([]byte(`2`)))
	assert.Equal(t, FileType_FILE_TYPE_CSV, ft)

	assert.Error(t, ft.UnmarshalJSON([]byte(`"FILE_TYPE_AVRO"`)))
	assert.Error(t, ft.UnmarshalJSON([]byte(`9`)))

	_, err := FileType(9).MarshalJSON()
	assert.Error(t, err)
	assert.Equal(t, "FileType(9)", FileType(9).String())
}

func TestNilGetters(t *testing.T) {
	var req *LoadDataRequest
	assert.Empty(t, req.GetTableName())
	assert.Nil(t, req.GetFileInput())
	assert.Equal(t, FileType_FILE_TYPE_UNSPECIFIED, req.GetFileInput().GetFileType())
	assert.Empty(t, req.GetFileInput().GetUri())
}
