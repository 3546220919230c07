package proto

import (
	"encoding/json"
	"fmt"
	"time"
)

// FileType identifies the data format of a file input.
type FileType int32

const (
	FileType_FILE_TYPE_UNSPECIFIED FileType = 0
	FileType_FILE_TYPE_PARQUET     FileType = 1
	FileType_FILE_TYPE_CSV         FileType = 2
)

var fileTypeNames = map[FileType]string{
	FileType_FILE_TYPE_UNSPECIFIED: "FILE_TYPE_UNSPECIFIED",
	FileType_FILE_TYPE_PARQUET:     "FILE_TYPE_PARQUET",
	FileType_FILE_TYPE_CSV:         "FILE_TYPE_CSV",
}

var fileTypeValues = map[string]FileType{
	"FILE_TYPE_UNSPECIFIED": FileType_FILE_TYPE_UNSPECIFIED,
	"FILE_TYPE_PARQUET":     FileType_FILE_TYPE_PARQUET,
	"FILE_TYPE_CSV":         FileType_FILE_TYPE_CSV,
}

func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FileType(%d)", int32(t))
}

// MarshalJSON encodes the enum by name.
func (t FileType) MarshalJSON() ([]byte, error) {
	name, ok := fileTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("proto: unknown file type %d", int32(t))
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts either the enum name or its numeric value.
func (t *FileType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		v, ok := fileTypeValues[name]
		if !ok {
			return fmt.Errorf("proto: unknown file type %q", name)
		}
		*t = v
		return nil
	}
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("proto: decode file type: %w", err)
	}
	if _, ok := fileTypeNames[FileType(n)]; !ok {
		return fmt.Errorf("proto: unknown file type %d", n)
	}
	*t = FileType(n)
	return nil
}

// FileInput references a file by format and location.
type FileInput struct {
	FileType FileType `json:"file_type"`
	Uri      string   `json:"uri"`
}

func (x *FileInput) GetFileType() FileType {
	if x == nil {
		return FileType_FILE_TYPE_UNSPECIFIED
	}
	return x.FileType
}

func (x *FileInput) GetUri() string {
	if x == nil {
		return ""
	}
	return x.Uri
}

// Table describes a named table held by the table service.
type Table struct {
	TableId             string    `json:"table_id,omitempty"`
	TableName           string    `json:"table_name"`
	TimeColumnName      string    `json:"time_column_name,omitempty"`
	EntityKeyColumnName string    `json:"entity_key_column_name,omitempty"`
	SubsortColumnName   *string   `json:"subsort_column_name,omitempty"`
	GroupingId          string    `json:"grouping_id,omitempty"`
	CreateTime          time.Time `json:"create_time,omitempty"`
	UpdateTime          time.Time `json:"update_time,omitempty"`
}

func (x *Table) GetTableName() string {
	if x == nil {
		return ""
	}
	return x.TableName
}

type LoadDataRequest struct {
	TableName string     `json:"table_name"`
	FileInput *FileInput `json:"file_input,omitempty"`
}

func (x *LoadDataRequest) GetTableName() string {
	if x == nil {
		return ""
	}
	return x.TableName
}

func (x *LoadDataRequest) GetFileInput() *FileInput {
	if x == nil {
		return nil
	}
	return x.FileInput
}

type LoadDataResponse struct {
	DataTokenId string `json:"data_token_id"`
}

type CreateTableRequest struct {
	Table *Table `json:"table"`
}

type CreateTableResponse struct {
	Table *Table `json:"table"`
}

type GetTableRequest struct {
	TableName string `json:"table_name"`
}

type GetTableResponse struct {
	Table *Table `json:"table"`
}

type ListTablesRequest struct {
	Search    string `json:"search,omitempty"`
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListTablesResponse struct {
	Tables        []*Table `json:"tables"`
	NextPageToken string   `json:"next_page_token,omitempty"`
}

type DeleteTableRequest struct {
	TableName string `json:"table_name"`
	Force     bool   `json:"force,omitempty"`
}

type DeleteTableResponse struct {
	DataTokenId string `json:"data_token_id,omitempty"`
}
